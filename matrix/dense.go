// SPDX-License-Identifier: MIT

// Package matrix: Dense, the row-major float64 implementation of Matrix.
// A flat backing slice keeps scans cache-friendly; (i,j) maps to i*cols+j.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
type Dense struct {
	rows, cols int
	data       []float64 // len == rows*cols, row-major
}

// compile-time interface check
var _ Matrix = (*Dense)(nil)

// NewDense returns a rows×cols Dense initialized to zeros.
// Stage 1 (Validate): rows and cols must both be ≥ 1.
// Stage 2 (Allocate): one flat slice, zeroed by the runtime.
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}

	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// offset maps (i,j) to the flat index, or reports ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) offset(i, j int) (int, error) {
	if err := ValidateInBounds(m, i, j); err != nil {
		return 0, fmt.Errorf("Dense(%d,%d): %w", i, j, err)
	}

	return i*m.cols + j, nil
}

// At returns the element at (i, j), or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.offset(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (i, j), or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.offset(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(rows*cols).
func (m *Dense) Clone() Matrix {
	dup := make([]float64, len(m.data))
	copy(dup, m.data)

	return &Dense{rows: m.rows, cols: m.cols, data: dup}
}

// Row returns a copy of row i. Mutating the returned slice does not affect
// the matrix. Complexity: O(cols).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out, nil
}

// String renders the matrix one bracketed row per line, for debugging.
// Complexity: O(rows*cols).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.cols+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
