// SPDX-License-Identifier: MIT

// Package matrix: canonical validation helpers.
//
// One source of truth for the guard checks used across this module and by
// seqgen/export. Validators are pure, allocate nothing, and return plain
// sentinels so call sites can wrap uniformly.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Errors: ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateInBounds ensures (i, j) addresses a cell of m.
// Assumes m is non-nil (caller must ensure).
// Errors: ErrOutOfRange. Complexity: O(1).
func ValidateInBounds(m Matrix, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return ErrOutOfRange
	}

	return nil
}

// ValidateFinite ensures every cell of m is a finite float64.
// Scan order is row-major, and the first offending cell stops the scan.
// Errors: ErrNilMatrix, ErrNaNInf. Complexity: O(rows*cols).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	// Dense fast path reads the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}

		return nil
	}

	var (
		r, c = m.Rows(), m.Cols()
		v    float64
		err  error
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}
	}

	return nil
}
