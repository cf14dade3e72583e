// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/balseq/matrix"
)

// mustDense builds an r×c Dense from vals (row-major) or fails the test.
func mustDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()

	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	if vals != nil && len(vals) != r*c {
		t.Fatalf("fixture size %d != %d", len(vals), r*c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if vals == nil {
				continue
			}
			if err := m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// mustAt reads a cell or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()

	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// hide wraps a Matrix so type switches cannot see *Dense, forcing the
// generic At/Set fallback paths in kernels under test.
type hide struct{ matrix.Matrix }

func (h hide) Clone() matrix.Matrix { return hide{h.Matrix.Clone()} }
