// Package seqgen_test - shared helpers for reading derived matrices.
package seqgen_test

import (
	"testing"

	"github.com/katalvlaran/balseq/matrix"
)

// mustCell reads one cell of a derived matrix or fails the test.
func mustCell(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()

	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// rowSum adds up one row of a derived matrix.
func rowSum(t *testing.T, m matrix.Matrix, row int) float64 {
	t.Helper()

	var sum float64
	for j := 0; j < m.Cols(); j++ {
		sum += mustCell(t, m, row, j)
	}

	return sum
}

// totalSum adds up every cell of a derived matrix.
func totalSum(t *testing.T, m matrix.Matrix) float64 {
	t.Helper()

	var sum float64
	for i := 0; i < m.Rows(); i++ {
		sum += rowSum(t, m, i)
	}

	return sum
}
