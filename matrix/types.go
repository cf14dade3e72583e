// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Concrete storage lives in dense.go; algorithms in this module accept the
// interface and fast-path on *Dense where the flat buffer pays off.

package matrix

// Matrix is a two-dimensional mutable array of float64 values.
//
// All methods are O(1) except Clone, which is O(rows*cols).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j).
	// Returns ErrOutOfRange when an index is outside the bounds.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j).
	// Returns ErrOutOfRange when an index is outside the bounds.
	Set(i, j int, v float64) error

	// Clone returns a deep copy, independent of the original.
	Clone() Matrix
}
