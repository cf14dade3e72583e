// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message carries the "matrix: " prefix for consistent grepping.
// Sentinels are never wrapped at definition site; implementations attach
// call-site context with fmt.Errorf("op: %w", ErrX), and callers keep
// matching via errors.Is. Runtime code never panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows < 1 or cols < 1) at construction time.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index lies outside the
	// matrix bounds. At/Set return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil Matrix argument or receiver.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// has Rows() != Cols().
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf cell where finite values are required
	// by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf prefixes err with the operation name that observed it.
// The sentinel stays reachable through errors.Is after wrapping.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
