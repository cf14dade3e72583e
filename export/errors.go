// Package export - sentinel errors and the shared wrap helper.
//
// Matrix-shape failures are forwarded from the matrix package unchanged
// (matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf), so callers
// keep one vocabulary across the module. I/O failures wrap the underlying
// os/csv/plot error with the operation and path.
package export

import (
	"errors"
	"fmt"
)

var (
	// ErrNilWriter reports a nil io.Writer passed to a Write* function.
	ErrNilWriter = errors.New("export: writer must be non-nil")

	// ErrNoSequences reports an empty sequence set; an empty CSV artifact
	// is never meaningful.
	ErrNoSequences = errors.New("export: no sequences to write")
)

// exportErrorf prefixes err with an operation tag, preserving sentinel
// identities for errors.Is.
func exportErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
