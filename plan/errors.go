// Package plan - sentinel errors and the shared wrap helper.
//
// Size violations forward the seqgen sentinels (ErrInvalidSize,
// ErrInvalidBatchSize) so plan validation and generator validation speak
// the same vocabulary.
package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPlan reports a plan with no batches (or an empty document).
	ErrEmptyPlan = errors.New("plan: no batches defined")

	// ErrDuplicateBatch reports two batches sharing a name; names double
	// as output subdirectories and must be unique.
	ErrDuplicateBatch = errors.New("plan: duplicate batch name")

	// ErrBadBatchName reports a batch name unusable as a directory
	// component (empty, dot entries, or containing path separators).
	ErrBadBatchName = errors.New("plan: batch name not directory-safe")
)

// planErrorf prefixes err with an operation tag, preserving sentinel
// identities for errors.Is.
func planErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
