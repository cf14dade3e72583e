// Package seqgen - shared types and sentinel errors.
//
// Error policy (strict):
//   - Package-level sentinels below are the ONLY error identities exposed;
//     callers match them with errors.Is.
//   - Context is added with fmt.Errorf("...: %w"); identities survive wrapping.
//   - Index errors reuse matrix.ErrOutOfRange so the whole module speaks one
//     bounds-error vocabulary.
//   - Algorithms never panic on user input; panics are reserved for option
//     constructors fed nonsensical values (see options.go).
package seqgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize reports an alphabet size below MinSequenceLength.
	// With fewer than two symbols no off-diagonal transition exists.
	ErrInvalidSize = errors.New("seqgen: sequence length must be at least 2")

	// ErrInvalidBatchSize reports a batch size below MinBatchCount.
	ErrInvalidBatchSize = errors.New("seqgen: batch size must be at least 1")

	// ErrDeadEnd reports a row-minimum query that found no admissible
	// column. Unreachable for any matrix accepted by NewUsageMatrix; if it
	// escapes Generate it signals an internal-consistency fault, not a
	// recoverable condition.
	ErrDeadEnd = errors.New("seqgen: no admissible transition in row")

	// ErrNeedRandSource reports a nil *rand.Rand at UsageMatrix
	// construction. The stochastic component is mandatory.
	ErrNeedRandSource = errors.New("seqgen: rand source must be non-nil")

	// ErrNilBatch reports a nil *Batch passed to a derivation.
	ErrNilBatch = errors.New("seqgen: batch must be non-nil")

	// ErrMalformedBatch reports a Batch whose shape or symbols disagree
	// with its own N and M. Generate never emits such a batch.
	ErrMalformedBatch = errors.New("seqgen: malformed batch")
)

// Input bounds shared by Generate and NewUsageMatrix.
const (
	// MinSequenceLength is the smallest admissible alphabet size / sequence
	// length. Below it the no-self-transition rule cannot be satisfied.
	MinSequenceLength = 2

	// MinBatchCount is the smallest admissible number of sequences.
	MinBatchCount = 1
)

// seqgenErrorf prefixes err with an operation tag, preserving the sentinel
// identity for errors.Is.
func seqgenErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Batch is the finished output of Generate: M sequences of length N over
// the alphabet 0..N-1, no two consecutive symbols equal.
type Batch struct {
	// N is the sequence length and the alphabet size.
	N int

	// M is the number of sequences.
	M int

	// Sequences holds M rows of N symbols each, in generation order.
	Sequences [][]int
}

// validate checks that b is self-consistent: declared N and M within
// bounds, matching slice shapes, all symbols in [0,N), no two consecutive
// symbols equal. Derivations call it before counting; Generate's output
// always passes.
func (b *Batch) validate() error {
	if b == nil {
		return ErrNilBatch
	}
	if b.N < MinSequenceLength {
		return seqgenErrorf(fmt.Sprintf("Batch{N:%d}", b.N), ErrMalformedBatch)
	}
	if b.M < MinBatchCount || len(b.Sequences) != b.M {
		return seqgenErrorf(fmt.Sprintf("Batch{M:%d, sequences:%d}", b.M, len(b.Sequences)), ErrMalformedBatch)
	}
	for k, seq := range b.Sequences {
		if len(seq) != b.N {
			return seqgenErrorf(fmt.Sprintf("Batch.Sequences[%d]: length %d, want %d", k, len(seq), b.N), ErrMalformedBatch)
		}
		for pos, s := range seq {
			if s < 0 || s >= b.N {
				return seqgenErrorf(fmt.Sprintf("Batch.Sequences[%d][%d]: symbol %d outside [0,%d)", k, pos, s, b.N), ErrMalformedBatch)
			}
			if pos > 0 && seq[pos-1] == s {
				return seqgenErrorf(fmt.Sprintf("Batch.Sequences[%d][%d]: self-transition %d->%d", k, pos, s, s), ErrMalformedBatch)
			}
		}
	}

	return nil
}
