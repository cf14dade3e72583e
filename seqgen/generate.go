// Package seqgen - the batch generation loop.
//
// Ordering contract:
//   - Generation is strictly sequential. Every Bump must be visible to the
//     next minimization query, within and across sequences; balance depends
//     on this happens-before chain. Never parallelize inside a batch.
//   - The one UsageMatrix is shared by all m sequences, so each sequence's
//     opening pair is biased toward transitions the whole batch has
//     under-used so far.
package seqgen

import "fmt"

// Generate produces a Batch of m sequences of length n over the alphabet
// 0..n-1 with balanced transition usage.
//
// Each sequence opens with the globally least-used transition (both its
// symbols are appended) and is extended symbol by symbol with the cheapest
// transition out of its tail; every chosen transition is bumped before the
// next query. Loop bounds are finite and each step is a bounded scan, so
// no cancellation hook is needed.
//
// Errors: ErrInvalidSize (n < MinSequenceLength), ErrInvalidBatchSize
// (m < MinBatchCount). A DeadEnd escaping the loop would mean a broken
// internal invariant and is wrapped, never swallowed.
//
// Complexity: O(m·n²) time (n² opening scan plus n-cell row scans per
// sequence), O(n² + m·n) space.
func Generate(n, m int, opts ...Option) (*Batch, error) {
	// Stage 1 - Validate.
	if n < MinSequenceLength {
		return nil, seqgenErrorf(fmt.Sprintf("Generate(n=%d)", n), ErrInvalidSize)
	}
	if m < MinBatchCount {
		return nil, seqgenErrorf(fmt.Sprintf("Generate(m=%d)", m), ErrInvalidBatchSize)
	}
	cfg := newGeneratorConfig(opts...)

	// Stage 2 - Execute.
	usage, err := NewUsageMatrix(n, cfg.rng)
	if err != nil {
		return nil, err
	}

	sequences := make([][]int, 0, m)
	for k := 0; k < m; k++ {
		seq, err := nextSequence(usage, n)
		if err != nil {
			return nil, seqgenErrorf(fmt.Sprintf("Generate: sequence %d", k), err)
		}
		sequences = append(sequences, seq)
	}

	return &Batch{N: n, M: m, Sequences: sequences}, nil
}

// nextSequence builds one sequence of length n, mutating usage as it goes.
func nextSequence(usage *UsageMatrix, n int) ([]int, error) {
	seq := make([]int, 0, n)

	// Opening pair: the globally cheapest transition seeds the sequence.
	first, second, err := usage.GlobalMin()
	if err != nil {
		return nil, err
	}
	if err = usage.Bump(first, second); err != nil {
		return nil, err
	}
	seq = append(seq, first, second)

	// Continuation: cheapest transition out of the current tail.
	for len(seq) < n {
		last := seq[len(seq)-1]
		next, err := usage.RowMin(last)
		if err != nil {
			return nil, err
		}
		if err = usage.Bump(last, next); err != nil {
			return nil, err
		}
		seq = append(seq, next)
	}

	return seq, nil
}
