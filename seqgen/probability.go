// Package seqgen - derived matrices of a finished batch.
//
// Both derivations are pure functions of the Batch value: they read no
// UsageMatrix state and consume no randomness, so they may run at any time
// after Generate, including concurrently on the same Batch.
package seqgen

import (
	"fmt"

	"github.com/katalvlaran/balseq/matrix"
)

// TransitionCounts tallies the realized transitions of b into an N×N
// matrix: counts[a][b] is incremented for every consecutive pair (a,b) of
// every sequence. Counts are exposed separately from probabilities because
// balance diagnostics are defined on the raw, pre-normalization counts.
//
// Errors: ErrNilBatch, ErrMalformedBatch (defensive; Generate output
// always passes).
//
// Complexity: O(m·n) time, O(n²) space.
func TransitionCounts(b *Batch) (*matrix.Dense, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	counts, err := matrix.NewDense(b.N, b.N)
	if err != nil {
		return nil, seqgenErrorf("TransitionCounts", err)
	}
	for _, seq := range b.Sequences {
		for t := 1; t < len(seq); t++ {
			from, to := seq[t-1], seq[t]
			cur, err := counts.At(from, to)
			if err != nil {
				return nil, seqgenErrorf("TransitionCounts", err)
			}
			if err = counts.Set(from, to, cur+1); err != nil {
				return nil, seqgenErrorf("TransitionCounts", err)
			}
		}
	}

	return counts, nil
}

// TransitionProbabilities row-normalizes the transition counts of b:
// every row of the result sums to 1 within floating-point tolerance, or
// stays entirely zero when its symbol never appeared as a transition
// source in the batch (the documented degenerate-row policy).
//
// Errors: as TransitionCounts.
//
// Complexity: O(m·n + n²) time, O(n²) space.
func TransitionProbabilities(b *Batch) (*matrix.Dense, error) {
	counts, err := TransitionCounts(b)
	if err != nil {
		return nil, err
	}

	probs, _, err := matrix.NormalizeRowsL1(counts)
	if err != nil {
		return nil, seqgenErrorf("TransitionProbabilities", err)
	}

	return probs, nil
}
