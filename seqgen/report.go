// Package seqgen - balance diagnostics over a finished batch.
package seqgen

import "github.com/katalvlaran/balseq/matrix"

// Report summarizes how evenly a batch spread its transitions over the
// n·(n-1) ordered pairs. A CV near zero means near-perfect balance;
// uniform random sampling at the same size would score visibly higher.
type Report struct {
	// Transitions is the total number of ordered transitions in the batch,
	// always m·(n-1).
	Transitions int

	// Mean is the average off-diagonal transition count.
	Mean float64

	// StdDev is the sample standard deviation of the off-diagonal counts.
	StdDev float64

	// CV is StdDev/Mean (coefficient of variation), 0 when Mean is 0.
	CV float64
}

// BalanceReport computes spread statistics of the raw off-diagonal
// transition counts of b. Pure reporting; no state is touched.
//
// Errors: as TransitionCounts.
//
// Complexity: O(m·n + n²) time, O(n²) space.
func BalanceReport(b *Batch) (Report, error) {
	counts, err := TransitionCounts(b)
	if err != nil {
		return Report{}, err
	}

	sample, err := matrix.OffDiagonal(counts)
	if err != nil {
		return Report{}, seqgenErrorf("BalanceReport", err)
	}
	s := matrix.Spread(sample)

	return Report{
		Transitions: b.M * (b.N - 1),
		Mean:        s.Mean,
		StdDev:      s.StdDev,
		CV:          s.CV,
	}, nil
}
