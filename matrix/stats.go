// SPDX-License-Identifier: MIT

// Package matrix: spread statistics for balance diagnostics.
//
// The balanced-sequence contract is statistical: off-diagonal transition
// counts should cluster tightly around their mean. Spread condenses a
// sample into mean / standard deviation / coefficient of variation so that
// callers (and tests) can assert "tight" without re-deriving the moments.

package matrix

import "gonum.org/v1/gonum/stat"

// SpreadStats summarizes the dispersion of a sample.
type SpreadStats struct {
	// Mean is the arithmetic mean of the sample.
	Mean float64
	// StdDev is the sample standard deviation (n-1 denominator).
	// Zero for samples smaller than two values.
	StdDev float64
	// CV is the coefficient of variation, StdDev/Mean.
	// Zero when Mean == 0 (the ratio is undefined there).
	CV float64
}

// Spread computes SpreadStats over sample.
// An empty sample yields the zero value; a single-value sample has zero
// StdDev by definition. Complexity: O(len(sample)).
func Spread(sample []float64) SpreadStats {
	if len(sample) == 0 {
		return SpreadStats{}
	}

	var s SpreadStats
	s.Mean = stat.Mean(sample, nil)
	if len(sample) > 1 {
		s.StdDev = stat.StdDev(sample, nil)
	}
	if s.Mean != 0 {
		s.CV = s.StdDev / s.Mean
	}

	return s
}
