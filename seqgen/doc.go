// Package seqgen generates batches of discrete sequences with balanced
// transition usage.
//
// Given an alphabet size n (symbols 0..n-1) and a batch size m, Generate
// produces m sequences of length n such that, across the whole batch, every
// ordered pair of distinct symbols (i→j, i≠j) is chosen approximately the
// same number of times. Self-transitions (i→i) never occur.
//
// The engine is a greedy online minimization over a mutable usage-cost
// matrix (UsageMatrix):
//
//   - Every off-diagonal cell starts at an independent uniform draw from
//     [0,1); the noise doubles as the tie-break.
//
//   - A sequence opens with the globally cheapest transition and continues
//     with the cheapest transition out of its last symbol.
//
//   - Each chosen transition is bumped: its cell is rounded up to the next
//     integer and fresh noise is added, so it cannot be chosen again until
//     every sibling transition has caught up to the same integer tier.
//
// One UsageMatrix is shared by all m sequences of a batch, so later
// sequences open with transitions the earlier ones under-used. The result
// approaches round-robin fairness without ever repeating a transition
// prematurely.
//
// Derived artifacts:
//
//   - TransitionCounts — raw n×n counts of realized transitions.
//
//   - TransitionProbabilities — row-normalized counts; a row sums to 1 or,
//     when its symbol never occurred as a transition source, stays all-zero.
//
//   - BalanceReport — spread statistics of the off-diagonal counts.
//
// Randomness is injected: pass WithSeed or WithRand to reproduce a batch,
// or pass nothing for a time-seeded run (two default runs differ).
// Generation is strictly sequential within a batch; run independent batches
// with separate UsageMatrix instances to parallelize.
//
// Complexity: O(m·n²) cell scans per batch, O(n²) memory.
//
// Use this package when a counterbalanced ordering of conditions is needed,
// e.g. stimulus orderings in repeated-measure experiment designs.
package seqgen
