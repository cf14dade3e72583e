// Package seqgen - the usage-cost matrix driving greedy balanced selection.
//
// Goals:
//   - Single mutator: Bump is the only way matrix state changes, and it
//     changes exactly one cell.
//   - Strict growth: a bumped cell is strictly greater afterwards, so a
//     just-used transition cannot win again until its row catches up.
//   - Determinism per source: all draws come from the injected rng; same
//     rng state, same matrix evolution.
//
// Concurrency:
//   - A UsageMatrix is NOT goroutine-safe (neither is its rng). One matrix
//     serves one batch on one goroutine; independent batches get
//     independent matrices.
package seqgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/balseq/matrix"
)

// UsageMatrix tracks the cumulative cost of every ordered transition
// (row → col) over the alphabet 0..n-1. Off-diagonal cells compete in
// minimization queries; diagonal cells are filled for uniformity but never
// consulted, because a self-transition is never admissible.
type UsageMatrix struct {
	n    int
	cost []float64 // row-major, len n*n
	rng  *rand.Rand
}

// NewUsageMatrix allocates an n×n usage matrix with every cell drawn
// independently from [0,1) using rng. The initial noise is what breaks
// ties between never-used transitions.
//
// Errors: ErrInvalidSize when n < MinSequenceLength; ErrNeedRandSource
// when rng is nil.
//
// Complexity: O(n²) time and space.
func NewUsageMatrix(n int, rng *rand.Rand) (*UsageMatrix, error) {
	if n < MinSequenceLength {
		return nil, seqgenErrorf(fmt.Sprintf("NewUsageMatrix(n=%d)", n), ErrInvalidSize)
	}
	if rng == nil {
		return nil, seqgenErrorf("NewUsageMatrix", ErrNeedRandSource)
	}

	u := &UsageMatrix{
		n:    n,
		cost: make([]float64, n*n),
		rng:  rng,
	}
	for i := range u.cost {
		u.cost[i] = rng.Float64()
	}

	return u, nil
}

// Size returns the alphabet size n.
func (u *UsageMatrix) Size() int { return u.n }

// At returns the current cost of transition (i → j).
// Read access for tests and diagnostics; generation itself never needs it.
func (u *UsageMatrix) At(i, j int) (float64, error) {
	if err := u.check(i, j); err != nil {
		return 0, seqgenErrorf(fmt.Sprintf("UsageMatrix.At(%d,%d)", i, j), err)
	}

	return u.cost[i*u.n+j], nil
}

// GlobalMin returns the coordinates of the smallest off-diagonal cell.
// Scan order is row-major with strict < comparison, so the FIRST minimum
// wins ties; the injected noise makes exact ties measure-zero, and the
// scan order is the documented tie-break.
//
// Errors: ErrInvalidSize if the matrix admits no off-diagonal cell
// (unreachable after NewUsageMatrix; kept as an invariant guard).
//
// Complexity: O(n²) time, O(1) space.
func (u *UsageMatrix) GlobalMin() (row, col int, err error) {
	if u.n < MinSequenceLength {
		return 0, 0, seqgenErrorf("UsageMatrix.GlobalMin", ErrInvalidSize)
	}

	var (
		best     = math.Inf(1)
		idx      int
		i, j     int
		haveBest bool
	)
	for i = 0; i < u.n; i++ {
		for j = 0; j < u.n; j++ {
			if i == j {
				idx++
				continue
			}
			if v := u.cost[idx]; v < best {
				best = v
				row, col = i, j
				haveBest = true
			}
			idx++
		}
	}
	if !haveBest {
		// Only +Inf cells everywhere; impossible for cells we wrote.
		return 0, 0, seqgenErrorf("UsageMatrix.GlobalMin", ErrDeadEnd)
	}

	return row, col, nil
}

// RowMin returns the column of the smallest cell in row, excluding the
// diagonal. Same first-wins tie-break as GlobalMin.
//
// Errors: wrapped matrix.ErrOutOfRange for row outside [0,n);
// ErrDeadEnd when no admissible column exists (unreachable for n ≥ 2).
//
// Complexity: O(n) time, O(1) space.
func (u *UsageMatrix) RowMin(row int) (col int, err error) {
	if row < 0 || row >= u.n {
		return 0, seqgenErrorf(fmt.Sprintf("UsageMatrix.RowMin(%d)", row), matrix.ErrOutOfRange)
	}

	var (
		best     = math.Inf(1)
		base     = row * u.n
		haveBest bool
	)
	for j := 0; j < u.n; j++ {
		if j == row {
			continue
		}
		if v := u.cost[base+j]; v < best {
			best = v
			col = j
			haveBest = true
		}
	}
	if !haveBest {
		return 0, seqgenErrorf(fmt.Sprintf("UsageMatrix.RowMin(%d)", row), ErrDeadEnd)
	}

	return col, nil
}

// Bump marks transition (row → col) as just used: the cell becomes
// ceil(current) + u with u drawn from the OPEN interval (0,1). Rounding up
// moves the cell to the next integer tier, so the transition cannot win
// another minimization until every sibling reaches that tier; the fresh
// noise keeps future tie-breaking diverse. The open interval keeps the
// growth strict even when the current value is itself an integer.
//
// Bump is the sole mutator and touches exactly one cell. Diagonal bumps
// are rejected: no caller may ever select a self-transition.
//
// Errors: wrapped matrix.ErrOutOfRange for indices outside the
// off-diagonal cell set.
//
// Complexity: O(1) time (expected; the zero-noise redraw loop terminates
// with probability 1 on the first iteration in practice).
func (u *UsageMatrix) Bump(row, col int) error {
	if err := u.check(row, col); err != nil {
		return seqgenErrorf(fmt.Sprintf("UsageMatrix.Bump(%d,%d)", row, col), err)
	}
	if row == col {
		return seqgenErrorf(fmt.Sprintf("UsageMatrix.Bump(%d,%d): diagonal", row, col), matrix.ErrOutOfRange)
	}

	u.cost[row*u.n+col] = math.Ceil(u.cost[row*u.n+col]) + u.openUnit()

	return nil
}

// openUnit draws from the open interval (0,1): a zero draw is redrawn.
func (u *UsageMatrix) openUnit() float64 {
	v := u.rng.Float64()
	for v == 0 {
		v = u.rng.Float64()
	}

	return v
}

// check validates cell coordinates against the matrix bounds.
func (u *UsageMatrix) check(i, j int) error {
	if i < 0 || i >= u.n || j < 0 || j >= u.n {
		return matrix.ErrOutOfRange
	}

	return nil
}
