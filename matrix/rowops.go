// SPDX-License-Identifier: MIT

// Package matrix: row-wise kernels used by the sequence-generation domain.
//
// Exposed API:
//   - RowSums(m)         -> []float64        // Σ_j m[i,j] per row
//   - NormalizeRowsL1(m) -> (*Dense, sums)   // divide rows by their sum; zero rows stay zero
//   - OffDiagonal(m)     -> []float64        // row-major off-diagonal cells of a square matrix
//
// Determinism & policy:
//   - Fixed i→j traversal everywhere.
//   - NaN/±Inf cells are rejected with ErrNaNInf before any arithmetic.
//   - A row whose sum is exactly 0 is NOT normalized: it is emitted as an
//     all-zero row. For transition tables this encodes "symbol never used
//     as a transition source", and callers rely on that reading.

package matrix

import "math"

// Operation tags for error wrapping (no magic strings at call sites).
const (
	opRowSums         = "RowSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opOffDiagonal     = "OffDiagonal"
)

// RowSums returns the per-row sums of m in row order.
// Stage 1 (Validate): non-nil, finite cells.
// Stage 2 (Accumulate): row-major scan; Dense fast path on the flat buffer.
// Errors: ErrNilMatrix, ErrNaNInf. Complexity: O(rows*cols) time, O(rows) space.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	var (
		r, c = m.Rows(), m.Cols()
		sums = make([]float64, r)
	)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				v := d.data[base+j]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, matrixErrorf(opRowSums, ErrNaNInf)
				}
				sums[i] += v
			}
		}

		return sums, nil
	}

	var (
		v   float64
		err error
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opRowSums, ErrNaNInf)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// NormalizeRowsL1 returns a copy of m with every row divided by its sum,
// together with the original row sums.
//
// Degenerate-row policy: a row with sum == 0 is left entirely zero in the
// output (no 0/0). Rows of a probability table therefore sum to 1 or to 0,
// never to NaN.
//
// Stage 1 (Validate): delegate to RowSums (non-nil + finite).
// Stage 2 (Scale): one multiplication per cell with the cached 1/sum.
// Errors: ErrNilMatrix, ErrNaNInf. Complexity: O(rows*cols) time and space.
func NormalizeRowsL1(m Matrix) (*Dense, []float64, error) {
	sums, err := RowSums(m)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	var (
		r, c = m.Rows(), m.Cols()
		out  *Dense
	)
	if out, err = NewDense(r, c); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	var (
		inv float64
		v   float64
	)
	for i := 0; i < r; i++ {
		if sums[i] == 0 {
			continue // degenerate row: stays all-zero
		}
		inv = 1.0 / sums[i]
		for j := 0; j < c; j++ {
			// At cannot fail here: i,j are in range by construction.
			v, _ = m.At(i, j)
			out.data[i*c+j] = v * inv
		}
	}

	return out, sums, nil
}

// OffDiagonal returns the off-diagonal cells of a square matrix in row-major
// order. For an n×n input the result holds exactly n*(n-1) values.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²) time and space.
func OffDiagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opOffDiagonal, err)
	}

	var (
		n   = m.Rows()
		out = make([]float64, 0, n*(n-1))
		v   float64
		err error
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opOffDiagonal, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}
