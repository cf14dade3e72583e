// SPDX-License-Identifier: MIT

// Package matrix is the dense numeric core of balseq: a row-major float64
// matrix plus the handful of row-wise operations the balanced-sequence
// domain needs (row sums, L1 row normalization with an explicit
// degenerate-row policy, off-diagonal extraction) and spread statistics
// for balance diagnostics.
//
// Design contract (enforced across the package):
//   - Sentinel errors only; callers branch with errors.Is. Public indexers
//     (At/Set) return ErrOutOfRange, they never panic.
//   - Deterministic traversal: every scan is row-major (i ascending, then j
//     ascending). Results are bit-stable for identical inputs.
//   - No hidden state: no logging, no randomness, no globals.
//   - Numeric policy: operations that consume matrix cells reject NaN/±Inf
//     with ErrNaNInf rather than propagating poison values.
//
// The package is intentionally small. It is not a linear-algebra library;
// it is the exact numeric surface required by seqgen and export, kept
// separate so that the generator's algorithmic contract never mixes with
// storage concerns.
package matrix
