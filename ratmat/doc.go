// SPDX-License-Identifier: MIT

// Package ratmat provides exact rational dense linear algebra for the
// chipfire module: matrix construction over the rational field, a
// particular-solution solver for square (possibly singular) systems, and a
// column-space membership test.
//
// What:
//
//   - Dense: a row-major matrix of *big.Rat values with copy-in/copy-out
//     element access (no aliasing between callers and storage).
//   - MatVec: exact matrix–vector product.
//   - SolveRight: particular solution x of A·x = b via fraction-exact
//     Gauss–Jordan elimination; free variables are pinned to zero.
//   - InImage: does b lie in the column space of A? Decided by comparing the
//     rank of A with the rank of the augmented matrix [A|b].
//
// Why:
//
//   - Divisor reduction demands exact integer/rational arithmetic throughout;
//     floating point would corrupt the truncation and kernel-normalization
//     steps of semi-reduction. Every kernel here is exact and deterministic.
//
// Determinism:
//
//   - Elimination scans rows top-down and picks the first nonzero pivot.
//     Exact arithmetic needs no magnitude-based pivoting, so identical inputs
//     always produce identical echelon forms and solutions.
//
// Complexity:
//
//   - MatVec:     O(r·c) rational operations.
//   - SolveRight: O(n³) rational operations, O(n²) space for the clone.
//   - InImage:    O(r·c²) rational operations, O(r·c) space for the clone.
//
// Errors:
//
//   - ErrBadShape          — non-positive requested dimensions.
//   - ErrOutOfRange        — row/column index outside the matrix.
//   - ErrDimensionMismatch — incompatible operand shapes or vector lengths.
//   - ErrNonSquare         — square matrix required.
//   - ErrNilMatrix         — nil *Dense receiver or argument.
//   - ErrNilValue          — nil *big.Rat where a value is required.
//   - ErrUnsolvable        — the system A·x = b is inconsistent.
package ratmat
