// SPDX-License-Identifier: MIT

// Package ratmat: exact linear-system kernels.
// This file implements the three operations the reduction engine consumes:
// MatVec (exact product), SolveRight (particular solution of a square,
// possibly singular system) and InImage (column-space membership).
//
// All kernels clone their inputs before elimination; operands are never
// mutated. Loop orders are fixed, so identical inputs yield identical
// outputs bit for bit.

package ratmat

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec     = "MatVec"
	opSolveRight = "SolveRight"
	opInImage    = "InImage"
)

// ratmatErrorf wraps err with an operation tag, preserving errors.Is matching.
func ratmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x of exact rationals.
//
// Contract: m non-nil; x non-nil with len(x) == m.Cols() and no nil entries.
// Determinism: fixed i→j loop order.
// Complexity: O(r*c) rational multiply-adds, O(r) space for y.
func MatVec(m *Dense, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, ratmatErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, ratmatErrorf(opMatVec, err)
	}

	y := NewVec(m.r)
	term := new(big.Rat) // scratch for a(i,j)*x(j); reused across iterations
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if x[j].Sign() == 0 {
				continue // skip zero multiplications
			}
			term.Mul(m.data[base+j], x[j])
			y[i].Add(y[i], term)
		}
	}

	return y, nil
}

// echelon reduces aug in place to reduced row-echelon form, restricting pivot
// search to the first lim columns. Returns the pivot column of each pivot
// row, in row order; len of the result is the rank of aug's first lim columns.
//
// Pivot policy: scan columns left to right; within a column take the first
// row (at or below the current pivot row) with a nonzero entry. Exact
// arithmetic makes magnitude-based pivoting unnecessary, and first-nonzero
// keeps the elimination deterministic.
//
// Complexity: O(rows * lim * cols) rational operations.
func echelon(aug *Dense, lim int) []int {
	rows, cols := aug.r, aug.c
	pivots := make([]int, 0, min(rows, lim))

	inv := new(big.Rat)    // pivot inverse scratch
	factor := new(big.Rat) // elimination factor scratch
	term := new(big.Rat)   // row-update scratch

	var col, row, r, j, pRow int
	pRow = 0
	for col = 0; col < lim && pRow < rows; col++ {
		// Find the first nonzero entry in this column at or below pRow.
		row = -1
		for r = pRow; r < rows; r++ {
			if aug.data[r*cols+col].Sign() != 0 {
				row = r
				break
			}
		}
		if row < 0 {
			continue // free column
		}

		// Swap the pivot row into position (pointer swap per element row).
		if row != pRow {
			for j = 0; j < cols; j++ {
				aug.data[pRow*cols+j], aug.data[row*cols+j] = aug.data[row*cols+j], aug.data[pRow*cols+j]
			}
		}

		// Normalize the pivot row so the pivot becomes exactly 1.
		inv.Inv(aug.data[pRow*cols+col])
		for j = col; j < cols; j++ {
			aug.data[pRow*cols+j].Mul(aug.data[pRow*cols+j], inv)
		}

		// Eliminate the pivot column from every other row (Gauss–Jordan).
		for r = 0; r < rows; r++ {
			if r == pRow {
				continue
			}
			if aug.data[r*cols+col].Sign() == 0 {
				continue
			}
			factor.Set(aug.data[r*cols+col])
			for j = col; j < cols; j++ {
				term.Mul(factor, aug.data[pRow*cols+j])
				aug.data[r*cols+j].Sub(aug.data[r*cols+j], term)
			}
		}

		pivots = append(pivots, col)
		pRow++
	}

	return pivots
}

// augment builds the augmented matrix [m | b] as a fresh Dense.
// Assumes len(b) == m.Rows() (validated by callers).
func augment(m *Dense, b []*big.Rat) *Dense {
	rows, cols := m.r, m.c
	data := make([]*big.Rat, rows*(cols+1))
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			data[i*(cols+1)+j] = new(big.Rat).Set(m.data[i*cols+j])
		}
		data[i*(cols+1)+cols] = new(big.Rat).Set(b[i])
	}

	return &Dense{r: rows, c: cols + 1, data: data}
}

// SolveRight returns a particular rational solution x of the square system
// A·x = b. The system may be singular: free variables are pinned to zero, so
// the result is the canonical particular solution of the echelon form.
//
// Errors: ErrNilMatrix/ErrNilValue/ErrDimensionMismatch on bad inputs,
// ErrNonSquare for a non-square A, ErrUnsolvable when b is not in the column
// space of A.
//
// Determinism: first-nonzero pivoting with fixed scan order; identical
// inputs yield the identical solution vector.
// Complexity: O(n³) rational operations, O(n²) space.
func SolveRight(a *Dense, b []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, ratmatErrorf(opSolveRight, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, ratmatErrorf(opSolveRight, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, ratmatErrorf(opSolveRight, err)
	}

	n := a.r
	aug := augment(a, b)
	pivots := echelon(aug, n)

	// Rows below the rank are zero in the A-part; a nonzero b-part there
	// certifies inconsistency.
	var r int
	for r = len(pivots); r < n; r++ {
		if aug.data[r*(n+1)+n].Sign() != 0 {
			return nil, ratmatErrorf(opSolveRight, ErrUnsolvable)
		}
	}

	// Read off the particular solution: pivot variables take the reduced
	// right-hand side, free variables stay zero.
	x := NewVec(n)
	for r, col := range pivots {
		x[col].Set(aug.data[r*(n+1)+n])
	}

	return x, nil
}

// InImage reports whether b lies in the column space of a, decided exactly by
// comparing rank(a) with rank([a|b]): the ranks agree iff augmentation adds
// no pivot, iff the system a·x = b is consistent.
//
// Errors: ErrNilMatrix/ErrNilValue/ErrDimensionMismatch on bad inputs.
// Complexity: O(r·c²) rational operations, O(r·c) space.
func InImage(a *Dense, b []*big.Rat) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, ratmatErrorf(opInImage, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return false, ratmatErrorf(opInImage, err)
	}

	aug := augment(a, b)
	pivots := echelon(aug, a.c)

	// After eliminating over the A-columns only, any surviving nonzero entry
	// in the b-column below the rank means rank([A|b]) > rank(A).
	cols := a.c + 1
	var r int
	for r = len(pivots); r < a.r; r++ {
		if aug.data[r*cols+a.c].Sign() != 0 {
			return false, nil
		}
	}

	return true, nil
}
