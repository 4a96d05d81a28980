// SPDX-License-Identifier: MIT
// Package ratmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. Kernels return these sentinels (optionally wrapped with an
// operation tag via %w) and tests branch on them with errors.Is.

package ratmat

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("ratmat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("ratmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length does not match the matrix column count.
	ErrDimensionMismatch = errors.New("ratmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("ratmat: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("ratmat: nil matrix")

	// ErrNilValue indicates a nil *big.Rat where a value is required.
	ErrNilValue = errors.New("ratmat: nil rational value")

	// ErrUnsolvable is returned by SolveRight when the system is inconsistent,
	// i.e. b does not lie in the column space of A.
	ErrUnsolvable = errors.New("ratmat: system has no solution")
)
