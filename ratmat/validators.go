// SPDX-License-Identifier: MIT
// Package: ratmat
//
// Purpose:
//   - Single canonical source of truth for common validation checks.
//   - Kernels stay minimal by delegating nil/shape/length checks here.
//   - Validators return plain sentinels wrapped with a validator tag so call
//     sites can branch with errors.Is and still see where the check fired.

package ratmat

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil (compose with ValidateNotNil).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil, has exactly n entries, and contains
// no nil rationals. Complexity: O(n).
func ValidateVecLen(x []*big.Rat, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilValue)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for i, v := range x {
		if v == nil {
			return validatorErrorf(fmt.Sprintf("ValidateVecLen[%d]", i), ErrNilValue)
		}
	}

	return nil
}
