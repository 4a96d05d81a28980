// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// Error policy (strict): only package-level sentinels are exposed; callers
// branch with errors.Is; factories attach parameter context via %w wrapping
// and never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum for the requested family (Path/Star need 2+, Cycle needs 3+,
// Complete needs 1+).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadMultiplicity indicates a Banana multiplicity below 1.
var ErrBadMultiplicity = errors.New("builder: multiplicity must be >= 1")
