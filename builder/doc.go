// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph fixtures for the chipfire
// module: the canonical families divisor theory is usually exercised on.
//
// What:
//
//   - Path(n)     — 1–2–…–n, unit edges.
//   - Cycle(n)    — the n-cycle; Cycle(3) is the triangle.
//   - Complete(n) — K_n, every pair joined by a unit edge.
//   - Star(n)     — vertex 1 joined to 2..n.
//   - Banana(m)   — two vertices joined by m parallel unit edges, stored as
//     one record of multiplicity m.
//
// Determinism: vertex IDs are always 1..n in ascending order, which fixes
// the canonical order of every derived divisor and Laplacian; identical
// parameters always produce value-equal graphs.
//
// Known invariants, handy when writing tests:
//
//   - gonality(Path(n))     = 1
//   - gonality(Cycle(n))    = 2 for n ≥ 3
//   - gonality(Complete(n)) = n−1
//   - gonality(Banana(m))   = 2 for m ≥ 2 ({1,1} is winning), 1 for m = 1
//   - genus(Cycle(n)) = 1, genus(Complete(4)) = 3
//
// Errors:
//
//   - ErrTooFewVertices   — a size parameter below the family's minimum.
//   - ErrBadMultiplicity  — Banana multiplicity below 1.
package builder
