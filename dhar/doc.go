// Package dhar implements the divisor-reduction engine: semi-reduction via
// an exact-rational Laplacian solve, then Dhar's burning algorithm iterated
// to the unique v-reduced divisor.
//
// What:
//
//   - SemiReduce(d, v): builds the auxiliary vector whose u-component is
//     valence(u) − label(u) for u ≠ v (v takes the negated remainder, so the
//     total is exactly zero), solves L·x = aux over the rationals, truncates
//     x to integers, normalizes against the Laplacian's one-dimensional
//     kernel by subtracting x[v] from every component (pinning x[v] to 0),
//     and returns d + L·x.
//   - Reduce(d, v): starts from SemiReduce(d, v), then alternates the
//     burning fixpoint with simultaneous firing of all unburnt vertices
//     until the fire consumes the whole graph. The surviving divisor is the
//     unique v-reduced representative of d's equivalence class.
//
// Burning fixpoint (Dhar's criterion): vertex v burns first and ignites its
// incident edges; an unburnt vertex burns as soon as the total multiplicity
// of its on-fire incident edges exceeds its label. Full scans repeat until a
// pass burns nothing.
//
// Why:
//
//   - The v-reduced form is the normal form of the chip-firing equivalence
//     class: existence and uniqueness are structural facts of the game, and
//     the winning-divisor criterion of the gonality search reads directly
//     off it.
//
// Burn state is kept in dense arrays indexed by the graph's canonical vertex
// order, so each fixpoint pass costs O(V + E) with no map lookups.
//
// Termination: the refiring loop strictly decreases a known potential, so it
// terminates on every connected graph. A defensive iteration cap (default
// 10·V²+64, tunable via WithMaxIterations) still bounds malformed input;
// exceeding it surfaces as ErrIterationLimit and is never swallowed.
//
// Preconditions:
//
//   - The graph must be connected: the Laplacian solve is only guaranteed
//     solvable there, and the kernel normalization assumes a one-dimensional
//     kernel. Disconnected input is rejected up front with ErrDisconnected.
//
// Complexity: SemiReduce is O(V³) rational operations (the solve dominates);
// each Reduce iteration is O(V + E).
//
// Errors:
//
//   - ErrDivisorNil       — nil divisor input.
//   - ErrDisconnected     — the graph is not connected.
//   - ErrIterationLimit   — the defensive cap fired (invariant violation).
//   - ErrOverflow         — an adjustment left the int64 label range.
//   - ErrOptionViolation  — an invalid Option was supplied.
//   - core.ErrVertexNotFound — v is not a vertex of the divisor's graph.
//   - ratmat.ErrUnsolvable (wrapped) — the solve failed after the
//     connectivity check passed; an internal invariant violation.
package dhar
