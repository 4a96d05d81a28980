// Package divisor implements chip configurations (divisors) over an
// immutable core.Graph, with the algebra the chip-firing game is built on.
//
// What:
//
//   - Divisor: an integer label per vertex, stored densely in the graph's
//     canonical order. Divisors are immutable values: every operation
//     (Add, Subtract, ChipFire, Borrow) returns a fresh Divisor and never
//     touches its operands.
//   - ChipFire(v): v sends one chip along each incident unit edge — it loses
//     its valence, each neighbor gains the connecting multiplicity. The move
//     preserves total degree.
//   - Borrow(v): the inverse move (v gains its valence, neighbors pay).
//   - IsPrincipal: is this divisor chip-firing-equivalent to the zero
//     divisor? Decided exactly as membership of the label vector in the
//     column space of the Laplacian.
//   - AllButOne(v, threshold): effective everywhere except possibly at v,
//     with v's label at least threshold — the winning-divisor acceptance
//     test (threshold 1) and, with NoThreshold, the plain
//     effective-outside-v check.
//
// Why:
//
//   - The reduction engine and the gonality search manufacture and discard
//     divisors at a high rate; value semantics keep that safe to parallelize
//     with no locks at all.
//
// Complexity: all operations are O(V) or O(V + deg); IsPrincipal delegates
// to an exact O(V³) rank computation in ratmat.
//
// Errors:
//
//   - ErrGraphNil      — nil graph passed to a constructor.
//   - ErrNilDivisor    — nil operand in Add/Subtract.
//   - ErrLabelMismatch — label domain differs from the graph's vertex set.
//   - ErrGraphMismatch — operands live on graphs that are not value-equal.
//   - core.ErrVertexNotFound — a vertex argument is not in the graph.
package divisor
