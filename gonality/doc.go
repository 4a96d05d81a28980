// Package gonality computes the gonality of a connected weighted multigraph:
// the minimum degree of a divisor that is winning at every vertex.
//
// What:
//
//   - Search iterates degrees k = 1, 2, 3, … (iterative deepening). For each
//     k it enumerates every multiset of k vertices (combinations with
//     repetition, in nondecreasing canonical-index order) as a candidate
//     effective divisor: label = multiplicity in the multiset, explicit
//     zeros elsewhere.
//   - A candidate D wins iff for every vertex v, the v-reduced divisor
//     dhar.Reduce(D, v) passes AllButOne(v, 1): effective outside v with at
//     least one chip at v.
//   - The first winning candidate yields the gonality and a witness; a
//     degree level is always resolved completely before escalating, which is
//     what makes the returned k minimal.
//
// Why:
//
//   - Gonality is the graph-theoretic shadow of the gonality of an algebraic
//     curve; it bounds treewidth from below and governs chip-firing games.
//
// Cost:
//
//   - There is no pruning or memoization: each level tests C(V+k−1, k)
//     candidates at O(V) reductions each, so the search is exponential in k.
//     This is the documented dominant cost center. Candidates within a level
//     are independent; WithParallelism spreads them over a bounded worker
//     pool. With workers > 1 the witness with the smallest enumeration
//     sequence number is returned, keeping results deterministic.
//
// Errors:
//
//   - ErrGraphNil       — nil graph.
//   - ErrDisconnected   — gonality is defined here for connected graphs only.
//   - ErrDegreeLimit    — the defensive degree cap was exhausted without a
//     witness (cannot happen below |V| on valid connected input).
//   - ErrOptionViolation — an invalid Option was supplied.
package gonality
