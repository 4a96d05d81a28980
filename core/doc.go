// Package core provides the immutable weighted multigraph at the heart of
// the chipfire module, together with its rational Laplacian.
//
// What:
//
//   - Graph: an ordered set of distinct positive integer vertices plus a
//     symmetric weighted adjacency structure. The construction order of the
//     vertex list is the canonical order used for every vector and matrix
//     index in the module.
//   - Parallel edges are expressed as a single (neighbor, multiplicity)
//     record; duplicate records for one pair are merged by summing
//     multiplicities during construction.
//   - Laplacian(): L = D − A over the rationals, where D is the diagonal
//     valence matrix and A the weighted adjacency matrix. For a connected
//     graph the kernel of L is exactly the span of the all-ones vector —
//     the reduction engine relies on this.
//
// Why:
//
//   - Divisor theory needs a graph that never changes underneath its
//     divisors. Graph carries no mutation operations at all: once New
//     returns, the value is deeply immutable and safe to share across any
//     number of goroutines and concurrent reductions.
//
// Invariants (enforced at construction, never assumed):
//
//   - Vertex IDs are distinct positive integers.
//   - Adjacency is symmetric: (u,v,w) recorded at u implies (v,u,w) at v.
//   - Multiplicities are ≥ 1; self-loops are rejected.
//
// Complexity:
//
//   - New:          O(V + E·log E) for normalization and validation.
//   - Valence, IndexOf, Adjacent: O(1) / O(log deg).
//   - Laplacian:    O(V²) on first call, cached; O(V²) copy per call after.
//   - IsConnected:  O(V + E).
//   - Equal:        O(V + E).
//
// Errors:
//
//   - ErrNoVertices      — empty vertex list.
//   - ErrBadVertexID     — a vertex ID is not a positive integer.
//   - ErrDuplicateVertex — a vertex ID occurs twice.
//   - ErrUnknownVertex   — adjacency references a vertex outside the set.
//   - ErrBadWeight       — an edge multiplicity below 1.
//   - ErrSelfLoop        — an edge from a vertex to itself.
//   - ErrAsymmetric      — adjacency records are not symmetric.
//   - ErrVertexNotFound  — a query referenced a non-existent vertex.
package core
