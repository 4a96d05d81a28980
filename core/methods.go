// Query methods over an immutable Graph. Everything here is read-only and
// returns copies where slices are involved, so callers can never reach the
// internal adjacency storage.
package core

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of distinct unordered adjacent pairs.
// Parallel edges contribute their pair once; multiplicity lives on the edge
// record. Exact because symmetry is enforced at construction.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Genus returns the first Betti number EdgeCount − VertexCount + 1.
// Complexity: O(1).
func (g *Graph) Genus() int { return g.edges - len(g.vertices) + 1 }

// HasVertex reports whether v is a vertex of g. Complexity: O(1).
func (g *Graph) HasVertex(v int64) bool {
	_, ok := g.index[v]
	return ok
}

// IndexOf returns the canonical index of vertex v, or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) IndexOf(v int64) (int, error) {
	i, ok := g.index[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return i, nil
}

// VertexAt returns the vertex ID at canonical index i.
// Panics on an out-of-range index: canonical indices only originate from
// IndexOf/VertexCount, so a bad index is a programmer error.
func (g *Graph) VertexAt(i int) int64 { return g.vertices[i] }

// Vertices returns a copy of the vertex IDs in canonical order.
// Complexity: O(V).
func (g *Graph) Vertices() []int64 {
	out := make([]int64, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Adjacent reports whether u and v are joined by an edge. Both adjacency
// rows are consulted, so the answer stays truthful even if one side were
// somehow missing.
// Complexity: O(log deg).
func (g *Graph) Adjacent(u, v int64) bool {
	iu, okU := g.index[u]
	iv, okV := g.index[v]
	if !okU || !okV {
		return false
	}
	if _, found := findEdge(g.adj[iu], v); found {
		return true
	}
	_, found := findEdge(g.adj[iv], u)

	return found
}

// NeighborEdges returns a copy of v's adjacency records, sorted by neighbor
// ID. Complexity: O(deg).
func (g *Graph) NeighborEdges(v int64) ([]Edge, error) {
	i, ok := g.index[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(g.adj[i]))
	copy(out, g.adj[i])

	return out, nil
}

// Valence returns the total incident multiplicity of v, the number of chips
// v loses when it fires. Complexity: O(1).
func (g *Graph) Valence(v int64) (int64, error) {
	i, ok := g.index[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return g.valence[i], nil
}

// Equal reports value equality: the same vertex set and, for every vertex,
// the same set of (neighbor, multiplicity) records. Permuted construction
// orders and permuted adjacency lists compare equal; the check is not
// isomorphism-aware. Complexity: O(V + E).
func (g *Graph) Equal(o *Graph) bool {
	if o == nil {
		return false
	}
	if g == o {
		return true
	}
	if len(g.vertices) != len(o.vertices) || g.edges != o.edges {
		return false
	}
	// Same vertex set (order may differ).
	for v := range g.index {
		if _, ok := o.index[v]; !ok {
			return false
		}
	}
	// Rows are merged and sorted by construction, so per-vertex set equality
	// is a positional scan.
	for v, i := range g.index {
		rowG := g.adj[i]
		rowO := o.adj[o.index[v]]
		if len(rowG) != len(rowO) {
			return false
		}
		for k := range rowG {
			if rowG[k] != rowO[k] {
				return false
			}
		}
	}

	return true
}
