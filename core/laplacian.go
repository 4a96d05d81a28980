// Laplacian construction and connectivity.
//
// The Laplacian L = D − A is built lazily on first request and cached; the
// cache is safe because a Graph never mutates. Callers receive a fresh copy
// so the cached matrix can never be written through.
package core

import (
	"math/big"

	"github.com/katalvlaran/chipfire/ratmat"
)

// Laplacian returns L = D − A over the rationals in canonical vertex order:
// L[i][i] is the valence of vertex i and L[i][j] the negated multiplicity of
// the edge between i and j (zero when absent).
//
// Every row and column of L sums to zero, and for a connected graph the
// kernel of L is exactly the all-ones span — the semi-reduction step
// normalizes against precisely that kernel.
//
// Complexity: O(V²) on the first call, O(V²) copy afterwards.
func (g *Graph) Laplacian() *ratmat.Dense {
	g.lapOnce.Do(func() {
		n := len(g.vertices)
		// n >= 1 is guaranteed by construction, so NewDense cannot fail.
		lap, _ := ratmat.NewDense(n, n)
		for i := 0; i < n; i++ {
			_ = lap.Set(i, i, new(big.Rat).SetInt64(g.valence[i]))
			for _, e := range g.adj[i] {
				j := g.index[e.To]
				_ = lap.Set(i, j, new(big.Rat).SetInt64(-e.Weight))
			}
		}
		g.lap = lap
	})

	return g.lap.Clone()
}

// IsConnected reports whether every vertex is reachable from the first
// vertex in canonical order. A single-vertex graph is connected.
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	n := len(g.vertices)
	if n <= 1 {
		return true
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	visited[0] = true
	queue = append(queue, 0)
	seen := 1

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[u] {
			w := g.index[e.To]
			if !visited[w] {
				visited[w] = true
				seen++
				queue = append(queue, w)
			}
		}
	}

	return seen == n
}
