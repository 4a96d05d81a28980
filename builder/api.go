// SPDX-License-Identifier: MIT
// Package builder: public fixture factories.
//
// Contract:
//   - Vertex IDs are 1..n, emitted in ascending order (the canonical order).
//   - Each unordered pair is recorded symmetrically on both endpoints.
//   - Factories validate parameters early and return sentinel errors.
//
// Complexity: every factory is O(V + E) construction plus core validation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
)

// File-local minima (no magic numbers at call sites).
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
)

// ids returns the vertex list 1..n in ascending order.
func ids(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i + 1)
	}

	return out
}

// Path builds the path graph 1–2–…–n with unit edges.
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	adj := make(map[int64][]core.Edge, n)
	for i := int64(1); i < int64(n); i++ {
		adj[i] = append(adj[i], core.Edge{To: i + 1, Weight: 1})
		adj[i+1] = append(adj[i+1], core.Edge{To: i, Weight: 1})
	}

	return core.New(ids(n), adj)
}

// Cycle builds the n-cycle 1–2–…–n–1 with unit edges. Cycle(3) is the
// triangle.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	adj := make(map[int64][]core.Edge, n)
	for i := int64(1); i <= int64(n); i++ {
		next := i%int64(n) + 1
		adj[i] = append(adj[i], core.Edge{To: next, Weight: 1})
		adj[next] = append(adj[next], core.Edge{To: i, Weight: 1})
	}

	return core.New(ids(n), adj)
}

// Complete builds K_n: every pair of distinct vertices joined by a unit
// edge. Pairs are emitted lexicographically by (i, j), i < j.
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	adj := make(map[int64][]core.Edge, n)
	for i := int64(1); i <= int64(n); i++ {
		for j := i + 1; j <= int64(n); j++ {
			adj[i] = append(adj[i], core.Edge{To: j, Weight: 1})
			adj[j] = append(adj[j], core.Edge{To: i, Weight: 1})
		}
	}

	return core.New(ids(n), adj)
}

// Star builds the star on n vertices: vertex 1 joined to each of 2..n.
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	adj := make(map[int64][]core.Edge, n)
	for i := int64(2); i <= int64(n); i++ {
		adj[1] = append(adj[1], core.Edge{To: i, Weight: 1})
		adj[i] = append(adj[i], core.Edge{To: 1, Weight: 1})
	}

	return core.New(ids(n), adj)
}

// Banana builds the banana graph: vertices 1 and 2 joined by m parallel
// unit edges, stored as a single record of multiplicity m.
func Banana(m int64) (*core.Graph, error) {
	if m < 1 {
		return nil, fmt.Errorf("Banana: m=%d: %w", m, ErrBadMultiplicity)
	}
	adj := map[int64][]core.Edge{
		1: {{To: 2, Weight: m}},
		2: {{To: 1, Weight: m}},
	}

	return core.New(ids(2), adj)
}
