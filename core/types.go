// Package core defines the central Graph and Edge types and the validating
// constructors. A Graph is immutable after construction; all derived data
// (valences, edge count, Laplacian) is computed once and shared safely.
//
// This file declares Edge, Graph, sentinel errors, and the New/NewSimple
// constructors with their normalization and validation passes.
package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/chipfire/ratmat"
)

// Sentinel errors for core graph construction and queries.
var (
	// ErrNoVertices indicates an empty vertex list was supplied.
	ErrNoVertices = errors.New("core: graph needs at least one vertex")

	// ErrBadVertexID indicates a vertex ID that is not a positive integer.
	ErrBadVertexID = errors.New("core: vertex ID must be positive")

	// ErrDuplicateVertex indicates the same vertex ID occurs twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrUnknownVertex indicates adjacency referenced a vertex outside the set.
	ErrUnknownVertex = errors.New("core: unknown vertex in adjacency")

	// ErrBadWeight indicates an edge multiplicity below 1.
	ErrBadWeight = errors.New("core: edge multiplicity must be >= 1")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrAsymmetric indicates the adjacency records are not symmetric.
	// Edge counts, genus and the Laplacian all depend on symmetry, so it is
	// enforced here instead of assumed downstream.
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge records one weighted adjacency: a neighbor vertex ID and the
// multiplicity (number of parallel unit edges) of the connection.
type Edge struct {
	// To is the neighbor vertex ID.
	To int64

	// Weight is the edge multiplicity, always >= 1 after construction.
	Weight int64
}

// Graph is an immutable weighted undirected multigraph.
//
// The vertex list keeps its construction order; that order is the canonical
// order for divisor label vectors and Laplacian rows/columns. Adjacency rows
// are merged (parallel records summed) and sorted by neighbor ID, which makes
// iteration deterministic and value equality a linear scan.
type Graph struct {
	vertices []int64       // canonical vertex order (construction order)
	index    map[int64]int // vertex ID → canonical index
	adj      [][]Edge      // merged, sorted adjacency per canonical index
	valence  []int64       // sum of incident multiplicities per canonical index
	edges    int           // number of distinct unordered adjacent pairs

	lapOnce sync.Once     // guards the lazy Laplacian build
	lap     *ratmat.Dense // cached Laplacian, canonical order
}

// New constructs a validated immutable Graph from an ordered vertex list and
// an adjacency mapping. Vertices absent from adj simply have no edges.
//
// Normalization: duplicate records for the same unordered pair within one
// list are merged by summing multiplicities, then each row is sorted by
// neighbor ID. Symmetry of the merged records is then enforced: the merged
// multiplicity of u→v must equal that of v→u, in both directions.
//
// Complexity: O(V + E·log E).
func New(vertices []int64, adj map[int64][]Edge) (*Graph, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	// Canonical order and index; reject non-positive and duplicate IDs.
	index := make(map[int64]int, len(vertices))
	order := make([]int64, len(vertices))
	for i, v := range vertices {
		if v <= 0 {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrBadVertexID)
		}
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrDuplicateVertex)
		}
		index[v] = i
		order[i] = v
	}

	// Reject adjacency keys outside the vertex set.
	for u := range adj {
		if _, ok := index[u]; !ok {
			return nil, fmt.Errorf("adjacency key %d: %w", u, ErrUnknownVertex)
		}
	}

	// Normalize each row: validate records, merge duplicates, sort by To.
	rows := make([][]Edge, len(vertices))
	for i, u := range order {
		merged := make(map[int64]int64)
		for _, e := range adj[u] {
			if _, ok := index[e.To]; !ok {
				return nil, fmt.Errorf("edge %d-%d: %w", u, e.To, ErrUnknownVertex)
			}
			if e.Weight < 1 {
				return nil, fmt.Errorf("edge %d-%d weight %d: %w", u, e.To, e.Weight, ErrBadWeight)
			}
			if e.To == u {
				return nil, fmt.Errorf("edge %d-%d: %w", u, e.To, ErrSelfLoop)
			}
			merged[e.To] += e.Weight
		}
		row := make([]Edge, 0, len(merged))
		for to, w := range merged {
			row = append(row, Edge{To: to, Weight: w})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].To < row[b].To })
		rows[i] = row
	}

	// Enforce symmetry on the merged records: u→v and v→u must carry the
	// same multiplicity, and neither side may be missing.
	for i, u := range order {
		for _, e := range rows[i] {
			back, ok := findEdge(rows[index[e.To]], u)
			if !ok || back.Weight != e.Weight {
				return nil, fmt.Errorf("edge %d-%d: %w", u, e.To, ErrAsymmetric)
			}
		}
	}

	// Derived data: valences and the distinct-pair edge count.
	valence := make([]int64, len(vertices))
	records := 0
	for i := range rows {
		records += len(rows[i])
		for _, e := range rows[i] {
			valence[i] += e.Weight
		}
	}

	return &Graph{
		vertices: order,
		index:    index,
		adj:      rows,
		valence:  valence,
		edges:    records / 2, // exact under the symmetry invariant above
	}, nil
}

// NewSimple constructs a Graph from bare neighbor lists, defaulting every
// edge multiplicity to 1 (the normalization step of the model constructor).
func NewSimple(vertices []int64, neighbors map[int64][]int64) (*Graph, error) {
	adj := make(map[int64][]Edge, len(neighbors))
	for u, ns := range neighbors {
		row := make([]Edge, len(ns))
		for i, v := range ns {
			row[i] = Edge{To: v, Weight: 1}
		}
		adj[u] = row
	}

	return New(vertices, adj)
}

// findEdge locates the record pointing at `to` inside a sorted adjacency row.
func findEdge(row []Edge, to int64) (Edge, bool) {
	lo := sort.Search(len(row), func(i int) bool { return row[i].To >= to })
	if lo < len(row) && row[lo].To == to {
		return row[lo], true
	}

	return Edge{}, false
}
