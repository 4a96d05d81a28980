package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/core"
)

// triangle builds the 3-cycle on vertices 1, 2, 3 with unit edges.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewSimple(
		[]int64{1, 2, 3},
		map[int64][]int64{1: {2, 3}, 2: {1, 3}, 3: {1, 2}},
	)
	require.NoError(t, err)

	return g
}

func TestNew_Validation(t *testing.T) {
	sym := func(u, v, w int64) map[int64][]core.Edge {
		return map[int64][]core.Edge{
			u: {{To: v, Weight: w}},
			v: {{To: u, Weight: w}},
		}
	}

	tests := []struct {
		name     string
		vertices []int64
		adj      map[int64][]core.Edge
		want     error
	}{
		{"empty vertex list", nil, nil, core.ErrNoVertices},
		{"zero vertex ID", []int64{0}, nil, core.ErrBadVertexID},
		{"negative vertex ID", []int64{-3}, nil, core.ErrBadVertexID},
		{"duplicate vertex ID", []int64{1, 2, 1}, nil, core.ErrDuplicateVertex},
		{"unknown adjacency key", []int64{1, 2}, map[int64][]core.Edge{9: {{To: 1, Weight: 1}}}, core.ErrUnknownVertex},
		{"unknown neighbor", []int64{1, 2}, map[int64][]core.Edge{1: {{To: 9, Weight: 1}}}, core.ErrUnknownVertex},
		{"zero weight", []int64{1, 2}, sym(1, 2, 0), core.ErrBadWeight},
		{"negative weight", []int64{1, 2}, sym(1, 2, -1), core.ErrBadWeight},
		{"self-loop", []int64{1}, map[int64][]core.Edge{1: {{To: 1, Weight: 1}}}, core.ErrSelfLoop},
		{"missing reverse record", []int64{1, 2}, map[int64][]core.Edge{1: {{To: 2, Weight: 1}}}, core.ErrAsymmetric},
		{"weight mismatch", []int64{1, 2}, map[int64][]core.Edge{
			1: {{To: 2, Weight: 2}},
			2: {{To: 1, Weight: 3}},
		}, core.ErrAsymmetric},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.New(tc.vertices, tc.adj)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_IsolatedVertexAllowed(t *testing.T) {
	g, err := core.New([]int64{7}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.IsConnected())
}

// TestNew_MergesDuplicateRecords checks that repeated records for one pair
// collapse into a single record with summed multiplicity — and that symmetry
// is judged on the merged rows, so 2+1 on one side matches a plain 3.
func TestNew_MergesDuplicateRecords(t *testing.T) {
	g, err := core.New([]int64{1, 2}, map[int64][]core.Edge{
		1: {{To: 2, Weight: 2}, {To: 2, Weight: 1}},
		2: {{To: 1, Weight: 3}},
	})
	require.NoError(t, err)

	row, err := g.NeighborEdges(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{To: 2, Weight: 3}}, row)
	assert.Equal(t, 1, g.EdgeCount(), "one distinct pair regardless of multiplicity")

	val, err := g.Valence(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), val)
}

func TestGraph_CountsAndGenus(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1, g.Genus())

	k4, err := core.NewSimple([]int64{1, 2, 3, 4}, map[int64][]int64{
		1: {2, 3, 4}, 2: {1, 3, 4}, 3: {1, 2, 4}, 4: {1, 2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, k4.EdgeCount())
	assert.Equal(t, 3, k4.Genus())
}

func TestGraph_Queries(t *testing.T) {
	g := triangle(t)

	assert.True(t, g.HasVertex(2))
	assert.False(t, g.HasVertex(9))

	i, err := g.IndexOf(3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, int64(3), g.VertexAt(i))

	_, err = g.IndexOf(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.True(t, g.Adjacent(1, 2))
	assert.True(t, g.Adjacent(2, 1))
	assert.False(t, g.Adjacent(1, 9))

	val, err := g.Valence(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)

	_, err = g.Valence(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborEdges(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_CopySemantics(t *testing.T) {
	g := triangle(t)

	vs := g.Vertices()
	assert.Equal(t, []int64{1, 2, 3}, vs)
	vs[0] = 99
	assert.Equal(t, []int64{1, 2, 3}, g.Vertices(), "Vertices must return a copy")

	row, err := g.NeighborEdges(1)
	require.NoError(t, err)
	row[0].Weight = 99
	again, _ := g.NeighborEdges(1)
	assert.Equal(t, int64(1), again[0].Weight, "NeighborEdges must return a copy")
}

func TestGraph_Equal(t *testing.T) {
	g := triangle(t)

	// Same graph, permuted vertex order and permuted neighbor lists.
	perm, err := core.NewSimple(
		[]int64{3, 1, 2},
		map[int64][]int64{3: {2, 1}, 1: {3, 2}, 2: {3, 1}},
	)
	require.NoError(t, err)
	assert.True(t, g.Equal(perm))
	assert.True(t, perm.Equal(g))

	// Different weight on one edge.
	heavier, err := core.New([]int64{1, 2, 3}, map[int64][]core.Edge{
		1: {{To: 2, Weight: 2}, {To: 3, Weight: 1}},
		2: {{To: 1, Weight: 2}, {To: 3, Weight: 1}},
		3: {{To: 1, Weight: 1}, {To: 2, Weight: 1}},
	})
	require.NoError(t, err)
	assert.False(t, g.Equal(heavier))

	// Different vertex set.
	other, err := core.NewSimple([]int64{1, 2, 4}, map[int64][]int64{1: {2, 4}, 2: {1, 4}, 4: {1, 2}})
	require.NoError(t, err)
	assert.False(t, g.Equal(other))

	assert.False(t, g.Equal(nil))
	assert.True(t, g.Equal(g))
}

func TestGraph_Laplacian(t *testing.T) {
	g := triangle(t)
	lap := g.Laplacian()

	want := [][]string{
		{"2", "-1", "-1"},
		{"-1", "2", "-1"},
		{"-1", "-1", "2"},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := lap.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[i][j], v.RatString(), "L[%d][%d]", i, j)
		}
	}
}

// TestGraph_LaplacianIsCopy mutates a returned Laplacian and checks that the
// cached matrix stays intact.
func TestGraph_LaplacianIsCopy(t *testing.T) {
	g := triangle(t)

	first := g.Laplacian()
	v, _ := first.At(0, 0)
	v.SetInt64(42) // At already copies; belt and braces
	require.NoError(t, first.Set(0, 0, v))

	second := g.Laplacian()
	got, _ := second.At(0, 0)
	assert.Equal(t, "2", got.RatString())
}

func TestGraph_LaplacianWeighted(t *testing.T) {
	g, err := core.New([]int64{1, 2}, map[int64][]core.Edge{
		1: {{To: 2, Weight: 3}},
		2: {{To: 1, Weight: 3}},
	})
	require.NoError(t, err)

	lap := g.Laplacian()
	diag, _ := lap.At(0, 0)
	off, _ := lap.At(0, 1)
	assert.Equal(t, "3", diag.RatString())
	assert.Equal(t, "-3", off.RatString())
}

func TestGraph_IsConnected(t *testing.T) {
	g := triangle(t)
	assert.True(t, g.IsConnected())

	// Two disjoint unit edges: 1-2 and 3-4.
	split, err := core.NewSimple([]int64{1, 2, 3, 4}, map[int64][]int64{
		1: {2}, 2: {1}, 3: {4}, 4: {3},
	})
	require.NoError(t, err)
	assert.False(t, split.IsConnected())
}
