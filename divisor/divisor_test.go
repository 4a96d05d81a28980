package divisor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewSimple(
		[]int64{1, 2, 3},
		map[int64][]int64{1: {2, 3}, 2: {1, 3}, 3: {1, 2}},
	)
	require.NoError(t, err)

	return g
}

func banana(t *testing.T, m int64) *core.Graph {
	t.Helper()
	g, err := core.New([]int64{1, 2}, map[int64][]core.Edge{
		1: {{To: 2, Weight: m}},
		2: {{To: 1, Weight: m}},
	})
	require.NoError(t, err)

	return g
}

func mk(t *testing.T, g *core.Graph, labels map[int64]int64) *divisor.Divisor {
	t.Helper()
	d, err := divisor.New(g, labels)
	require.NoError(t, err)

	return d
}

func TestNew_Validation(t *testing.T) {
	g := triangle(t)

	_, err := divisor.New(nil, map[int64]int64{1: 0})
	assert.ErrorIs(t, err, divisor.ErrGraphNil)

	// Missing vertex 3.
	_, err = divisor.New(g, map[int64]int64{1: 0, 2: 0})
	assert.ErrorIs(t, err, divisor.ErrLabelMismatch)

	// Right cardinality, wrong domain (9 is not a vertex).
	_, err = divisor.New(g, map[int64]int64{1: 0, 2: 0, 9: 0})
	assert.ErrorIs(t, err, divisor.ErrLabelMismatch)

	// Extra key on top of the full domain.
	_, err = divisor.New(g, map[int64]int64{1: 0, 2: 0, 3: 0, 9: 0})
	assert.ErrorIs(t, err, divisor.ErrLabelMismatch)
}

func TestNewDense_Validation(t *testing.T) {
	g := triangle(t)

	_, err := divisor.NewDense(nil, []int64{0})
	assert.ErrorIs(t, err, divisor.ErrGraphNil)

	_, err = divisor.NewDense(g, []int64{1, 2})
	assert.ErrorIs(t, err, divisor.ErrLabelMismatch)
}

func TestNewDense_CopiesInput(t *testing.T) {
	g := triangle(t)
	labels := []int64{1, 2, 3}
	d, err := divisor.NewDense(g, labels)
	require.NoError(t, err)

	labels[0] = 99
	assert.Equal(t, []int64{1, 2, 3}, d.DenseLabels())
}

func TestAccessors(t *testing.T) {
	g := triangle(t)
	d := mk(t, g, map[int64]int64{1: 2, 2: -1, 3: 0})

	assert.Equal(t, int64(1), d.Degree())
	assert.Same(t, g, d.Graph())

	c, err := d.Label(2)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), c)

	_, err = d.Label(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Equal(t, map[int64]int64{1: 2, 2: -1, 3: 0}, d.Labels())
	assert.Equal(t, []int64{2, -1, 0}, d.DenseLabels())

	assert.False(t, d.IsEffective())
	assert.True(t, mk(t, g, map[int64]int64{1: 0, 2: 0, 3: 1}).IsEffective())

	z, err := divisor.Zero(g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), z.Degree())
	assert.True(t, z.IsEffective())
}

func TestDenseLabels_IsCopy(t *testing.T) {
	g := triangle(t)
	d := mk(t, g, map[int64]int64{1: 1, 2: 0, 3: 0})

	out := d.DenseLabels()
	out[0] = 42
	assert.Equal(t, []int64{1, 0, 0}, d.DenseLabels())
}

func TestAddSubtract(t *testing.T) {
	g := triangle(t)
	a := mk(t, g, map[int64]int64{1: 2, 2: 0, 3: -1})
	b := mk(t, g, map[int64]int64{1: 1, 2: 3, 3: 1})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 3, 2: 3, 3: 0}, sum.Labels())
	assert.Equal(t, a.Degree()+b.Degree(), sum.Degree())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 1, 2: -3, 3: -2}, diff.Labels())

	// Operands are untouched.
	assert.Equal(t, map[int64]int64{1: 2, 2: 0, 3: -1}, a.Labels())
}

// TestAdd_PermutedCanonicalOrders combines divisors whose graphs were built
// with different vertex orders. Matching goes by vertex ID, not by position.
func TestAdd_PermutedCanonicalOrders(t *testing.T) {
	a := mk(t, triangle(t), map[int64]int64{1: 1, 2: 2, 3: 3})

	perm, err := core.NewSimple(
		[]int64{3, 2, 1},
		map[int64][]int64{3: {1, 2}, 2: {1, 3}, 1: {2, 3}},
	)
	require.NoError(t, err)
	b := mk(t, perm, map[int64]int64{1: 10, 2: 20, 3: 30})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 11, 2: 22, 3: 33}, sum.Labels())
}

func TestAddSubtract_Errors(t *testing.T) {
	g := triangle(t)
	a := mk(t, g, map[int64]int64{1: 0, 2: 0, 3: 0})

	_, err := a.Add(nil)
	assert.ErrorIs(t, err, divisor.ErrNilDivisor)

	other := mk(t, banana(t, 2), map[int64]int64{1: 0, 2: 0})
	_, err = a.Add(other)
	assert.ErrorIs(t, err, divisor.ErrGraphMismatch)
	_, err = a.Subtract(other)
	assert.ErrorIs(t, err, divisor.ErrGraphMismatch)
}

func TestEqual(t *testing.T) {
	g := triangle(t)
	a := mk(t, g, map[int64]int64{1: 1, 2: 0, 3: 2})

	assert.True(t, a.Equal(mk(t, g, map[int64]int64{1: 1, 2: 0, 3: 2})))
	assert.False(t, a.Equal(mk(t, g, map[int64]int64{1: 1, 2: 2, 3: 0})))
	assert.False(t, a.Equal(nil))

	perm, err := core.NewSimple(
		[]int64{2, 3, 1},
		map[int64][]int64{1: {2, 3}, 2: {1, 3}, 3: {1, 2}},
	)
	require.NoError(t, err)
	assert.True(t, a.Equal(mk(t, perm, map[int64]int64{1: 1, 2: 0, 3: 2})),
		"value-equal graphs with permuted canonical orders still compare by vertex ID")
}

func TestChipFire_Triangle(t *testing.T) {
	g := triangle(t)
	d := mk(t, g, map[int64]int64{1: 2, 2: 0, 3: 0})

	fired, err := d.ChipFire(1)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 0, 2: 1, 3: 1}, fired.Labels())
	assert.Equal(t, d.Degree(), fired.Degree(), "chip-firing preserves degree")
	assert.Equal(t, map[int64]int64{1: 2, 2: 0, 3: 0}, d.Labels(), "receiver untouched")
}

func TestChipFire_WeightedEdges(t *testing.T) {
	g := banana(t, 3)
	d := mk(t, g, map[int64]int64{1: 1, 2: 0})

	fired, err := d.ChipFire(1)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: -2, 2: 3}, fired.Labels())
}

func TestBorrow_UndoesChipFire(t *testing.T) {
	g := triangle(t)
	d := mk(t, g, map[int64]int64{1: 5, 2: -1, 3: 0})

	fired, err := d.ChipFire(2)
	require.NoError(t, err)
	back, err := fired.Borrow(2)
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestFire_UnknownVertex(t *testing.T) {
	g := triangle(t)
	d := mk(t, g, map[int64]int64{1: 0, 2: 0, 3: 0})

	_, err := d.ChipFire(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = d.Borrow(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAllButOne(t *testing.T) {
	g := triangle(t)
	d := mk(t, g, map[int64]int64{1: 0, 2: 1, 3: 2})

	ok, err := d.AllButOne(1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "vertex 1 is below threshold 1")

	ok, err = d.AllButOne(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.AllButOne(1, divisor.NoThreshold)
	require.NoError(t, err)
	assert.True(t, ok)

	// Negative label at v is tolerated only without a threshold.
	neg := mk(t, g, map[int64]int64{1: -5, 2: 0, 3: 0})
	ok, err = neg.AllButOne(1, divisor.NoThreshold)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = neg.AllButOne(1, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// Negative label elsewhere always fails.
	ok, err = neg.AllButOne(2, divisor.NoThreshold)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = d.AllButOne(9, 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestIsPrincipal(t *testing.T) {
	g := triangle(t)

	z, err := divisor.Zero(g)
	require.NoError(t, err)
	ok, err := z.IsPrincipal()
	require.NoError(t, err)
	assert.True(t, ok, "zero divisor is principal")

	// Firing from zero lands exactly in the Laplacian image.
	fired, err := z.ChipFire(1)
	require.NoError(t, err)
	ok, err = fired.IsPrincipal()
	require.NoError(t, err)
	assert.True(t, ok)

	// Nonzero degree can never be principal.
	chip := mk(t, g, map[int64]int64{1: 1, 2: 0, 3: 0})
	ok, err = chip.IsPrincipal()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsPrincipal_NegativeDegree(t *testing.T) {
	g := triangle(t)
	d := mk(t, g, map[int64]int64{1: -2, 2: 0, 3: 0})

	ok, err := d.IsPrincipal()
	require.NoError(t, err)
	assert.False(t, ok, "negative degree is never principal")
}
