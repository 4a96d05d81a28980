// Full reduction: Dhar's burning algorithm iterated to the v-reduced form.
package dhar

import (
	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// autoIterationCap returns the default defensive cap for n vertices.
// Generous compared to the theoretical bound; it only exists to turn
// non-termination on malformed input into a reported error.
func autoIterationCap(n int) int { return 10*n*n + 64 }

// neighbor is a prefetched adjacency record in canonical-index space.
type neighbor struct {
	idx int   // canonical index of the neighbor
	w   int64 // edge multiplicity
}

// burner owns the transient state of one reduction run: prefetched
// index-space adjacency plus dense burn arrays reused across iterations.
type burner struct {
	n       int
	adj     [][]neighbor
	valence []int64
	burnt   []bool
	fire    []int64 // incident on-fire multiplicity per unburnt vertex
}

// newBurner prefetches g's adjacency into canonical-index arrays once, so
// the repeated fixpoint scans run without ID lookups.
func newBurner(g *core.Graph) *burner {
	n := g.VertexCount()
	b := &burner{
		n:       n,
		adj:     make([][]neighbor, n),
		valence: make([]int64, n),
		burnt:   make([]bool, n),
		fire:    make([]int64, n),
	}
	for i := 0; i < n; i++ {
		v := g.VertexAt(i)
		b.valence[i], _ = g.Valence(v)
		edges, _ := g.NeighborEdges(v)
		row := make([]neighbor, len(edges))
		for k, e := range edges {
			j, _ := g.IndexOf(e.To)
			row[k] = neighbor{idx: j, w: e.Weight}
		}
		b.adj[i] = row
	}

	return b
}

// burn runs the burning fixpoint for the given labels: v burns first and
// ignites its edges; an unburnt u burns once its incident on-fire
// multiplicity exceeds labels[u]; scans repeat until a pass burns nothing.
// Returns the number of burnt vertices; burn state stays in b for the
// caller to inspect.
func (b *burner) burn(labels []int64, iv int) int {
	for i := 0; i < b.n; i++ {
		b.burnt[i] = false
		b.fire[i] = 0
	}
	b.burnt[iv] = true
	count := 1
	for _, nb := range b.adj[iv] {
		b.fire[nb.idx] += nb.w
	}

	changed := true
	for changed {
		changed = false
		for u := 0; u < b.n; u++ {
			// Dhar's criterion is a strict excess: fire[u] > labels[u].
			if b.burnt[u] || b.fire[u] <= labels[u] {
				continue
			}
			b.burnt[u] = true
			count++
			changed = true
			for _, nb := range b.adj[u] {
				if !b.burnt[nb.idx] {
					b.fire[nb.idx] += nb.w
				}
			}
		}
	}

	return count
}

// refire fires every unburnt vertex simultaneously from the same labels and
// returns the resulting labels. Burnt neighbors of fired vertices receive
// chips like any other neighbor; only the firing set is restricted.
func (b *burner) refire(labels []int64) []int64 {
	next := make([]int64, b.n)
	copy(next, labels)
	for u := 0; u < b.n; u++ {
		if b.burnt[u] {
			continue
		}
		next[u] -= b.valence[u]
		for _, nb := range b.adj[u] {
			next[nb.idx] += nb.w
		}
	}

	return next
}

// Reduce computes the unique v-reduced divisor equivalent to d.
//
// The result is effective everywhere except possibly at v and cannot be
// simplified further toward v under the burning criterion; its total degree
// equals d's. Reduce(Reduce(d, v), v) equals Reduce(d, v).
//
// Returns ErrDisconnected for a disconnected graph, ErrIterationLimit if
// the defensive cap fires, and the context's error on cancellation.
func Reduce(d *divisor.Divisor, v int64, opts ...Option) (*divisor.Divisor, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	cur, err := SemiReduce(d, v)
	if err != nil {
		return nil, err
	}
	g := cur.Graph()
	iv, _ := g.IndexOf(v) // validated by SemiReduce

	b := newBurner(g)
	labels := cur.DenseLabels()
	limit := o.MaxIterations
	if limit == 0 {
		limit = autoIterationCap(b.n)
	}

	for iter := 0; ; iter++ {
		if iter >= limit {
			return nil, ErrIterationLimit
		}
		// cancellation check (once per refiring iteration)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if b.burn(labels, iv) == b.n {
			// The fire consumed the graph: labels are v-reduced.
			return divisor.NewDense(g, labels)
		}
		labels = b.refire(labels)
	}
}
