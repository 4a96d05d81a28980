// Package divisor defines the Divisor value type and its algebra.
//
// This file declares the sentinel errors, the constructors, accessors, and
// the chip-firing moves. Principality lives in principal.go.
package divisor

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/chipfire/core"
)

// Sentinel errors for divisor construction and algebra.
var (
	// ErrGraphNil is returned when a nil graph is passed to a constructor.
	ErrGraphNil = errors.New("divisor: graph is nil")

	// ErrNilDivisor is returned when a nil divisor operand is supplied.
	ErrNilDivisor = errors.New("divisor: nil divisor operand")

	// ErrLabelMismatch is returned when the label domain is not exactly the
	// graph's vertex set. Construction never proceeds with partial state.
	ErrLabelMismatch = errors.New("divisor: label domain must equal the vertex set")

	// ErrGraphMismatch is returned by Add/Subtract when the operands belong
	// to graphs that are not value-equal. No partial result is produced.
	ErrGraphMismatch = errors.New("divisor: operands belong to different graphs")
)

// NoThreshold disables the lower bound on the distinguished vertex in
// AllButOne, turning it into a plain effective-outside-v check.
const NoThreshold = math.MinInt64

// Divisor is an immutable integer labeling of a graph's vertices.
// The graph reference is shared and read-only; labels are stored densely in
// the graph's canonical vertex order and never mutated after construction.
type Divisor struct {
	graph  *core.Graph
	labels []int64 // canonical order; owned exclusively by this value
}

// New constructs a Divisor from a vertex→label mapping.
// The mapping's domain must be exactly the graph's vertex set; anything less
// or more fails with ErrLabelMismatch.
func New(g *core.Graph, labels map[int64]int64) (*Divisor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if len(labels) != n {
		return nil, fmt.Errorf("%d labels for %d vertices: %w", len(labels), n, ErrLabelMismatch)
	}
	dense := make([]int64, n)
	for v, chips := range labels {
		i, err := g.IndexOf(v)
		if err != nil {
			return nil, fmt.Errorf("label key %d: %w", v, ErrLabelMismatch)
		}
		dense[i] = chips
	}

	// Equal cardinality plus all keys resolving means the domain matches.
	return &Divisor{graph: g, labels: dense}, nil
}

// NewDense constructs a Divisor from labels already in canonical order.
// The slice is copied; its length must equal the vertex count.
func NewDense(g *core.Graph, labels []int64) (*Divisor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(labels) != g.VertexCount() {
		return nil, fmt.Errorf("%d labels for %d vertices: %w", len(labels), g.VertexCount(), ErrLabelMismatch)
	}
	dense := make([]int64, len(labels))
	copy(dense, labels)

	return &Divisor{graph: g, labels: dense}, nil
}

// Zero returns the all-zero divisor on g.
func Zero(g *core.Graph) (*Divisor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &Divisor{graph: g, labels: make([]int64, g.VertexCount())}, nil
}

// Graph returns the shared graph this divisor is defined over.
func (d *Divisor) Graph() *core.Graph { return d.graph }

// Degree returns the sum of all labels. Complexity: O(V).
func (d *Divisor) Degree() int64 {
	var sum int64
	for _, c := range d.labels {
		sum += c
	}

	return sum
}

// Label returns the chip count at vertex v.
func (d *Divisor) Label(v int64) (int64, error) {
	i, err := d.graph.IndexOf(v)
	if err != nil {
		return 0, err
	}

	return d.labels[i], nil
}

// Labels returns the labels as a fresh vertex→chips map.
func (d *Divisor) Labels() map[int64]int64 {
	out := make(map[int64]int64, len(d.labels))
	for i, c := range d.labels {
		out[d.graph.VertexAt(i)] = c
	}

	return out
}

// DenseLabels returns a copy of the labels in canonical order.
func (d *Divisor) DenseLabels() []int64 {
	out := make([]int64, len(d.labels))
	copy(out, d.labels)

	return out
}

// IsEffective reports whether every label is nonnegative.
func (d *Divisor) IsEffective() bool {
	for _, c := range d.labels {
		if c < 0 {
			return false
		}
	}

	return true
}

// Equal reports whether o assigns the same chips to the same vertices over a
// value-equal graph. Canonical orders may differ between the two graphs;
// comparison goes through vertex IDs.
func (d *Divisor) Equal(o *Divisor) bool {
	if o == nil || !d.graph.Equal(o.graph) {
		return false
	}
	for i, c := range d.labels {
		oc, err := o.Label(d.graph.VertexAt(i))
		if err != nil || oc != c {
			return false
		}
	}

	return true
}

// Add returns the pointwise sum d + o as a new Divisor on d's graph.
// The operands must live on value-equal graphs (ErrGraphMismatch).
func (d *Divisor) Add(o *Divisor) (*Divisor, error) { return d.combine(o, +1) }

// Subtract returns the pointwise difference d − o as a new Divisor on d's
// graph. The operands must live on value-equal graphs (ErrGraphMismatch).
func (d *Divisor) Subtract(o *Divisor) (*Divisor, error) { return d.combine(o, -1) }

// combine implements Add/Subtract; sign is +1 or −1.
// Labels are matched by vertex ID so operands built in permuted canonical
// orders still combine correctly.
func (d *Divisor) combine(o *Divisor, sign int64) (*Divisor, error) {
	if o == nil {
		return nil, ErrNilDivisor
	}
	if !d.graph.Equal(o.graph) {
		return nil, ErrGraphMismatch
	}
	out := make([]int64, len(d.labels))
	for i, c := range d.labels {
		oc, _ := o.Label(d.graph.VertexAt(i)) // vertex exists: graphs are equal
		out[i] = c + sign*oc
	}

	return &Divisor{graph: d.graph, labels: out}, nil
}

// ChipFire fires vertex v: v loses its valence, every neighbor gains the
// multiplicity of its connecting edge. Total degree is preserved.
// Returns a new Divisor; d is untouched.
func (d *Divisor) ChipFire(v int64) (*Divisor, error) { return d.fire(v, +1) }

// Borrow applies the inverse move at v: v gains its valence, every neighbor
// pays the multiplicity of its connecting edge. Borrow(v) undoes ChipFire(v).
func (d *Divisor) Borrow(v int64) (*Divisor, error) { return d.fire(v, -1) }

// fire applies the chip-firing move with the given direction.
func (d *Divisor) fire(v int64, sign int64) (*Divisor, error) {
	i, err := d.graph.IndexOf(v)
	if err != nil {
		return nil, err
	}
	val, _ := d.graph.Valence(v)
	edges, _ := d.graph.NeighborEdges(v)

	out := make([]int64, len(d.labels))
	copy(out, d.labels)
	out[i] -= sign * val
	for _, e := range edges {
		j, _ := d.graph.IndexOf(e.To)
		out[j] += sign * e.Weight
	}

	return &Divisor{graph: d.graph, labels: out}, nil
}

// AllButOne reports whether every vertex other than v carries a nonnegative
// label and v's own label is at least threshold. With threshold 1 this is
// the winning-divisor acceptance test; with NoThreshold the bound on v is
// dropped entirely.
func (d *Divisor) AllButOne(v int64, threshold int64) (bool, error) {
	iv, err := d.graph.IndexOf(v)
	if err != nil {
		return false, err
	}
	for i, c := range d.labels {
		if i == iv {
			continue
		}
		if c < 0 {
			return false, nil
		}
	}
	if threshold == NoThreshold {
		return true, nil
	}

	return d.labels[iv] >= threshold, nil
}
