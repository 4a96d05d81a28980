// Semi-reduction: the exact linear-algebra half of the reduction engine.
package dhar

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/chipfire/divisor"
	"github.com/katalvlaran/chipfire/ratmat"
)

// SemiReduce returns the semi-reduced candidate of d with respect to v:
// an equivalent divisor whose labels outside v are pulled close to the
// valences, leaving the burning loop only bounded work.
//
// Steps:
//  1. aux[u] = valence(u) − label(u) for u ≠ v; aux[v] = −Σ aux[u], so the
//     vector totals zero — the solvability precondition for the Laplacian,
//     whose rank is |V|−1 on a connected graph.
//  2. Solve L·x = aux for a particular rational solution.
//  3. Truncate each x component to its integer part, then subtract x[v]
//     from every component. The kernel of L is spanned by the all-ones
//     vector, so this is the whole "shift by ±𝟙 until x[v] = 0"
//     normalization collapsed into one exact step.
//  4. Return d + L·x.
//
// The graph must be connected (ErrDisconnected otherwise). After that check
// the solve cannot fail; a failure anyway propagates wrapped
// ratmat.ErrUnsolvable as an invariant violation.
func SemiReduce(d *divisor.Divisor, v int64) (*divisor.Divisor, error) {
	if d == nil {
		return nil, ErrDivisorNil
	}
	g := d.Graph()
	iv, err := g.IndexOf(v)
	if err != nil {
		return nil, err
	}
	if !g.IsConnected() {
		return nil, ErrDisconnected
	}

	n := g.VertexCount()
	labels := d.DenseLabels()

	// Auxiliary vector with total exactly zero.
	aux := ratmat.NewVec(n)
	var total int64
	for i := 0; i < n; i++ {
		if i == iv {
			continue
		}
		val, _ := g.Valence(g.VertexAt(i))
		t := val - labels[i]
		aux[i].SetInt64(t)
		total += t
	}
	aux[iv].SetInt64(-total)

	lap := g.Laplacian()
	x, err := ratmat.SolveRight(lap, aux)
	if err != nil {
		return nil, fmt.Errorf("dhar: semi-reduce solve: %w", err)
	}

	// Truncate toward zero, then normalize against the all-ones kernel so
	// the v-component is exactly zero.
	trunc := make([]*big.Int, n)
	for i, r := range x {
		trunc[i] = new(big.Int).Quo(r.Num(), r.Denom())
	}
	shift := new(big.Int).Set(trunc[iv])
	xr := make([]*big.Rat, n)
	for i := range trunc {
		trunc[i].Sub(trunc[i], shift)
		xr[i] = new(big.Rat).SetInt(trunc[i])
	}

	// Apply the integral adjustment L·x to the labels.
	image, err := ratmat.MatVec(lap, xr)
	if err != nil {
		return nil, fmt.Errorf("dhar: semi-reduce image: %w", err)
	}
	out := make([]int64, n)
	for i := range image {
		// x is integral and L has integer entries, so image[i] is an integer.
		adj := image[i].Num()
		if !adj.IsInt64() {
			return nil, fmt.Errorf("adjustment at index %d: %w", i, ErrOverflow)
		}
		out[i] = labels[i] + adj.Int64()
	}

	return divisor.NewDense(g, out)
}
