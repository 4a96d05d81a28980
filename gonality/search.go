// Package gonality drives the iterative-deepening gonality search over a
// connected core.Graph, using the dhar reduction engine as its oracle.
package gonality

import (
	"context"
	"sync"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/dhar"
	"github.com/katalvlaran/chipfire/divisor"
)

// Search returns the gonality of g together with a witness divisor.
//
// Degrees are explored in increasing order and each degree level is resolved
// completely before escalation, so the returned degree is minimal. See the
// package documentation for the winning criterion and cost profile.
func Search(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !g.IsConnected() {
		return nil, ErrDisconnected
	}

	n := g.VertexCount()
	maxDegree := o.MaxDegree
	if maxDegree == 0 {
		maxDegree = n
	}

	for k := 1; k <= maxDegree; k++ {
		var witness []int64
		if o.Workers > 1 {
			witness, err = searchLevelParallel(g, k, &o)
		} else {
			witness, err = searchLevel(g, k, &o)
		}
		if err != nil {
			return nil, err
		}
		if witness != nil {
			d, _ := divisor.NewDense(g, witness)
			return &Result{Degree: int64(k), Labels: d.Labels()}, nil
		}
	}

	return nil, ErrDegreeLimit
}

// Gonality is the convenience form of Search, returning the gonality and a
// witness labeling directly.
func Gonality(g *core.Graph, opts ...Option) (int64, map[int64]int64, error) {
	res, err := Search(g, opts...)
	if err != nil {
		return 0, nil, err
	}

	return res.Degree, res.Labels, nil
}

// wins reports whether the candidate labels form a winning divisor: for
// every vertex v, the v-reduced form is effective outside v with at least
// one chip at v.
func wins(g *core.Graph, labels []int64, o *Options) (bool, error) {
	d, err := divisor.NewDense(g, labels)
	if err != nil {
		return false, err
	}
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		v := g.VertexAt(i)
		reduced, err := dhar.Reduce(d, v, o.ReduceOpts...)
		if err != nil {
			return false, err
		}
		ok, err := reduced.AllButOne(v, 1)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// searchLevel tests every degree-k candidate sequentially and returns the
// first winning labeling, or nil when the level holds no witness.
func searchLevel(g *core.Graph, k int, o *Options) ([]int64, error) {
	n := g.VertexCount()
	enum := newMultisets(n, k)
	for {
		// cancellation check (once per candidate)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		comb, ok := enum.next()
		if !ok {
			return nil, nil
		}
		labels := labelsFor(comb, n)
		won, err := wins(g, labels, o)
		if err != nil {
			return nil, err
		}
		if won {
			return labels, nil
		}
	}
}

// searchLevelParallel spreads the candidates of one degree level over
// o.Workers goroutines. Candidates carry their enumeration sequence number;
// when several workers find witnesses, the smallest sequence number wins, so
// the result matches the sequential search. The producer stops early once a
// witness or an error is known, but a "no witness" verdict is only reached
// after the full level has been enumerated and tested.
func searchLevelParallel(g *core.Graph, k int, o *Options) ([]int64, error) {
	n := g.VertexCount()

	type candidate struct {
		seq    int
		labels []int64
	}

	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	candCh := make(chan candidate)
	go func() {
		defer close(candCh)
		enum := newMultisets(n, k)
		seq := 0
		for {
			comb, ok := enum.next()
			if !ok {
				return
			}
			c := candidate{seq: seq, labels: labelsFor(comb, n)}
			seq++
			select {
			case candCh <- c:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		mu       sync.Mutex
		bestSeq  = -1
		best     []int64
		firstErr error
	)

	var wg sync.WaitGroup
	wg.Add(o.Workers)
	for w := 0; w < o.Workers; w++ {
		go func() {
			defer wg.Done()
			for c := range candCh {
				won, err := wins(g, c.labels, o)
				mu.Lock()
				switch {
				case err != nil:
					if firstErr == nil {
						firstErr = err
						cancel()
					}
				case won && (bestSeq < 0 || c.seq < bestSeq):
					bestSeq = c.seq
					best = c.labels
					cancel() // later candidates cannot beat an earlier seq already drained
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	return best, nil
}
