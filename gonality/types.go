// Package gonality: tunable options, result type, and error definitions.
package gonality

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/chipfire/dhar"
)

// Sentinel errors for the gonality search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("gonality: graph is nil")

	// ErrDisconnected is returned for graphs that are not connected.
	ErrDisconnected = errors.New("gonality: graph is not connected")

	// ErrDegreeLimit is returned when every degree up to the cap was
	// exhausted without a winning divisor. For a connected graph the
	// gonality never exceeds |V|−1, so hitting the default cap signals
	// malformed input rather than a large answer.
	ErrDegreeLimit = errors.New("gonality: degree limit exhausted without witness")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gonality: invalid option supplied")
)

// Result carries the outcome of a successful search: the gonality and one
// witness divisor of that degree.
type Result struct {
	// Degree is the gonality of the graph.
	Degree int64

	// Labels is a winning divisor of that degree, as vertex → chips.
	Labels map[int64]int64
}

// Option configures Search via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Search runs.
type Option func(*Options)

// Options holds parameters controlling the search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked between candidates.
	Ctx context.Context

	// MaxDegree caps iterative deepening. Zero selects the default cap |V|.
	MaxDegree int

	// Workers is the number of goroutines testing candidates of one degree
	// level concurrently. 1 (the default) keeps the search sequential.
	Workers int

	// ReduceOpts are passed through to every dhar.Reduce call.
	ReduceOpts []dhar.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: context.Background(),
// automatic degree cap, sequential execution.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDegree: 0,
		Workers:   1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDegree overrides the defensive cap on the deepening degree.
//
//	k > 0: search degrees 1..k
//	k == 0: automatic cap (|V|)
//	k < 0: invalid option → ErrOptionViolation
func WithMaxDegree(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxDegree cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxDegree = k
	}
}

// WithParallelism sets the number of concurrent candidate testers.
//
//	w >= 1: use w workers per degree level
//	w < 1: invalid option → ErrOptionViolation
func WithParallelism(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithReduceOptions forwards options to every dhar.Reduce invocation.
func WithReduceOptions(opts ...dhar.Option) Option {
	return func(o *Options) {
		o.ReduceOpts = append(o.ReduceOpts, opts...)
	}
}

// resolve folds opts over DefaultOptions and reports any recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
