// Package dhar: tunable options and error definitions for the reduction
// engine.
package dhar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for reduction.
var (
	// ErrDivisorNil is returned if a nil divisor is passed.
	ErrDivisorNil = errors.New("dhar: divisor is nil")

	// ErrDisconnected is returned when the divisor's graph is not connected.
	// Semi-reduction is only defined on connected graphs; disconnected input
	// is rejected up front instead of producing a wrong answer.
	ErrDisconnected = errors.New("dhar: graph is not connected")

	// ErrIterationLimit is returned when the refiring loop exceeds its
	// defensive cap. On valid connected input this cannot happen; treat it
	// as an internal invariant violation, not a retryable condition.
	ErrIterationLimit = errors.New("dhar: iteration limit exceeded")

	// ErrOverflow is returned when a reduction step would leave the int64
	// label range.
	ErrOverflow = errors.New("dhar: label overflow")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dhar: invalid option supplied")
)

// Option configures Reduce via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Reduce runs.
type Option func(*Options)

// Options holds parameters controlling the reduction loop.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per refiring
	// iteration.
	Ctx context.Context

	// MaxIterations caps the outer refiring loop. Zero selects the default
	// cap of 10·V²+64.
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: context.Background()
// and the automatic iteration cap.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: 0,
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

// WithMaxIterations overrides the defensive cap on refiring iterations.
//
//	n > 0: cap at n iterations
//	n == 0: automatic cap (10·V²+64)
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
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
