// SPDX-License-Identifier: MIT

package algorithms

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// Defaults applied by DefaultOptions.
const (
	// DefaultMaxIterations of 0 means "run to convergence".
	DefaultMaxIterations = 0
	// DefaultMaxDepth of 0 disables the BFS depth limit.
	DefaultMaxDepth = 0
)

// Option configures an algorithm run via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when the algorithm runs.
type Option func(*Options)

// Options holds parameters and callbacks shared by all algorithms.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Log receives V(1) progress records and is passed on to kernels.
	Log logr.Logger

	// MaxIterations, if > 0, caps the number of relaxation rounds of
	// SSSP and ConnectedComponents.
	MaxIterations int

	// MaxDepth, if > 0, stops BFS expansion after this depth. Vertices at
	// exactly MaxDepth are still reported.
	MaxDepth int

	// OnLevel is called once per BFS level with the level depth and the
	// frontier size, before the frontier is expanded.
	OnLevel func(depth, frontier int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - logr.Discard()
//   - no iteration cap, no depth limit
//   - no-op OnLevel hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Log:           logr.Discard(),
		MaxIterations: DefaultMaxIterations,
		MaxDepth:      DefaultMaxDepth,
		OnLevel:       func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes progress logging to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Log = l }
}

// WithMaxIterations caps relaxation rounds.
//
//	k > 0: at most k rounds
//	k == 0: run to convergence
//	k < 0: invalid option → ErrOptionViolation
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxIterations = k
	}
}

// WithMaxDepth stops BFS at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// OnLevel registers a per-level BFS callback. Nil is ignored.
func OnLevel(fn func(depth, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// resolve applies opts over DefaultOptions and reports the first recorded
// option error.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// cancelled reports ctx.Err() wrapped with the algorithm name.
func (o Options) cancelled(method string) error {
	select {
	case <-o.Ctx.Done():
		return fmt.Errorf("%s: %w", method, o.Ctx.Err())
	default:
		return nil
	}
}
