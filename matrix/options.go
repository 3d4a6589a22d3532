// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the recursive multipliers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors; invalid values are recorded and surfaced as
//     ErrOptionViolation by MultiplyContext (no panics),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: the combination order of quadrant products never
//     depends on scheduling, so parallel and sequential runs agree bit for bit.
//   - No global state: every call tree owns its own worker budget.
package matrix

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the smallest sub-problem side that is forked
	// onto helper goroutines. Smaller splits recurse sequentially because
	// scheduling would dominate the O(n³) work.
	DefaultParallelThreshold = 64

	// DefaultParallel leaves parallel recursion off; Multiply is purely sequential.
	DefaultParallel = false
)

// DefaultMaxWorkers is the helper-goroutine budget per call tree when parallel
// recursion is enabled and no explicit bound is given.
func DefaultMaxWorkers() int { return runtime.GOMAXPROCS(0) }

// Option configures MultiplyContext via functional arguments.
type Option func(*Options)

// Options holds the resolved configuration of one multiplication call.
type Options struct {
	// Parallel enables forking of sub-products onto helper goroutines.
	Parallel bool

	// ParallelThreshold is the minimum sub-problem side that is forked.
	ParallelThreshold int

	// MaxWorkers bounds the number of helper goroutines alive at once across
	// the whole call tree. Branches that find no free slot run inline.
	MaxWorkers int

	// Logger receives debug records for top-level calls; never nil after gathering.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the zero-configuration behavior:
//   - sequential recursion,
//   - threshold DefaultParallelThreshold,
//   - MaxWorkers = GOMAXPROCS,
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Parallel:          DefaultParallel,
		ParallelThreshold: DefaultParallelThreshold,
		MaxWorkers:        DefaultMaxWorkers(),
		Logger:            discardLogger(),
	}
}

// discardLogger builds a logger whose handler drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithParallel turns on concurrent evaluation of sub-products.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// WithParallelThreshold sets the minimum forked sub-problem side.
//
//	n >= 1: fork splits whose halves have side >= n
//	n < 1 : invalid option → ErrOptionViolation
func WithParallelThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: ParallelThreshold must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ParallelThreshold = n
	}
}

// WithMaxWorkers bounds helper goroutines per call tree.
//
//	n >= 1: at most n helpers alive at once
//	n < 1 : invalid option → ErrOptionViolation
func WithMaxWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxWorkers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxWorkers = n
	}
}

// WithLogger routes debug records of top-level calls to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
