// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Strassen engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; randomness lives in Generator.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCutoff is the dimension at or below which the engine switches to
	// direct multiplication.
	DefaultCutoff = 64

	// DefaultParallelism is the number of top-level products computed
	// concurrently. 1 ⇒ purely sequential recursion.
	DefaultParallelism = 1

	// DefaultBound is the exclusive magnitude bound of generated entries.
	DefaultBound int64 = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCutoffInvalid      = "matrix: WithCutoff: cutoff must be >= 1"
	panicParallelismInvalid = "matrix: WithParallelism: parallelism must be >= 1"
	panicAllocatorNil       = "matrix: WithAllocator: allocator must be non-nil"
	panicLoggerNil          = "matrix: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective engine configuration. Fields are unexported;
// NewEngine resolves ...Option through gatherOptions.
type Options struct {
	cutoff      int                   // >= 1; DefaultCutoff
	parallelism int                   // >= 1; DefaultParallelism
	alloc       Allocator             // Heap
	logger      log.Logger            // log.NewNopLogger()
	registerer  prometheus.Registerer // nil ⇒ private registry
}

// WithCutoff sets the base-case dimension.
// Implementation:
//   - Stage 1: validate cutoff ≥ 1.
//   - Stage 2: return a setter that writes cutoff into Options.
//
// Errors:
//   - Panics with a stable message when cutoff < 1.
//
// Notes:
//   - cutoff ≥ n degenerates to a single direct multiplication; cutoff = 1
//     recurses all the way to scalars.
func WithCutoff(cutoff int) Option {
	if cutoff < 1 {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.cutoff = cutoff }
}

// WithParallelism bounds how many of the seven top-level products run at once.
// Deeper levels always run sequentially inside their goroutine.
// Panics when n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.parallelism = n }
}

// WithAllocator sets the allocator used for every temporary and the result.
func WithAllocator(a Allocator) Option {
	if a == nil {
		panic(panicAllocatorNil)
	}

	return func(o *Options) { o.alloc = a }
}

// WithLogger sets the go-kit logger. Debug-level events only.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithRegisterer registers the engine metrics on reg. Engines sharing a
// registerer share their collectors.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.registerer = reg }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		cutoff:      DefaultCutoff,
		parallelism: DefaultParallelism,
		alloc:       Heap,
		logger:      log.NewNopLogger(),
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
