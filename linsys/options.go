// SPDX-License-Identifier: MIT

// Package linsys: functional configuration for the solving engines.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a ...Option list.
//
// Design goals:
//   - Deterministic behavior: no global state; results never depend on worker count.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package linsys

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0) at engine construction.
	DefaultWorkers = 0

	// DefaultBatchSize is how many inner accumulation steps a column worker
	// performs between two polls of the shared singular flag.
	DefaultBatchSize = 64

	// DefaultPolicy is the extraction policy used when none is given.
	DefaultPolicy = Strict

	// DefaultSymmetryCheck makes the Factorizer verify A == Aᵗ before factoring.
	DefaultSymmetryCheck = true
)

// Policy selects how the Extractor treats rows left without a pivot.
type Policy int

const (
	// Strict scans the rows after the last pivot; an all-zero coefficient row
	// with a non-zero right-hand side marks the system inconsistent.
	Strict Policy = iota

	// Lenient trusts the caller to have guaranteed consistency and always
	// returns a particular solution.
	Lenient
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "linsys: WithWorkers: n must be >= 1"
	panicBatchInvalid   = "linsys: WithBatchSize: n must be >= 1"
	panicPolicyInvalid  = "linsys: WithPolicy: unknown policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; engines resolve them once in their constructors.
type Options struct {
	workers       int         // >= 1 after resolution
	batch         int         // >= 1
	policy        Policy      // Strict | Lenient
	checkSymmetry bool        // DefaultSymmetryCheck
	logger        *zap.Logger // never nil after resolution
}

// WithWorkers bounds the number of goroutines the Factorizer runs per row.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithBatchSize sets the polling granularity of the cooperative singular flag.
// Smaller values stop in-flight column work sooner after a zero pivot at the
// cost of more atomic loads. Panics when n < 1.
func WithBatchSize(n int) Option {
	if n < 1 {
		panic(panicBatchInvalid)
	}

	return func(o *Options) { o.batch = n }
}

// WithPolicy selects the Extractor policy. Panics on an unknown value.
func WithPolicy(p Policy) Option {
	if p != Strict && p != Lenient {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithSymmetryCheck toggles the O(n²) A == Aᵗ validation in the Factorizer.
// Disable it only when symmetry holds by construction (e.g. AᵗA).
// When disabled, only the upper triangle of A is read.
func WithSymmetryCheck(on bool) Option {
	return func(o *Options) { o.checkSymmetry = on }
}

// WithLogger routes engine diagnostics to l. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		workers:       DefaultWorkers,
		batch:         DefaultBatchSize,
		policy:        DefaultPolicy,
		checkSymmetry: DefaultSymmetryCheck,
		logger:        zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults in order (last write wins)
// and resolves DefaultWorkers to GOMAXPROCS. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
