// SPDX-License-Identifier: MIT

package linsys

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// rowSweep runs lead once and body over [lo, hi) split into contiguous
// chunks, all on one errgroup bounded to workers goroutines, and blocks until
// every task has returned. It is the per-row barrier of the Factorizer.
func rowSweep(workers int, lead func() error, lo, hi int, body func(lo, hi int) error) error {
	var g errgroup.Group
	g.SetLimit(workers)

	if lead != nil {
		g.Go(lead)
	}
	if span := hi - lo; span > 0 {
		chunks := min(workers, span)
		size := (span + chunks - 1) / chunks
		for start := lo; start < hi; start += size {
			end := min(start+size, hi)
			g.Go(func() error { return body(start, end) })
		}
	}

	return g.Wait()
}

// stopFlag is the shared cooperative cancellation signal of one factorization.
// Workers poll it every batch inner iterations; nothing is preempted.
type stopFlag struct {
	hit   atomic.Bool
	batch int
}

// raise marks the flag. Safe from any goroutine.
func (s *stopFlag) raise() { s.hit.Store(true) }

// raised reports whether the flag is set.
func (s *stopFlag) raised() bool { return s.hit.Load() }

// poll reports whether iteration k of an inner loop should stop. The atomic is
// only loaded on batch boundaries.
func (s *stopFlag) poll(k int) bool {
	return (k+1)%s.batch == 0 && s.hit.Load()
}
