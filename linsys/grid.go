// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// grid is a sticky-error view over a Matrix: after the first failed access
// every further read returns the zero value and every write is dropped, so
// kernels can run a whole phase and check err once at its boundary.
// Shapes are validated before a grid is built, so an error here means the
// Matrix implementation itself misbehaved.
type grid[T any] struct {
	m   matrix.Matrix[T]
	f   field.Field[T]
	err error
}

func newGrid[T any](f field.Field[T], m matrix.Matrix[T]) *grid[T] {
	return &grid[T]{m: m, f: f}
}

func (g *grid[T]) fail(err error, op string, i, j int) {
	if g.err == nil && err != nil {
		g.err = fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
	}
}

func (g *grid[T]) at(i, j int) T {
	if g.err != nil {
		var zero T
		return zero
	}
	v, err := g.m.At(i, j)
	g.fail(err, "At", i, j)

	return v
}

func (g *grid[T]) set(i, j int, v T) {
	if g.err != nil {
		return
	}
	g.fail(g.m.Set(i, j, v), "Set", i, j)
}

func (g *grid[T]) swap(i, k int) {
	if g.err != nil {
		return
	}
	g.fail(g.m.SwapRows(i, k), "SwapRows", i, k)
}

func (g *grid[T]) scale(i int, s T) {
	if g.err != nil {
		return
	}
	g.fail(g.m.ScaleRow(g.f, i, s), "ScaleRow", i, 0)
}

// subScaled performs row[dst] -= factor·row[src] on columns from..Cols()-1.
// Columns left of from are known to be zero in row src and are skipped.
func (g *grid[T]) subScaled(dst, src int, factor T, from int) {
	neg := g.f.Neg(factor)
	for c := from; c < g.m.Cols() && g.err == nil; c++ {
		s := g.at(src, c)
		if g.f.IsZero(s) {
			continue
		}
		g.set(dst, c, field.MulAdd(g.f, g.at(dst, c), neg, s))
	}
}

// rowIsZero reports whether every coefficient of row i is zero.
func (g *grid[T]) rowIsZero(i int) bool {
	for c := 0; c < g.m.Cols() && g.err == nil; c++ {
		if !g.f.IsZero(g.at(i, c)) {
			return false
		}
	}

	return true
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
