// SPDX-License-Identifier: MIT

package linsys

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// Condenser row-reduces a coefficient matrix and an attached right-hand-side
// matrix in lockstep to reduced row-echelon form (Gauss–Jordan).
//
// A Condenser holds only its field and options; it is safe to reuse and to
// share between goroutines as long as each call works on its own matrices.
type Condenser[T any] struct {
	f   field.Field[T]
	log *zap.Logger
}

// NewCondenser binds a Condenser to f.
// Errors: ErrNilField.
func NewCondenser[T any](f field.Field[T], opts ...Option) (*Condenser[T], error) {
	if f == nil {
		return nil, linsysErrorf(opNewEngine, ErrNilField)
	}
	o := gatherOptions(opts...)

	return &Condenser[T]{f: f, log: o.logger}, nil
}

// Run reduces [coeff | aug] to RREF in place and reports whether any row was
// swapped, scaled or eliminated.
//
// Implementation:
//   - Forward: walk columns j with a current row i. A zero at (i,j) triggers a
//     search downward for a non-zero entry and a swap of both matrices. A found
//     pivot is scaled to one (unless it already is one) and cleared from every
//     row below. Columns without a pivot are free: j advances, i does not.
//   - Backward: for every recorded pivot, last to first, clear its column in
//     every row above.
//
// Behavior highlights:
//   - RREF input is left untouched and yields changed == false.
//   - Zero rows: no-op, changed == false.
//
// Inputs:
//   - coeff: m×n coefficients, aug: m×k right-hand sides (k may be 0).
//     Both are rewritten in place; clone them first to keep the originals.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ), or an access
//     error from a misbehaving Matrix implementation.
//
// Complexity:
//   - Time O(m²·(n+k)) field operations, Space O(min(m,n)).
func (c *Condenser[T]) Run(coeff, aug matrix.Matrix[T]) (bool, error) {
	if err := matrix.ValidateSameRows(coeff, aug); err != nil {
		return false, linsysErrorf(opCondense, err)
	}
	m, n := coeff.Rows(), coeff.Cols()
	if m == 0 {
		return false, nil
	}

	f := c.f
	a, b := newGrid(f, coeff), newGrid(f, aug)
	pivots := make([]pivot, 0, min(m, n))
	changed := false

	// Forward phase.
	i := 0
	for j := 0; j < n && i < m; j++ {
		if f.IsZero(a.at(i, j)) {
			for k := i + 1; k < m; k++ {
				if !f.IsZero(a.at(k, j)) {
					a.swap(i, k)
					b.swap(i, k)
					changed = true
					break
				}
			}
		}
		p := a.at(i, j)
		if f.IsZero(p) {
			continue // free column
		}
		if !f.IsOne(p) {
			inv, err := f.Inv(p)
			if err != nil {
				return changed, linsysErrorf(opCondense, err)
			}
			a.scale(i, inv)
			b.scale(i, inv)
			changed = true
		}
		for k := i + 1; k < m; k++ {
			factor := a.at(k, j)
			if f.IsZero(factor) {
				continue
			}
			a.subScaled(k, i, factor, j)
			b.subScaled(k, i, factor, 0)
			changed = true
		}
		if err := firstErr(a.err, b.err); err != nil {
			return changed, linsysErrorf(opCondense, err)
		}
		pivots = append(pivots, pivot{row: i, col: j})
		i++
	}

	// Backward phase.
	for p := len(pivots) - 1; p >= 0; p-- {
		r, col := pivots[p].row, pivots[p].col
		for k := 0; k < r; k++ {
			factor := a.at(k, col)
			if f.IsZero(factor) {
				continue
			}
			a.subScaled(k, r, factor, col)
			b.subScaled(k, r, factor, 0)
			changed = true
		}
	}
	if err := firstErr(a.err, b.err); err != nil {
		return changed, linsysErrorf(opCondense, err)
	}

	c.log.Debug("condensed",
		zap.Int("rows", m),
		zap.Int("cols", n),
		zap.Int("rank", len(pivots)),
		zap.Bool("changed", changed),
	)

	return changed, nil
}
