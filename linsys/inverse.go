// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// Inverse returns a⁻¹ over f. a is cloned and never modified.
//
// Implementation:
//   - Stage 1 (Validate): f non-nil, a square.
//   - Stage 2 (Condense): reduce [A | I] to RREF; the right block becomes A⁻¹.
//   - Stage 3 (Check): A is invertible iff its RREF is I, i.e. every diagonal
//     entry is one. Otherwise ErrSingular names the first missing pivot.
//
// Errors: ErrNilField, ErrNilMatrix, matrix.ErrNonSquare, ErrSingular.
// Complexity: O(n³) field operations, O(n²) memory.
func Inverse[T any](f field.Field[T], a matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateField(f); err != nil {
		return nil, linsysErrorf(opInverse, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, linsysErrorf(opInverse, err)
	}

	n := a.Rows()
	work := a.Clone()
	inv, err := matrix.NewIdentity(f, n)
	if err != nil {
		return nil, linsysErrorf(opInverse, err)
	}
	if _, err = Condense[T](f, work, inv, opts...); err != nil {
		return nil, linsysErrorf(opInverse, err)
	}

	g := newGrid(f, work)
	for i := 0; i < n; i++ {
		if f.IsOne(g.at(i, i)) {
			continue
		}
		if g.err != nil {
			return nil, linsysErrorf(opInverse, g.err)
		}
		return nil, linsysErrorf(opInverse, fmt.Errorf("rank %d < %d: %w", countPivots(g, n), n, ErrSingular))
	}

	return inv, nil
}

// countPivots counts the leading non-zero rows of an n-row RREF grid.
func countPivots[T any](g *grid[T], n int) int {
	r := 0
	for r < n && !g.rowIsZero(r) {
		r++
	}

	return r
}

// Determinant returns det(a) over f by forward elimination on a clone.
//
// Implementation:
//   - For each column j find the first row k >= j with a non-zero entry; none
//     means det = 0. A swap flips the sign.
//   - det accumulates the pivots; rows below are cleared with factor a[k,j]/pivot.
//
// Errors: ErrNilField, ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n³) field operations.
func Determinant[T any](f field.Field[T], a matrix.Matrix[T]) (T, error) {
	var zero T
	if err := matrix.ValidateField(f); err != nil {
		return zero, linsysErrorf(opDeterminant, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return zero, linsysErrorf(opDeterminant, err)
	}

	n := a.Rows()
	g := newGrid(f, a.Clone())
	det := f.One()
	for j := 0; j < n; j++ {
		k := j
		for k < n && f.IsZero(g.at(k, j)) {
			k++
		}
		if k == n {
			if g.err != nil {
				return zero, linsysErrorf(opDeterminant, g.err)
			}
			return f.Zero(), nil
		}
		if k != j {
			g.swap(j, k)
			det = f.Neg(det)
		}
		p := g.at(j, j)
		if g.err != nil {
			return zero, linsysErrorf(opDeterminant, g.err)
		}
		det = f.Mul(det, p)
		inv, err := f.Inv(p)
		if err != nil {
			return zero, linsysErrorf(opDeterminant, err)
		}
		for r := j + 1; r < n; r++ {
			factor := g.at(r, j)
			if f.IsZero(factor) {
				continue
			}
			g.subScaled(r, j, f.Mul(factor, inv), j)
		}
	}
	if g.err != nil {
		return zero, linsysErrorf(opDeterminant, g.err)
	}

	return det, nil
}
