// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// SymmetricSolver solves A·x = b from the factors A = Uᵗ·D·U, and wraps
// general systems through the normal equations AᵗA·x = Aᵗb.
type SymmetricSolver[T any] struct {
	f   field.Field[T]
	fac *Factorizer[T]
	log *zap.Logger
}

// NewSymmetricSolver binds a solver (and its internal Factorizer) to f.
// Options are forwarded to the Factorizer.
// Errors: ErrNilField.
func NewSymmetricSolver[T any](f field.Field[T], opts ...Option) (*SymmetricSolver[T], error) {
	fac, err := NewFactorizer(f, opts...)
	if err != nil {
		return nil, err
	}

	return &SymmetricSolver[T]{f: f, fac: fac, log: fac.log}, nil
}

// Solve runs the three substitution passes over fs for the right-hand side b (n×1).
//
// Implementation:
//   - Forward: y[j] = b[j] − Σ_{i<j} U[i,j]·y[i]   (solves Uᵗ·y = b).
//   - Diagonal: a zero D[i,i] requires y[i] == 0 (else inconsistent);
//     otherwise y[i] /= D[i,i].
//   - Backward, i = n-1..0: a zero D[i,i] opens a basis vector with one at i and
//     −U[j,i] at every earlier non-free j; otherwise y[i] is propagated into
//     y[j] (j < i, D[j,j] ≠ 0) and the same step is applied to every basis
//     vector collected so far.
//
// Neither fs nor b is modified.
//
// Errors:
//   - ErrNilMatrix (nil factors), ErrDimensionMismatch (factor or b shape).
//
// Complexity:
//   - Time O(n² + n²·nullity) field operations.
func (s *SymmetricSolver[T]) Solve(fs *Factors[T], b matrix.Matrix[T]) (*Solution[T], error) {
	if fs == nil || fs.U == nil || fs.D == nil {
		return nil, linsysErrorf(opSolveSym, ErrNilMatrix)
	}
	if err := matrix.ValidateSquare[T](fs.U); err != nil {
		return nil, linsysErrorf(opSolveSym, err)
	}
	n := fs.U.Rows()
	if fs.D.Rows() != n || fs.D.Cols() != n {
		return nil, linsysErrorf(opSolveSym, ErrDimensionMismatch)
	}
	if err := matrix.ValidateColumn(b, n); err != nil {
		return nil, linsysErrorf(opSolveSym, err)
	}
	y, err := matrix.ColumnOf(b, 0)
	if err != nil {
		return nil, linsysErrorf(opSolveSym, err)
	}

	f := s.f
	u := make([][]T, n)
	for i := range u {
		if u[i], err = fs.U.RawRow(i); err != nil {
			return nil, linsysErrorf(opSolveSym, err)
		}
	}

	// Forward substitution.
	for j := 0; j < n; j++ {
		acc := y[j]
		for i := 0; i < j; i++ {
			acc = field.MulAdd(f, acc, f.Neg(u[i][j]), y[i])
		}
		y[j] = acc
	}

	// Diagonal pass.
	free := make([]bool, n)
	var d T
	for i := 0; i < n; i++ {
		if d, err = fs.D.At(i, i); err != nil {
			return nil, linsysErrorf(opSolveSym, err)
		}
		if f.IsZero(d) {
			if !f.IsZero(y[i]) {
				s.log.Debug("inconsistent system", zap.Int("row", i))
				return inconsistent[T](), nil
			}
			free[i] = true
			continue
		}
		inv, ierr := f.Inv(d)
		if ierr != nil {
			return nil, linsysErrorf(opSubstitution, fmt.Errorf("D(%d,%d): %w", i, i, ierr))
		}
		y[i] = f.Mul(y[i], inv)
	}

	// Back substitution with basis extraction.
	basis := make([][]T, 0)
	for i := n - 1; i >= 0; i-- {
		if free[i] {
			v := make([]T, n)
			for k := range v {
				v[k] = f.Zero()
			}
			v[i] = f.One()
			for j := 0; j < i; j++ {
				if !free[j] {
					v[j] = field.MulAdd(f, v[j], f.Neg(u[j][i]), v[i])
				}
			}
			basis = append(basis, v)
			continue
		}
		for j := 0; j < i; j++ {
			if free[j] {
				continue
			}
			neg := f.Neg(u[j][i])
			y[j] = field.MulAdd(f, y[j], neg, y[i])
			for _, v := range basis {
				v[j] = field.MulAdd(f, v[j], neg, v[i])
			}
		}
	}

	return &Solution[T]{Particular: y, Basis: basis}, nil
}

// Run factors the symmetric a and solves a·x = b. Neither input is modified.
// Errors: those of Factorizer.Run (including ErrSingular) and Solve.
func (s *SymmetricSolver[T]) Run(a, b matrix.Matrix[T]) (*Solution[T], error) {
	fs, err := s.fac.Run(a)
	if err != nil {
		return nil, err
	}

	return s.Solve(fs, b)
}

// RunNormal solves a general (possibly rectangular) system a·x = b through the
// normal equations AᵗA·x = Aᵗb, then verifies the particular solution against
// the ORIGINAL system. A failed verification yields the inconsistent sentinel.
//
// Implementation:
//   - G[i][j] = Σ_k A[k,i]·A[k,j] and h[i] = Σ_k A[k,i]·b[k] as dot products
//     over the rows of Aᵗ; G is symmetric by construction, so the symmetry
//     check is skipped.
//   - Factor G, solve for h, then check A·x == b exactly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular when AᵗA is singular
//     (rank-deficient A, or isotropic columns over a finite field).
//
// Complexity:
//   - Time O(n²·m + n³) field operations.
func (s *SymmetricSolver[T]) RunNormal(a, b matrix.Matrix[T]) (*Solution[T], error) {
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}
	if err := matrix.ValidateColumn(b, a.Rows()); err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}

	f := s.f
	m, n := a.Rows(), a.Cols()
	at, err := matrix.Transpose(a) // row i of at is column i of a
	if err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}
	rhs, err := matrix.ColumnOf(b, 0)
	if err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}

	gram, err := matrix.NewZeros(f, n, n)
	if err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}
	cols := make([][]T, n)  // borrowed rows of at
	gRows := make([][]T, n) // borrowed rows of gram
	for i := 0; i < n; i++ {
		if cols[i], err = at.RawRow(i); err != nil {
			return nil, linsysErrorf(opSolveNormal, err)
		}
		if gRows[i], err = gram.RawRow(i); err != nil {
			return nil, linsysErrorf(opSolveNormal, err)
		}
	}
	hv := make([]T, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			acc := field.Dot(f, cols[i], cols[j])
			gRows[i][j] = acc
			gRows[j][i] = acc
		}
		hv[i] = field.Dot(f, cols[i], rhs)
	}
	h, err := matrix.NewColumn(hv)
	if err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}

	fac := *s.fac
	fac.checkSymmetry = false
	fs, err := fac.Run(gram)
	if err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}
	sol, err := s.Solve(fs, h)
	if err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}
	if !sol.Consistent() {
		return sol, nil
	}

	ok, err := Verify(f, a, sol.Particular, rhs)
	if err != nil {
		return nil, linsysErrorf(opSolveNormal, err)
	}
	if !ok {
		s.log.Warn("normal-equation solution fails the original system",
			zap.Int("rows", m),
			zap.Int("cols", n),
		)
		return inconsistent[T](), nil
	}

	return sol, nil
}
