// SPDX-License-Identifier: MIT
// Package linsys — public facades.
//
// Purpose:
//   - One-call entry points that build the engines, run them and return the result.
//   - No logic of their own: each facade delegates to the engine that owns it.

package linsys

import (
	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// Solve solves a·x = b by Gauss–Jordan condensation and extraction.
// a and b are cloned first and never modified.
// Options: WithPolicy, WithLogger.
// Errors: ErrNilField, ErrNilMatrix, ErrDimensionMismatch.
func Solve[T any](f field.Field[T], a, b matrix.Matrix[T], opts ...Option) (*Solution[T], error) {
	if err := matrix.ValidateField(f); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}

	return SolveInPlace(f, a.Clone(), b.Clone(), opts...)
}

// SolveInPlace is Solve without the defensive copies: a and b are left in RREF.
func SolveInPlace[T any](f field.Field[T], a, b matrix.Matrix[T], opts ...Option) (*Solution[T], error) {
	c, err := NewCondenser(f, opts...)
	if err != nil {
		return nil, err
	}
	e, err := NewExtractor(f, opts...)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSameRows(a, b); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}
	if err = matrix.ValidateColumn(b, a.Rows()); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}
	if _, err = c.Run(a, b); err != nil {
		return nil, err
	}

	return e.Run(a, b)
}

// Condense reduces [a | b] to RREF in place; see Condenser.Run.
func Condense[T any](f field.Field[T], a, b matrix.Matrix[T], opts ...Option) (bool, error) {
	c, err := NewCondenser(f, opts...)
	if err != nil {
		return false, err
	}

	return c.Run(a, b)
}

// Factorize computes a = Uᵗ·D·U; see Factorizer.Run.
func Factorize[T any](f field.Field[T], a matrix.Matrix[T], opts ...Option) (*Factors[T], error) {
	z, err := NewFactorizer(f, opts...)
	if err != nil {
		return nil, err
	}

	return z.Run(a)
}

// SolveSymmetric factors the symmetric a and solves a·x = b; see SymmetricSolver.Run.
func SolveSymmetric[T any](f field.Field[T], a, b matrix.Matrix[T], opts ...Option) (*Solution[T], error) {
	s, err := NewSymmetricSolver(f, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run(a, b)
}

// SolveNormal solves a general a·x = b through AᵗA·x = Aᵗb; see SymmetricSolver.RunNormal.
func SolveNormal[T any](f field.Field[T], a, b matrix.Matrix[T], opts ...Option) (*Solution[T], error) {
	s, err := NewSymmetricSolver(f, opts...)
	if err != nil {
		return nil, err
	}

	return s.RunNormal(a, b)
}

// Verify reports whether a·x == b holds exactly in f.
// Errors: ErrNilField, ErrNilMatrix, ErrDimensionMismatch (len(x) != cols, len(b) != rows).
// Complexity: O(rows·cols).
func Verify[T any](f field.Field[T], a matrix.Matrix[T], x, b []T) (bool, error) {
	if err := matrix.ValidateField(f); err != nil {
		return false, linsysErrorf(opVerify, err)
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return false, linsysErrorf(opVerify, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return false, linsysErrorf(opVerify, err)
	}
	ax, err := matrix.MatVec(f, a, x)
	if err != nil {
		return false, linsysErrorf(opVerify, err)
	}
	for i := range ax {
		if !f.Equal(ax[i], b[i]) {
			return false, nil
		}
	}

	return true, nil
}

// Rank returns the rank of a over f. a is cloned and never modified.
// Complexity: O(m²·n).
func Rank[T any](f field.Field[T], a matrix.Matrix[T], opts ...Option) (int, error) {
	if err := matrix.ValidateField(f); err != nil {
		return 0, linsysErrorf(opRank, err)
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, linsysErrorf(opRank, err)
	}
	work := a.Clone()
	none, err := matrix.NewDense[T](work.Rows(), 0)
	if err != nil {
		return 0, linsysErrorf(opRank, err)
	}
	if _, err = Condense(f, work, matrix.Matrix[T](none), opts...); err != nil {
		return 0, err
	}

	g := newGrid(f, work)
	rank := countPivots(g, work.Rows())
	if g.err != nil {
		return 0, linsysErrorf(opRank, g.err)
	}

	return rank, nil
}
