// SPDX-License-Identifier: MIT

package linsys

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// Extractor turns a condensed (RREF) system [M | B] into a Solution.
type Extractor[T any] struct {
	f      field.Field[T]
	policy Policy
	log    *zap.Logger
}

// NewExtractor binds an Extractor to f. The policy comes from WithPolicy
// (DefaultPolicy = Strict).
// Errors: ErrNilField.
func NewExtractor[T any](f field.Field[T], opts ...Option) (*Extractor[T], error) {
	if f == nil {
		return nil, linsysErrorf(opNewEngine, ErrNilField)
	}
	o := gatherOptions(opts...)

	return &Extractor[T]{f: f, policy: o.policy, log: o.logger}, nil
}

// Policy returns the extraction policy the Extractor was built with.
func (e *Extractor[T]) Policy() Policy { return e.policy }

// Run reads a particular solution and a homogeneous basis off a condensed system.
//
// Implementation:
//   - Walk columns j with pivotRow starting at 0. A non-zero M[pivotRow, j]
//     makes j a pivot column: Particular[j] = B[pivotRow, 0], pivotRow advances.
//   - Otherwise j is free: the basis vector has −1 at j and M[p, j] at the
//     pivot column of every earlier pivot row p; all other coordinates are 0.
//   - Strict policy: a row at or below pivotRow whose coefficients are all zero
//     but whose right-hand side is not zero makes the system inconsistent.
//
// Inputs:
//   - m: m×n in RREF (e.g. after Condenser.Run), b: m×1. Neither is modified.
//
// Returns:
//   - *Solution with len(Basis) == n − rank, or the inconsistent sentinel
//     (Particular == nil, empty Basis).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ or b is not one column).
//
// Complexity:
//   - Time O(m·n + n·nullity) field operations.
func (e *Extractor[T]) Run(m, b matrix.Matrix[T]) (*Solution[T], error) {
	if err := matrix.ValidateSameRows(m, b); err != nil {
		return nil, linsysErrorf(opExtract, err)
	}
	if err := matrix.ValidateColumn(b, m.Rows()); err != nil {
		return nil, linsysErrorf(opExtract, err)
	}

	f := e.f
	rows, n := m.Rows(), m.Cols()
	a, rhs := newGrid(f, m), newGrid(f, b)

	particular := make([]T, n)
	for j := range particular {
		particular[j] = f.Zero()
	}
	basis := make([][]T, 0, n)
	pivotCols := make([]int, 0, min(rows, n))
	negOne := f.Neg(f.One())

	pivotRow := 0
	for j := 0; j < n; j++ {
		if pivotRow < rows && !f.IsZero(a.at(pivotRow, j)) {
			particular[j] = rhs.at(pivotRow, 0)
			pivotCols = append(pivotCols, j)
			pivotRow++
			continue
		}
		v := make([]T, n)
		for k := range v {
			v[k] = f.Zero()
		}
		v[j] = negOne
		for p, c := range pivotCols {
			v[c] = a.at(p, j)
		}
		basis = append(basis, v)
	}

	if e.policy == Strict {
		for r := pivotRow; r < rows; r++ {
			if f.IsZero(rhs.at(r, 0)) || !a.rowIsZero(r) {
				continue
			}
			if err := firstErr(a.err, rhs.err); err != nil {
				return nil, linsysErrorf(opExtract, err)
			}
			e.log.Debug("inconsistent system",
				zap.Int("row", r),
				zap.Int("rank", pivotRow),
			)

			return inconsistent[T](), nil
		}
	}
	if err := firstErr(a.err, rhs.err); err != nil {
		return nil, linsysErrorf(opExtract, err)
	}

	e.log.Debug("extracted",
		zap.Stringer("policy", e.policy),
		zap.Int("rank", pivotRow),
		zap.Int("nullity", len(basis)),
	)

	return &Solution[T]{Particular: particular, Basis: basis}, nil
}
