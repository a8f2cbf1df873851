// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// Factorizer computes A = Uᵗ·D·U for a symmetric A, with U unit
// upper-triangular and D diagonal, parallelizing the work inside each row.
type Factorizer[T any] struct {
	f             field.Field[T]
	workers       int
	batch         int
	checkSymmetry bool
	log           *zap.Logger
}

// NewFactorizer binds a Factorizer to f.
// Options: WithWorkers, WithBatchSize, WithSymmetryCheck, WithLogger.
// Errors: ErrNilField.
func NewFactorizer[T any](f field.Field[T], opts ...Option) (*Factorizer[T], error) {
	if f == nil {
		return nil, linsysErrorf(opNewEngine, ErrNilField)
	}
	o := gatherOptions(opts...)

	return &Factorizer[T]{
		f:             f,
		workers:       o.workers,
		batch:         o.batch,
		checkSymmetry: o.checkSymmetry,
		log:           o.logger,
	}, nil
}

// Run factors the symmetric matrix a. a is only read.
//
// Implementation (row i = 0..n-1, rows < i already committed):
//   - Serial prologue: read A[i, i..n-1]; w[k] = U[k,i]·D[k,k] for k < i.
//   - Concurrent sweep: one task computes D[i,i] = A[i,i] − Σ w[k]·U[k,i];
//     column chunks compute U[i,c] = A[i,c] − Σ w[k]·U[k,c] for c > i.
//     A zero D[i,i] raises the shared stop flag; column workers poll it every
//     batch iterations and return early.
//   - Barrier. A zero D[i,i] aborts with ErrSingular; otherwise row i of U is
//     scaled by D[i,i]⁻¹ and U[i,i] = one.
//
// Errors:
//   - ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry (symmetry check on),
//     ErrSingular (wrapped with the row index).
//
// Complexity:
//   - Time O(n³) field operations, O(n³/workers) wall time for large n.
//   - Space O(n²) for U and D.
func (z *Factorizer[T]) Run(a matrix.Matrix[T]) (*Factors[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, linsysErrorf(opFactorize, err)
	}
	if z.checkSymmetry {
		if err := matrix.ValidateSymmetric(z.f, a); err != nil {
			return nil, linsysErrorf(opFactorize, err)
		}
	}

	f := z.f
	n := a.Rows()
	U, err := matrix.NewZeros(f, n, n)
	if err != nil {
		return nil, linsysErrorf(opFactorize, err)
	}
	D, err := matrix.NewZeros(f, n, n)
	if err != nil {
		return nil, linsysErrorf(opFactorize, err)
	}

	uRows := make([][]T, n) // borrowed rows of U
	for i := range uRows {
		if uRows[i], err = U.RawRow(i); err != nil {
			return nil, linsysErrorf(opFactorize, err)
		}
	}
	diag := make([]T, n) // committed D[k,k]
	aRow := make([]T, n) // A[i, i..n-1] of the current row
	w := make([]T, n)    // U[k,i]·D[k,k] for k < i

	for i := 0; i < n; i++ {
		for c := i; c < n; c++ {
			if aRow[c], err = a.At(i, c); err != nil {
				return nil, linsysErrorf(opFactorize, fmt.Errorf("At(%d,%d): %w", i, c, err))
			}
		}
		for k := 0; k < i; k++ {
			w[k] = f.Mul(uRows[k][i], diag[k])
		}

		stop := &stopFlag{batch: z.batch}
		var d T
		lead := func() error {
			acc := aRow[i]
			for k := 0; k < i; k++ {
				acc = field.MulAdd(f, acc, f.Neg(w[k]), uRows[k][i])
			}
			d = acc
			if f.IsZero(d) {
				stop.raise()
			}
			return nil
		}
		ui := uRows[i]
		body := func(lo, hi int) error {
			for c := lo; c < hi; c++ {
				if stop.raised() {
					return nil
				}
				acc := aRow[c]
				for k := 0; k < i; k++ {
					if stop.poll(k) {
						return nil
					}
					acc = field.MulAdd(f, acc, f.Neg(w[k]), uRows[k][c])
				}
				ui[c] = acc
			}
			return nil
		}
		if err = rowSweep(z.workers, lead, i+1, n, body); err != nil {
			return nil, linsysErrorf(opFactorize, err)
		}

		if stop.raised() {
			z.log.Warn("zero pivot in symmetric factorization",
				zap.Int("row", i),
				zap.Int("n", n),
			)
			return nil, linsysErrorf(opFactorize, fmt.Errorf("row %d: %w", i, ErrSingular))
		}

		inv, ierr := f.Inv(d)
		if ierr != nil {
			return nil, linsysErrorf(opFactorize, ierr)
		}
		for c := i + 1; c < n; c++ {
			ui[c] = f.Mul(ui[c], inv)
		}
		ui[i] = f.One()
		diag[i] = d
		if err = D.Set(i, i, d); err != nil {
			return nil, linsysErrorf(opFactorize, err)
		}
	}

	z.log.Debug("factorized",
		zap.Int("n", n),
		zap.Int("workers", z.workers),
		zap.Int("batch", z.batch),
	)

	return &Factors[T]{U: U, D: D}, nil
}
