// SPDX-License-Identifier: MIT

package linsys

import (
	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// Solution characterizes the full solution set of A·x = b.
//
// Every x = Particular + Σ cᵢ·Basis[i] (cᵢ in the field) solves the system,
// and every solution has this form. len(Basis) == cols(A) − rank(A).
//
// Particular == nil means the system is inconsistent; Basis is then empty.
// A Solution is freshly allocated per call and owned by the caller.
type Solution[T any] struct {
	Particular []T
	Basis      [][]T
}

// inconsistent returns the "no solution" sentinel value.
func inconsistent[T any]() *Solution[T] {
	return &Solution[T]{Basis: [][]T{}}
}

// Consistent reports whether the system has at least one solution.
func (s *Solution[T]) Consistent() bool { return s != nil && s.Particular != nil }

// Unique reports whether the system has exactly one solution.
func (s *Solution[T]) Unique() bool { return s.Consistent() && len(s.Basis) == 0 }

// Nullity returns the dimension of the homogeneous solution space.
func (s *Solution[T]) Nullity() int {
	if s == nil {
		return 0
	}

	return len(s.Basis)
}

// Combine returns Particular + Σ coeffs[i]·Basis[i].
// Errors: ErrInconsistent when there is no particular solution,
// ErrCoefficientCount when len(coeffs) != Nullity().
func (s *Solution[T]) Combine(f field.Field[T], coeffs []T) ([]T, error) {
	if f == nil {
		return nil, linsysErrorf(opCombine, ErrNilField)
	}
	if !s.Consistent() {
		return nil, linsysErrorf(opCombine, ErrInconsistent)
	}
	if len(coeffs) != len(s.Basis) {
		return nil, linsysErrorf(opCombine, ErrCoefficientCount)
	}
	x := append([]T(nil), s.Particular...)
	for i, v := range s.Basis {
		for j := range x {
			x[j] = field.MulAdd(f, x[j], coeffs[i], v[j])
		}
	}

	return x, nil
}

// Verify checks the solution against the ORIGINAL system: A·Particular == b
// and A·v == 0 for every basis vector. An inconsistent Solution verifies as false.
func (s *Solution[T]) Verify(f field.Field[T], a matrix.Matrix[T], b []T) (bool, error) {
	if !s.Consistent() {
		return false, nil
	}
	ok, err := Verify(f, a, s.Particular, b)
	if err != nil || !ok {
		return false, err
	}
	zero := make([]T, a.Rows())
	for i := range zero {
		zero[i] = f.Zero()
	}
	for _, v := range s.Basis {
		if ok, err = Verify(f, a, v, zero); err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// Factors holds A = Uᵗ·D·U for a symmetric A: U is unit upper-triangular
// (it is Lᵗ of the LDLᵗ form) and D is diagonal, both n×n.
type Factors[T any] struct {
	U *matrix.Dense[T]
	D *matrix.Dense[T]
}

// pivot records the (row, col) position of a leading one during condensation.
type pivot struct {
	row, col int
}
