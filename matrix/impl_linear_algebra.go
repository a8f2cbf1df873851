// SPDX-License-Identifier: MIT
// Package matrix provides field-generic operations on any Matrix implementation:
// transpose, matrix product, matrix–vector product and exact comparisons.
// All functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Results are always fresh *Dense values; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other implementations go
//     through At, with errors wrapped by matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fieldsolve/field"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opEqual     = "Equal"
	opIsZero    = "IsZero"
	opFromRows  = "FromRows"
	opZeros     = "NewZeros"
	opIdentity  = "NewIdentity"
	opColumn    = "NewColumn"
	opToRows    = "ToRows"
	opColumnOf  = "ColumnOf"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf attaches coordinates to an interface-path read failure.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(rc).
func Transpose[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense[T](c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense[T]); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				out.data[j*r+i] = d.data[i*c+j]
			}
		}

		return out, nil
	}

	var v T
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			out.data[j*r+i] = v
		}
	}

	return out, nil
}

// Mul performs the matrix product C = A × B in f (no aliasing).
// Complexity: O(r·n·c) field operations.
func Mul[T any](f field.Field[T], a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateField(f); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a, opMul)
	if err != nil {
		return nil, err
	}
	bd, err := asDense(b, opMul)
	if err != nil {
		return nil, err
	}

	r, n, c := ad.r, ad.c, bd.c
	out, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		acc     T
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			acc = f.Zero()
			for k = 0; k < n; k++ {
				acc = field.MulAdd(f, acc, ad.data[i*n+k], bd.data[k*c+j])
			}
			out.data[i*c+j] = acc
		}
	}

	return out, nil
}

// MatVec computes y = m·x in f.
// Errors: ErrNilField, ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(rc).
func MatVec[T any](f field.Field[T], m Matrix[T], x []T) ([]T, error) {
	if err := ValidateField(f); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m, opMatVec)
	if err != nil {
		return nil, err
	}

	y := make([]T, d.r)
	for i := 0; i < d.r; i++ {
		y[i] = field.Dot(f, d.data[i*d.c:(i+1)*d.c], x)
	}

	return y, nil
}

// Equal reports whether a and b have the same shape and equal elements in f.
// A shape difference is reported as (false, nil), not as an error.
func Equal[T any](f field.Field[T], a, b Matrix[T]) (bool, error) {
	if err := ValidateField(f); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	var (
		i, j int
		x, y T
		err  error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if x, err = a.At(i, j); err != nil {
				return false, atErrorf(opEqual, i, j, err)
			}
			if y, err = b.At(i, j); err != nil {
				return false, atErrorf(opEqual, i, j, err)
			}
			if !f.Equal(x, y) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsZero reports whether every element of m is zero in f.
// An empty matrix is a zero matrix.
func IsZero[T any](f field.Field[T], m Matrix[T]) (bool, error) {
	if err := ValidateField(f); err != nil {
		return false, matrixErrorf(opIsZero, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsZero, err)
	}
	if d, ok := m.(*Dense[T]); ok {
		zero := true
		d.Do(func(_, _ int, v T) bool {
			zero = f.IsZero(v)
			return zero
		})

		return zero, nil
	}

	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return false, atErrorf(opIsZero, i, j, err)
			}
			if !f.IsZero(v) {
				return false, nil
			}
		}
	}

	return true, nil
}

// asDense returns m itself when it is a *Dense, or a materialized copy read
// through At. Kernels use it to run one flat-slice loop for every input type.
func asDense[T any](m Matrix[T], tag string) (*Dense[T], error) {
	if d, ok := m.(*Dense[T]); ok {
		return d, nil
	}
	out, err := NewDense[T](m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var (
		i, j int
		v    T
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
