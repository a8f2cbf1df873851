// SPDX-License-Identifier: MIT
// Package matrix — public constructors and facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for building matrices
//     and vectors over a field.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

import "github.com/katalvlaran/fieldsolve/field"

// NewZeros returns a rows×cols *Dense filled with f.Zero().
// Prefer it over NewDense when T's Go zero value is not the field zero.
// Complexity: O(rows*cols).
func NewZeros[T any](f field.Field[T], rows, cols int) (*Dense[T], error) {
	if err := ValidateField(f); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opZeros, err)
	}
	for i := range m.data {
		m.data[i] = f.Zero()
	}

	return m, nil
}

// NewIdentity returns I_n over f (one on the diagonal, zero elsewhere).
// Complexity: O(n^2).
func NewIdentity[T any](f field.Field[T], n int) (*Dense[T], error) {
	m, err := NewZeros(f, n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = f.One()
	}

	return m, nil
}

// FromRows copies a row-major literal into a new *Dense.
// All rows must have the same length; an empty literal yields a 0×0 matrix.
// Errors: ErrRaggedRows.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, ErrRaggedRows)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewColumn returns v as an n×1 column matrix (copied).
func NewColumn[T any](v []T) (*Dense[T], error) {
	m, err := NewDense[T](len(v), 1)
	if err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	copy(m.data, v)

	return m, nil
}

// ToRows copies m into a fresh [][]T literal.
// Complexity: O(rc).
func ToRows[T any](m Matrix[T]) ([][]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	d, err := asDense(m, opToRows)
	if err != nil {
		return nil, err
	}
	out := make([][]T, d.r)
	for i := range out {
		out[i] = append([]T(nil), d.data[i*d.c:(i+1)*d.c]...)
	}

	return out, nil
}

// ColumnOf copies column j of m into a slice.
func ColumnOf[T any](m Matrix[T], j int) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnOf, err)
	}
	out := make([]T, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, atErrorf(opColumnOf, i, j, err)
		}
	}

	return out, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix[T any](m Matrix[T]) Matrix[T] {
	return m.Clone()
}
