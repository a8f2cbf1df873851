// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and solvers minimal by delegating nil/shape/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fieldsolve/field"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is a nil interface or a typed nil *Dense[T].
func isNil[T any](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense[T])

	return ok && d == nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Typed nil *Dense values are rejected as well.
// Complexity: O(1).
func ValidateNotNil[T any](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateField – Ensures the field strategy is non-nil.
func ValidateField[T any](f field.Field[T]) error {
	if f == nil {
		return validatorErrorf("ValidateField", ErrNilField)
	}

	return nil
}

// ValidateSameRows – Composite: NotNil(a) → NotNil(b) → a.Rows == b.Rows.
// This is the contract between a coefficient matrix and its attached
// right-hand side.
func ValidateSameRows[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape[T any](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare[T any](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateColumn – Composite: NotNil → Cols == 1 → Rows == n.
// Used for right-hand sides that must be a single column of length n.
func ValidateColumn[T any](b Matrix[T], n int) error {
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateColumn", err)
	}
	if b.Cols() != 1 || b.Rows() != n {
		return validatorErrorf("ValidateColumn", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A[i,j] == A[j,i] in f for all i<j.
//
// Inputs: Matrix m, field f.
// Returns ErrNilField/ErrNilMatrix/ErrNonSquare on structural issues,
// ErrAsymmetry on the first violation in i→j order.
// Complexity: O(n²) field comparisons. Space: O(1).
func ValidateSymmetric[T any](f field.Field[T], m Matrix[T]) error {
	if err := ValidateField(f); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji T
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // scan only upper triangle
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if !f.Equal(aij, aji) {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}
