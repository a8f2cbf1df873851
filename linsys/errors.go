// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set.
// Argument checks fail fast with these sentinels (wrapped with an operation
// tag); callers match them with errors.Is. An inconsistent system is NOT an
// error: it is reported as a Solution whose Particular is nil.

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fieldsolve/matrix"
)

var (
	// ErrNilField is returned when a nil field.Field is supplied.
	ErrNilField = matrix.ErrNilField

	// ErrNilMatrix is returned when a coefficient, right-hand side or factor matrix is nil.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrDimensionMismatch is returned when the row counts of A and B differ,
	// or a right-hand side is not a single column of the expected length.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrSingular is returned by the Factorizer when a diagonal pivot is zero.
	ErrSingular = errors.New("linsys: singular matrix")

	// ErrInconsistent is returned by Solution.Combine on a system with no solution.
	// Solvers themselves never return it.
	ErrInconsistent = errors.New("linsys: inconsistent system")

	// ErrCoefficientCount is returned by Solution.Combine when the number of
	// coefficients differs from the number of basis vectors.
	ErrCoefficientCount = errors.New("linsys: coefficient count mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opCondense     = "Condense"
	opExtract      = "Extract"
	opFactorize    = "Factorize"
	opSolveSym     = "SolveSymmetric"
	opSolveNormal  = "SolveNormal"
	opSolve        = "Solve"
	opRank         = "Rank"
	opVerify       = "Verify"
	opCombine      = "Combine"
	opNewEngine    = "NewEngine"
	opSubstitution = "Substitution"
	opInverse      = "Inverse"
	opDeterminant  = "Determinant"
)

// linsysErrorf wraps err with an operation tag, preserving the original via %w.
// Use only when err != nil.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
