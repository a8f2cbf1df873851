// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over GF(7) and ℚ.
//   • Keep call sites short: Must* helpers fail the test on any error.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// Short aliases for explicit instantiation where inference cannot see
// through *Dense[T] → Matrix[T].
type (
	uint256Int = uint256.Int
	ratPtr     = *big.Rat
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) paths in kernels.
type hide[T any] struct{ matrix.Matrix[T] }

// gf7 returns ℤ/7ℤ or fails the test.
func gf7(t testing.TB) *field.Prime {
	t.Helper()
	f, err := field.NewPrime(7)
	require.NoError(t, err)

	return f
}

// MustInts builds a GF(p) matrix from an integer literal.
func MustInts(t testing.TB, f *field.Prime, rows [][]int64) *matrix.Dense[uint256.Int] {
	t.Helper()
	lit := make([][]uint256.Int, len(rows))
	for i, row := range rows {
		lit[i] = make([]uint256.Int, len(row))
		for j, v := range row {
			lit[i][j] = f.Int(v)
		}
	}
	m, err := matrix.FromRows(lit)
	require.NoError(t, err)

	return m
}

// MustRats builds a ℚ matrix from an integer literal.
func MustRats(t testing.TB, rows [][]int64) *matrix.Dense[*big.Rat] {
	t.Helper()
	var q field.Rational
	lit := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		lit[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			lit[i][j] = q.Int(v)
		}
	}
	m, err := matrix.FromRows(lit)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireEqual asserts exact equality of two matrices in f.
func RequireEqual[T any](t testing.TB, f field.Field[T], want, got matrix.Matrix[T]) {
	t.Helper()
	ok, err := matrix.Equal(f, want, got)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}
