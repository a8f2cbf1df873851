// SPDX-License-Identifier: MIT
// Package linsys_test contains shared fixtures for the solver tests.
//
// Purpose:
//   • Build small exact systems over ℚ and GF(p) from integer literals.
//   • Assert solutions against the ORIGINAL system, never against internals.

package linsys_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/linsys"
	"github.com/katalvlaran/fieldsolve/matrix"
)

type (
	uint256Int = uint256.Int
	ratPtr     = *big.Rat
)

// bigPrime is 10⁹+7, large enough that random pivots are almost never zero.
const bigPrime = 1_000_000_007

// tester is satisfied by both *testing.T and *rapid.T.
type tester interface {
	require.TestingT
	Helper()
}

// hide strips the concrete *Dense type so kernels take the interface path.
type hide[T any] struct{ matrix.Matrix[T] }

func (h hide[T]) Clone() matrix.Matrix[T] { return hide[T]{h.Matrix.Clone()} }

func prime(t testing.TB, p uint64) *field.Prime {
	t.Helper()
	f, err := field.NewPrime(p)
	require.NoError(t, err)

	return f
}

// MustInts builds a GF(p) matrix from an integer literal.
func MustInts(t tester, f *field.Prime, rows [][]int64) *matrix.Dense[uint256.Int] {
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
func MustRats(t tester, rows [][]int64) *matrix.Dense[*big.Rat] {
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

// ratCol builds a ℚ column from integers.
func ratCol(t tester, v ...int64) *matrix.Dense[*big.Rat] {
	t.Helper()
	rows := make([][]int64, len(v))
	for i, x := range v {
		rows[i] = []int64{x}
	}

	return MustRats(t, rows)
}

// intCol builds a GF(p) column from integers.
func intCol(t tester, f *field.Prime, v ...int64) *matrix.Dense[uint256.Int] {
	t.Helper()
	rows := make([][]int64, len(v))
	for i, x := range v {
		rows[i] = []int64{x}
	}

	return MustInts(t, f, rows)
}

// requireVec asserts got == want element-wise in f.
func requireVec[T any](t tester, f field.Field[T], want, got []T) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, f.Equal(want[i], got[i]), "index %d differs", i)
	}
}

// ratVec converts integers to ℚ elements.
func ratVec(v ...int64) []*big.Rat {
	var q field.Rational
	out := make([]*big.Rat, len(v))
	for i, x := range v {
		out[i] = q.Int(x)
	}

	return out
}

// requireSolves checks the whole Solution against the original a·x = b.
func requireSolves[T any](t tester, f field.Field[T], a, b matrix.Matrix[T], sol *linsys.Solution[T]) {
	t.Helper()
	require.True(t, sol.Consistent(), "expected a consistent system")
	rhs, err := matrix.ColumnOf(b, 0)
	require.NoError(t, err)
	ok, err := sol.Verify(f, a, rhs)
	require.NoError(t, err)
	require.True(t, ok, "solution does not satisfy the original system")
}

// randomFactors returns a random unit upper-triangular U and a diagonal D over
// f; zeroAt lists diagonal positions forced to zero.
func randomFactors(t tester, f *field.Prime, rng *rand.Rand, n int, zeroAt ...int) (u, d *matrix.Dense[uint256.Int]) {
	t.Helper()
	u, err := matrix.NewIdentity[uint256.Int](f, n)
	require.NoError(t, err)
	d, err = matrix.NewZeros[uint256.Int](f, n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, u.Set(i, j, f.Uint(rng.Uint64())))
		}
		v := f.Uint(rng.Uint64())
		for f.IsZero(v) {
			v = f.Uint(rng.Uint64())
		}
		require.NoError(t, d.Set(i, i, v))
	}
	for _, i := range zeroAt {
		require.NoError(t, d.Set(i, i, f.Zero()))
	}

	return u, d
}

// compose returns Uᵗ·D·U.
func compose[T any](t tester, f field.Field[T], u, d *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	ut, err := matrix.Transpose[T](u)
	require.NoError(t, err)
	du, err := matrix.Mul[T](f, d, u)
	require.NoError(t, err)
	a, err := matrix.Mul[T](f, ut, du)
	require.NoError(t, err)

	return a
}

// observed returns a logger that records every entry at Debug and above.
func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)

	return zap.New(core), logs
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](t tester, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
