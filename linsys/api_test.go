// SPDX-License-Identifier: MIT
package linsys_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/linsys"
	"github.com/katalvlaran/fieldsolve/matrix"
)

func TestSolve_Scenarios(t *testing.T) {
	t.Parallel()

	var q field.Rational
	fq := field.Field[ratPtr](q)

	cases := []struct {
		name       string
		a          [][]int64
		b          []int64
		consistent bool
		nullity    int
	}{
		{"full rank 2x2", [][]int64{{2, 1}, {1, 3}}, []int64{5, 10}, true, 0},
		{"rank one 2x3", [][]int64{{1, 2, 3}, {2, 4, 6}}, []int64{6, 12}, true, 2},
		{"inconsistent", [][]int64{{1, 1}, {1, 1}}, []int64{1, 2}, false, 0},
		{"underdetermined", [][]int64{{1, 0, 1, 0}, {0, 1, 0, 1}}, []int64{3, 4}, true, 2},
		{"overdetermined consistent", [][]int64{{1, 0}, {0, 1}, {1, 1}}, []int64{2, 3, 5}, true, 0},
		{"zero matrix zero rhs", [][]int64{{0, 0}, {0, 0}}, []int64{0, 0}, true, 2},
		{"zero matrix nonzero rhs", [][]int64{{0, 0}, {0, 0}}, []int64{0, 1}, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := MustRats(t, tc.a), ratCol(t, tc.b...)
			sol, err := linsys.Solve[ratPtr](q, a, b)
			require.NoError(t, err)
			require.Equal(t, tc.consistent, sol.Consistent())
			require.Equal(t, tc.nullity, sol.Nullity())
			if tc.consistent {
				requireSolves[ratPtr](t, fq, a, b, sol)
			}

			// Solve never touches its inputs.
			ok, err := matrix.Equal[ratPtr](q, MustRats(t, tc.a), a)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestSolve_FullRankGF5(t *testing.T) {
	t.Parallel()

	f := prime(t, 5)
	sol, err := linsys.Solve[uint256Int](f, MustInts(t, f, [][]int64{{1, 2}, {3, 4}}), intCol(t, f, 1, 1))
	require.NoError(t, err)
	require.True(t, sol.Unique())
	requireVec(t, field.Field[uint256Int](f), []uint256Int{f.Int(4), f.Int(1)}, sol.Particular)
}

func TestSolve_GF2(t *testing.T) {
	t.Parallel()

	var f field.GF2
	a, err := matrix.FromRows([][]bool{{true, true, false}, {false, true, true}})
	require.NoError(t, err)
	b, err := matrix.NewColumn([]bool{true, false})
	require.NoError(t, err)

	sol, err := linsys.Solve[bool](f, a, b)
	require.NoError(t, err)
	require.Equal(t, 1, sol.Nullity())
	requireSolves[bool](t, field.Field[bool](f), a, b, sol)
	requireVec(t, field.Field[bool](f), []bool{true, true, true}, sol.Basis[0])
}

func TestSolve_LenientMatchesStrictWhenConsistent(t *testing.T) {
	t.Parallel()

	var q field.Rational
	a, b := MustRats(t, [][]int64{{1, 2, 3}, {2, 4, 6}}), ratCol(t, 6, 12)

	strict, err := linsys.Solve[ratPtr](q, a, b)
	require.NoError(t, err)
	lenient, err := linsys.Solve[ratPtr](q, a, b, linsys.WithPolicy(linsys.Lenient))
	require.NoError(t, err)

	fq := field.Field[ratPtr](q)
	requireVec(t, fq, strict.Particular, lenient.Particular)
	require.Len(t, lenient.Basis, len(strict.Basis))
	for i := range strict.Basis {
		requireVec(t, fq, strict.Basis[i], lenient.Basis[i])
	}
}

func TestSolveInPlace_LeavesRREF(t *testing.T) {
	t.Parallel()

	var q field.Rational
	a, b := MustRats(t, [][]int64{{2, 1}, {1, 3}}), ratCol(t, 5, 10)

	sol, err := linsys.SolveInPlace[ratPtr](q, a, b)
	require.NoError(t, err)
	requireVec(t, field.Field[ratPtr](q), ratVec(1, 3), sol.Particular)

	ok, err := matrix.Equal[ratPtr](q, MustRats(t, [][]int64{{1, 0}, {0, 1}}), a)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	var q field.Rational

	_, err := linsys.Solve[ratPtr](nil, MustRats(t, [][]int64{{1}}), ratCol(t, 1))
	require.ErrorIs(t, err, linsys.ErrNilField)

	_, err = linsys.Solve[ratPtr](q, nil, ratCol(t, 1))
	require.ErrorIs(t, err, linsys.ErrNilMatrix)

	_, err = linsys.Solve[ratPtr](q, MustRats(t, [][]int64{{1}, {2}}), ratCol(t, 1))
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)

	_, err = linsys.SolveInPlace[ratPtr](q, MustRats(t, [][]int64{{1}}), nil)
	require.ErrorIs(t, err, linsys.ErrNilMatrix)

	_, err = linsys.SolveInPlace[ratPtr](q, MustRats(t, [][]int64{{1}}), MustRats(t, [][]int64{{1, 1}}))
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	var q field.Rational
	a := MustRats(t, [][]int64{{2, 1}, {1, 3}})

	ok, err := linsys.Verify[ratPtr](q, a, ratVec(1, 3), ratVec(5, 10))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = linsys.Verify[ratPtr](q, a, ratVec(1, 2), ratVec(5, 10))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = linsys.Verify[ratPtr](q, a, ratVec(1), ratVec(5, 10))
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)

	_, err = linsys.Verify[ratPtr](q, a, ratVec(1, 3), ratVec(5))
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)

	_, err = linsys.Verify[ratPtr](q, nil, ratVec(1, 3), ratVec(5, 10))
	require.ErrorIs(t, err, linsys.ErrNilMatrix)
}

func TestRank(t *testing.T) {
	t.Parallel()

	var q field.Rational
	cases := []struct {
		a    [][]int64
		want int
	}{
		{[][]int64{{2, 1}, {1, 3}}, 2},
		{[][]int64{{1, 2, 3}, {2, 4, 6}}, 1},
		{[][]int64{{0, 0}, {0, 0}}, 0},
		{[][]int64{{0, 1, 0}, {0, 0, 1}, {0, 1, 1}}, 2},
	}
	for _, tc := range cases {
		a := MustRats(t, tc.a)
		r, err := linsys.Rank[ratPtr](q, a)
		require.NoError(t, err)
		require.Equal(t, tc.want, r)

		ok, err := matrix.Equal[ratPtr](q, MustRats(t, tc.a), a)
		require.NoError(t, err)
		require.True(t, ok, "Rank must not modify its input")
	}

	// The same matrix can lose rank modulo p.
	f := prime(t, 5)
	r, err := linsys.Rank[uint256Int](f, MustInts(t, f, [][]int64{{1, 2}, {3, 1}}))
	require.NoError(t, err)
	require.Equal(t, 1, r)

	_, err = linsys.Rank[ratPtr](q, nil)
	require.ErrorIs(t, err, linsys.ErrNilMatrix)
}

func TestSolution_Combine(t *testing.T) {
	t.Parallel()

	var q field.Rational
	fq := field.Field[ratPtr](q)
	a, b := MustRats(t, [][]int64{{1, 2, 3}, {2, 4, 6}}), ratCol(t, 6, 12)

	sol, err := linsys.Solve[ratPtr](q, a, b)
	require.NoError(t, err)

	x, err := sol.Combine(fq, ratVec(1, -2))
	require.NoError(t, err)
	// (6,0,0) + (2,−1,0) − 2·(3,0,−1)
	requireVec(t, fq, ratVec(2, -1, 2), x)
	ok, err := linsys.Verify(fq, matrix.Matrix[ratPtr](a), x, ratVec(6, 12))
	require.NoError(t, err)
	require.True(t, ok)

	_, err = sol.Combine(fq, ratVec(1))
	require.ErrorIs(t, err, linsys.ErrCoefficientCount)

	_, err = sol.Combine(nil, ratVec(1, 1))
	require.ErrorIs(t, err, linsys.ErrNilField)

	none, err := linsys.Solve[ratPtr](q, MustRats(t, [][]int64{{1, 1}, {1, 1}}), ratCol(t, 1, 2))
	require.NoError(t, err)
	_, err = none.Combine(fq, nil)
	require.ErrorIs(t, err, linsys.ErrInconsistent)

	ok, err = none.Verify(fq, MustRats(t, [][]int64{{1, 1}, {1, 1}}), ratVec(1, 2))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSolve_BN254ScalarField(t *testing.T) {
	t.Parallel()

	var f field.BN254
	fb := field.Field[fr.Element](f)
	a, err := matrix.FromRows([][]fr.Element{{f.Int(2), f.Int(1)}, {f.Int(1), f.Int(3)}})
	require.NoError(t, err)
	b, err := matrix.NewColumn([]fr.Element{f.Int(5), f.Int(10)})
	require.NoError(t, err)
	want := []fr.Element{f.Int(1), f.Int(3)}

	gj, err := linsys.Solve[fr.Element](f, a, b)
	require.NoError(t, err)
	requireVec(t, fb, want, gj.Particular)

	sym, err := linsys.SolveSymmetric[fr.Element](f, a, b, linsys.WithWorkers(2))
	require.NoError(t, err)
	requireVec(t, fb, want, sym.Particular)
}

// singular6 is a symmetric 6×6 rational matrix of rank 4.
var singular6 = [][]int64{
	{3, 3, 0, 3, -4, 2},
	{3, 7, 4, 7, -6, 2},
	{0, 4, 5, 5, -1, -1},
	{3, 7, 5, 8, -5, 1},
	{-4, -6, -1, -5, 8, -5},
	{2, 2, -1, 1, -5, 5},
}

func TestSolve_SingularSymmetric6(t *testing.T) {
	t.Parallel()

	var q field.Rational
	fq := field.Field[ratPtr](q)
	a := MustRats(t, singular6)

	for _, rhs := range [][]int64{{0, 0, 0, 0, 0, 0}, {3, -3, -8, -5, -5, 8}} {
		b := ratCol(t, rhs...)
		sol, err := linsys.Solve[ratPtr](q, a, b)
		require.NoError(t, err)
		require.Equal(t, 2, sol.Nullity())
		requireSolves[ratPtr](t, fq, a, b, sol)

		// The symmetric path rejects the same input.
		_, err = linsys.SolveSymmetric[ratPtr](q, a, b)
		require.ErrorIs(t, err, linsys.ErrSingular)
	}

	d, err := linsys.Determinant[ratPtr](q, a)
	require.NoError(t, err)
	require.True(t, q.IsZero(d))
}

func TestSolve_FreeColumnBetweenPivots(t *testing.T) {
	t.Parallel()

	var q field.Rational
	fq := field.Field[ratPtr](q)
	a := MustRats(t, [][]int64{{1, 0, 0, 2}, {0, 0, 3, 0}, {0, 0, 3, 1}})
	b := ratCol(t, 1, 3, 3)

	sol, err := linsys.Solve[ratPtr](q, a, b)
	require.NoError(t, err)
	requireVec(t, fq, ratVec(1, 0, 1, 0), sol.Particular)
	require.Len(t, sol.Basis, 1)
	requireVec(t, fq, ratVec(0, -1, 0, 0), sol.Basis[0])
}

func TestSolveNormal_RankDeficientGram(t *testing.T) {
	t.Parallel()

	var q field.Rational
	a, b := MustRats(t, [][]int64{{1, 0, 1}, {2, 1, 1}}), ratCol(t, 2, 5)

	// AᵗA is 3×3 of rank 2, so the normal path stops.
	_, err := linsys.SolveNormal[ratPtr](q, a, b)
	require.ErrorIs(t, err, linsys.ErrSingular)

	sol, err := linsys.Solve[ratPtr](q, a, b)
	require.NoError(t, err)
	require.Equal(t, 1, sol.Nullity())
	requireSolves[ratPtr](t, field.Field[ratPtr](q), a, b, sol)
}
