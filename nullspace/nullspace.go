// SPDX-License-Identifier: MIT

package nullspace

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/fieldsolve/field"
	"github.com/katalvlaran/fieldsolve/linsys"
	"github.com/katalvlaran/fieldsolve/matrix"
)

// Dependencies returns a basis of the subsets of rows whose XOR is zero.
//
// Implementation:
//   - Build the width×len(rows) matrix A over GF(2) with A[j,i] = bit j of row i,
//     so A·c = 0 exactly when the rows selected by c cancel.
//   - Solve A·c = 0 with linsys (Condenser + Extractor); every basis vector of
//     the homogeneous solution becomes one dependency.
//
// Any XOR of returned dependencies is again a dependency, and every dependency
// is such a combination. An all-zero row forms a dependency on its own.
// Options are forwarded to the linsys engines (e.g. linsys.WithLogger).
//
// Errors:
//   - ErrNilRow, ErrRowWidth (a bit set at index >= width).
//
// Complexity:
//   - Time O(width²·len(rows)) field operations, Space O(width·len(rows)).
func Dependencies(rows []*bitset.BitSet, width uint, opts ...linsys.Option) ([]*bitset.BitSet, error) {
	for i, r := range rows {
		if r == nil {
			return nil, fmt.Errorf("Dependencies: row %d: %w", i, ErrNilRow)
		}
		if j, ok := r.NextSet(width); ok {
			return nil, fmt.Errorf("Dependencies: row %d bit %d: %w", i, j, ErrRowWidth)
		}
	}

	var f field.GF2
	n := len(rows)
	a, err := matrix.NewZeros[bool](f, int(width), n)
	if err != nil {
		return nil, fmt.Errorf("Dependencies: %w", err)
	}
	for i, r := range rows {
		for j, ok := r.NextSet(0); ok; j, ok = r.NextSet(j + 1) {
			if err = a.Set(int(j), i, true); err != nil {
				return nil, fmt.Errorf("Dependencies: %w", err)
			}
		}
	}
	zero, err := matrix.NewZeros[bool](f, int(width), 1)
	if err != nil {
		return nil, fmt.Errorf("Dependencies: %w", err)
	}

	sol, err := linsys.SolveInPlace[bool](f, a, zero, opts...)
	if err != nil {
		return nil, fmt.Errorf("Dependencies: %w", err)
	}

	deps := make([]*bitset.BitSet, 0, sol.Nullity())
	for _, v := range sol.Basis {
		s := bitset.New(uint(n))
		for i, bit := range v {
			if bit {
				s.Set(uint(i))
			}
		}
		deps = append(deps, s)
	}

	return deps, nil
}

// XOR returns the XOR of the rows selected by subset.
// A returned set with no bits (None) confirms a dependency.
// Errors: ErrNilRow, ErrSubsetRange.
func XOR(rows []*bitset.BitSet, subset *bitset.BitSet) (*bitset.BitSet, error) {
	acc := bitset.New(0)
	if subset == nil {
		return acc, nil
	}
	for i, ok := subset.NextSet(0); ok; i, ok = subset.NextSet(i + 1) {
		if i >= uint(len(rows)) {
			return nil, fmt.Errorf("XOR: index %d: %w", i, ErrSubsetRange)
		}
		if rows[i] == nil {
			return nil, fmt.Errorf("XOR: row %d: %w", i, ErrNilRow)
		}
		acc.InPlaceSymmetricDifference(rows[i])
	}

	return acc, nil
}
