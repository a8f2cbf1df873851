// SPDX-License-Identifier: MIT

// Package fieldsolve is an exact linear-system toolkit over any field:
// rationals, prime fields, cryptographic scalar fields, GF(2).
//
// 🚀 What is fieldsolve?
//
//	A small, dependency-light library that answers A·x = b exactly:
//		• Gauss–Jordan condensation of [A | B] to reduced row-echelon form
//		• Full solution sets: a particular solution plus a homogeneous basis
//		• Inconsistency reported as a value, never as a float "nearly zero"
//		• Concurrent symmetric A = Uᵗ·D·U factorization and its solver
//		• Normal equations AᵗA·x = Aᵗb for rectangular systems, verified exactly
//		• GF(2) dependency search for sieve-style factoring
//
// ✨ Why exact?
//
//   - No tolerances to tune: a pivot is zero or it is not.
//   - Rank, nullity and consistency are facts, not estimates.
//   - The same kernels run over ℚ and over ℤ/pℤ.
//
// Under the hood, everything is organized under four subpackages:
//
//	field/     — the Field[T] capability and concrete fields (Rational, Prime, BN254, GF2)
//	matrix/    — generic dense Matrix[T], validators and field-generic kernels
//	linsys/    — Condenser, Extractor, Factorizer, SymmetricSolver and facades
//	nullspace/ — XOR dependencies among *bitset.BitSet rows
//
// Quick example:
//
//	var q field.Rational
//	a, _ := matrix.FromRows([][]*big.Rat{{q.Int(2), q.Int(1)}, {q.Int(1), q.Int(3)}})
//	b, _ := matrix.NewColumn([]*big.Rat{q.Int(5), q.Int(10)})
//	sol, _ := linsys.Solve[*big.Rat](q, a, b)
//	// sol.Particular == [1 3], sol.Basis is empty
package fieldsolve
