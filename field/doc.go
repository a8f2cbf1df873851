// SPDX-License-Identifier: MIT

// Package field defines the algebraic capability consumed by every exact solver
// in this module, together with a handful of ready-made fields.
//
// What & Why:
//
//	Solvers never use Go operators on coefficients. Instead they receive a
//	Field[T] strategy value and route every addition, negation, product and
//	inversion through it. This keeps the same Gauss–Jordan or LDLᵗ kernel
//	exact over rationals, prime fields, cryptographic scalar fields and GF(2).
//
// Provided fields:
//
//   - Rational — ℚ on *big.Rat (nil is read as zero).
//   - Prime    — ℤ/pℤ for any prime p < 2²⁵⁶ on holiman/uint256.
//   - BN254    — the BN254 scalar field from gnark-crypto.
//   - GF2      — the two-element field on bool.
//
// Contract:
//
//	Implementations must satisfy the field axioms. A ring with zero divisors
//	(for example ℤ/6ℤ) is NOT detected and yields silently wrong results.
//	Operations must never mutate their operands and must be safe for
//	concurrent use, because the factorization engine evaluates independent
//	columns on several goroutines at once.
package field
