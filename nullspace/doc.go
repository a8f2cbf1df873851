// SPDX-License-Identifier: MIT

// Package nullspace finds linear dependencies among bit-vector rows over GF(2).
//
// Factoring algorithms such as the quadratic sieve collect relations whose
// exponent vectors are only interesting modulo 2. A subset of relations whose
// parity vectors XOR to zero yields a congruence of squares. Dependencies
// finds a basis of all such subsets by running the exact Gauss–Jordan path of
// package linsys over field.GF2.
//
// Rows and results are *bitset.BitSet values: row i sets bit j when the j-th
// exponent is odd, and every returned dependency sets bit i when row i takes part.
package nullspace
