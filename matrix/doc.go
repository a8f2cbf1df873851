// SPDX-License-Identifier: MIT

// Package matrix provides field-generic dense matrices for exact linear algebra.
//
// The matrix package provides:
//
//   - Matrix[T], the minimal mutable 2-D container contract consumed by the
//     solvers in package linsys (bounds-checked At/Set, SwapRows, ScaleRow, Clone).
//   - Dense[T], a row-major implementation whose backing rows can be borrowed
//     (RawRow) by kernels that have already validated shapes.
//   - Central validators (nil, shape, square, symmetric) returning sentinel errors.
//   - Field-generic kernels: Transpose, Mul, MatVec, Equal, IsZero.
//
// No kernel uses Go arithmetic on elements; every operation is routed through
// a field.Field[T], so results are exact over ℚ, ℤ/pℤ or GF(2).
//
// Zero-sized shapes (0×n, m×0) are legal: they arise naturally as empty
// right-hand sides and as the homogeneous systems of the GF(2) dependency search.
package matrix
