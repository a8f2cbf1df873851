// SPDX-License-Identifier: MIT

// Package linsys solves linear systems A·x = b EXACTLY over a caller-supplied field.
//
// What & Why:
//
//	Floating-point solvers answer "approximately, if well conditioned". The
//	kernels here answer exactly, over any field.Field[T]: rationals, prime
//	fields, cryptographic scalar fields, GF(2). Rank-deficient systems yield a
//	particular solution plus a basis of the homogeneous solution space, and
//	inconsistent systems are reported through the Solution value, not an error.
//
// Two paths:
//
//	General:   Condenser (Gauss–Jordan to RREF on [A|B]) → Extractor (Solution).
//	Symmetric: Factorizer (concurrent A = Uᵗ·D·U) → SymmetricSolver (substitution).
//	           SymmetricSolver.RunNormal extends it to any A through AᵗA·x = Aᵗb and
//	           verifies the answer against the original A·x = b.
//	Extras:    Rank, Inverse (RREF of [A | I]) and Determinant reuse the same kernels.
//
// Ownership:
//
//	Condenser.Run and SolveInPlace take exclusive ownership of their matrices
//	and rewrite them in place. Solve, Condense-on-clones and the symmetric
//	facades leave the caller's inputs untouched. Engines hold no per-call state
//	and may be reused, but never run two calls on the same buffers at once.
//
// Concurrency:
//
//	The Factorizer commits one row of U per step. Within a row, the diagonal
//	entry and every upper entry are computed concurrently on a bounded
//	errgroup pool (WithWorkers). A zero diagonal flips a shared atomic flag that
//	column workers poll every WithBatchSize inner iterations, and ErrSingular is
//	returned once the row's tasks have joined.
//
// Known limitation:
//
//	The Factorizer rejects singular symmetric input (ErrSingular) while the
//	Gauss–Jordan path handles singular systems gracefully. Use Solve for
//	singular or rank-deficient symmetric systems.
//
// Complexity:
//
//	Condenser O(m²n), Extractor O(mn + n·nullity), Factorizer O(n³),
//	SymmetricSolver.Solve O(n² + n·nullity), RunNormal O(n²m + n³).
package linsys
