// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the solvers.
package matrix

import "github.com/katalvlaran/fieldsolve/field"

// Matrix represents a two-dimensional mutable grid of field elements.
//
// Complexity notes: all methods are expected O(1) except SwapRows and
// ScaleRow (O(cols)) and Clone (O(rows*cols)).
//
// Implementations are NOT required to be safe for concurrent mutation.
// Solvers take exclusive ownership of the matrices passed to them for the
// duration of a call.
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// SwapRows exchanges rows i and k in place.
	SwapRows(i, k int) error

	// ScaleRow multiplies every element of row i by s in f.
	ScaleRow(f field.Field[T], i int, s T) error

	// Clone returns a deep copy of the grid. Elements themselves are shared,
	// which is safe because field operations never mutate their operands.
	Clone() Matrix[T]
}
