// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Let validated kernels borrow a row slice (RawRow) to skip per-element bounds checks.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); SwapRows/ScaleRow: O(c); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fieldsolve/field"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
	ctxScaleRow = "ScaleRow" // method tag used in error wrappers
	ctxRawRow   = "RawRow"   // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>". The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of field elements.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

var _ Matrix[bool] = (*Dense[bool])(nil)

// NewDense creates an r×c Dense matrix holding Go zero values of T.
// For element types whose zero value is not the field zero, use NewZeros.
//
// Behavior highlights:
//   - Zero-sized shapes are legal (0×c, r×0); negative dimensions are not.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their method tag and coordinates.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SwapRows exchanges rows i and k element by element. Swapping a row with
// itself is a no-op.
// Complexity: O(c).
func (m *Dense[T]) SwapRows(i, k int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSwapRows, i, k, ErrOutOfRange)
	}
	if k < 0 || k >= m.r {
		return denseErrorf(ctxSwapRows, i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	ri, rk := m.data[i*m.c:(i+1)*m.c], m.data[k*m.c:(k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}

	return nil
}

// ScaleRow replaces row i by s·row i in f.
// Complexity: O(c) field multiplications.
func (m *Dense[T]) ScaleRow(f field.Field[T], i int, s T) error {
	if f == nil {
		return denseErrorf(ctxScaleRow, i, 0, ErrNilField)
	}
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScaleRow, i, 0, ErrOutOfRange)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] = f.Mul(s, row[j])
	}

	return nil
}

// RawRow returns the backing slice of row i (length Cols()). Writes through
// the slice mutate the matrix. Intended for kernels that validated shapes up
// front and want tight loops; concurrent writers must touch disjoint cells.
func (m *Dense[T]) RawRow(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRawRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	raw, err := m.RawRow(i)
	if err != nil {
		return nil, err
	}

	return append([]T(nil), raw...), nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy of the Dense grid.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() Matrix[T] {
	return m.CloneDense()
}

// CloneDense is Clone without the interface conversion.
func (m *Dense[T]) CloneDense() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String implements fmt.Stringer using %v for each element.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
