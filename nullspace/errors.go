// SPDX-License-Identifier: MIT

package nullspace

import "errors"

var (
	// ErrNilRow is returned when one of the input rows is nil.
	ErrNilRow = errors.New("nullspace: nil row")

	// ErrRowWidth is returned when a row sets a bit at or beyond the declared width.
	ErrRowWidth = errors.New("nullspace: row exceeds width")

	// ErrSubsetRange is returned by XOR when a subset selects a row that does not exist.
	ErrSubsetRange = errors.New("nullspace: subset index out of range")
)
