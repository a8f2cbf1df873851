// SPDX-License-Identifier: MIT

package field

import "errors"

var (
	// ErrZeroInverse is returned by Inv when asked to invert the additive identity.
	ErrZeroInverse = errors.New("field: inverse of zero")

	// ErrNotPrime is returned by NewPrime when the modulus fails a primality test.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrModulusRange is returned by NewPrime when the modulus does not fit in 256 bits.
	ErrModulusRange = errors.New("field: modulus out of range")
)
