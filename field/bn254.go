// SPDX-License-Identifier: MIT

package field

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// BN254 is the scalar field of the BN254 pairing curve, backed by gnark-crypto.
// Elements are fr.Element values in Montgomery form; the zero value is 0.
type BN254 struct{}

var _ Field[fr.Element] = BN254{}

// Zero returns 0.
func (BN254) Zero() fr.Element { return fr.Element{} }

// One returns 1.
func (BN254) One() fr.Element { return fr.One() }

// Add returns a + b.
func (BN254) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)

	return z
}

// Neg returns −a.
func (BN254) Neg(a fr.Element) fr.Element {
	var z fr.Element
	z.Neg(&a)

	return z
}

// Mul returns a · b.
func (BN254) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)

	return z
}

// Inv returns a⁻¹ or ErrZeroInverse.
func (BN254) Inv(a fr.Element) (fr.Element, error) {
	if a.IsZero() {
		return fr.Element{}, ErrZeroInverse
	}
	var z fr.Element
	z.Inverse(&a)

	return z, nil
}

// IsZero reports a == 0.
func (BN254) IsZero(a fr.Element) bool { return a.IsZero() }

// IsOne reports a == 1.
func (BN254) IsOne(a fr.Element) bool { return a.IsOne() }

// Equal reports a == b.
func (BN254) Equal(a, b fr.Element) bool { return a.Equal(&b) }

// Int returns n mod r.
func (BN254) Int(n int64) fr.Element {
	var z fr.Element
	z.SetInt64(n)

	return z
}
