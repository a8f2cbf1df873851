// SPDX-License-Identifier: MIT

package field

// GF2 is the two-element field {false, true} with XOR as addition and AND as
// multiplication. It is the coefficient domain of parity (exponent-vector)
// systems such as the dependency search in package nullspace.
type GF2 struct{}

var _ Field[bool] = GF2{}

func (GF2) Zero() bool { return false }
func (GF2) One() bool { return true }
func (GF2) Add(a, b bool) bool { return a != b }
func (GF2) Neg(a bool) bool { return a }
func (GF2) Mul(a, b bool) bool { return a && b }
func (GF2) IsZero(a bool) bool { return !a }
func (GF2) IsOne(a bool) bool { return a }
func (GF2) Equal(a, b bool) bool { return a == b }

// Inv returns 1 for 1 and ErrZeroInverse for 0.
func (GF2) Inv(a bool) (bool, error) {
	if !a {
		return false, ErrZeroInverse
	}

	return true, nil
}
