// SPDX-License-Identifier: MIT

package field

import "math/big"

// Rational is the field ℚ of arbitrary-precision rationals.
//
// Elements are *big.Rat. A nil pointer is accepted everywhere and read as 0,
// so a freshly allocated matrix of *big.Rat is already a zero matrix.
// Every result is a newly allocated *big.Rat; operands are never written.
type Rational struct{}

var _ Field[*big.Rat] = Rational{}

// rat normalizes a possibly-nil operand to a readable value.
func rat(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}

	return a
}

// Zero returns a fresh 0.
func (Rational) Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh 1.
func (Rational) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b.
func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(rat(a), rat(b)) }

// Neg returns −a.
func (Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(rat(a)) }

// Mul returns a · b.
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(rat(a), rat(b)) }

// Inv returns 1/a or ErrZeroInverse.
func (Rational) Inv(a *big.Rat) (*big.Rat, error) {
	if a == nil || a.Sign() == 0 {
		return nil, ErrZeroInverse
	}

	return new(big.Rat).Inv(a), nil
}

// IsZero reports a == 0.
func (Rational) IsZero(a *big.Rat) bool { return a == nil || a.Sign() == 0 }

// IsOne reports a == 1.
func (Rational) IsOne(a *big.Rat) bool { return a != nil && a.IsInt() && a.Num().IsInt64() && a.Num().Int64() == 1 }

// Equal reports a == b.
func (Rational) Equal(a, b *big.Rat) bool { return rat(a).Cmp(rat(b)) == 0 }

// Int returns n as a rational.
func (Rational) Int(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// Frac returns num/den. It panics when den is zero, like big.NewRat.
func (Rational) Frac(num, den int64) *big.Rat { return big.NewRat(num, den) }
