// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// primalityRounds is the Miller–Rabin round count handed to big.Int.ProbablyPrime.
const primalityRounds = 20

// Prime is the field ℤ/pℤ for a prime p below 2²⁵⁶.
//
// Elements are uint256.Int values kept fully reduced into [0, p).
// Products use uint256.MulMod (512-bit intermediate), so any modulus that fits
// in 256 bits is safe from overflow.
type Prime struct {
	p     uint256.Int // modulus
	pm2   uint256.Int // p − 2, the Fermat inversion exponent
	bigP  *big.Int    // cached for conversions from signed integers
	label string
}

var _ Field[uint256.Int] = (*Prime)(nil)

// NewPrime builds ℤ/pℤ for a small prime modulus.
// Errors: ErrNotPrime when p fails the primality test.
func NewPrime(p uint64) (*Prime, error) {
	return NewPrimeBig(new(big.Int).SetUint64(p))
}

// NewPrimeBig builds ℤ/pℤ for an arbitrary prime modulus p < 2²⁵⁶.
// Errors: ErrModulusRange when p does not fit in 256 bits; ErrNotPrime when p
// fails a Miller–Rabin test with primalityRounds rounds.
func NewPrimeBig(p *big.Int) (*Prime, error) {
	if p == nil || p.Sign() <= 0 {
		return nil, ErrModulusRange
	}
	m, overflow := uint256.FromBig(p)
	if overflow {
		return nil, ErrModulusRange
	}
	if !p.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("NewPrime(%s): %w", p, ErrNotPrime)
	}

	f := &Prime{p: *m, bigP: new(big.Int).Set(p), label: "GF(" + p.String() + ")"}
	f.pm2.SubUint64(m, 2)

	return f, nil
}

// Modulus returns a copy of p.
func (f *Prime) Modulus() *big.Int { return new(big.Int).Set(f.bigP) }

// String implements fmt.Stringer, e.g. "GF(5)".
func (f *Prime) String() string { return f.label }

// Zero returns 0.
func (f *Prime) Zero() uint256.Int { return uint256.Int{} }

// One returns 1.
func (f *Prime) One() uint256.Int { return *uint256.NewInt(1) }

// Add returns a + b mod p.
func (f *Prime) Add(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.AddMod(&a, &b, &f.p)

	return z
}

// Neg returns p − a, or 0 for a == 0.
func (f *Prime) Neg(a uint256.Int) uint256.Int {
	if a.IsZero() {
		return a
	}
	var z uint256.Int
	z.Sub(&f.p, &a)

	return z
}

// Mul returns a · b mod p.
func (f *Prime) Mul(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.MulMod(&a, &b, &f.p)

	return z
}

// Inv returns a^(p−2) mod p by square-and-multiply (Fermat's little theorem).
func (f *Prime) Inv(a uint256.Int) (uint256.Int, error) {
	if a.IsZero() {
		return uint256.Int{}, ErrZeroInverse
	}
	result := *uint256.NewInt(1)
	base := a
	e := f.pm2
	for !e.IsZero() {
		if e[0]&1 == 1 {
			result.MulMod(&result, &base, &f.p)
		}
		base.MulMod(&base, &base, &f.p)
		e.Rsh(&e, 1)
	}

	return result, nil
}

// IsZero reports a == 0.
func (f *Prime) IsZero(a uint256.Int) bool { return a.IsZero() }

// IsOne reports a == 1.
func (f *Prime) IsOne(a uint256.Int) bool { return a.IsUint64() && a.Uint64() == 1 }

// Equal reports a == b.
func (f *Prime) Equal(a, b uint256.Int) bool { return a.Eq(&b) }

// Int reduces the signed integer n into [0, p).
func (f *Prime) Int(n int64) uint256.Int {
	b := big.NewInt(n)
	b.Mod(b, f.bigP) // Euclidean modulus: always non-negative
	z, _ := uint256.FromBig(b)

	return *z
}

// Uint returns n mod p.
func (f *Prime) Uint(n uint64) uint256.Int {
	var z uint256.Int
	z.SetUint64(n)
	z.Mod(&z, &f.p)

	return z
}
