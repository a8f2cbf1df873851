// SPDX-License-Identifier: MIT

package field

// Field is the capability set an exact solver needs from its coefficient domain.
//
// Every method is pure: results are fresh values and operands are left intact.
// Inv is the only partial operation; it returns ErrZeroInverse for the zero
// element instead of producing a sentinel value.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// Add returns a + b.
	Add(a, b T) T

	// Neg returns the additive inverse −a.
	Neg(a T) T

	// Mul returns a · b.
	Mul(a, b T) T

	// Inv returns a⁻¹, or ErrZeroInverse when a is zero.
	Inv(a T) (T, error)

	// IsZero reports whether a is the additive identity.
	IsZero(a T) bool

	// IsOne reports whether a is the multiplicative identity.
	IsOne(a T) bool

	// Equal reports whether a and b denote the same element.
	Equal(a, b T) bool
}

// Sub returns a − b in f.
func Sub[T any](f Field[T], a, b T) T {
	return f.Add(a, f.Neg(b))
}

// Div returns a / b in f, or ErrZeroInverse when b is zero.
func Div[T any](f Field[T], a, b T) (T, error) {
	inv, err := f.Inv(b)
	if err != nil {
		var zero T
		return zero, err
	}

	return f.Mul(a, inv), nil
}

// MulAdd returns acc + a·b. It is the inner step of every dot product in the solvers.
func MulAdd[T any](f Field[T], acc, a, b T) T {
	return f.Add(acc, f.Mul(a, b))
}

// Sum returns Σ xs[i], or zero for an empty slice.
func Sum[T any](f Field[T], xs ...T) T {
	acc := f.Zero()
	for _, x := range xs {
		acc = f.Add(acc, x)
	}

	return acc
}

// Dot returns Σ a[i]·b[i] over the common prefix of a and b.
// Complexity: O(min(len(a), len(b))) field operations.
func Dot[T any](f Field[T], a, b []T) T {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	acc := f.Zero()
	for i := 0; i < n; i++ {
		acc = MulAdd(f, acc, a[i], b[i])
	}

	return acc
}

// Repeat returns n·one computed by double-and-add, so the cost is O(log |n|).
// It gives every field a canonical embedding of the integers without knowing T.
func Repeat[T any](f Field[T], n int64) T {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-(n + 1)) + 1 // safe for math.MinInt64
	}
	acc, base := f.Zero(), f.One()
	for u > 0 {
		if u&1 == 1 {
			acc = f.Add(acc, base)
		}
		base = f.Add(base, base)
		u >>= 1
	}
	if neg {
		return f.Neg(acc)
	}

	return acc
}
