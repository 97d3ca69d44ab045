// Package ring implements the capabilities shared by every ring element of the library
// (ring operations and conversion to arbitrary precision integers) together with the
// algorithms written once on top of them: balanced decomposition, L2/Linf norms, the
// CRT/ICRT capability and the negacyclic number theoretic transform.
package ring

import (
	"fmt"
	"math/big"
)

// Ring is the capability of a commutative ring element R.
// The zero value of R must be the additive identity.
type Ring[R any] interface {
	comparable
	Add(R) R
	Sub(R) R
	Mul(R) R
	Neg() R
	IsZero() bool
	// One returns the multiplicative identity, independently of the receiver.
	One() R
}

// Convertible is a Ring whose elements convert losslessly to and from
// arbitrary precision integers.
//
// UnsignedInt returns the representative in [0, q-1] and SignedInt the
// representative in [-(q-1)/2, (q-1)/2]. FromUnsignedInt and FromSignedInt
// ignore their receiver, reduce their argument modulo q and are the inverses of
// the former: x.FromSignedInt(x.SignedInt()) == x.
// UnsignedInt and SignedInt return newly allocated integers that the caller may modify.
type Convertible[R any] interface {
	Ring[R]
	UnsignedInt() *big.Int
	SignedInt() *big.Int
	FromUnsignedInt(*big.Int) R
	FromSignedInt(*big.Int) R
}

// Zero returns the additive identity of R.
func Zero[R Ring[R]]() (zero R) {
	return
}

// One returns the multiplicative identity of R.
func One[R Ring[R]]() R {
	var zero R
	return zero.One()
}

// Modulus returns the characteristic q of R, computed as (-1) + 1 over the integers.
func Modulus[R Convertible[R]]() *big.Int {
	q := One[R]().Neg().UnsignedInt()
	return q.Add(q, big.NewInt(1))
}

// FromInt64 returns the element of R congruent to x.
func FromInt64[R Convertible[R]](x int64) R {
	var zero R
	return zero.FromSignedInt(big.NewInt(x))
}

// Exp returns x^e by square and multiply. e must be non-negative.
func Exp[R Ring[R]](x R, e *big.Int) R {

	if e.Sign() < 0 {
		panic(fmt.Errorf("cannot Exp: negative exponent %v", e))
	}

	acc := x.One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc = acc.Mul(acc)
		if e.Bit(i) == 1 {
			acc = acc.Mul(x)
		}
	}

	return acc
}

// ExpUint64 returns x^e.
func ExpUint64[R Ring[R]](x R, e uint64) R {
	return Exp(x, new(big.Int).SetUint64(e))
}

// Inverse returns x^-1 = x^(q-2), which requires R to be a prime field.
// Panics if x is zero.
func Inverse[R Convertible[R]](x R) R {

	if x.IsZero() {
		panic(fmt.Errorf("cannot Inverse: zero has no inverse"))
	}

	e := Modulus[R]()
	return Exp(x, e.Sub(e, big.NewInt(2)))
}

// Sum returns the sum of the elements of v.
func Sum[R Ring[R]](v []R) (acc R) {
	for i := range v {
		acc = acc.Add(v[i])
	}
	return
}

// InnerProduct returns sum a[i] * b[i].
// Panics if a and b have different lengths.
func InnerProduct[R Ring[R]](a, b []R) (acc R) {

	if len(a) != len(b) {
		panic(fmt.Errorf("cannot InnerProduct: len(a)=%d != len(b)=%d", len(a), len(b)))
	}

	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return
}
