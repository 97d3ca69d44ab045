// Package field implements prime fields whose modulus is fixed at compile time by a type parameter.
// Elements are small comparable values; their zero value is the additive identity.
package field

import (
	"math/big"
	"math/bits"
	"strconv"
)

// Modulus64 is implemented by the (usually empty) types that name
// an odd prime modulus q < 2^64.
type Modulus64 interface {
	Modulus() uint64
}

// Fp64 is an element of Z_q for the modulus q given by M.
// The value is always kept in canonical form [0, q-1].
type Fp64[M Modulus64] struct {
	v uint64
}

func modulus64[M Modulus64]() uint64 {
	var m M
	return m.Modulus()
}

// NewFp64 returns v mod q.
func NewFp64[M Modulus64](v uint64) Fp64[M] {
	return Fp64[M]{v: v % modulus64[M]()}
}

// NewFp64FromInt64 returns v mod q, with negative values mapped to q - |v| mod q.
func NewFp64FromInt64[M Modulus64](v int64) Fp64[M] {
	if v >= 0 {
		return NewFp64[M](uint64(v))
	}
	// -v overflows for math.MinInt64, ^v + 1 does not when read as unsigned.
	return NewFp64[M](^uint64(v) + 1).Neg()
}

// Uint64 returns the canonical representative of a in [0, q-1].
func (a Fp64[M]) Uint64() uint64 {
	return a.v
}

// Add returns a + b mod q.
func (a Fp64[M]) Add(b Fp64[M]) Fp64[M] {
	q := modulus64[M]()
	s, carry := bits.Add64(a.v, b.v, 0)
	if carry != 0 || s >= q {
		s -= q
	}
	return Fp64[M]{v: s}
}

// Sub returns a - b mod q.
func (a Fp64[M]) Sub(b Fp64[M]) Fp64[M] {
	d, borrow := bits.Sub64(a.v, b.v, 0)
	if borrow != 0 {
		d += modulus64[M]()
	}
	return Fp64[M]{v: d}
}

// Mul returns a * b mod q.
func (a Fp64[M]) Mul(b Fp64[M]) Fp64[M] {
	hi, lo := bits.Mul64(a.v, b.v)
	return Fp64[M]{v: bits.Rem64(hi, lo, modulus64[M]())}
}

// Neg returns -a mod q.
func (a Fp64[M]) Neg() Fp64[M] {
	if a.v == 0 {
		return a
	}
	return Fp64[M]{v: modulus64[M]() - a.v}
}

// IsZero returns true if a is the additive identity.
func (a Fp64[M]) IsZero() bool {
	return a.v == 0
}

// One returns the multiplicative identity.
func (a Fp64[M]) One() Fp64[M] {
	return Fp64[M]{v: 1}
}

// Equal returns true if a and b are the same element.
func (a Fp64[M]) Equal(b Fp64[M]) bool {
	return a.v == b.v
}

// UnsignedInt returns the representative of a in [0, q-1].
func (a Fp64[M]) UnsignedInt() *big.Int {
	return new(big.Int).SetUint64(a.v)
}

// SignedInt returns the representative of a in [-(q-1)/2, (q-1)/2].
func (a Fp64[M]) SignedInt() *big.Int {
	q := modulus64[M]()
	if a.v > q>>1 {
		return new(big.Int).Neg(new(big.Int).SetUint64(q - a.v))
	}
	return new(big.Int).SetUint64(a.v)
}

// FromUnsignedInt returns x mod q.
func (a Fp64[M]) FromUnsignedInt(x *big.Int) Fp64[M] {
	if x.IsUint64() {
		return NewFp64[M](x.Uint64())
	}
	return a.fromBig(x)
}

// FromSignedInt returns x mod q.
func (a Fp64[M]) FromSignedInt(x *big.Int) Fp64[M] {
	if x.IsInt64() {
		return NewFp64FromInt64[M](x.Int64())
	}
	return a.fromBig(x)
}

func (a Fp64[M]) fromBig(x *big.Int) Fp64[M] {
	q := new(big.Int).SetUint64(modulus64[M]())
	return Fp64[M]{v: new(big.Int).Mod(x, q).Uint64()}
}

// String returns the decimal representation of the canonical representative of a.
func (a Fp64[M]) String() string {
	return strconv.FormatUint(a.v, 10)
}
