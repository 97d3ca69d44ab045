package field

import (
	"encoding/binary"
	"math/big"

	"github.com/latticefold/starkrings/utils/bignum"
)

// Modulus256 is implemented by the types that name an odd prime modulus q < 2^256.
// The returned value is shared and must not be modified.
type Modulus256 interface {
	Modulus() *big.Int
}

// Fp256 is an element of Z_q for the modulus q given by M, stored as four
// little-endian 64-bit limbs of its canonical representative.
// Arithmetic goes through math/big; the limb storage keeps the type comparable.
type Fp256[M Modulus256] struct {
	v [4]uint64
}

func modulus256[M Modulus256]() *big.Int {
	var m M
	return m.Modulus()
}

// NewFp256 returns x mod q.
func NewFp256[M Modulus256](x *big.Int) Fp256[M] {
	return newFp256Reduced[M](new(big.Int).Mod(x, modulus256[M]()))
}

// newFp256Reduced packs x, which must already be in [0, q-1].
func newFp256Reduced[M Modulus256](x *big.Int) (a Fp256[M]) {
	var buf [32]byte
	x.FillBytes(buf[:])
	for i := range a.v {
		a.v[i] = binary.BigEndian.Uint64(buf[24-8*i : 32-8*i])
	}
	return
}

// BigInt returns the canonical representative of a in [0, q-1].
func (a Fp256[M]) BigInt() *big.Int {
	var buf [32]byte
	for i := range a.v {
		binary.BigEndian.PutUint64(buf[24-8*i:32-8*i], a.v[i])
	}
	return new(big.Int).SetBytes(buf[:])
}

// Add returns a + b mod q.
func (a Fp256[M]) Add(b Fp256[M]) Fp256[M] {
	q := modulus256[M]()
	r := a.BigInt()
	r.Add(r, b.BigInt())
	if r.Cmp(q) >= 0 {
		r.Sub(r, q)
	}
	return newFp256Reduced[M](r)
}

// Sub returns a - b mod q.
func (a Fp256[M]) Sub(b Fp256[M]) Fp256[M] {
	r := a.BigInt()
	r.Sub(r, b.BigInt())
	if r.Sign() < 0 {
		r.Add(r, modulus256[M]())
	}
	return newFp256Reduced[M](r)
}

// Mul returns a * b mod q.
func (a Fp256[M]) Mul(b Fp256[M]) Fp256[M] {
	r := a.BigInt()
	r.Mul(r, b.BigInt())
	return newFp256Reduced[M](r.Mod(r, modulus256[M]()))
}

// Neg returns -a mod q.
func (a Fp256[M]) Neg() Fp256[M] {
	if a.IsZero() {
		return a
	}
	return newFp256Reduced[M](new(big.Int).Sub(modulus256[M](), a.BigInt()))
}

// IsZero returns true if a is the additive identity.
func (a Fp256[M]) IsZero() bool {
	return a.v == [4]uint64{}
}

// One returns the multiplicative identity.
func (a Fp256[M]) One() Fp256[M] {
	return Fp256[M]{v: [4]uint64{1}}
}

// Equal returns true if a and b are the same element.
func (a Fp256[M]) Equal(b Fp256[M]) bool {
	return a.v == b.v
}

// UnsignedInt returns the representative of a in [0, q-1].
func (a Fp256[M]) UnsignedInt() *big.Int {
	return a.BigInt()
}

// SignedInt returns the representative of a in [-(q-1)/2, (q-1)/2].
func (a Fp256[M]) SignedInt() *big.Int {
	r := a.BigInt()
	return bignum.CenteredMod(r, modulus256[M](), r)
}

// FromUnsignedInt returns x mod q.
func (a Fp256[M]) FromUnsignedInt(x *big.Int) Fp256[M] {
	return NewFp256[M](x)
}

// FromSignedInt returns x mod q.
func (a Fp256[M]) FromSignedInt(x *big.Int) Fp256[M] {
	return NewFp256[M](x)
}

// String returns the decimal representation of the canonical representative of a.
func (a Fp256[M]) String() string {
	return a.BigInt().String()
}
