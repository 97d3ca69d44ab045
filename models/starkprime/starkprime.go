// Package starkprime implements the cyclotomic ring F_q[X]/(X^N+1) with q = 2^251+17*2^192+1,
// the STARK prime, and N = 16.
package starkprime

import (
	"math/big"

	"github.com/latticefold/starkrings/cyclotomic"
	"github.com/latticefold/starkrings/field"
	"github.com/latticefold/starkrings/models"
	"github.com/latticefold/starkrings/ring"
	"github.com/latticefold/starkrings/utils/bignum"
)

// N is the degree of the ring.
const N = 16

// q = 2^251 + 17*2^192 + 1
var q = bignum.NewInt("3618502788666131213697322783095070105623107215331596699973092056135872020481")

// Q returns a copy of the modulus of the field.
func Q() *big.Int {
	return new(big.Int).Set(q)
}

type modulus struct{}

func (modulus) Modulus() *big.Int { return q }

// Fp is an element of F_q.
type Fp = field.Fp256[modulus]

// Config binds the ring to its degree and NTT table.
type Config struct{}

var nttTable = models.MustNTTTable[Fp](N)

// Degree returns N.
func (Config) Degree() int { return N }

// Transformer returns the precomputed NTT table of the ring.
func (Config) Transformer() ring.NumberTheoreticTransformer[Fp] { return nttTable }

type (
	// RqPoly is an element of the ring in coefficient form.
	RqPoly = cyclotomic.Poly[Fp, Config]
	// RqNTT is an element of the ring in evaluation form.
	RqNTT = cyclotomic.NTT[Fp, Config]
)

// NewFp returns v mod q.
func NewFp(v int64) Fp {
	return field.NewFp256[modulus](big.NewInt(v))
}

// NewFpFromBigInt returns v mod q.
func NewFpFromBigInt(v *big.Int) Fp {
	return field.NewFp256[modulus](v)
}

// NewPoly returns the zero polynomial of the ring.
func NewPoly() RqPoly {
	return cyclotomic.NewPoly[Fp, Config]()
}
