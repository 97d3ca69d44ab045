// Package goldilocks implements the cyclotomic ring F_q[X]/(X^N+1) with q = 2^64-2^32+1 the Goldilocks prime and N = 64.
// The field contains the 128-th roots of unity, so the NTT splits X^64+1 completely.
package goldilocks

import (
	"github.com/latticefold/starkrings/cyclotomic"
	"github.com/latticefold/starkrings/field"
	"github.com/latticefold/starkrings/models"
	"github.com/latticefold/starkrings/ring"
)

const (
	// Q is the modulus of the field.
	Q = 0xFFFFFFFF00000001
	// N is the degree of the ring.
	N = 64
)

type modulus struct{}

func (modulus) Modulus() uint64 { return Q }

// Fp is an element of F_q.
type Fp = field.Fp64[modulus]

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

// NewFp returns v mod Q.
func NewFp(v int64) Fp {
	return field.NewFp64FromInt64[modulus](v)
}

// NewPoly returns the zero polynomial of the ring.
func NewPoly() RqPoly {
	return cyclotomic.NewPoly[Fp, Config]()
}
