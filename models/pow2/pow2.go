// Package pow2 implements a debugging cyclotomic ring F_q[X]/(X^N+1) whose prime q < 2^64
// and power-of-two degree N are chosen by the caller through a Params type:
//
//	type params struct{}
//
//	func (params) Modulus() uint64 { return 17 }
//	func (params) Degree() int     { return 8 }
//
//	p := pow2.NewPoly[params]()
//
// No table is cached: the NTT constants are rebuilt on every transform.
package pow2

import (
	"fmt"

	"github.com/latticefold/starkrings/cyclotomic"
	"github.com/latticefold/starkrings/field"
	"github.com/latticefold/starkrings/ring"
)

// Params names the modulus and the degree of the ring.
type Params interface {
	Modulus() uint64
	Degree() int
}

// Config binds the ring of the parameters P.
type Config[P Params] struct{}

// Degree returns the degree of the ring.
func (Config[P]) Degree() int {
	var p P
	return p.Degree()
}

// Transformer returns a freshly generated NTT table.
// Panics if P is not a valid set of parameters, see CheckParams.
func (Config[P]) Transformer() ring.NumberTheoreticTransformer[field.Fp64[P]] {
	var p P
	table, err := ring.NewNTTTable[field.Fp64[P]](p.Degree())
	if err != nil {
		panic(fmt.Errorf("cannot Transformer: %w", err))
	}
	return table
}

// CheckParams returns an error if the modulus of P is not an odd prime
// or if its degree is not a power of two.
func CheckParams[P Params]() (err error) {
	var p P
	_, err = ring.NewNTTTable[field.Fp64[P]](p.Degree())
	return
}

// NewFp returns v mod q.
func NewFp[P Params](v int64) field.Fp64[P] {
	return field.NewFp64FromInt64[P](v)
}

// NewPoly returns the zero polynomial of the ring.
func NewPoly[P Params]() cyclotomic.Poly[field.Fp64[P], Config[P]] {
	return cyclotomic.NewPoly[field.Fp64[P], Config[P]]()
}

// NewPolyFromInt64 returns the polynomial with coefficients values mod q.
// Returns an error if len(values) differs from the degree of the ring.
func NewPolyFromInt64[P Params](values []int64) (cyclotomic.Poly[field.Fp64[P], Config[P]], error) {
	coeffs := make([]field.Fp64[P], len(values))
	for i, v := range values {
		coeffs[i] = NewFp[P](v)
	}
	return cyclotomic.NewPolyFromCoeffs[field.Fp64[P], Config[P]](coeffs)
}
