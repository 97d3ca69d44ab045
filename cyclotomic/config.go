// Package cyclotomic implements the power-of-two cyclotomic rings F[X]/(X^N+1) over a
// prime field F, with elements in coefficient form (Poly) and in evaluation form (NTT).
//
// A ring is bound at compile time by a Config type parameter carrying its degree and its
// number theoretic transform, so that elements of different rings cannot be mixed.
package cyclotomic

import (
	"github.com/latticefold/starkrings/ring"
)

// Config binds a cyclotomic ring F[X]/(X^N+1).
// Its methods are called on the zero value of the implementing type
// and must be pure: every call returns the same degree and an equivalent transform.
type Config[F ring.Convertible[F]] interface {
	// Degree returns N, a power of two.
	Degree() int
	// Transformer returns the transform mapping coefficient form to evaluation form.
	Transformer() ring.NumberTheoreticTransformer[F]
}

func degree[F ring.Convertible[F], C Config[F]]() int {
	var c C
	return c.Degree()
}

func transformer[F ring.Convertible[F], C Config[F]]() ring.NumberTheoreticTransformer[F] {
	var c C
	return c.Transformer()
}
