package cyclotomic

import (
	"github.com/google/go-cmp/cmp"
	"github.com/latticefold/starkrings/ring"
)

// NTT is an element of F[X]/(X^N+1) in evaluation form, the image of a Poly by CRT.
// With a transform of L layers, the slots form 2^L blocks of N/2^L contiguous values,
// each holding the residue of the polynomial modulo one factor of X^N+1.
type NTT[F ring.Convertible[F], C Config[F]] struct {
	Coeffs []F
}

// NewNTT returns the evaluation form of the zero polynomial.
func NewNTT[F ring.Convertible[F], C Config[F]]() NTT[F, C] {
	return NTT[F, C]{Coeffs: make([]F, degree[F, C]())}
}

// CopyNew returns a deep copy of p.
func (p NTT[F, C]) CopyNew() NTT[F, C] {
	return NTT[F, C]{Coeffs: copyCoeffs(p.Coeffs)}
}

// Equal returns true if p and other have the same slots.
func (p NTT[F, C]) Equal(other NTT[F, C]) bool {
	return cmp.Equal(p.Coeffs, other.Coeffs)
}

// Add returns p + other.
func (p NTT[F, C]) Add(other NTT[F, C]) NTT[F, C] {
	return NTT[F, C]{Coeffs: addCoeffs("Add", p.Coeffs, other.Coeffs)}
}

// Sub returns p - other.
func (p NTT[F, C]) Sub(other NTT[F, C]) NTT[F, C] {
	return NTT[F, C]{Coeffs: subCoeffs("Sub", p.Coeffs, other.Coeffs)}
}

// Mul returns p * other.
func (p NTT[F, C]) Mul(other NTT[F, C]) NTT[F, C] {
	out := make([]F, len(p.Coeffs))
	transformer[F, C]().MulCoeffs(p.Coeffs, other.Coeffs, out)
	return NTT[F, C]{Coeffs: out}
}

// ICRT returns the coefficient form of p.
// Panics if len(p.Coeffs) is not the degree of the ring.
func (p NTT[F, C]) ICRT() Poly[F, C] {
	coeffs := copyCoeffs(p.Coeffs)
	transformer[F, C]().Backward(coeffs)
	return Poly[F, C](NTT[F, C]{Coeffs: coeffs})
}
