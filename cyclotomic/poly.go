package cyclotomic

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/latticefold/starkrings/ring"
)

// Poly is an element of F[X]/(X^N+1) in coefficient form:
// Coeffs[i] is the coefficient of X^i.
type Poly[F ring.Convertible[F], C Config[F]] struct {
	Coeffs []F
}

// NewPoly returns the zero polynomial.
func NewPoly[F ring.Convertible[F], C Config[F]]() Poly[F, C] {
	return Poly[F, C]{Coeffs: make([]F, degree[F, C]())}
}

// NewPolyFromCoeffs returns a polynomial owning a copy of coeffs.
// Returns an error if len(coeffs) is not the degree of the ring.
func NewPolyFromCoeffs[F ring.Convertible[F], C Config[F]](coeffs []F) (p Poly[F, C], err error) {

	if N := degree[F, C](); len(coeffs) != N {
		return p, fmt.Errorf("invalid coefficients: len(coeffs)=%d but the ring degree is %d", len(coeffs), N)
	}

	p.Coeffs = make([]F, len(coeffs))
	copy(p.Coeffs, coeffs)
	return
}

// Degree returns N, the number of coefficients of the polynomial.
func (p Poly[F, C]) Degree() int {
	return degree[F, C]()
}

// CopyNew returns a deep copy of p.
func (p Poly[F, C]) CopyNew() Poly[F, C] {
	return Poly[F, C]{Coeffs: copyCoeffs(p.Coeffs)}
}

// Equal returns true if p and other have the same coefficients.
func (p Poly[F, C]) Equal(other Poly[F, C]) bool {
	return cmp.Equal(p.Coeffs, other.Coeffs)
}

// IsZero returns true if all coefficients of p are zero.
func (p Poly[F, C]) IsZero() bool {
	for i := range p.Coeffs {
		if !p.Coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// Add returns p + other.
func (p Poly[F, C]) Add(other Poly[F, C]) Poly[F, C] {
	return Poly[F, C]{Coeffs: addCoeffs("Add", p.Coeffs, other.Coeffs)}
}

// Sub returns p - other.
func (p Poly[F, C]) Sub(other Poly[F, C]) Poly[F, C] {
	return Poly[F, C]{Coeffs: subCoeffs("Sub", p.Coeffs, other.Coeffs)}
}

// Neg returns -p.
func (p Poly[F, C]) Neg() Poly[F, C] {
	out := make([]F, len(p.Coeffs))
	for i := range out {
		out[i] = p.Coeffs[i].Neg()
	}
	return Poly[F, C]{Coeffs: out}
}

// MulScalar returns c * p.
func (p Poly[F, C]) MulScalar(c F) Poly[F, C] {
	out := make([]F, len(p.Coeffs))
	for i := range out {
		out[i] = p.Coeffs[i].Mul(c)
	}
	return Poly[F, C]{Coeffs: out}
}

// Mul returns p * other mod X^N+1, computed in evaluation form.
func (p Poly[F, C]) Mul(other Poly[F, C]) Poly[F, C] {
	return p.CRT().Mul(other.CRT()).ICRT()
}

// CRT returns the evaluation form of p.
// Panics if len(p.Coeffs) is not the degree of the ring.
func (p Poly[F, C]) CRT() NTT[F, C] {
	coeffs := copyCoeffs(p.Coeffs)
	transformer[F, C]().Forward(coeffs)
	return NTT[F, C](Poly[F, C]{Coeffs: coeffs})
}

func copyCoeffs[F any](coeffs []F) []F {
	out := make([]F, len(coeffs))
	copy(out, coeffs)
	return out
}

func addCoeffs[F ring.Ring[F]](op string, a, b []F) []F {
	checkLengths(op, a, b)
	out := make([]F, len(a))
	for i := range out {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func subCoeffs[F ring.Ring[F]](op string, a, b []F) []F {
	checkLengths(op, a, b)
	out := make([]F, len(a))
	for i := range out {
		out[i] = a[i].Sub(b[i])
	}
	return out
}

func checkLengths[F any](op string, a, b []F) {
	if len(a) != len(b) {
		panic(fmt.Errorf("cannot %s: operands have %d and %d coefficients", op, len(a), len(b)))
	}
}
