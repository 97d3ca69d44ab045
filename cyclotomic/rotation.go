package cyclotomic

import (
	"fmt"
)

// MultiplyByXi returns the coefficients of p(X) * X^i mod X^N+1.
//
// Since X^N = -1, a coefficient moved past X^(N-1) wraps around with its sign flipped.
// i is taken modulo 2N (X^(2N) = 1), negative values included.
// Panics if len(p.Coeffs) is not the degree of the ring.
func (p Poly[F, C]) MultiplyByXi(i int) []F {

	N := p.Degree()

	if len(p.Coeffs) != N {
		panic(fmt.Errorf("cannot MultiplyByXi: len(p.Coeffs)=%d != N=%d", len(p.Coeffs), N))
	}

	k := i % (2 * N)
	if k < 0 {
		k += 2 * N
	}

	out := make([]F, N)

	for j, c := range p.Coeffs {
		switch dst := j + k; {
		case dst < N:
			out[dst] = c
		case dst < 2*N:
			out[dst-N] = c.Neg()
		default:
			out[dst-2*N] = c
		}
	}

	return out
}

// Rotate returns p(X) * X^i mod X^N+1.
func (p Poly[F, C]) Rotate(i int) Poly[F, C] {
	return Poly[F, C]{Coeffs: p.MultiplyByXi(i)}
}
