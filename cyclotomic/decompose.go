package cyclotomic

import (
	"math/big"

	"github.com/latticefold/starkrings/ring"
	"github.com/latticefold/starkrings/utils"
)

// Decompose returns the balanced base-b decomposition of p, coefficient-wise:
// out[k] gathers the k-th digit of every coefficient, so that sum_k base^k * out[k] = p.
// The length of out is the largest digit count among the coefficients,
// right-padded with zero polynomials up to padding.
// Panics if base < 2.
func (p Poly[F, C]) Decompose(base uint64, padding int) []Poly[F, C] {

	digits := ring.DecomposeVec(p.Coeffs, base, 0)

	lengths := make([]int, len(digits))
	for i := range digits {
		lengths[i] = len(digits[i])
	}

	out := make([]Poly[F, C], utils.Max(padding, utils.MaxSlice(lengths)))
	for k := range out {
		out[k] = Poly[F, C]{Coeffs: make([]F, len(p.Coeffs))}
		for j := range digits {
			if k < len(digits[j]) {
				out[k].Coeffs[j] = digits[j][k]
			}
		}
	}

	return out
}

// DecomposeVec returns the decomposition of each polynomial of ps, in order.
func DecomposeVec[F ring.Convertible[F], C Config[F]](ps []Poly[F, C], base uint64, padding int) (out [][]Poly[F, C]) {
	out = make([][]Poly[F, C], len(ps))
	for i := range ps {
		out[i] = ps[i].Decompose(base, padding)
	}
	return
}

// Recompose returns sum_k base^k * digits[k].
func Recompose[F ring.Convertible[F], C Config[F]](digits []Poly[F, C], base uint64) Poly[F, C] {

	p := NewPoly[F, C]()

	var b F
	b = b.FromUnsignedInt(new(big.Int).SetUint64(base))

	for k := len(digits) - 1; k >= 0; k-- {
		p = p.MulScalar(b).Add(digits[k])
	}

	return p
}
