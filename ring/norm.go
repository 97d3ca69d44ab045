package ring

import (
	"math/big"

	"github.com/latticefold/starkrings/utils/bignum"
)

// WithL2Norm is implemented by elements with a squared Euclidean norm.
type WithL2Norm interface {
	L2NormSquared() *big.Int
}

// WithLinfNorm is implemented by elements with an infinity norm.
type WithLinfNorm interface {
	LinfNorm() *big.Int
}

// L2NormSquared returns x.SignedInt()^2.
func L2NormSquared[R Convertible[R]](x R) *big.Int {
	v := x.SignedInt()
	return v.Mul(v, v)
}

// LinfNorm returns |x.SignedInt()|.
func LinfNorm[R Convertible[R]](x R) *big.Int {
	v := x.SignedInt()
	return v.Abs(v)
}

// L2NormSquaredVec returns the sum of the squared L2 norms of the elements of v.
func L2NormSquaredVec[R Convertible[R]](v []R) (norm *big.Int) {
	norm = new(big.Int)
	for i := range v {
		norm.Add(norm, L2NormSquared(v[i]))
	}
	return
}

// LinfNormVec returns the maximum of the infinity norms of the elements of v, or 0 if v is empty.
func LinfNormVec[R Convertible[R]](v []R) (norm *big.Int) {
	norm = new(big.Int)
	for i := range v {
		if c := LinfNorm(v[i]); c.Cmp(norm) > 0 {
			norm = c
		}
	}
	return
}

// L2Norm returns the Euclidean norm of x with prec bits of precision.
func L2Norm(x WithL2Norm, prec uint) *big.Float {
	return bignum.Sqrt(x.L2NormSquared(), prec)
}

// NormBits returns log2(norm) with prec bits of precision, the quantity protocols
// compare against their norm bounds. Returns -Inf for a zero norm.
func NormBits(norm *big.Int, prec uint) *big.Float {
	return bignum.Log2Int(norm, prec)
}
