package cyclotomic

import (
	"math/big"

	"github.com/latticefold/starkrings/ring"
)

// L2NormSquared returns the sum of the squared centered coefficients of p.
func (p Poly[F, C]) L2NormSquared() *big.Int {
	return ring.L2NormSquaredVec(p.Coeffs)
}

// LinfNorm returns the largest absolute centered coefficient of p.
func (p Poly[F, C]) LinfNorm() *big.Int {
	return ring.LinfNormVec(p.Coeffs)
}
