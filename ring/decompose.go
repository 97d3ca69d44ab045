package ring

import (
	"fmt"
	"math/big"

	"github.com/latticefold/starkrings/utils"
)

// Decompose returns the balanced base-b decomposition of x: the shortest digit vector d such that
// sum d[i] * b^i equals x.SignedInt() over the integers, with |d[i].SignedInt()| <= b/2.
// Digits lie in (-b/2, b/2], except that a remainder of exactly b/2 takes the sign of the value
// being decomposed, so that Decompose(-x) is the negation of Decompose(x).
// If padding is larger than the natural number of digits, the vector is extended with zeros up
// to padding; it is never truncated. The zero element decomposes to an empty vector.
// Panics if base < 2.
func Decompose[R Convertible[R]](x R, base uint64, padding int) (digits []R) {

	if base < 2 {
		panic(fmt.Errorf("cannot Decompose: base must be at least 2 but is %d", base))
	}

	var zero R

	b := new(big.Int).SetUint64(base)
	v := x.SignedInt()
	r, tmp := new(big.Int), new(big.Int)

	for v.Sign() != 0 {
		balancedStep(v, b, r, tmp)
		digits = append(digits, zero.FromSignedInt(r))
	}

	return utils.PadSlice(digits, padding)
}

// DecomposeVec applies Decompose to each element of xs.
// The i-th output is the decomposition of xs[i].
func DecomposeVec[R Convertible[R]](xs []R, base uint64, padding int) (digits [][]R) {
	digits = make([][]R, len(xs))
	for i := range xs {
		digits[i] = Decompose(xs[i], base, padding)
	}
	return
}

// Recompose returns sum digits[i].SignedInt() * b^i over the integers.
func Recompose[R Convertible[R]](digits []R, base uint64) (v *big.Int) {

	b := new(big.Int).SetUint64(base)
	v = new(big.Int)

	for i := len(digits) - 1; i >= 0; i-- {
		v.Mul(v, b)
		v.Add(v, digits[i].SignedInt())
	}

	return
}

// DigitCount returns the largest natural length of Decompose(x, base, 0) over the
// elements whose SignedInt has absolute value at most bound, that is the padding that
// gives all of them the same length.
// Panics if base < 2.
func DigitCount(bound *big.Int, base uint64) int {

	if base < 2 {
		panic(fmt.Errorf("cannot DigitCount: base must be at least 2 but is %d", base))
	}

	// Values with at most k balanced digits form an interval symmetric around zero,
	// so |bound| needs the most digits.
	b := new(big.Int).SetUint64(base)
	v := new(big.Int).Abs(bound)
	r, tmp := new(big.Int), new(big.Int)

	var n int

	for v.Sign() != 0 {
		balancedStep(v, b, r, tmp)
		n++
	}

	return n
}

// balancedStep sets r to the remainder of v mod b centred in [-b/2, b/2]
// and v to the exact quotient (v - r) / b.
func balancedStep(v, b, r, tmp *big.Int) {

	// Euclidean remainder in [0, b-1]
	r.Mod(v, b)

	// A tie at b/2 follows the sign of v, otherwise -1 in base 2 never terminates.
	if c := tmp.Lsh(r, 1).Cmp(b); c > 0 || (c == 0 && v.Sign() < 0) {
		r.Sub(r, b)
	}

	v.Sub(v, r)
	v.Quo(v, b)
}
