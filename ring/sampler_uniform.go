package ring

import (
	"fmt"
	"math/big"

	"github.com/latticefold/starkrings/utils/sampling"
)

// UniformSampler samples elements of R uniformly from a PRNG.
// A UniformSampler must not be used concurrently.
type UniformSampler[R Convertible[R]] struct {
	prng    sampling.PRNG
	modulus *big.Int
}

// NewUniformSampler creates a new UniformSampler reading its randomness from prng.
func NewUniformSampler[R Convertible[R]](prng sampling.PRNG) *UniformSampler[R] {
	return &UniformSampler[R]{
		prng:    prng,
		modulus: Modulus[R](),
	}
}

// WithPRNG returns a copy of the sampler reading from prng.
func (u *UniformSampler[R]) WithPRNG(prng sampling.PRNG) *UniformSampler[R] {
	return &UniformSampler[R]{
		prng:    prng,
		modulus: u.modulus,
	}
}

// Read returns a uniform element of R.
func (u *UniformSampler[R]) Read() R {

	var zero R

	if u.modulus.IsUint64() {
		return zero.FromUnsignedInt(new(big.Int).SetUint64(sampling.ReadUint64N(u.prng, u.modulus.Uint64())))
	}

	return zero.FromUnsignedInt(sampling.ReadInt(u.prng, u.modulus))
}

// ReadSlice fills v with uniform elements of R.
func (u *UniformSampler[R]) ReadSlice(v []R) {
	for i := range v {
		v[i] = u.Read()
	}
}

// ReadNew returns a new slice of n uniform elements of R.
func (u *UniformSampler[R]) ReadNew(n int) (v []R) {
	v = make([]R, n)
	u.ReadSlice(v)
	return
}

// ReadBounded returns an element whose SignedInt is uniform in [-bound, bound].
// Panics if 2*bound+1 does not fit the modulus, since values would wrap around.
func (u *UniformSampler[R]) ReadBounded(bound uint64) R {

	width := new(big.Int).SetUint64(bound)
	width.Lsh(width, 1).Add(width, big.NewInt(1))

	if width.Cmp(u.modulus) > 0 {
		panic(fmt.Errorf("cannot ReadBounded: 2*%d+1 exceeds the modulus %v", bound, u.modulus))
	}

	v := sampling.ReadInt(u.prng, width)
	v.Sub(v, new(big.Int).SetUint64(bound))

	var zero R
	return zero.FromSignedInt(v)
}
