package cyclotomic

import (
	"encoding/binary"
	"fmt"

	"github.com/latticefold/starkrings/ring"
	"github.com/latticefold/starkrings/utils/sampling"
	"github.com/zeebo/blake3"
)

const hashKeySize = 32

// NewUniformPoly returns a polynomial with coefficients read from sampler.
func NewUniformPoly[F ring.Convertible[F], C Config[F]](sampler *ring.UniformSampler[F]) Poly[F, C] {
	return Poly[F, C]{Coeffs: sampler.ReadNew(degree[F, C]())}
}

// NewSmallPoly returns a polynomial with coefficients uniform in [-bound, bound].
// Panics if 2*bound+1 exceeds the modulus.
func NewSmallPoly[F ring.Convertible[F], C Config[F]](prng sampling.PRNG, bound uint64) Poly[F, C] {
	sampler := ring.NewUniformSampler[F](prng)
	p := NewPoly[F, C]()
	for i := range p.Coeffs {
		p.Coeffs[i] = sampler.ReadBounded(bound)
	}
	return p
}

// HashToPoly deterministically maps data to a uniform polynomial.
// The inputs are length-prefixed and hashed with blake3, and the digest keys a KeyedPRNG.
func HashToPoly[F ring.Convertible[F], C Config[F]](data ...[]byte) Poly[F, C] {

	hasher := blake3.New()

	var length [8]byte
	for _, d := range data {
		binary.BigEndian.PutUint64(length[:], uint64(len(d)))
		hasher.Write(length[:])
		hasher.Write(d)
	}

	digest := hasher.Sum(nil)

	prng, err := sampling.NewKeyedPRNG(digest[:hashKeySize])
	if err != nil {
		// unreachable: the key is shorter than 64 bytes
		panic(fmt.Errorf("cannot HashToPoly: %w", err))
	}

	return NewUniformPoly[F, C](ring.NewUniformSampler[F](prng))
}
