package ring

import (
	"fmt"
	"math/big"

	"github.com/latticefold/starkrings/utils"
)

// NumberTheoreticTransformer is an interface to provide flexibility on what
// transform realizes the Chinese Remainder map of a cyclotomic ring.
// Forward and Backward operate in place on a slice of exactly N coefficients.
type NumberTheoreticTransformer[F any] interface {
	Forward(coeffs []F)
	Backward(coeffs []F)
	// MulCoeffs writes on out the product of a and b in evaluation form.
	MulCoeffs(a, b, out []F)
}

// NTTTable stores the constants of the negacyclic NTT over F[X]/(X^N+1).
//
// The transform runs Layers rounds of Cooley-Tukey butterflies, splitting X^N+1 into
// 2^Layers factors X^BlockSize - Gammas[i]. Layers is log2(N) when F contains a primitive
// 2N-th root of unity (full splitting), and otherwise the largest value allowed by the
// 2-adicity of q-1. In evaluation form, coefficients [i*BlockSize, (i+1)*BlockSize) hold
// the residue modulo X^BlockSize - Gammas[i].
type NTTTable[F Convertible[F]] struct {
	N         int
	Layers    int
	BlockSize int

	// PrimitiveRoot is a primitive 2^(Layers+1)-th root of unity.
	PrimitiveRoot F

	// RootsForward[k] = PrimitiveRoot^bitrev(k) and RootsBackward[k] = RootsForward[k]^-1,
	// with bitrev over Layers bits.
	RootsForward  []F
	RootsBackward []F

	// Gammas[i] = PrimitiveRoot^(2*bitrev(i)+1).
	Gammas []F

	// NInv = (2^Layers)^-1.
	NInv F
}

// NewNTTTable generates the NTT constants of F[X]/(X^N+1).
// Returns an error if N is not a power of two or if the characteristic of F is not an odd prime.
func NewNTTTable[F Convertible[F]](N int) (t *NTTTable[F], err error) {

	if !utils.IsPowerOfTwo(N) {
		return nil, fmt.Errorf("invalid ring degree: must be a power of 2 but is %d", N)
	}

	q := Modulus[F]()

	if q.Bit(0) == 0 || !q.ProbablyPrime(20) {
		return nil, fmt.Errorf("invalid modulus: %v is not an odd prime", q)
	}

	qm1 := new(big.Int).Sub(q, big.NewInt(1))

	t = new(NTTTable[F])
	t.N = N
	t.Layers = utils.Min(utils.Log2(uint64(N)), int(qm1.TrailingZeroBits())-1)
	t.BlockSize = N >> t.Layers

	if t.PrimitiveRoot, err = primitiveTwoPowerRoot[F](qm1, t.Layers+1); err != nil {
		return nil, err
	}

	order := 1 << (t.Layers + 1)
	blocks := 1 << t.Layers

	// pows[e] = PrimitiveRoot^e for e in [0, order)
	pows := make([]F, order)
	pows[0] = One[F]()
	for e := 1; e < order; e++ {
		pows[e] = pows[e-1].Mul(t.PrimitiveRoot)
	}

	t.RootsForward = make([]F, blocks)
	t.RootsBackward = make([]F, blocks)
	t.Gammas = make([]F, blocks)

	for k := 0; k < blocks; k++ {
		e := int(utils.BitReverse64(uint64(k), t.Layers))
		t.RootsForward[k] = pows[e]
		t.RootsBackward[k] = pows[(order-e)%order]
		t.Gammas[k] = pows[2*e+1]
	}

	t.NInv = Inverse(FromInt64[F](int64(blocks)))

	return
}

// primitiveTwoPowerRoot returns an element of multiplicative order exactly 2^logOrder,
// given qm1 = q-1 divisible by 2^logOrder.
func primitiveTwoPowerRoot[F Convertible[F]](qm1 *big.Int, logOrder int) (psi F, err error) {

	e := new(big.Int).Rsh(qm1, uint(logOrder))
	minusOne := One[F]().Neg()
	half := uint64(1) << (logOrder - 1)

	// A quadratic non-residue is always found among the first candidates
	// when q is prime; the bound only guards against malformed fields.
	for g := int64(2); g < 1<<16; g++ {
		psi = Exp(FromInt64[F](g), e)
		if ExpUint64(psi, half) == minusOne {
			return psi, nil
		}
	}

	return psi, fmt.Errorf("invalid modulus: no primitive 2^%d-th root of unity found", logOrder)
}

// Forward evaluates the NTT of coeffs in place.
// Panics if len(coeffs) != N.
func (t *NTTTable[F]) Forward(coeffs []F) {

	if len(coeffs) != t.N {
		panic(fmt.Errorf("cannot Forward: len(coeffs)=%d != N=%d", len(coeffs), t.N))
	}

	k := 1
	for length := t.N >> 1; length >= t.BlockSize && t.Layers > 0; length >>= 1 {
		for start := 0; start < t.N; start += length << 1 {
			psi := t.RootsForward[k]
			k++
			lo := coeffs[start : start+length]
			hi := coeffs[start+length : start+2*length]
			for j := range lo {
				v := psi.Mul(hi[j])
				hi[j] = lo[j].Sub(v)
				lo[j] = lo[j].Add(v)
			}
		}
	}
}

// Backward evaluates the inverse NTT of coeffs in place.
// Panics if len(coeffs) != N.
func (t *NTTTable[F]) Backward(coeffs []F) {

	if len(coeffs) != t.N {
		panic(fmt.Errorf("cannot Backward: len(coeffs)=%d != N=%d", len(coeffs), t.N))
	}

	if t.Layers == 0 {
		return
	}

	for length := t.BlockSize; length <= t.N>>1; length <<= 1 {
		k := t.N / (length << 1)
		for start := 0; start < t.N; start, k = start+length<<1, k+1 {
			psiInv := t.RootsBackward[k]
			lo := coeffs[start : start+length]
			hi := coeffs[start+length : start+2*length]
			for j := range lo {
				u, v := lo[j], hi[j]
				lo[j] = u.Add(v)
				hi[j] = u.Sub(v).Mul(psiInv)
			}
		}
	}

	for i := range coeffs {
		coeffs[i] = coeffs[i].Mul(t.NInv)
	}
}

// MulCoeffs writes on out the product of a and b in evaluation form: slot-wise when the
// transform fully splits, and block-wise modulo X^BlockSize - Gammas[i] otherwise.
// out can alias a or b. Panics if a slice length differs from N.
func (t *NTTTable[F]) MulCoeffs(a, b, out []F) {

	if len(a) != t.N || len(b) != t.N || len(out) != t.N {
		panic(fmt.Errorf("cannot MulCoeffs: len(a)=%d, len(b)=%d, len(out)=%d but N=%d", len(a), len(b), len(out), t.N))
	}

	d := t.BlockSize

	if d == 1 {
		for i := range out {
			out[i] = a[i].Mul(b[i])
		}
		return
	}

	acc := make([]F, d)

	for blk, gamma := range t.Gammas {

		ab, bb := a[blk*d:(blk+1)*d], b[blk*d:(blk+1)*d]

		for i := range acc {
			acc[i] = Zero[F]()
		}

		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				if p := ab[i].Mul(bb[j]); i+j < d {
					acc[i+j] = acc[i+j].Add(p)
				} else {
					// X^d = gamma in this block
					acc[i+j-d] = acc[i+j-d].Add(gamma.Mul(p))
				}
			}
		}

		copy(out[blk*d:(blk+1)*d], acc)
	}
}
