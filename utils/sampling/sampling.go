// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// ReadUint64 reads 8 bytes from prng and returns them as a little-endian uint64.
// Panics if the PRNG fails, which only happens if the source of randomness is broken.
func ReadUint64(prng PRNG) uint64 {
	var b [8]byte
	if _, err := prng.Read(b[:]); err != nil {
		panic(fmt.Errorf("cannot ReadUint64: %w", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// ReadUint64N returns a uniform value in [0, n-1] by rejection sampling over
// the smallest power-of-two range covering n.
func ReadUint64N(prng PRNG, n uint64) uint64 {

	if n == 0 {
		panic(fmt.Errorf("cannot ReadUint64N: n must be strictly positive"))
	}

	mask := uint64(1)<<uint64(bitLen64(n-1)) - 1

	for {
		if x := ReadUint64(prng) & mask; x < n {
			return x
		}
	}
}

// ReadInt returns a uniform *big.Int in [0, max-1] by rejection sampling.
// The random bytes are read big-endian and masked to the bit-length of max-1.
func ReadInt(prng PRNG, max *big.Int) (n *big.Int) {

	if max.Sign() <= 0 {
		panic(fmt.Errorf("cannot ReadInt: max must be strictly positive"))
	}

	bound := new(big.Int).Sub(max, big.NewInt(1))
	bitLen := bound.BitLen()
	buf := make([]byte, (bitLen+7)>>3)

	// Mask of the most significant byte
	var mask byte = 0xFF
	if r := bitLen & 7; r != 0 {
		mask = byte(1<<r) - 1
	}

	n = new(big.Int)

	for {
		if _, err := prng.Read(buf); err != nil {
			panic(fmt.Errorf("cannot ReadInt: %w", err))
		}

		if len(buf) > 0 {
			buf[0] &= mask
		}

		if n.SetBytes(buf).Cmp(max) < 0 {
			return
		}
	}
}

func bitLen64(x uint64) (n int) {
	for ; x != 0; x >>= 1 {
		n++
	}
	return
}
