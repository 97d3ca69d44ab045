// Package utils implements various helper functions.
package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// BitReverse64 returns the bit-reverse value of the input value, within a context of 2^bitLen.
func BitReverse64(index uint64, bitLen int) uint64 {
	if bitLen == 0 {
		return 0
	}
	return bits.Reverse64(index) >> (64 - bitLen)
}

// IsPowerOfTwo returns true if x is a strictly positive power of two.
func IsPowerOfTwo[T constraints.Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns floor(log2(x)) for x > 0, and 0 otherwise.
func Log2[T constraints.Unsigned](x T) int {
	if x == 0 {
		return 0
	}
	return bits.Len64(uint64(x)) - 1
}

// Max returns the maximum value of the input.
func Max[V constraints.Ordered](a, b V) V {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum value of the input.
func Min[V constraints.Ordered](a, b V) V {
	if a < b {
		return a
	}
	return b
}
