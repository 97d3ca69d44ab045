package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		if _, ok := y.SetString(x, 0); !ok {
			panic(fmt.Errorf("cannot NewInt: invalid string %q", x))
		}
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Errorf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// NewIntFromUint128 returns the *big.Int hi * 2^64 + lo.
func NewIntFromUint128(hi, lo uint64) (y *big.Int) {
	y = new(big.Int).SetUint64(hi)
	y.Lsh(y, 64)
	return y.Or(y, new(big.Int).SetUint64(lo))
}

// NewIntFromInt128 returns the *big.Int whose 128-bit two's complement
// representation is (hi, lo).
func NewIntFromInt128(hi, lo uint64) (y *big.Int) {
	y = NewIntFromUint128(hi, lo)
	if hi>>63 == 1 {
		y.Sub(y, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return
}

// CenteredMod sets y to the representative of x mod q in [-(q-1)/2, q/2] and returns y.
// q must be strictly positive.
func CenteredMod(x, q, y *big.Int) *big.Int {
	y.Mod(x, q)
	if new(big.Int).Lsh(y, 1).Cmp(q) > 0 {
		y.Sub(y, q)
	}
	return y
}
