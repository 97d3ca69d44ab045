package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {

	t.Run("Log", func(t *testing.T) {
		y, _ := Log(NewFloat(1.4142135623730951, 53)).Float64()
		require.InDelta(t, math.Log(1.4142135623730951), y, 1e-15)
	})

	t.Run("Log2Int", func(t *testing.T) {
		y, _ := Log2Int(big.NewInt(1024), 64).Float64()
		require.InDelta(t, 10.0, y, 1e-12)

		y, _ = Log2Int(big.NewInt(1), 64).Float64()
		require.InDelta(t, 0.0, y, 1e-12)

		x := new(big.Int).Lsh(big.NewInt(3), 200)
		y, _ = Log2Int(x, 128).Float64()
		require.InDelta(t, 200+math.Log2(3), y, 1e-9)

		require.True(t, Log2Int(new(big.Int), 64).IsInf())
		require.Panics(t, func() { Log2Int(big.NewInt(-1), 64) })
	})

	t.Run("Sqrt", func(t *testing.T) {
		y, _ := Sqrt(big.NewInt(49), 64).Float64()
		require.Equal(t, 7.0, y)
	})

	t.Run("NewFloat/InvalidType", func(t *testing.T) {
		require.Panics(t, func() { NewFloat("1", 53) })
	})
}

func TestInt(t *testing.T) {

	t.Run("NewInt", func(t *testing.T) {
		require.Equal(t, "-5", NewInt(-5).String())
		require.Equal(t, "18446744073709551615", NewInt(uint64(math.MaxUint64)).String())
		require.Equal(t, "255", NewInt("0xff").String())
		require.Panics(t, func() { NewInt("0xzz") })
		require.Panics(t, func() { NewInt(1.5) })
	})

	t.Run("Uint128", func(t *testing.T) {
		require.Equal(t, "18446744073709551617", NewIntFromUint128(1, 1).String())
		require.Equal(t, "340282366920938463463374607431768211455", NewIntFromUint128(math.MaxUint64, math.MaxUint64).String())
	})

	t.Run("Int128", func(t *testing.T) {
		require.Equal(t, "-1", NewIntFromInt128(math.MaxUint64, math.MaxUint64).String())
		require.Equal(t, "5", NewIntFromInt128(0, 5).String())
		require.Equal(t, "-170141183460469231731687303715884105728", NewIntFromInt128(1<<63, 0).String())
	})

	t.Run("CenteredMod", func(t *testing.T) {
		q := big.NewInt(7)
		y := new(big.Int)
		for x, want := range map[int64]int64{0: 0, 3: 3, 4: -3, 6: -1, -1: -1, -4: 3, 14: 0} {
			require.Equal(t, want, CenteredMod(big.NewInt(x), q, y).Int64(), x)
		}
		// even modulus: q/2 is kept positive
		require.Equal(t, int64(4), CenteredMod(big.NewInt(4), big.NewInt(8), y).Int64())
		require.Equal(t, int64(-3), CenteredMod(big.NewInt(5), big.NewInt(8), y).Int64())
	})
}
