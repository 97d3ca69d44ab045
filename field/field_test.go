package field

import (
	"math"
	"math/big"
	"testing"

	"github.com/latticefold/starkrings/utils/bignum"
	"github.com/stretchr/testify/require"
)

type testModBabyBear struct{}

func (testModBabyBear) Modulus() uint64 { return 2013265921 }

type testModGoldilocks struct{}

func (testModGoldilocks) Modulus() uint64 { return 0xFFFFFFFF00000001 }

type testModFrog struct{}

func (testModFrog) Modulus() uint64 { return 15912092521325583641 }

var testStarkModulus, _ = new(big.Int).SetString("3618502788666131213697322783095070105623107215331596699973092056135872020481", 10)

type testModStark struct{}

func (testModStark) Modulus() *big.Int { return testStarkModulus }

type (
	bb    = Fp64[testModBabyBear]
	gl    = Fp64[testModGoldilocks]
	frog  = Fp64[testModFrog]
	stark = Fp256[testModStark]
)

func bigFromString(t *testing.T, s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return x
}

func TestFp64(t *testing.T) {

	t.Run("Reduction", func(t *testing.T) {
		require.Equal(t, uint64(5), NewFp64[testModBabyBear](2013265926).Uint64())
		require.Equal(t, uint64(2013265920), NewFp64FromInt64[testModBabyBear](-1).Uint64())
		require.Equal(t, uint64(0xFFFFFFFF00000000), NewFp64FromInt64[testModGoldilocks](-1).Uint64())
		require.Equal(t, NewFp64FromInt64[testModGoldilocks](math.MinInt64).Neg(), NewFp64[testModGoldilocks](1<<63))
	})

	t.Run("Add/Sub", func(t *testing.T) {

		qm1 := NewFp64FromInt64[testModGoldilocks](-1)
		require.Equal(t, NewFp64FromInt64[testModGoldilocks](-2), qm1.Add(qm1))

		// The sum overflows 64 bits.
		f2, f3 := NewFp64FromInt64[testModFrog](-2), NewFp64FromInt64[testModFrog](-3)
		require.Equal(t, uint64(15912092521325583636), f2.Add(f3).Uint64())

		require.Equal(t, NewFp64FromInt64[testModBabyBear](-4), NewFp64[testModBabyBear](3).Sub(NewFp64[testModBabyBear](7)))
		require.True(t, qm1.Sub(qm1).IsZero())
		require.True(t, qm1.Add(qm1.Neg()).IsZero())
		require.Equal(t, bb{}, bb{}.Neg())
	})

	t.Run("Mul", func(t *testing.T) {
		require.Equal(t, uint64(6500116), NewFp64[testModBabyBear](123456789).Mul(NewFp64[testModBabyBear](987654321)).Uint64())
		require.Equal(t, uint64(18446744068877713409), NewFp64[testModGoldilocks](1<<63).Mul(NewFp64[testModGoldilocks](1<<62)).Uint64())
		require.Equal(t, gl{}.FromUnsignedInt(bignum.NewIntFromUint128(1<<61, 0)), NewFp64[testModGoldilocks](1<<63).Mul(NewFp64[testModGoldilocks](1<<62)))
		require.Equal(t, uint64(7432351747408847865), NewFp64[testModGoldilocks](12345678901234567890).Mul(NewFp64[testModGoldilocks](9876543210987654321)).Uint64())

		fm1 := NewFp64FromInt64[testModFrog](-1)
		require.Equal(t, frog{}.One(), fm1.Mul(fm1))
		require.Equal(t, uint64(1), NewFp64[testModBabyBear](31).Mul(NewFp64[testModBabyBear](64944062)).Uint64())
	})

	t.Run("Conversion", func(t *testing.T) {

		var zero gl

		require.Equal(t, "-1", NewFp64FromInt64[testModGoldilocks](-1).SignedInt().String())
		require.Equal(t, NewFp64FromInt64[testModGoldilocks](-1), zero.FromSignedInt(bignum.NewIntFromInt128(math.MaxUint64, math.MaxUint64)))
		require.Equal(t, "18446744069414584320", NewFp64FromInt64[testModGoldilocks](-1).UnsignedInt().String())

		// (q-1)/2 is the largest positive representative.
		half := NewFp64[testModGoldilocks](0xFFFFFFFF00000001 >> 1)
		require.Equal(t, "9223372034707292160", half.SignedInt().String())
		require.Equal(t, "-9223372034707292160", half.Add(zero.One()).SignedInt().String())

		require.Equal(t, NewFp64[testModGoldilocks](1), zero.FromUnsignedInt(bigFromString(t, "18446744069414584322")))
		require.Equal(t, NewFp64FromInt64[testModGoldilocks](-2), zero.FromSignedInt(bigFromString(t, "-18446744069414584323")))
		// 2^96 = -1 mod q
		require.Equal(t, zero.One(), zero.FromUnsignedInt(new(big.Int).Lsh(big.NewInt(1), 96)).Neg())
	})

	t.Run("Equal/String", func(t *testing.T) {
		require.True(t, NewFp64[testModBabyBear](2013265921).Equal(bb{}))
		require.False(t, NewFp64[testModBabyBear](1).Equal(bb{}))
		require.Equal(t, "2013265920", NewFp64FromInt64[testModBabyBear](-1).String())
	})
}

func TestFp256(t *testing.T) {

	var zero stark
	p := testStarkModulus

	t.Run("Reduction", func(t *testing.T) {
		require.True(t, NewFp256[testModStark](p).IsZero())
		require.Equal(t, zero.One(), NewFp256[testModStark](new(big.Int).Add(p, big.NewInt(1))))
		require.Equal(t, "1", NewFp256[testModStark](big.NewInt(1)).String())
		require.Equal(t, new(big.Int).Sub(p, big.NewInt(1)).String(), NewFp256[testModStark](big.NewInt(-1)).String())
	})

	t.Run("Arithmetic", func(t *testing.T) {

		m1 := zero.One().Neg()
		m3 := zero.FromSignedInt(big.NewInt(-3))

		require.Equal(t, zero.FromSignedInt(big.NewInt(3)), m1.Mul(m3))
		require.Equal(t, zero.FromSignedInt(big.NewInt(-4)), m1.Add(m3))
		require.Equal(t, zero.FromSignedInt(big.NewInt(2)), m1.Sub(m3))
		require.True(t, m3.Sub(m3).IsZero())
		require.Equal(t, zero, zero.Neg())

		inv5 := zero.FromUnsignedInt(bigFromString(t, "2894802230932904970957858226476056084498485772265277359978473644908697616385"))
		require.Equal(t, zero.One(), inv5.Mul(zero.FromSignedInt(big.NewInt(5))))
	})

	t.Run("Conversion", func(t *testing.T) {

		half := new(big.Int).Rsh(p, 1)

		x := zero.FromUnsignedInt(half)
		require.Equal(t, half.String(), x.SignedInt().String())
		require.Equal(t, new(big.Int).Neg(half).String(), x.Add(zero.One()).SignedInt().String())

		two192 := new(big.Int).Lsh(big.NewInt(1), 192)
		y := zero.FromUnsignedInt(two192)
		require.Equal(t, two192.String(), y.UnsignedInt().String())
		require.Equal(t, y, zero.FromSignedInt(y.SignedInt()))
		require.True(t, y.Equal(y))
		require.False(t, y.Equal(x))
	})
}
