package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func signedInts[R Convertible[R]](v []R) (out []int64) {
	out = make([]int64, len(v))
	for i := range v {
		out[i] = v[i].SignedInt().Int64()
	}
	return
}

func TestDecompose(t *testing.T) {

	t.Run("Example/5/Base3", func(t *testing.T) {
		// 5 = -1 - 1*3 + 1*9
		require.Equal(t, []int64{-1, -1, 1}, signedInts(Decompose(FromInt64[fpBB](5), 3, 0)))
	})

	t.Run("Example/Base4", func(t *testing.T) {
		// 5 = 1 + 1*4, 6 = 2 + 1*4, 7 = -1 + 2*4, -6 = -2 - 1*4
		require.Equal(t, []int64{1, 1}, signedInts(Decompose(FromInt64[fpBB](5), 4, 0)))
		require.Equal(t, []int64{2, 1}, signedInts(Decompose(FromInt64[fpBB](6), 4, 0)))
		require.Equal(t, []int64{-1, 2}, signedInts(Decompose(FromInt64[fpBB](7), 4, 0)))
		require.Equal(t, []int64{-2, -1}, signedInts(Decompose(FromInt64[fpBB](-6), 4, 0)))
	})

	t.Run("Example/Base2", func(t *testing.T) {
		require.Equal(t, []int64{-1}, signedInts(Decompose(FromInt64[fpBB](-1), 2, 0)))
		require.Equal(t, []int64{1, 0, 1}, signedInts(Decompose(FromInt64[fpBB](5), 2, 0)))
		require.Equal(t, []int64{-1, 0, -1}, signedInts(Decompose(FromInt64[fpBB](-5), 2, 0)))
	})

	t.Run("Zero", func(t *testing.T) {
		require.Empty(t, Decompose(Zero[fpBB](), 2, 0))
		require.Equal(t, []fpBB{{}, {}, {}}, Decompose(Zero[fpBB](), 2, 3))
	})

	t.Run("Padding", func(t *testing.T) {
		x := FromInt64[fpBB](-1000)
		natural := Decompose(x, 10, 0)
		require.Len(t, natural, 4)

		padded := Decompose(x, 10, 7)
		require.Len(t, padded, 7)
		require.Equal(t, natural, padded[:4])
		for _, d := range padded[4:] {
			require.True(t, d.IsZero())
		}

		// never truncates
		require.Equal(t, natural, Decompose(x, 10, 2))
	})

	t.Run("Panics", func(t *testing.T) {
		require.Panics(t, func() { Decompose(One[fpBB](), 0, 0) })
		require.Panics(t, func() { Decompose(One[fpBB](), 1, 0) })
	})

	testDecomposeRandom[fp17](t)
	testDecomposeRandom[fpBB](t)
	testDecomposeRandom[fpGL](t)
	testDecomposeRandom[fpStark](t)
}

func testDecomposeRandom[R Convertible[R]](t *testing.T) {

	q := Modulus[R]()

	t.Run(testString("Decompose/Random", q), func(t *testing.T) {

		sampler := NewUniformSampler[R](newTestPRNG(t))

		for _, base := range []uint64{2, 3, 4, 5, 16, 1 << 20, 1<<63 + 1} {

			b := new(big.Int).SetUint64(base)

			for _, x := range sampler.ReadNew(64) {

				digits := Decompose(x, base, 0)

				requireIntEqual(t, x.SignedInt(), Recompose(digits, base), base)

				for _, d := range digits {
					// |2d| <= b, and 2d = -b only for negative values
					twoD := new(big.Int).Lsh(d.SignedInt(), 1)
					require.True(t, new(big.Int).Abs(twoD).Cmp(b) <= 0, "digit %v base %d", d, base)
					if twoD.Cmp(new(big.Int).Neg(b)) == 0 {
						require.Negative(t, x.SignedInt().Sign(), "digit %v base %d", d, base)
					}
				}

				negated := Decompose(x.Neg(), base, 0)
				require.Len(t, negated, len(digits))
				for i := range digits {
					require.Equal(t, digits[i].Neg(), negated[i])
				}

				// minimal: the leading digit is non-zero
				if len(digits) > 0 {
					require.False(t, digits[len(digits)-1].IsZero())
				}

				require.LessOrEqual(t, len(digits), DigitCount(new(big.Int).Rsh(q, 1), base))
			}
		}
	})
}

func TestDecomposeVec(t *testing.T) {
	xs := []fpBB{FromInt64[fpBB](5), Zero[fpBB](), FromInt64[fpBB](-7)}
	digits := DecomposeVec(xs, 3, 4)
	require.Len(t, digits, len(xs))
	for i := range xs {
		require.Equal(t, Decompose(xs[i], 3, 4), digits[i])
		require.Len(t, digits[i], 4)
	}
}

func TestRecompose(t *testing.T) {
	digits := []fpBB{FromInt64[fpBB](-1), FromInt64[fpBB](-1), FromInt64[fpBB](1)}
	requireIntEqual(t, big.NewInt(5), Recompose(digits, 3))
	requireIntEqual(t, new(big.Int), Recompose([]fpBB{}, 3))
}

func TestDigitCount(t *testing.T) {

	for _, base := range []uint64{2, 3, 4, 5, 10} {
		for bound := int64(0); bound < 64; bound++ {

			var want int
			for v := -bound; v <= bound; v++ {
				if n := len(Decompose(FromInt64[fpBB](v), base, 0)); n > want {
					want = n
				}
			}

			require.Equal(t, want, DigitCount(big.NewInt(bound), base), "base=%d bound=%d", base, bound)
			require.Equal(t, want, DigitCount(big.NewInt(-bound), base), "base=%d bound=%d", base, bound)
		}
	}

	require.Panics(t, func() { DigitCount(big.NewInt(1), 1) })
}
