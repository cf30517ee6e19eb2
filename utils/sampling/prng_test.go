package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyreal/utils/sampling"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
	0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

func Test_PRNG(t *testing.T) {

	t.Run("PRNG/Reset", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, testKey, Ha.Key())
	})

	t.Run("PRNG/DistinctKeys", func(t *testing.T) {
		Ha, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(nil)
		require.NoError(t, err)

		sum0 := make([]byte, 64)
		sum1 := make([]byte, 64)
		Ha.Read(sum0)
		Hb.Read(sum1)
		require.NotEqual(t, sum0, sum1)
	})

	t.Run("ThreadSafePRNG", func(t *testing.T) {
		sum := make([]byte, 32)
		n, err := sampling.NewPRNG().Read(sum)
		require.NoError(t, err)
		require.Equal(t, 32, n)
	})
}

func TestRandFloat64(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)

	t.Run("Range", func(t *testing.T) {
		for i := 0; i < 1024; i++ {
			f, err := sampling.RandFloat64(prng, -2, 3)
			require.NoError(t, err)
			require.GreaterOrEqual(t, f, -2.0)
			require.Less(t, f, 3.0)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		pa, _ := sampling.NewKeyedPRNG(testKey)
		pb, _ := sampling.NewKeyedPRNG(testKey)
		a, err := sampling.RandFloat64Slice(pa, 16, -1, 1)
		require.NoError(t, err)
		b, err := sampling.RandFloat64Slice(pb, 16, -1, 1)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}
