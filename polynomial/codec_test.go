package polynomial

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {

	loose, err := NewParametersFromLiteral(ParametersLiteral{Tolerance: 1e-6})
	require.NoError(t, err)

	t.Run("MarshalBinary/RoundTrip", func(t *testing.T) {
		prng := newTestPRNG(t)
		for i := 0; i < 8; i++ {
			p := randomPolynomial(t, prng, randomDegree(t, prng, 12)-1)

			data, err := p.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, p.BinarySize())
			require.Equal(t, 16+8*p.Len(), p.BinarySize())

			var q Polynomial
			require.NoError(t, q.UnmarshalBinary(data))
			require.Equal(t, p.Coefficients(), q.Coefficients())
			require.True(t, p.Parameters().Equal(q.Parameters()))
		}
	})

	t.Run("MarshalBinary/Parameters", func(t *testing.T) {
		p := loose.NewPolynomial([]float64{1, -2, 3})

		data, err := p.MarshalBinary()
		require.NoError(t, err)

		var q Polynomial
		require.NoError(t, q.UnmarshalBinary(data))
		require.Equal(t, 1e-6, q.Parameters().Tolerance())
		require.True(t, p.Equal(q))
	})

	t.Run("MarshalBinary/Zero", func(t *testing.T) {
		var p Polynomial

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, 16)

		q := NewPolynomial([]float64{1})
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, q.IsZero())
	})

	t.Run("WriteTo/Stream", func(t *testing.T) {
		p := NewPolynomial([]float64{0.25, 0, -7, 1e-3})
		r := loose.NewPolynomial([]float64{3})

		var stream bytes.Buffer

		n, err := p.WriteTo(&stream)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)

		n, err = r.WriteTo(&stream)
		require.NoError(t, err)
		require.Equal(t, int64(r.BinarySize()), n)

		reader := bytes.NewReader(stream.Bytes())

		var q Polynomial
		_, err = q.ReadFrom(reader)
		require.NoError(t, err)
		require.Equal(t, p.Coefficients(), q.Coefficients())

		data, err := q.MarshalBinary()
		require.NoError(t, err)

		var s Polynomial
		require.NoError(t, s.UnmarshalBinary(data))
		require.Equal(t, p.Coefficients(), s.Coefficients())
	})

	t.Run("UnmarshalBinary/Truncated", func(t *testing.T) {
		p := NewPolynomial([]float64{1, 2, 3})

		data, err := p.MarshalBinary()
		require.NoError(t, err)

		for _, n := range []int{0, 4, 8, 12, 16, len(data) - 4} {
			var q Polynomial
			require.Error(t, q.UnmarshalBinary(data[:n]), "truncated at %d bytes", n)
		}
	})

	t.Run("UnmarshalBinary/OversizedLength", func(t *testing.T) {
		for _, size := range []uint64{1 << 60, 1 << 40, 3} {
			// default tolerance, then a length not backed by data
			data := make([]byte, 16)
			binary.LittleEndian.PutUint64(data[8:], size)

			var q Polynomial
			require.Error(t, q.UnmarshalBinary(data), "length %d", size)

			_, err := q.ReadFrom(bytes.NewReader(data))
			require.Error(t, err, "length %d", size)
		}
	})

	t.Run("UnmarshalBinary/InvalidTolerance", func(t *testing.T) {
		p := NewPolynomial([]float64{1, 2})

		for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
			data, err := p.MarshalBinary()
			require.NoError(t, err)

			binary.LittleEndian.PutUint64(data[:8], math.Float64bits(tol))

			var q Polynomial
			require.ErrorIs(t, q.UnmarshalBinary(data), ErrInvalidTolerance)
		}
	})

	t.Run("UnmarshalBinary/Normalizes", func(t *testing.T) {
		// tolerance 0 (default), 3 coefficients {1, 2, 1e-12}
		data := make([]byte, 40)
		binary.LittleEndian.PutUint64(data[8:], 3)
		binary.LittleEndian.PutUint64(data[16:], math.Float64bits(1))
		binary.LittleEndian.PutUint64(data[24:], math.Float64bits(2))
		binary.LittleEndian.PutUint64(data[32:], math.Float64bits(1e-12))

		var q Polynomial
		require.NoError(t, q.UnmarshalBinary(data))
		require.Equal(t, []float64{1, 2}, q.Coefficients())
		require.Equal(t, DefaultTolerance, q.Parameters().Tolerance())
	})

	t.Run("Digest", func(t *testing.T) {
		p := NewPolynomial([]float64{1, 0, 2, -1})
		require.Equal(t, p.Digest(), NewPolynomial([]float64{1, 0, 2, -1, 0}).Digest())
		require.NotEqual(t, p.Digest(), NewPolynomial([]float64{1, 0, 2, -1 + 1e-12}).Digest())
		require.NotEqual(t, p.Digest(), loose.NewPolynomial([]float64{1, 0, 2, -1}).Digest())
		require.NotEqual(t, p.Digest(), Polynomial{}.Digest())
	})
}
