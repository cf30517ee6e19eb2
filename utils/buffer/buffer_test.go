package buffer

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("Uint64", func(t *testing.T) {
		b := NewBufferSize(8)
		n, err := WriteUint64(b, 0x1122334455667788)
		require.NoError(t, err)
		require.Equal(t, int64(8), n)
		require.Equal(t, []byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, b.Bytes())

		var c uint64
		_, err = ReadUint64(b, &c)
		require.NoError(t, err)
		require.Equal(t, uint64(0x1122334455667788), c)
	})

	t.Run("AsUint64/Float64", func(t *testing.T) {
		b := NewBufferSize(8)
		_, err := WriteAsUint64[float64](b, math.Pi)
		require.NoError(t, err)

		var c float64
		_, err = ReadAsUint64[float64](b, &c)
		require.NoError(t, err)
		require.Equal(t, math.Pi, c)
	})

	t.Run("TooSmall", func(t *testing.T) {
		b := NewBufferSize(4)
		_, err := WriteUint64(b, 1)
		require.Error(t, err)
	})

	t.Run("PeekDiscard", func(t *testing.T) {
		b := NewBuffer([]byte{1, 2, 3, 4, 5})

		p, err := b.Peek(2)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2}, p)
		require.Equal(t, 5, b.Size())

		n, err := b.Discard(2)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, 3, b.Size())

		p, err = b.Peek(4)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, []byte{3, 4, 5}, p)

		n, err = b.Discard(4)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 3, n)
		require.Equal(t, 0, b.Size())
	})

	t.Run("ReadEOF", func(t *testing.T) {
		var c uint64
		_, err := ReadUint64(NewBuffer([]byte{1, 2, 3}), &c)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)

		_, err = ReadUint64(NewBuffer([]byte{1, 2, 3}), nil)
		require.Error(t, err)
	})
}

func TestSlice(t *testing.T) {

	values := make([]float64, 1000)
	for i := range values {
		values[i] = float64(i) - 0.5
	}

	t.Run("Buffer", func(t *testing.T) {
		b := NewBufferSize(len(values) << 3)
		n, err := WriteAsUint64Slice(b, values)
		require.NoError(t, err)
		require.Equal(t, int64(len(values)<<3), n)

		have := make([]float64, len(values))
		n, err = ReadAsUint64Slice(b, have)
		require.NoError(t, err)
		require.Equal(t, int64(len(values)<<3), n)
		require.Equal(t, values, have)
	})

	// Buffers smaller than the slice force the flush and recursion paths.
	t.Run("Bufio", func(t *testing.T) {
		var data bytes.Buffer
		w := bufio.NewWriterSize(&data, 64)
		_, err := WriteAsUint64Slice(w, values)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, len(values)<<3, data.Len())

		r := bufio.NewReaderSize(&data, 64)
		have := make([]float64, len(values))
		n, err := ReadAsUint64Slice(r, have)
		require.NoError(t, err)
		require.Equal(t, int64(len(values)<<3), n)
		require.Equal(t, values, have)
	})
}
