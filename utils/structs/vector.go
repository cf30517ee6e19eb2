package structs

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tuneinsight/polyreal/utils"
	"github.com/tuneinsight/polyreal/utils/buffer"
)

// maxChunkWords bounds the allocation made by ReadFrom ahead of the data.
const maxChunkWords = 1 << 16

// Word is the set of component types a Vector can serialize,
// each of them stored on 8 bytes.
type Word interface {
	~uint | ~uint64 | ~int | ~int64 | ~float64
}

// Vector is a struct wrapping a slice of 64-bit components.
type Vector[T Word] []T

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)<<3
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer),
// it will be wrapped into a bufio.Writer. When writing to a pre-allocated
// []byte, it is preferable to pass buffer.NewBuffer(b) as w.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(v)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice[T](w, v); err != nil {
			var t T
			return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[%T]: %w", t, err)
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer),
// it will be wrapped into a bufio.Reader. When reading from a []byte,
// it is preferable to pass buffer.NewBuffer(b) as r.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int

		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if size < 0 || size > math.MaxInt>>3 {
			return n, fmt.Errorf("cannot ReadFrom: invalid vector size %d", size)
		}

		if b, ok := r.(*buffer.Buffer); ok && size > b.Size()>>3 {
			return n, fmt.Errorf("cannot ReadFrom: vector size %d exceeds the %d bytes available", size, b.Size())
		}

		// The size is not trusted: the vector grows by bounded chunks
		// as words are actually read.
		*v = (*v)[:0]

		for len(*v) < size {

			start := len(*v)

			*v = append(*v, make([]T, utils.Min(size-start, maxChunkWords))...)

			if inc, err = buffer.ReadAsUint64Slice[T](r, (*v)[start:]); err != nil {
				var t T
				return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[%T]: %w", t, err)
			}

			n += inc
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}
