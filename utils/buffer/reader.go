package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

// ReadAsUint64 reads an uint64 from r and stores the result into c
// with pointer type casting into type T.
// User must ensure that T can be stored in an uint64.
func ReadAsUint64[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
}

// ReadAsUint64Slice reads a slice of uint64 from r and stores the result
// into c with pointer type casting into type T.
// User must ensure that T can be stored in an uint64.
func ReadAsUint64Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
}

// ReadUint64 reads a little-endian uint64 from r and stores the result into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadUint64Slice reads len(c) little-endian uint64 from r and stores them into c.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	// Peeks at most what is buffered, to avoid a premature EOF
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	var slice []byte
	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = binary.LittleEndian.Uint64(slice[j:])
		}

		inc, err := r.Discard(N << 3)
		return int64(inc), err
	}

	if buffered == 0 {
		return 0, fmt.Errorf("cannot ReadUint64Slice: fewer than 8 bytes available")
	}

	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = binary.LittleEndian.Uint64(slice[j:])
	}

	var inc int
	if inc, err = r.Discard(buffered << 3); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	var inc64 int64
	inc64, err = ReadUint64Slice(r, c[buffered:])

	return n + inc64, err
}
