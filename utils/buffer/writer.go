package buffer

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// WriteAsUint64 casts &T to an *uint64 and writes it to w.
// User must ensure that T can be stored in an uint64.
func WriteAsUint64[T any](w Writer, c T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return WriteUint64(w, *(*uint64)(unsafe.Pointer(&c)))
}

// WriteAsUint64Slice casts &[]T into *[]uint64 and writes it to w.
// User must ensure that T can be stored in an uint64.
func WriteAsUint64Slice[T any](w Writer, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return WriteUint64Slice(w, *(*[]uint64)(unsafe.Pointer(&c)))
}

// WriteUint64 writes c in little-endian order on w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteUint64Slice writes each element of c in little-endian order on w,
// flushing w whenever its internal buffer is full.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	available := w.Available() >> 3

	if available == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		available = w.Available() >> 3

		if available == 0 {
			return 0, fmt.Errorf("cannot WriteUint64Slice: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()

	if N := len(c); N <= available {
		buf = buf[:N<<3]
		for i := 0; i < N; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], c[i])
		}

		nint, err := w.Write(buf)

		return int64(nint), err
	}

	buf = buf[:available<<3]
	for i := 0; i < available; i++ {
		binary.LittleEndian.PutUint64(buf[i<<3:], c[i])
	}

	var inc int
	if inc, err = w.Write(buf); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	if err = w.Flush(); err != nil {
		return n, err
	}

	var inc64 int64
	inc64, err = WriteUint64Slice(w, c[available:])

	return n + inc64, err
}
