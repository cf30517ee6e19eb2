// Package buffer implements methods for writing and reading 64-bit words
// to and from io.Writer and io.Reader that expose their internal buffers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is implemented by writers that expose their internal buffer,
// such as bufio.Writer and Buffer.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is implemented by readers that expose their internal buffer,
// such as bufio.Reader and Buffer.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a Writer and Reader over a fixed []byte.
// Writes fill the slice from its start and never grow it. Reads
// consume the slice from its start, independently of the writes.
type Buffer struct {
	buf []byte
	w   int
	r   int
}

// NewBuffer returns a Buffer reading data, or overwriting it on writes.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{buf: data}
}

// NewBufferSize returns an empty Buffer able to hold size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Bytes returns the bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.w]
}

func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, fmt.Errorf("cannot Write: %d bytes do not fit in the %d available", len(p), b.Available())
	}
	n = copy(b.buf[b.w:], p)
	b.w += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return
}

// AvailableBuffer returns an empty slice backed by the unwritten part of b.
// It is only valid until the next write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.w:b.w]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.buf) - b.w
}

// Read returns io.EOF if fewer than len(p) bytes are left.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.r:])
	b.r += n
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Size returns the number of bytes left to read.
func (b *Buffer) Size() int {
	return len(b.buf) - b.r
}

// Peek returns the next n bytes without consuming them,
// or all the bytes left and io.EOF if fewer than n are.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.buf[b.r:], io.EOF
	}
	return b.buf[b.r : b.r+n], nil
}

// Discard consumes the next n bytes,
// or all the bytes left and io.EOF if fewer than n are.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if n > b.Size() {
		discarded = b.Size()
		b.r = len(b.buf)
		return discarded, io.EOF
	}
	b.r += n
	return n, nil
}
