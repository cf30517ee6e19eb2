package polynomial

import (
	"bufio"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/tuneinsight/polyreal/utils/buffer"
	"github.com/tuneinsight/polyreal/utils/structs"
)

var _ structs.BinarySizer = Polynomial{}

// BinarySize returns the serialized size of the object in bytes.
func (p Polynomial) BinarySize() int {
	return 8 + structs.Vector[float64](p.coeffs).BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// The encoding is the tolerance followed by the length and the
// coefficients, each on 8 bytes in little-endian order.
//
// Unless w implements the buffer.Writer interface (see utils/buffer),
// it will be wrapped into a bufio.Writer.
func (p Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[float64](w, p.params.Tolerance()); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[float64]: %w", err)
		}

		n += inc

		if inc, err = structs.Vector[float64](p.coeffs).WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("structs.Vector[float64].WriteTo: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded coefficients are normalized,
// and the decoded tolerance is validated as by NewParametersFromLiteral.
//
// Unless r implements the buffer.Reader interface (see utils/buffer),
// it will be wrapped into a bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var tol float64
		if inc, err = buffer.ReadAsUint64[float64](r, &tol); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[float64]: %w", err)
		}

		n += inc

		var params Parameters
		if params, err = NewParametersFromLiteral(ParametersLiteral{Tolerance: tol}); err != nil {
			return n, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		var coeffs structs.Vector[float64]
		if inc, err = coeffs.ReadFrom(r); err != nil {
			return n + inc, fmt.Errorf("structs.Vector[float64].ReadFrom: %w", err)
		}

		n += inc

		*p = newPolynomial(params, coeffs)

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// Digest returns the blake3 hash of the binary encoding of p.
// Equal digests imply identical coefficients and tolerance, which is
// stronger than Equal.
func (p Polynomial) Digest() (digest [32]byte) {

	data, err := p.MarshalBinary()

	// Writing on a buffer of BinarySize bytes cannot fail.
	if err != nil {
		panic(err)
	}

	hasher := blake3.New()
	hasher.Write(data)
	copy(digest[:], hasher.Sum(nil))

	return
}
