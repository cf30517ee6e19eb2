// Package sampling implements sampling of bytes, integers and floats
// from secure or deterministic sources.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RandUint64 reads a uniform value in [0, 2^64-1] from prng.
func RandUint64(prng io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(prng, b[:]); err != nil {
		return 0, fmt.Errorf("cannot RandUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// RandFloat64 reads a uniform float64 in [min, max) from prng.
// The 53 most significant bits of a random uint64 are used, so that
// every returned value in [0, 1) before scaling is exact.
func RandFloat64(prng io.Reader, min, max float64) (float64, error) {
	u, err := RandUint64(prng)
	if err != nil {
		return 0, fmt.Errorf("cannot RandFloat64: %w", err)
	}
	f := float64(u>>11) / (1 << 53)
	return min + f*(max-min), nil
}

// RandFloat64Slice fills a new slice of n uniform float64 in [min, max) read from prng.
func RandFloat64Slice(prng io.Reader, n int, min, max float64) (s []float64, err error) {
	s = make([]float64, n)
	for i := range s {
		if s[i], err = RandFloat64(prng, min, max); err != nil {
			return nil, err
		}
	}
	return
}
