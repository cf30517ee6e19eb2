// Package structs implements generic vectors of 64-bit words and their serialization.
package structs

// BinarySizer is implemented by types that know the size of their binary encoding.
type BinarySizer interface {
	BinarySize() int
}
