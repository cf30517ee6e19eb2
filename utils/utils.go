// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the input values.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the input values.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}
