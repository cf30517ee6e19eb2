package utils

import (
	"golang.org/x/exp/slices"
)

// TrimTrailing returns the longest prefix of s whose last element
// does not satisfy drop. The returned slice shares the backing array of s.
// An empty prefix is returned as nil.
func TrimTrailing[V any](s []V, drop func(V) bool) []V {
	n := len(s)
	for n > 0 && drop(s[n-1]) {
		n--
	}

	if n == 0 {
		return nil
	}

	return s[:n]
}

// CloneSlice returns a copy of s backed by a newly allocated array.
// A nil or empty input returns nil.
func CloneSlice[V any](s []V) []V {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// IndexOfFunc returns the first pair of indexes (i, j), i < j, such that
// equal(s[i], s[j]) is true, or (-1, -1) if there is none.
func IndexOfFunc[V any](s []V, equal func(a, b V) bool) (i, j int) {
	for i = range s {
		for j = i + 1; j < len(s); j++ {
			if equal(s[i], s[j]) {
				return
			}
		}
	}
	return -1, -1
}
