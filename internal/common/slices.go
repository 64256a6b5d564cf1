package common

import (
	"cmp"
	"maps"
	"slices"
)

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Filter returns the elements of s for which keep returns true, in order.
// The result is nil when nothing is kept.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	var out S

	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}
