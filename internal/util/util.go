// Package util provides common utility functions.
package util

func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}

// Filter returns the elements of s for which keep returns true.
// The result shares the backing array with s.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
