package util

import "iter"

func IterFirst[V any](seq iter.Seq[V]) (V, bool) {
	for v := range seq {
		return v, true
	}
	var v V
	return v, false
}

// IterLast returns the last value produced by seq.
func IterLast[V any](seq iter.Seq[V]) (V, bool) {
	var (
		last V
		ok   bool
	)
	for v := range seq {
		last, ok = v, true
	}
	return last, ok
}
