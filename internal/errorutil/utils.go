package errorutil

import "errors"

// IsGrammarErr returns true if the error reports malformed input,
// i.e. some error in its chain has method `Grammar() bool` returning true.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}

// Offset returns the input offset reported by the error chain, if any.
func Offset(err error) (int, bool) {
	var e interface{ InputOffset() int }
	if errors.As(err, &e) {
		return e.InputOffset(), true
	}
	return 0, false
}
