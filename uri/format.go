package uri

import (
	"fmt"
	"strconv"
)

// formatURI handles the verbs common to all URI types and reports whether verb was one of them.
//
//	%s, %v  the text of the URI
//	%+s     the text written straight to the state
//	%q      the quoted text
//
// The %#v verb is left to the caller.
func formatURI(f fmt.State, verb rune, u URI) bool {
	switch verb {
	case 'v':
		if f.Flag('#') {
			return false
		}
		fmt.Fprint(f, Render(u))
		return true
	case 's':
		if f.Flag('+') {
			RenderTo(f, u) //nolint:errcheck
			return true
		}
		fmt.Fprint(f, Render(u))
		return true
	case 'q':
		fmt.Fprint(f, strconv.Quote(Render(u)))
		return true
	}
	return false
}
