package uri

import (
	"strings"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/grammar"
)

var portTerminator = grammar.NewCharSet("/?#")

// Each scan function takes the offset where the previous component ended
// and returns the component together with the offset where it ends.
// An absent component ends where it started.

func scanScheme(s string) (Optional[string], int) {
	if len(s) < 2 || !grammar.Alpha.Contains(s[0]) {
		return None[string](), 0
	}
	i := 1
	for i < len(s) && grammar.SchemeChar.Contains(s[i]) {
		i++
	}
	if i < len(s) && s[i] == ':' {
		return Some(s[:i]), i + 1
	}
	return None[string](), 0
}

func scanAuthority(s string, start int) (Optional[Authority], int, error) {
	if !strings.HasPrefix(s[start:], "//") {
		return None[Authority](), start, nil
	}

	i := start + 2
	a := &StructuredAuthority{}

	end, err := scanClass(s, i, grammar.UserInfoChar)
	if err != nil {
		return None[Authority](), start, err
	}
	if end < len(s) && s[end] == '@' {
		a.userInfo = Some(component(s[i:end]))
		i = end + 1
	}

	if end, err = scanHost(s, i); err != nil {
		return None[Authority](), start, err
	}
	a.host = component(s[i:end])
	i = end

	if i < len(s) && s[i] == ':' {
		i++
		port, digits := 0, 0
		for ; i < len(s) && grammar.Digit.Contains(s[i]); i++ {
			port = port*10 + int(s[i]-'0')
			if port >= MaxPort {
				return None[Authority](), start, &RangeError{Port: port, Offset: i}
			}
			digits++
		}
		if i < len(s) && !portTerminator.Contains(s[i]) {
			return None[Authority](), start, newSyntaxError("port", s, i)
		}
		if digits > 0 {
			a.port = Some(port)
		}
	}
	return Some[Authority](a), i, nil
}

func scanHost(s string, start int) (int, error) {
	var end int
	if start < len(s) && s[start] == '[' {
		end = start + 1
		for ; end < len(s) && s[end] != ']'; end++ {
			switch c := s[end]; {
			case c == '%' && !grammar.IsTriplet(s, end):
				return end, &encoded.EncodingError{Input: s, Offset: end}
			case !grammar.Graphic.Contains(c):
				return end, newSyntaxError("host", s, end)
			}
		}
		if end == len(s) {
			return end, newSyntaxError("host", s, end)
		}
		end++
	} else {
		var err error
		if end, err = scanClass(s, start, grammar.RegNameChar); err != nil {
			return end, err
		}
	}
	if end < len(s) && !grammar.HostTerminator.Contains(s[end]) {
		return end, newSyntaxError("host", s, end)
	}
	return end, nil
}

func scanPath(s string, start int) (Path, int, error) {
	end, err := scanClass(s, start, grammar.PathChar)
	if err != nil {
		return nil, start, err
	}
	return newParsedPath(s[start:end]), end, nil
}

func scanQuery(s string, start int) (Optional[encoded.Text], int, error) {
	if start >= len(s) || s[start] != '?' {
		return None[encoded.Text](), start, nil
	}
	end, err := scanClass(s, start+1, grammar.QueryChar)
	if err != nil {
		return None[encoded.Text](), start, err
	}
	if end < len(s) && s[end] != '#' {
		return None[encoded.Text](), start, newSyntaxError("query", s, end)
	}
	return Some(component(s[start+1 : end])), end, nil
}

func scanFragment(s string, start int) (Optional[encoded.Text], int, error) {
	if start >= len(s) {
		return None[encoded.Text](), start, nil
	}
	if s[start] != '#' {
		// only a path scan can stop at a character no later component accepts
		return None[encoded.Text](), start, newSyntaxError("path", s, start)
	}
	end, err := scanClass(s, start+1, grammar.FragmentChar)
	if err != nil {
		return None[encoded.Text](), start, err
	}
	if end < len(s) {
		return None[encoded.Text](), start, newSyntaxError("fragment", s, end)
	}
	return Some(component(s[start+1:])), end, nil
}

// scanClass advances over the characters of cs starting at offset i.
// Percent-encoded triplets are checked on the way.
func scanClass(s string, i int, cs grammar.CharSet) (int, error) {
	for i < len(s) {
		c := s[i]
		if !cs.Contains(c) {
			break
		}
		if c == '%' {
			if !grammar.IsTriplet(s, i) {
				return i, &encoded.EncodingError{Input: s, Offset: i}
			}
			i += 3
			continue
		}
		i++
	}
	return i, nil
}

// component wraps text that has already been scanned.
func component(s string) encoded.Text { return encoded.MustPrecoded(s) }

// checkChars validates that every character of t belongs to cs.
func checkChars(name string, t encoded.Text, cs grammar.CharSet) error {
	for i := range t.Len() {
		if !cs.Contains(t.At(i)) {
			return newSyntaxError(name, t.String(), i)
		}
	}
	return nil
}
