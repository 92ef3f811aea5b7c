package encoded

//go:generate go tool errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/constraints"
	"github.com/ghettovoice/rfc3986/internal/grammar"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// EncodeString percent-encodes plain text represented in the charset cs.
func EncodeString(plain string, cs Charset) (string, error) {
	return errtrace.Wrap2(encodeString(plain, cs, false))
}

// FormEncodeString is like [EncodeString] but follows the application/x-www-form-urlencoded rules.
func FormEncodeString(plain string, cs Charset) (string, error) {
	return errtrace.Wrap2(encodeString(plain, cs, true))
}

// DecodeString decodes percent-encoded text and interprets the bytes in the charset cs.
func DecodeString(s string, cs Charset) (string, error) {
	return errtrace.Wrap2(decodeString(s, cs, false))
}

// FormDecodeString is like [DecodeString] but also maps "+" to a space.
func FormDecodeString(s string, cs Charset) (string, error) {
	return errtrace.Wrap2(decodeString(s, cs, true))
}

// NormalizeString returns the canonical form of percent-encoded text:
// triplets of unreserved characters are decoded, other triplets get uppercase hex digits.
func NormalizeString(s string) (string, error) {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return s, nil
	}

	buf := util.GetBytes()
	defer util.FreeBytes(buf)

	b := append(*buf, s[:i]...)
	for ; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b = append(b, c)
			continue
		}
		if !grammar.IsTriplet(s, i) {
			return "", errtrace.Wrap(&EncodingError{Input: s, Offset: i})
		}
		if d := grammar.Unhex(s[i+1])<<4 | grammar.Unhex(s[i+2]); grammar.Unreserved.Contains(d) {
			b = append(b, d)
		} else {
			b = grammar.AppendTriplet(b, d)
		}
		i += 2
	}
	*buf = b
	return string(b), nil
}

// Validate checks that s is percent-encoded text:
// ASCII graphic characters and well formed triplets only.
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '%':
			if !grammar.IsTriplet(s, i) {
				return errtrace.Wrap(&EncodingError{Input: s, Offset: i})
			}
			i += 2
		case !grammar.Graphic.Contains(c):
			return errtrace.Wrap(&EncodingError{Input: s, Offset: i})
		}
	}
	return nil
}

func encodeString(plain string, cs Charset, form bool) (string, error) {
	raw, err := cs.encode(plain)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if grammar.Unreserved.ContainsAll(raw) {
		return raw, nil
	}

	buf := util.GetBytes()
	defer util.FreeBytes(buf)

	*buf = appendEncoded(*buf, raw, form)
	return string(*buf), nil
}

func appendEncoded[T constraints.Byteseq](dst []byte, raw T, form bool) []byte {
	for i := range len(raw) {
		c := raw[i]
		switch {
		case grammar.Unreserved.Contains(c):
			dst = append(dst, c)
		case form && c == ' ':
			dst = append(dst, '+')
		case form && c == '\n':
			dst = append(dst, "%0D%0A"...)
		case form && c == '\r':
			// line breaks are rendered on the line feed
		default:
			dst = grammar.AppendTriplet(dst, c)
		}
	}
	return dst
}

func decodeString(s string, cs Charset, form bool) (string, error) {
	if strings.IndexByte(s, '%') < 0 && (!form || strings.IndexByte(s, '+') < 0) {
		return errtrace.Wrap2(cs.decode([]byte(s)))
	}

	buf := util.GetBytes()
	defer util.FreeBytes(buf)

	b, err := appendDecoded(*buf, s, form)
	*buf = b
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(cs.decode(b))
}

func appendDecoded(dst []byte, s string, form bool) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '%':
			if !grammar.IsTriplet(s, i) {
				return dst, errtrace.Wrap(&EncodingError{Input: s, Offset: i})
			}
			dst = append(dst, grammar.Unhex(s[i+1])<<4|grammar.Unhex(s[i+2]))
			i += 2
		case form && c == '+':
			dst = append(dst, ' ')
		default:
			dst = append(dst, c)
		}
	}
	return dst, nil
}
