package encoded

import (
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
)

// Charset is a character encoding used to convert plain text from and to bytes.
// The zero value is UTF-8.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default charset. Text is used as-is, no conversion takes place.
var UTF8 = Charset{}

// LookupCharset resolves a charset by its IANA name or alias, case-insensitively.
// Names that are not registered, or registered but not supported, return [UnsupportedCharsetError].
func LookupCharset(name string) (Charset, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return Charset{}, errtrace.Wrap(&UnsupportedCharsetError{Name: name, Err: err})
	}
	if enc == nil {
		return Charset{}, errtrace.Wrap(&UnsupportedCharsetError{Name: name})
	}

	canon, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canon = name
	}
	if enc == unicode.UTF8 || strings.EqualFold(canon, "UTF-8") {
		return UTF8, nil
	}
	return Charset{name: canon, enc: enc}, nil
}

// MustCharset is like [LookupCharset] but panics on error.
func MustCharset(name string) Charset {
	cs, err := LookupCharset(name)
	if err != nil {
		panic(err)
	}
	return cs
}

// Name returns the IANA name of the charset.
func (cs Charset) Name() string {
	if cs.enc == nil {
		return "UTF-8"
	}
	return cs.name
}

func (cs Charset) String() string { return cs.Name() }

// IsUTF8 reports whether the charset is UTF-8.
func (cs Charset) IsUTF8() bool { return cs.enc == nil }

// encode converts UTF-8 text to the charset representation.
func (cs Charset) encode(s string) (string, error) {
	if cs.enc == nil {
		return s, nil
	}
	out, err := cs.enc.NewEncoder().String(s)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrCharset, "encode to %s: %v", cs.name, err))
	}
	return out, nil
}

// decode converts bytes of the charset representation to UTF-8 text.
func (cs Charset) decode(b []byte) (string, error) {
	if cs.enc == nil {
		return string(b), nil
	}
	out, err := cs.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrCharset, "decode from %s: %v", cs.name, err))
	}
	return string(out), nil
}
