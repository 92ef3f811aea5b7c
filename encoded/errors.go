package encoded

import (
	"fmt"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
)

// Error is a sentinel error kind.
type Error = errorutil.Error

const (
	// ErrEncoding is the kind of [EncodingError].
	ErrEncoding Error = "invalid percent-encoding"
	// ErrUnsupportedCharset is the kind of [UnsupportedCharsetError].
	ErrUnsupportedCharset Error = "unsupported charset"
	// ErrCharset is returned when text cannot be converted from or to a charset.
	ErrCharset Error = "charset conversion failed"
)

// EncodingError reports a "%" that is not followed by two hex digits,
// or a character that may not appear in percent-encoded text.
type EncodingError struct {
	Input  string
	Offset int
}

func (e *EncodingError) Error() string {
	if e.Offset < len(e.Input) && e.Input[e.Offset] != '%' {
		return fmt.Sprintf("%s: unexpected character %q at offset %d", ErrEncoding, e.Input[e.Offset], e.Offset)
	}
	return fmt.Sprintf("%s: malformed triplet at offset %d", ErrEncoding, e.Offset)
}

func (*EncodingError) Unwrap() error { return ErrEncoding }

func (*EncodingError) Grammar() bool { return true }

func (e *EncodingError) InputOffset() int { return e.Offset }

// UnsupportedCharsetError reports an unknown or unsupported charset name.
type UnsupportedCharsetError struct {
	Name string
	Err  error
}

func (e *UnsupportedCharsetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrUnsupportedCharset, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %q", ErrUnsupportedCharset, e.Name)
}

func (e *UnsupportedCharsetError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnsupportedCharset}
	}
	return []error{ErrUnsupportedCharset, e.Err}
}
