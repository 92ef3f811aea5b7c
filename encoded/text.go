package encoded

import (
	"fmt"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/grammar"
)

// Text is percent-encoded text.
//
// Implementations guarantee that the characters are ASCII graphic characters
// or parts of well formed "%XX" triplets.
type Text interface {
	// Len returns the number of encoded characters.
	Len() int
	// At returns the encoded character at index i.
	At(i int) byte
	// Slice returns the sub-view of the characters in [start, end).
	// It panics if the bounds are out of range or split a triplet.
	Slice(start, end int) Text
	// Normalized returns the canonical form of the text, see [NormalizeString].
	Normalized() Text
	// Decoded returns the decoded text, bytes are taken as UTF-8.
	Decoded() string
	// DecodedAs returns the decoded text interpreted in the charset cs.
	DecodedAs(cs Charset) (string, error)
	// String returns the encoded characters.
	String() string
}

// Precoded returns a view over already percent-encoded text s.
// It returns [EncodingError] if s is not valid percent-encoded text.
func Precoded(s string) (Text, error) {
	if err := Validate(s); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &view{s: s}, nil
}

// MustPrecoded is like [Precoded] but panics on error.
func MustPrecoded(s string) Text {
	t, err := Precoded(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FormPrecoded is like [Precoded] but the text is decoded
// following the application/x-www-form-urlencoded rules, "+" stands for a space.
func FormPrecoded(s string) (Text, error) {
	if err := Validate(s); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &view{s: s, form: true}, nil
}

// Encode percent-encodes UTF-8 plain text.
func Encode(plain string) Text {
	s, _ := encodeString(plain, UTF8, false)
	return &plainText{view: &view{s: s}, plain: plain, cs: UTF8}
}

// EncodeAs percent-encodes plain text represented in the charset cs.
func EncodeAs(plain string, cs Charset) (Text, error) {
	s, err := encodeString(plain, cs, false)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &plainText{view: &view{s: s}, plain: plain, cs: cs}, nil
}

// FormEncode percent-encodes UTF-8 plain text following the application/x-www-form-urlencoded rules.
func FormEncode(plain string) Text {
	s, _ := encodeString(plain, UTF8, true)
	return &view{s: s, form: true}
}

// FormEncodeAs is like [FormEncode] but the plain text is represented in the charset cs.
func FormEncodeAs(plain string, cs Charset) (Text, error) {
	s, err := encodeString(plain, cs, true)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &view{s: s, form: true}, nil
}

// Predefined values that stay the same when encoded, decoded or normalized.
var (
	Empty   Text = idempotent("")
	Current Text = idempotent(".")
	Parent  Text = idempotent("..")
)

// Idempotent returns text made of unreserved characters only.
// Such text is identical in its plain, encoded and normalized forms.
func Idempotent(s string) (Text, error) {
	for i := range len(s) {
		if !grammar.Unreserved.Contains(s[i]) {
			return nil, errtrace.Wrap(&EncodingError{Input: s, Offset: i})
		}
	}
	return idempotent(s), nil
}

// Equal reports whether a and b have identical normalized forms.
// A nil Text equals [Empty].
func Equal(a, b Text) bool {
	return normalizedString(a) == normalizedString(b)
}

// IsEmpty reports whether t is nil or has no characters.
func IsEmpty(t Text) bool { return t == nil || t.Len() == 0 }

func normalizedString(t Text) string {
	if t == nil {
		return ""
	}
	return t.Normalized().String()
}

// view is a Text over encoded characters.
type view struct {
	s    string
	form bool

	normOnce sync.Once
	norm     Text
}

func (t *view) Len() int { return len(t.s) }

func (t *view) At(i int) byte { return t.s[i] }

func (t *view) Slice(start, end int) Text {
	checkSlice(t.s, start, end)
	return &view{s: t.s[start:end], form: t.form}
}

func (t *view) Normalized() Text {
	t.normOnce.Do(func() {
		s, err := NormalizeString(t.s)
		if err != nil {
			panic(err)
		}
		t.norm = normalized{s: s, form: t.form}
	})
	return t.norm
}

func (t *view) Decoded() string { return mustDecode(t.s, t.form) }

func (t *view) DecodedAs(cs Charset) (string, error) {
	return errtrace.Wrap2(decodeString(t.s, cs, t.form))
}

func (t *view) String() string { return t.s }

// plainText is a Text produced by encoding plain text, decoding gives the plain text back.
type plainText struct {
	*view
	plain string
	cs    Charset
}

func (t *plainText) Decoded() string {
	if t.cs.IsUTF8() {
		return t.plain
	}
	return t.view.Decoded()
}

func (t *plainText) DecodedAs(cs Charset) (string, error) {
	if cs == t.cs {
		return t.plain, nil
	}
	return errtrace.Wrap2(t.view.DecodedAs(cs))
}

// normalized is a Text in its canonical form.
type normalized struct {
	s    string
	form bool
}

func (t normalized) Len() int { return len(t.s) }

func (t normalized) At(i int) byte { return t.s[i] }

func (t normalized) Slice(start, end int) Text {
	checkSlice(t.s, start, end)
	return normalized{s: t.s[start:end], form: t.form}
}

func (t normalized) Normalized() Text { return t }

func (t normalized) Decoded() string { return mustDecode(t.s, t.form) }

func (t normalized) DecodedAs(cs Charset) (string, error) {
	return errtrace.Wrap2(decodeString(t.s, cs, t.form))
}

func (t normalized) String() string { return t.s }

type idempotent string

func (t idempotent) Len() int { return len(t) }

func (t idempotent) At(i int) byte { return t[i] }

func (t idempotent) Slice(start, end int) Text { return t[start:end] }

func (t idempotent) Normalized() Text { return t }

func (t idempotent) Decoded() string { return string(t) }

func (t idempotent) DecodedAs(cs Charset) (string, error) {
	return errtrace.Wrap2(cs.decode([]byte(t)))
}

func (t idempotent) String() string { return string(t) }

func mustDecode(s string, form bool) string {
	out, err := decodeString(s, UTF8, form)
	if err != nil {
		panic(err)
	}
	return out
}

func checkSlice(s string, start, end int) {
	if start < 0 || end > len(s) || start > end {
		panic(fmt.Sprintf("encoded: slice bounds [%d:%d] out of range with length %d", start, end, len(s)))
	}
	if splitsTriplet(s, start) || splitsTriplet(s, end) {
		panic(fmt.Sprintf("encoded: slice bounds [%d:%d] split a triplet of %q", start, end, s))
	}
}

func splitsTriplet(s string, i int) bool {
	return i > 0 && i < len(s) && (s[i-1] == '%' || i > 1 && s[i-2] == '%')
}
