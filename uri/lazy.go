package uri

import (
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/encoded"
)

// LazyURI is a URI-reference parsed on demand from its encoded text.
//
// The components are computed in order (scheme, authority, path, query, fragment),
// each one at first access and only once, starting where the previous one ended.
// An accessor of a component that could not be parsed reports it as absent (or empty path),
// use [LazyURI.Validate] to get the error.
//
// The zero value is the empty relative reference.
type LazyURI struct {
	src string

	scheme    stage[Optional[string]]
	authority stage[Optional[Authority]]
	path      stage[Path]
	query     stage[Optional[encoded.Text]]
	fragment  stage[Optional[encoded.Text]]
}

// stage is a single-assignment cache of a parsed component and its end offset.
type stage[T any] struct {
	once sync.Once
	val  T
	end  int
	err  error
}

func (s *stage[T]) load(fn func() (T, int, error)) (T, int, error) {
	s.once.Do(func() { s.val, s.end, s.err = fn() })
	return s.val, s.end, s.err
}

// NewLazy returns a URI-reference over the encoded text.
// Nothing is parsed until a component is accessed.
func NewLazy(text encoded.Text) *LazyURI {
	if text == nil {
		return &LazyURI{}
	}
	return &LazyURI{src: text.String()}
}

// Parse parses a URI-reference from the given input s (string or []byte).
// All the components are parsed and validated before it returns.
//
// Parse returns [SyntaxError], [RangeError] or [encoded.EncodingError] for a malformed input,
// all of them match [ErrSyntax], [ErrPortRange] and [encoded.ErrEncoding] respectively with [errors.Is].
func Parse[T ~string | ~[]byte](s T) (*LazyURI, error) {
	u := &LazyURI{src: string(s)}
	if err := u.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse[T ~string | ~[]byte](s T) *LazyURI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *LazyURI) schemeStage() (Optional[string], int, error) {
	return u.scheme.load(func() (Optional[string], int, error) {
		v, end := scanScheme(u.src)
		return v, end, nil
	})
}

func (u *LazyURI) authorityStage() (Optional[Authority], int, error) {
	return u.authority.load(func() (Optional[Authority], int, error) {
		_, start, err := u.schemeStage()
		if err != nil {
			return None[Authority](), start, err
		}
		return errtrace.Wrap3(scanAuthority(u.src, start))
	})
}

func (u *LazyURI) pathStage() (Path, int, error) {
	return u.path.load(func() (Path, int, error) {
		_, start, err := u.authorityStage()
		if err != nil {
			return EmptyPath, start, err
		}
		return errtrace.Wrap3(scanPath(u.src, start))
	})
}

func (u *LazyURI) queryStage() (Optional[encoded.Text], int, error) {
	return u.query.load(func() (Optional[encoded.Text], int, error) {
		_, start, err := u.pathStage()
		if err != nil {
			return None[encoded.Text](), start, err
		}
		return errtrace.Wrap3(scanQuery(u.src, start))
	})
}

func (u *LazyURI) fragmentStage() (Optional[encoded.Text], int, error) {
	return u.fragment.load(func() (Optional[encoded.Text], int, error) {
		_, start, err := u.queryStage()
		if err != nil {
			return None[encoded.Text](), start, err
		}
		return errtrace.Wrap3(scanFragment(u.src, start))
	})
}

// Validate parses all the components and returns the first error.
func (u *LazyURI) Validate() error {
	_, _, err := u.fragmentStage()
	return errtrace.Wrap(err)
}

// Source returns the text the URI was created from.
func (u *LazyURI) Source() string { return u.src }

func (u *LazyURI) Scheme() Optional[string] {
	v, _, _ := u.schemeStage()
	return v
}

func (u *LazyURI) Authority() Optional[Authority] {
	v, _, _ := u.authorityStage()
	return v
}

func (u *LazyURI) Path() Path {
	v, _, _ := u.pathStage()
	return pathOrEmpty(v)
}

func (u *LazyURI) Query() Optional[encoded.Text] {
	v, _, _ := u.queryStage()
	return v
}

func (u *LazyURI) Fragment() Optional[encoded.Text] {
	v, _, _ := u.fragmentStage()
	return v
}

func (u *LazyURI) IsHierarchical() bool { return isHierarchical(u) }

func (u *LazyURI) IsAbsolute() bool { return u.Scheme().IsPresent() }

// RenderTo writes the text of the URI to w.
func (u *LazyURI) RenderTo(w io.Writer) (int, error) { return errtrace.Wrap2(RenderTo(w, u)) }

// Render returns the text of the URI.
func (u *LazyURI) Render() string { return Render(u) }

// String returns the text of the URI.
func (u *LazyURI) String() string {
	if u == nil {
		return ""
	}
	return u.Render()
}

// Format implements [fmt.Formatter].
func (u *LazyURI) Format(f fmt.State, verb rune) {
	if formatURI(f, verb, u) {
		return
	}
	type hideMethods LazyURI
	type LazyURI hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*LazyURI)(u))
}

// MarshalText implements [encoding.TextMarshaler].
func (u *LazyURI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *LazyURI) UnmarshalText(text []byte) error {
	*u = LazyURI{src: string(text)}
	if err := u.Validate(); err != nil {
		*u = LazyURI{}
		return errtrace.Wrap(err)
	}
	return nil
}
