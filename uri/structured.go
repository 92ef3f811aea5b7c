package uri

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/grammar"
)

// StructuredURI is a [URI] built from its components.
type StructuredURI struct {
	scheme    Optional[string]
	authority Optional[Authority]
	path      Path
	query     Optional[encoded.Text]
	fragment  Optional[encoded.Text]
}

// Empty is the empty relative reference.
var Empty URI = &StructuredURI{path: EmptyPath}

// New returns a URI made of the given components.
//
// It returns [SyntaxError] if a component contains characters it may not contain,
// and [StructuralError] if the components can not be combined:
//   - with an authority the path must be empty or absolute;
//   - without an authority the path must not start with "//";
//   - without a scheme and an authority the first segment of a relative path must not contain ":".
func New(
	scheme Optional[string],
	authority Optional[Authority],
	path Path,
	query, fragment Optional[encoded.Text],
) (*StructuredURI, error) {
	path = pathOrEmpty(path)
	if s, ok := scheme.Get(); ok {
		if err := checkScheme(s); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if a, ok := authority.Get(); ok && a == nil {
		return nil, errtrace.Wrap(&StructuralError{Reason: "nil authority"})
	}
	if err := checkPath(path, scheme.IsPresent(), authority.IsPresent()); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if q, ok := query.Get(); ok {
		if q == nil {
			query = Some(encoded.Empty)
		} else if err := checkChars("query", q, grammar.QueryChar); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if f, ok := fragment.Get(); ok {
		if f == nil {
			fragment = Some(encoded.Empty)
		} else if err := checkChars("fragment", f, grammar.FragmentChar); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return &StructuredURI{
		scheme:    scheme,
		authority: authority,
		path:      path,
		query:     query,
		fragment:  fragment,
	}, nil
}

// Relative returns a relative reference without an authority, see [New].
func Relative(path Path, query, fragment Optional[encoded.Text]) (*StructuredURI, error) {
	return errtrace.Wrap2(New(None[string](), None[Authority](), path, query, fragment))
}

// Opaque returns a URI with a scheme and a rootless or empty path, such URI is never hierarchical.
//
//	mailto:user@example.com
//	urn:isbn:0451450523
func Opaque(scheme string, path Path, query, fragment Optional[encoded.Text]) (*StructuredURI, error) {
	if path != nil && path.IsAbsolute() {
		return nil, errtrace.Wrap(&StructuralError{Reason: "path of an opaque URI must not be absolute"})
	}
	return errtrace.Wrap2(New(Some(scheme), None[Authority](), path, query, fragment))
}

// From copies the components of any URI into a new structured URI, checking them with [New].
func From(u URI) (*StructuredURI, error) {
	if u, ok := u.(*StructuredURI); ok {
		return u, nil
	}
	return errtrace.Wrap2(New(u.Scheme(), u.Authority(), u.Path(), u.Query(), u.Fragment()))
}

func checkScheme(s string) error {
	if s == "" {
		return errtrace.Wrap(newSyntaxError("scheme", s, 0))
	}
	if !grammar.Alpha.Contains(s[0]) {
		return errtrace.Wrap(newSyntaxError("scheme", s, 0))
	}
	for i := 1; i < len(s); i++ {
		if !grammar.SchemeChar.Contains(s[i]) {
			return errtrace.Wrap(newSyntaxError("scheme", s, i))
		}
	}
	return nil
}

func checkPath(p Path, hasScheme, hasAuthority bool) error {
	segs := segmentsOf(p)
	for _, seg := range segs {
		if err := checkChars("path", seg, grammar.SegmentChar); err != nil {
			return errtrace.Wrap(err)
		}
	}

	switch {
	case len(segs) == 0:
		return nil
	case hasAuthority:
		if !p.IsAbsolute() {
			return errtrace.Wrap(&StructuralError{Reason: "path of a URI with authority must be empty or absolute"})
		}
	case p.IsAbsolute() && len(segs) > 2 && segs[1].Len() == 0:
		return errtrace.Wrap(&StructuralError{Reason: `path of a URI without authority must not start with "//"`})
	case !hasScheme && !p.IsAbsolute() && strings.IndexByte(segs[0].String(), ':') >= 0:
		return errtrace.Wrap(&StructuralError{Reason: `first segment of a relative path must not contain ":"`})
	}
	return nil
}

func (u *StructuredURI) Scheme() Optional[string] { return u.scheme }

func (u *StructuredURI) Authority() Optional[Authority] { return u.authority }

func (u *StructuredURI) Path() Path { return pathOrEmpty(u.path) }

func (u *StructuredURI) Query() Optional[encoded.Text] { return u.query }

func (u *StructuredURI) Fragment() Optional[encoded.Text] { return u.fragment }

func (u *StructuredURI) IsHierarchical() bool { return isHierarchical(u) }

func (u *StructuredURI) IsAbsolute() bool { return u.scheme.IsPresent() }

// RenderTo writes the text of the URI to w.
func (u *StructuredURI) RenderTo(w io.Writer) (int, error) { return errtrace.Wrap2(RenderTo(w, u)) }

// Render returns the text of the URI.
func (u *StructuredURI) Render() string { return Render(u) }

// String returns the text of the URI.
func (u *StructuredURI) String() string {
	if u == nil {
		return ""
	}
	return u.Render()
}

// Format implements [fmt.Formatter].
func (u *StructuredURI) Format(f fmt.State, verb rune) {
	if formatURI(f, verb, u) {
		return
	}
	type hideMethods StructuredURI
	type StructuredURI hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*StructuredURI)(u))
}

// MarshalText implements [encoding.TextMarshaler].
func (u *StructuredURI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
