package uri

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/types"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// ResolvedURI is the target URI of a reference resolved against a base URI
// (RFC 3986 section 5.2.2). Components are taken from the base or the reference on access.
type ResolvedURI struct {
	base, ref URI

	pathOnce sync.Once
	path     Path
}

// Resolve returns the target URI of the reference ref resolved against base.
//
//	http://a/b/c/d;p?q + ../g  => http://a/b/g
//	http://a/b/c/d;p?q + ?y    => http://a/b/c/d;p?y
//	http://a/b/c/d;p?q + //g   => http://g
func Resolve(base, ref URI) *ResolvedURI {
	if base == nil {
		base = Empty
	}
	if ref == nil {
		ref = Empty
	}
	return &ResolvedURI{base: base, ref: ref}
}

// refAuthority reports whether the reference defines the authority and all the components after it.
func (u *ResolvedURI) refAuthority() bool {
	return u.ref.IsAbsolute() || u.ref.Authority().IsPresent()
}

func (u *ResolvedURI) Scheme() Optional[string] {
	if u.ref.IsAbsolute() {
		return u.ref.Scheme()
	}
	return u.base.Scheme()
}

func (u *ResolvedURI) Authority() Optional[Authority] {
	if u.refAuthority() {
		return u.ref.Authority()
	}
	return u.base.Authority()
}

func (u *ResolvedURI) Path() Path {
	u.pathOnce.Do(func() {
		if u.refAuthority() {
			u.path = ResolvePath(EmptyPath, u.ref.Path())
			return
		}
		base, ref := u.base.Path(), u.ref.Path()
		if base.IsEmpty() && !ref.IsEmpty() && u.base.Authority().IsPresent() {
			// RFC 3986 section 5.2.3, a base with an authority and an empty path merges as "/"
			base = RootPath
		}
		u.path = ResolvePath(base, ref)
	})
	return u.path
}

func (u *ResolvedURI) Query() Optional[encoded.Text] {
	if u.refAuthority() || !u.ref.Path().IsEmpty() || u.ref.Query().IsPresent() {
		return u.ref.Query()
	}
	return u.base.Query()
}

func (u *ResolvedURI) Fragment() Optional[encoded.Text] { return u.ref.Fragment() }

func (u *ResolvedURI) IsHierarchical() bool {
	return u.base.IsHierarchical() || u.ref.IsHierarchical()
}

func (u *ResolvedURI) IsAbsolute() bool { return u.base.IsAbsolute() || u.ref.IsAbsolute() }

// RenderTo writes the text of the URI to w.
func (u *ResolvedURI) RenderTo(w io.Writer) (int, error) { return errtrace.Wrap2(RenderTo(w, u)) }

// Render returns the text of the URI.
func (u *ResolvedURI) Render() string { return Render(u) }

// String returns the text of the URI.
func (u *ResolvedURI) String() string {
	if u == nil {
		return ""
	}
	return u.Render()
}

// Format implements [fmt.Formatter].
func (u *ResolvedURI) Format(f fmt.State, verb rune) {
	if formatURI(f, verb, u) {
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), u.String())
}

// MarshalText implements [encoding.TextMarshaler].
func (u *ResolvedURI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// NormalizedURI is the syntax-based normalization of a URI (RFC 3986 section 6.2.2).
type NormalizedURI struct {
	src URI

	pathOnce sync.Once
	path     Path
}

// Normalize returns the normalized form of u:
//   - the scheme is lowercased;
//   - the path has its dot-segments removed;
//   - the percent-encoding of the path, query and fragment is normalized.
//
// The user info and host are always rendered normalized, the authority is kept as is.
//
//	HTTP://a/b/../%7euser?%3f  => http://a/~user?%3F
func Normalize(u URI) *NormalizedURI {
	if u, ok := u.(*NormalizedURI); ok {
		return u
	}
	if u == nil {
		u = Empty
	}
	return &NormalizedURI{src: u}
}

func (u *NormalizedURI) Scheme() Optional[string] {
	return types.Map(u.src.Scheme(), util.LCase[string])
}

func (u *NormalizedURI) Authority() Optional[Authority] { return u.src.Authority() }

func (u *NormalizedURI) Path() Path {
	u.pathOnce.Do(func() {
		p := NormalizePath(u.src.Path())
		if !u.src.Scheme().IsPresent() && !u.src.Authority().IsPresent() && !p.IsAbsolute() {
			// "a:b" would read as a scheme, keep it a path
			if segs := segmentsOf(p); len(segs) > 0 && strings.IndexByte(segs[0].String(), ':') >= 0 {
				p = segmentsPath(slices.Insert(slices.Clone(segs), 0, encoded.Current))
			}
		}
		u.path = p
	})
	return u.path
}

func (u *NormalizedURI) Query() Optional[encoded.Text] {
	return types.Map(u.src.Query(), encoded.Text.Normalized)
}

func (u *NormalizedURI) Fragment() Optional[encoded.Text] {
	return types.Map(u.src.Fragment(), encoded.Text.Normalized)
}

func (u *NormalizedURI) IsHierarchical() bool { return u.src.IsHierarchical() }

func (u *NormalizedURI) IsAbsolute() bool { return u.src.IsAbsolute() }

// RenderTo writes the text of the URI to w.
func (u *NormalizedURI) RenderTo(w io.Writer) (int, error) { return errtrace.Wrap2(RenderTo(w, u)) }

// Render returns the text of the URI.
func (u *NormalizedURI) Render() string { return Render(u) }

// String returns the text of the URI.
func (u *NormalizedURI) String() string {
	if u == nil {
		return ""
	}
	return u.Render()
}

// Format implements [fmt.Formatter].
func (u *NormalizedURI) Format(f fmt.State, verb rune) {
	if formatURI(f, verb, u) {
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), u.String())
}

// MarshalText implements [encoding.TextMarshaler].
func (u *NormalizedURI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

var (
	_ types.Renderer    = (*LazyURI)(nil)
	_ types.Validatable = (*LazyURI)(nil)
	_ types.Renderer    = (*StructuredURI)(nil)
	_ types.Renderer    = (*ResolvedURI)(nil)
	_ types.Renderer    = (*NormalizedURI)(nil)
)
