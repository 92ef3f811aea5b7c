package uri

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination ../internal/testutil/urimock/uri.go -package urimock . URI,Authority

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/ioutil"
	"github.com/ghettovoice/rfc3986/internal/types"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// Optional holds either a component value or nothing.
type Optional[T any] = types.Optional[T]

// Some returns a present optional holding v.
func Some[T any](v T) Optional[T] { return types.Some(v) }

// None returns an absent optional.
func None[T any]() Optional[T] { return types.None[T]() }

// URI represents a URI or a relative reference.
//
// Implementations are immutable and safe for concurrent use.
type URI interface {
	Scheme() Optional[string]
	Authority() Optional[Authority]
	// Path returns the path, it is never nil.
	Path() Path
	Query() Optional[encoded.Text]
	Fragment() Optional[encoded.Text]
	// IsHierarchical reports whether the URI has no scheme, an authority or an absolute path.
	IsHierarchical() bool
	// IsAbsolute reports whether the URI has a scheme.
	IsAbsolute() bool
}

// Authority represents the authority component of a URI.
type Authority interface {
	UserInfo() Optional[encoded.Text]
	// Host returns the host, it is never nil but may be empty.
	Host() encoded.Text
	Port() Optional[int]
}

// Render returns the text of the URI:
//
//	[scheme ":"] ["//" authority] path ["?" query] ["#" fragment]
func Render(u URI) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	RenderTo(sb, u) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the text of the URI to w, see [Render].
func RenderTo(w io.Writer, u URI) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if s, ok := u.Scheme().Get(); ok {
		cw.WriteString(s) //nolint:errcheck
		cw.WriteByte(':') //nolint:errcheck
	}
	if a, ok := u.Authority().Get(); ok {
		cw.WriteString("//") //nolint:errcheck
		cw.Call(func(w io.Writer) (int, error) { return RenderAuthorityTo(w, a) })
	}
	cw.Call(func(w io.Writer) (int, error) { return RenderPathTo(w, u.Path()) })
	if q, ok := u.Query().Get(); ok {
		cw.WriteDelimited('?', q.String())
	}
	if f, ok := u.Fragment().Get(); ok {
		cw.WriteDelimited('#', f.String())
	}
	return errtrace.Wrap2(cw.Result())
}

// Equal reports whether a and b are equivalent, i.e. their normalized forms render the same text.
func Equal(a, b URI) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Render(Normalize(a)) == Render(Normalize(b))
}

func isHierarchical(u URI) bool {
	return !u.Scheme().IsPresent() || u.Authority().IsPresent() || u.Path().IsAbsolute()
}

func pathOrEmpty(p Path) Path {
	if p == nil {
		return EmptyPath
	}
	return p
}
