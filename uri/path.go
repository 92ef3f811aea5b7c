package uri

import (
	"io"
	"iter"
	"slices"
	"strings"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/grammar"
	"github.com/ghettovoice/rfc3986/internal/ioutil"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// Path is an ordered sequence of encoded segments.
//
// A path is absolute when its first segment is empty,
// the text of a path is its segments joined with "/".
type Path interface {
	IsEmpty() bool
	IsAbsolute() bool
	Segments() iter.Seq[encoded.Text]
}

var (
	// EmptyPath has no segments.
	EmptyPath Path = segmentsPath(nil)
	// RootPath is the absolute path "/".
	RootPath Path = segmentsPath{encoded.Empty, encoded.Empty}
)

// NewPath returns a path made of the given segments.
// Nil segments are taken as empty. The segments are not checked here,
// [New] rejects segments that contain characters other than pchar.
func NewPath(segments ...encoded.Text) Path {
	if len(segments) == 0 {
		return EmptyPath
	}
	segs := slices.Clone(segments)
	for i, s := range segs {
		if s == nil {
			segs[i] = encoded.Empty
		}
	}
	return segmentsPath(segs)
}

// ParsePath parses the encoded text of a path.
func ParsePath(s string) (Path, error) {
	end, err := scanClass(s, 0, grammar.PathChar)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if end < len(s) {
		return nil, errtrace.Wrap(newSyntaxError("path", s, end))
	}
	return newParsedPath(s), nil
}

// MustParsePath is like [ParsePath] but panics on error.
func MustParsePath(s string) Path { return util.Must2(ParsePath(s)) }

// PathText returns the text of the path.
func PathText(p Path) string {
	if p, ok := p.(*parsedPath); ok {
		return p.text.String()
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	RenderPathTo(sb, p) //nolint:errcheck
	return sb.String()
}

// RenderPathTo writes the text of the path to w.
func RenderPathTo(w io.Writer, p Path) (num int, err error) {
	if p == nil {
		return 0, nil
	}
	if p, ok := p.(*parsedPath); ok {
		return errtrace.Wrap2(io.WriteString(w, p.text.String()))
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	first := true
	for seg := range p.Segments() {
		if !first {
			cw.WriteByte('/') //nolint:errcheck
		}
		cw.WriteString(seg.String()) //nolint:errcheck
		first = false
	}
	return errtrace.Wrap2(cw.Result())
}

// PathSegments returns the segments of the path as a slice.
func PathSegments(p Path) []encoded.Text {
	if p == nil {
		return nil
	}
	if l, ok := p.(segmentLister); ok {
		return slices.Clone(l.segmentList())
	}
	return slices.Collect(p.Segments())
}

type segmentLister interface {
	segmentList() []encoded.Text
}

func segmentsOf(p Path) []encoded.Text {
	if l, ok := p.(segmentLister); ok {
		return l.segmentList()
	}
	return slices.Collect(p.Segments())
}

// segmentsPath is a path built from an explicit list of segments.
type segmentsPath []encoded.Text

func (p segmentsPath) IsEmpty() bool { return len(p) == 0 }

func (p segmentsPath) IsAbsolute() bool { return len(p) > 0 && p[0].Len() == 0 }

func (p segmentsPath) Segments() iter.Seq[encoded.Text] { return slices.Values(p) }

func (p segmentsPath) segmentList() []encoded.Text { return p }

func (p segmentsPath) String() string { return PathText(p) }

// parsedPath is a path over its encoded text, segments are split on first use.
type parsedPath struct {
	text encoded.Text
	segs lazySegments
}

func newParsedPath(s string) *parsedPath {
	return &parsedPath{text: encoded.MustPrecoded(s)}
}

func (p *parsedPath) IsEmpty() bool { return p.text.Len() == 0 }

func (p *parsedPath) IsAbsolute() bool { return p.text.Len() > 0 && p.text.At(0) == '/' }

func (p *parsedPath) Segments() iter.Seq[encoded.Text] { return slices.Values(p.segmentList()) }

func (p *parsedPath) segmentList() []encoded.Text {
	return p.segs.load(func() []encoded.Text {
		if p.text.Len() == 0 {
			return nil
		}
		s := p.text.String()
		segs := make([]encoded.Text, 0, strings.Count(s, "/")+1)
		start := 0
		for i := range len(s) {
			if s[i] == '/' {
				segs = append(segs, p.text.Slice(start, i))
				start = i + 1
			}
		}
		return append(segs, p.text.Slice(start, len(s)))
	})
}

func (p *parsedPath) String() string { return p.text.String() }

// lazySegments memoizes a computed segment list.
type lazySegments struct {
	once sync.Once
	segs []encoded.Text
}

func (l *lazySegments) load(fn func() []encoded.Text) []encoded.Text {
	l.once.Do(func() { l.segs = fn() })
	return l.segs
}
