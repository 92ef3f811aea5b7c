package uri

import (
	"iter"
	"slices"

	"github.com/ghettovoice/rfc3986/encoded"
)

// NormalizePath returns the path with its dot-segments removed (RFC 3986 section 5.2.4)
// and the percent-encoding of every segment normalized.
//
//	a/./b/../c  => a/c
//	/..         => /
//	a/b/../..   => ./
//	../a/%7e    => ../a/~
func NormalizePath(p Path) Path {
	if p, ok := p.(*normalizedPath); ok {
		return p
	}
	return &normalizedPath{src: pathOrEmpty(p)}
}

// Extend returns the path made of the segments of base followed by the segments of addition,
// with dot-segments removed. Unlike [ResolvePath] the last segment of base is always kept.
// The result is absolute only if base is.
func Extend(base, addition Path) Path {
	return &extendedPath{base: pathOrEmpty(base), addition: pathOrEmpty(addition)}
}

// ExtendSegments is like [Extend] for an explicit list of segments.
func ExtendSegments(base Path, segments ...encoded.Text) Path {
	return Extend(base, NewPath(segments...))
}

// ResolvePath resolves the reference path against the base path (RFC 3986 section 5.2.2 and 5.2.3).
//
//	/b/c/d;p + ../../g    => /g
//	/b/c/d;p + g;x=1/../y => /b/c/y
//	b/c/d;p  + ../..      => ./
func ResolvePath(base, ref Path) Path {
	return &resolvedPath{base: pathOrEmpty(base), ref: pathOrEmpty(ref)}
}

type normalizedPath struct {
	src  Path
	segs lazySegments
}

func (p *normalizedPath) IsEmpty() bool { return len(p.segmentList()) == 0 }

func (p *normalizedPath) IsAbsolute() bool { return startsWithEmpty(p.segmentList()) }

func (p *normalizedPath) Segments() iter.Seq[encoded.Text] { return slices.Values(p.segmentList()) }

func (p *normalizedPath) segmentList() []encoded.Text {
	return p.segs.load(func() []encoded.Text {
		return removeDotSegments(p.src.Segments(), true, true)
	})
}

func (p *normalizedPath) String() string { return PathText(p) }

type extendedPath struct {
	base, addition Path
	segs           lazySegments
}

func (p *extendedPath) IsEmpty() bool { return len(p.segmentList()) == 0 }

func (p *extendedPath) IsAbsolute() bool { return startsWithEmpty(p.segmentList()) }

func (p *extendedPath) Segments() iter.Seq[encoded.Text] { return slices.Values(p.segmentList()) }

func (p *extendedPath) segmentList() []encoded.Text {
	return p.segs.load(func() []encoded.Text {
		// an empty base must not turn the addition into an absolute path
		return removeDotSegments(concat(p.base.Segments(), p.addition.Segments()), false, !p.base.IsEmpty())
	})
}

func (p *extendedPath) String() string { return PathText(p) }

type resolvedPath struct {
	base, ref Path
	segs      lazySegments
}

func (p *resolvedPath) IsEmpty() bool { return len(p.segmentList()) == 0 }

func (p *resolvedPath) IsAbsolute() bool { return startsWithEmpty(p.segmentList()) }

func (p *resolvedPath) Segments() iter.Seq[encoded.Text] { return slices.Values(p.segmentList()) }

func (p *resolvedPath) segmentList() []encoded.Text {
	return p.segs.load(func() []encoded.Text {
		switch {
		case p.ref.IsEmpty():
			return removeDotSegments(p.base.Segments(), false, true)
		case p.ref.IsAbsolute():
			return removeDotSegments(p.ref.Segments(), false, true)
		}
		base := removeDotSegments(p.base.Segments(), false, true)
		if n := len(base); n > 0 && classifySegment(base[n-1]) == nameSegment {
			base = base[:n-1]
		}
		return removeDotSegments(concat(slices.Values(base), p.ref.Segments()), false, true)
	})
}

func (p *resolvedPath) String() string { return PathText(p) }

type segmentKind int

const (
	nameSegment segmentKind = iota
	emptySegment
	currentSegment
	parentSegment
)

// classifySegment compares the normalized text so "%2E" is taken as ".".
func classifySegment(seg encoded.Text) segmentKind {
	switch {
	case seg == nil || seg.Len() == 0:
		return emptySegment
	case seg.Len() > len("%2E%2E"):
		return nameSegment
	}
	switch seg.Normalized().String() {
	case ".":
		return currentSegment
	case "..":
		return parentSegment
	}
	return nameSegment
}

// removeDotSegments runs the segment stack machine over segs.
//
// Names pushed since the start can be popped by a following "..",
// a ".." that has nothing to pop is kept in a relative path and dropped in an absolute one.
// An empty first segment makes the result absolute when rooted is set,
// any other empty or dot segment only affects whether the result ends with "/".
// With normText set the names are replaced by their normalized text.
func removeDotSegments(segs iter.Seq[encoded.Text], normText, rooted bool) []encoded.Text {
	var (
		stack                                []encoded.Text
		count, backSteps                     int
		isAbsolute, endsWithEmpty, singleDot bool
	)
	for seg := range segs {
		switch classifySegment(seg) {
		case emptySegment:
			if count == 0 && rooted {
				isAbsolute = true
			} else {
				endsWithEmpty = true
			}
		case currentSegment:
			if len(stack) == 0 && !isAbsolute {
				singleDot = true
			} else {
				endsWithEmpty = true
			}
		case parentSegment:
			if backSteps > 0 {
				stack = stack[:len(stack)-1]
				backSteps--
			} else if !isAbsolute {
				stack = append(stack, encoded.Parent)
			}
			endsWithEmpty = true
			singleDot = len(stack) == 0 && !isAbsolute
		default:
			if normText {
				seg = seg.Normalized()
			}
			stack = append(stack, seg)
			backSteps++
			endsWithEmpty = false
			singleDot = false
		}
		count++
	}

	if isAbsolute {
		stack = slices.Insert(stack, 0, encoded.Empty)
	}
	switch n := len(stack); {
	case singleDot:
		stack = append(stack, encoded.Current, encoded.Empty)
	case endsWithEmpty && n > 0 && (n == 1 || stack[n-1].Len() != 0):
		stack = append(stack, encoded.Empty)
	}
	return stack
}

func startsWithEmpty(segs []encoded.Text) bool { return len(segs) > 0 && segs[0].Len() == 0 }

func concat(seqs ...iter.Seq[encoded.Text]) iter.Seq[encoded.Text] {
	return func(yield func(encoded.Text) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
