package grammar

import "strings"

// CharSet is a set of ASCII characters.
// Membership tests are constant time, bytes >= 0x80 are never members.
type CharSet [2]uint64

// NewCharSet builds a set containing every character of the given strings.
func NewCharSet(chars ...string) CharSet {
	var cs CharSet
	for _, s := range chars {
		for i := range len(s) {
			c := s[i]
			if c >= 0x80 {
				panic("grammar: non-ASCII character in char set")
			}
			cs[c>>6] |= 1 << (c & 63)
		}
	}
	return cs
}

// Contains reports whether c belongs to the set.
func (cs CharSet) Contains(c byte) bool {
	return c < 0x80 && cs[c>>6]&(1<<(c&63)) != 0
}

// Union returns a set containing the characters of cs and all others.
func (cs CharSet) Union(others ...CharSet) CharSet {
	for _, o := range others {
		cs[0] |= o[0]
		cs[1] |= o[1]
	}
	return cs
}

// With returns a copy of cs extended with the given characters.
func (cs CharSet) With(chars string) CharSet { return cs.Union(NewCharSet(chars)) }

// ContainsAll reports whether every byte of s belongs to the set.
func (cs CharSet) ContainsAll(s string) bool {
	for i := range len(s) {
		if !cs.Contains(s[i]) {
			return false
		}
	}
	return true
}

// String lists the members of the set in ascending order.
func (cs CharSet) String() string {
	var sb strings.Builder
	for c := range byte(0x80) {
		if cs.Contains(c) {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

const (
	alphaChars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digitChars    = "0123456789"
	hexChars      = digitChars + "ABCDEFabcdef"
	genDelimChars = ":/?#[]@"
	subDelimChars = "!$&'()*+,;="
)

// RFC 3986 Appendix A character classes.
var (
	Alpha      = NewCharSet(alphaChars)
	Digit      = NewCharSet(digitChars)
	HexDigit   = NewCharSet(hexChars)
	Unreserved = NewCharSet(alphaChars, digitChars, "-._~")
	GenDelims  = NewCharSet(genDelimChars)
	SubDelims  = NewCharSet(subDelimChars)
	// PctEncoded holds the characters a percent-encoded triplet is made of.
	PctEncoded = NewCharSet("%", hexChars)

	SchemeChar   = NewCharSet(alphaChars, digitChars, "+-.")
	RegNameChar  = Unreserved.Union(SubDelims).With("%")
	UserInfoChar = RegNameChar.With(":")
	PChar        = RegNameChar.With(":@")
	SegmentChar  = PChar
	PathChar     = PChar.With("/")
	QueryChar    = PChar.With("/?")
	FragmentChar = QueryChar

	// HostTerminator lists the characters allowed right after a reg-name host.
	HostTerminator = NewCharSet(":/?#")

	// Graphic is the printable ASCII range, space excluded.
	Graphic = graphic()
)

func graphic() CharSet {
	var cs CharSet
	for c := byte('!'); c <= '~'; c++ {
		cs[c>>6] |= 1 << (c & 63)
	}
	return cs
}
