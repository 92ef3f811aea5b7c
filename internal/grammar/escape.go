package grammar

// UpperHex holds the uppercase hex digits indexed by their value.
const UpperHex = "0123456789ABCDEF"

// IsHex reports whether c is a hex digit of either case.
func IsHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// Unhex returns the value of the hex digit c, or 0 when c is not one.
func Unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsTriplet reports whether s holds a well formed "%" HEXDIG HEXDIG triplet at offset i.
func IsTriplet(s string, i int) bool {
	return i+2 < len(s) && s[i] == '%' && IsHex(s[i+1]) && IsHex(s[i+2])
}

// AppendTriplet appends the uppercase percent-encoded form of c to dst.
func AppendTriplet(dst []byte, c byte) []byte {
	return append(dst, '%', UpperHex[c>>4], UpperHex[c&15])
}
