// Package uri implements URIs and URI-references as defined by RFC 3986.
//
// A [URI] exposes its five components: scheme, authority, path, query and fragment.
// [Parse] returns a [LazyURI] that splits the encoded text into components
// on first access, validating each one against its grammar.
// [New], [Relative] and [Opaque] build a [StructuredURI] from components,
// checking the rules that link them together.
//
//	u, err := uri.Parse("http://user@example.com:8080/a/b?q#frag")
//	if err != nil {
//		// handle error
//	}
//	host := u.Authority().MustValue().Host() // example.com
//
// Paths are sequences of percent-encoded segments.
// [NormalizePath], [Extend] and [ResolvePath] return paths computed from other paths
// following the dot-segment removal algorithm of RFC 3986 section 5.2.4.
//
// [Resolve] resolves a reference against a base URI (RFC 3986 section 5.2)
// and [Normalize] returns the syntax-based normalization of a URI (RFC 3986 section 6.2.2).
// [Equal] compares URIs by their normalized forms.
//
//	base := uri.MustParse("http://a/b/c/d;p?q")
//	uri.Resolve(base, uri.MustParse("../g")).String() // http://a/b/g
//
// All the values of the package are immutable and safe for concurrent use.
// Computed components are memoized on first access.
package uri
