// Package encoded implements percent-encoded text as defined by RFC 3986 section 2.1.
//
// # Text
//
// [Text] is a read-only view over characters that are guaranteed to be ASCII graphic characters
// or well formed percent-encoded triplets. Values are produced by
//
//   - [Precoded] and [FormPrecoded] from text that is already percent-encoded;
//   - [Encode], [EncodeAs], [FormEncode] and [FormEncodeAs] from plain text;
//   - [Text.Normalized] and [Text.Slice] from other values;
//   - the predefined [Empty], [Current] and [Parent] values.
//
// Slicing never copies the characters, sub-views share the string they were cut from.
// Two values are equal, see [Equal], when their normalized forms are identical.
//
// # Codec
//
// The string level functions [EncodeString], [DecodeString], [NormalizeString] and their form variants
// implement the codec directly. Encoding leaves only unreserved characters literal,
// every other byte of the charset representation becomes an uppercase "%XX" triplet.
//
// The form variants follow application/x-www-form-urlencoded rules:
// a space is written as "+", every line feed is written as "%0D%0A" and carriage returns are dropped,
// so any line break convention is rendered as a single "%0D%0A".
//
// # Charsets
//
// Plain text is UTF-8 by default. Other charsets are resolved by their IANA name with [LookupCharset].
package encoded
