// Package grammar provides the RFC 3986 character classes and percent-encoding helpers.
package grammar
