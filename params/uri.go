package params

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/uri"
)

// Query returns the parameters of the query of u.
func Query(u uri.URI) List { return FromOptional(u.Query()) }

// Fragment returns the parameters of the fragment of u.
func Fragment(u uri.URI) List { return FromOptional(u.Fragment()) }

// WithQuery returns u with its query replaced by the encoded list.
// An empty list removes the query.
func WithQuery(u uri.URI, list List) (*uri.StructuredURI, error) {
	query := uri.None[encoded.Text]()
	if len(list) > 0 {
		query = uri.Some(Encode(list))
	}
	return errtrace.Wrap2(uri.New(u.Scheme(), u.Authority(), u.Path(), query, u.Fragment()))
}
