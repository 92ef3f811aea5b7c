package uri

import (
	"net/url"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
)

// FromURL returns the URI-reference of a [url.URL].
// The URL is rendered with [url.URL.String] and parsed again, so the result holds its encoded form.
func FromURL(u *url.URL) (*LazyURI, error) {
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URL"))
	}
	return errtrace.Wrap2(Parse(u.String()))
}

// ToURL converts the URI to a [url.URL].
func ToURL(u URI) (*url.URL, error) {
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}
	pu, err := url.Parse(Render(u))
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return pu, nil
}
