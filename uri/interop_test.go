package uri_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/uri"
)

func TestFromURL(t *testing.T) {
	t.Parallel()

	pu, err := url.Parse("http://user@example.com:8080/a%20b?x=1#f")
	if err != nil {
		t.Fatalf("url.Parse() error = %v, want nil", err)
	}
	u, err := uri.FromURL(pu)
	if err != nil {
		t.Fatalf("uri.FromURL(%q) error = %v, want nil", pu, err)
	}
	want := parts{"http", "user", "example.com", "8080", "/a%20b", "x=1", "f"}
	if diff := cmp.Diff(partsOf(u), want); diff != "" {
		t.Errorf("uri.FromURL(%q) = %+v, want %+v\ndiff (-got +want):\n%v", pu, partsOf(u), want, diff)
	}

	if _, err := uri.FromURL(nil); !errorIs(err, errorutil.ErrInvalidArgument) {
		t.Errorf("uri.FromURL(nil) error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
}

func TestToURL(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://user@example.com:8080/a%20b?x=1#f")
	pu, err := uri.ToURL(u)
	if err != nil {
		t.Fatalf("uri.ToURL(%q) error = %v, want nil", u, err)
	}
	if got, want := pu.Host, "example.com:8080"; got != want {
		t.Errorf("uri.ToURL(%q).Host = %q, want %q", u, got, want)
	}
	if got, want := pu.Path, "/a b"; got != want {
		t.Errorf("uri.ToURL(%q).Path = %q, want %q", u, got, want)
	}
	if got, want := pu.RawQuery, "x=1"; got != want {
		t.Errorf("uri.ToURL(%q).RawQuery = %q, want %q", u, got, want)
	}
	if got, want := pu.User.Username(), "user"; got != want {
		t.Errorf("uri.ToURL(%q).User = %q, want %q", u, got, want)
	}
	if got, want := pu.String(), u.String(); got != want {
		t.Errorf("uri.ToURL(%q).String() = %q, want %q", u, got, want)
	}

	if _, err := uri.ToURL(nil); !errorIs(err, errorutil.ErrInvalidArgument) {
		t.Errorf("uri.ToURL(nil) error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
}
