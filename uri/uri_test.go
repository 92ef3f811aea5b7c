package uri_test

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/goleak"

	"github.com/ghettovoice/rfc3986/uri"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const none = "<none>"

// parts holds the components of a URI as text, absent components are "<none>".
type parts struct {
	Scheme, UserInfo, Host, Port, Path, Query, Fragment string
}

func partsOf(u uri.URI) parts {
	p := parts{
		Scheme:   fmt.Sprint(u.Scheme()),
		UserInfo: none,
		Host:     none,
		Port:     none,
		Path:     uri.PathText(u.Path()),
		Query:    fmt.Sprint(u.Query()),
		Fragment: fmt.Sprint(u.Fragment()),
	}
	if a, ok := u.Authority().Get(); ok {
		p.UserInfo = fmt.Sprint(a.UserInfo())
		p.Host = a.Host().String()
		p.Port = fmt.Sprint(a.Port())
	}
	return p
}

func errOffset(err error) int {
	var e interface{ InputOffset() int }
	if errors.As(err, &e) {
		return e.InputOffset()
	}
	return -1
}

func TestRender(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"http://user:pw@example.com:8080/a/b?q=1#frag",
		"//host",
		"file:///etc/hosts",
		"mailto:user@example.com",
		"urn:isbn:0451450523",
		"?q#f",
		"#",
		"?",
		"http://[::1]:80/",
		"a/b/../c",
		"/a%2Fb;p=1",
		"http://h/%7e?%2f#%41",
	}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			t.Parallel()

			u := uri.MustParse(c)
			if got := uri.Render(u); got != c {
				t.Errorf("uri.Render(%q) = %q, want %q", c, got, c)
			}
			if got := uri.Render(uri.MustParse(uri.Render(u))); got != c {
				t.Errorf("uri.Render(uri.Parse(uri.Render(%q))) = %q, want %q", c, got, c)
			}
			if got := u.String(); got != c {
				t.Errorf("uri.Parse(%q).String() = %q, want %q", c, got, c)
			}
		})
	}
}

func TestRender_NormalizedAuthority(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://%7eu%3a@ex%2dample.com:81")
	if got, want := uri.Render(u), "http://~u%3A@ex-ample.com:81"; got != want {
		t.Errorf("uri.Render(%q) = %q, want %q", u.Source(), got, want)
	}
	if got, want := uri.Render(nil), ""; got != want {
		t.Errorf("uri.Render(nil) = %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{"http://a/b", "http://a/b", true},
		{"HTTP://a/b", "http://a/b", true},
		{"http://a/%7Eb", "http://a/~b", true},
		{"http://a/b/./c/../d", "http://a/b/d", true},
		{"http://a/b?%3f", "http://a/b?%3F", true},
		{"http://a/b", "http://a/b/", false},
		{"http://a/b?q", "http://a/b", false},
		{"http://a/b#f", "http://a/b#g", false},
		{"http://a:80/b", "http://a/b", false},
	}

	for _, c := range cases {
		t.Run(c.a+" "+c.b, func(t *testing.T) {
			t.Parallel()

			if got := uri.Equal(uri.MustParse(c.a), uri.MustParse(c.b)); got != c.want {
				t.Errorf("uri.Equal(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}

	if !uri.Equal(nil, nil) {
		t.Error("uri.Equal(nil, nil) = false, want true")
	}
	if uri.Equal(uri.Empty, nil) {
		t.Error("uri.Equal(uri.Empty, nil) = true, want false")
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://a/b?c")
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "http://a/b?c"},
		{"%+s", "http://a/b?c"},
		{"%q", `"http://a/b?c"`},
	}

	for _, c := range cases {
		if got := fmt.Sprintf(c.format, u); got != c.want {
			t.Errorf("fmt.Sprintf(%q, u) = %q, want %q", c.format, got, c.want)
		}
		if got := fmt.Sprintf(c.format, uri.Normalize(u)); got != c.want {
			t.Errorf("fmt.Sprintf(%q, uri.Normalize(u)) = %q, want %q", c.format, got, c.want)
		}
	}
}

func errorAs[T error](err error, target *T) bool { return errors.As(err, target) }

func errorIs(err, target error) bool { return errors.Is(err, target) }

func TestFormat_Verbose(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://a/b")
	if got, want := fmt.Sprint(u), "http://a/b"; got != want {
		t.Errorf("fmt.Sprint(u) = %q, want %q", got, want)
	}
	if got := fmt.Sprintf("%#v", u); got == "http://a/b" {
		t.Errorf("fmt.Sprintf(\"%%#v\", u) = %q, want struct dump", got)
	}
}
