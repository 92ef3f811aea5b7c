package uri_test

import (
	"fmt"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/uri"
)

func ExampleParse() {
	u, err := uri.Parse("http://user@example.com:8080/a/b?q=1#frag")
	if err != nil {
		fmt.Println(err)
		return
	}
	a := u.Authority().MustValue()
	fmt.Println(u.Scheme().MustValue())
	fmt.Println(a.UserInfo().MustValue(), a.Host(), a.Port().MustValue())
	fmt.Println(uri.PathText(u.Path()))
	fmt.Println(u.Query().MustValue(), u.Fragment().MustValue())
	// Output:
	// http
	// user example.com 8080
	// /a/b
	// q=1 frag
}

func ExampleResolve() {
	base := uri.MustParse("http://a/b/c/d;p?q")
	for _, ref := range []string{"g", "../g", "?y", "//g", "../../../g"} {
		fmt.Println(uri.Resolve(base, uri.MustParse(ref)))
	}
	// Output:
	// http://a/b/c/g
	// http://a/b/g
	// http://a/b/c/d;p?y
	// http://g
	// http://a/g
}

func ExampleNormalize() {
	fmt.Println(uri.Normalize(uri.MustParse("HTTP://example.com/a/./b/../%7euser?%3f")))
	// Output:
	// http://example.com/a/~user?%3F
}

func ExampleNew() {
	host, err := uri.HostPort(encoded.Encode("example.com"), 8443)
	if err != nil {
		fmt.Println(err)
		return
	}
	u, err := uri.New(
		uri.Some("https"),
		uri.Some[uri.Authority](host),
		uri.NewPath(encoded.Empty, encoded.Encode("My Documents"), encoded.Encode("a+b.txt")),
		uri.Some(encoded.Encode("v=1")),
		uri.None[encoded.Text](),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(u)
	// Output:
	// https://example.com:8443/My%20Documents/a%2Bb.txt?v%3D1
}
