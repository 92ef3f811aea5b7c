package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/uri"
)

func TestClassifyHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host string
		want uri.HostKind
	}{
		{"", uri.HostEmpty},
		{"[::1]", uri.HostIPLiteral},
		{"[v1.fe80::a+en1]", uri.HostIPLiteral},
		{"192.0.2.1", uri.HostIPv4},
		{"%31%39%32.0.2.1", uri.HostIPv4},
		{"example.com", uri.HostDNSName},
		{"Example.COM.", uri.HostDNSName},
		{"xn--bcher-kva.example", uri.HostDNSName},
		{"localhost", uri.HostDNSName},
		{"my%20host", uri.HostRegName},
		{"a_b.example", uri.HostRegName},
		{"a..b", uri.HostRegName},
		{"256.0.0.1", uri.HostDNSName},
	}

	for _, c := range cases {
		t.Run(c.host, func(t *testing.T) {
			t.Parallel()

			if got := uri.ClassifyHost(encoded.MustPrecoded(c.host)); got != c.want {
				t.Errorf("uri.ClassifyHost(%q) = %v, want %v", c.host, got, c.want)
			}
		})
	}

	if got := uri.ClassifyHost(nil); got != uri.HostEmpty {
		t.Errorf("uri.ClassifyHost(nil) = %v, want %v", got, uri.HostEmpty)
	}
}

func TestUnicodeHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host    string
		want    string
		wantErr error
	}{
		{"xn--bcher-kva.example", "bücher.example", nil},
		{"XN--BCHER-KVA.example", "bücher.example", nil},
		{"example.com", "example.com", nil},
		{"[::1]", "[::1]", nil},
		{"192.0.2.1", "192.0.2.1", nil},
		{"my%20host", "my host", nil},
		{"", "", nil},
	}

	for _, c := range cases {
		t.Run(c.host, func(t *testing.T) {
			t.Parallel()

			got, err := uri.UnicodeHost(encoded.MustPrecoded(c.host))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.UnicodeHost(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.host, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("uri.UnicodeHost(%q) = %q, want %q", c.host, got, c.want)
			}
		})
	}
}

func TestASCIIHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		want    string
		wantErr error
	}{
		{"bücher.example", "xn--bcher-kva.example", nil},
		{"Example.COM", "example.com", nil},
		{"a b", "", uri.ErrHost},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ASCIIHost(c.name)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.ASCIIHost(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.name, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}
			if got.String() != c.want {
				t.Errorf("uri.ASCIIHost(%q) = %q, want %q", c.name, got, c.want)
			}
			if kind := uri.ClassifyHost(got); kind != uri.HostDNSName {
				t.Errorf("uri.ClassifyHost(uri.ASCIIHost(%q)) = %v, want %v", c.name, kind, uri.HostDNSName)
			}
		})
	}
}

func TestHostKind_String(t *testing.T) {
	t.Parallel()

	if got, want := uri.HostIPv4.String(), "IPv4"; got != want {
		t.Errorf("uri.HostIPv4.String() = %q, want %q", got, want)
	}
	if got, want := uri.HostKind(42).String(), "unknown"; got != want {
		t.Errorf("uri.HostKind(42).String() = %q, want %q", got, want)
	}
}
