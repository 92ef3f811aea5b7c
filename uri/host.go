package uri

import (
	"net/netip"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/grammar"
)

// HostKind is the syntactic kind of a host.
type HostKind int

const (
	// HostEmpty is an empty host, e.g. of "file:///etc".
	HostEmpty HostKind = iota
	// HostIPLiteral is a host enclosed in brackets, its content is not checked.
	HostIPLiteral
	// HostIPv4 is a dotted-decimal IPv4 address.
	HostIPv4
	// HostDNSName is a reg-name made of valid DNS labels.
	HostDNSName
	// HostRegName is any other reg-name.
	HostRegName
)

func (k HostKind) String() string {
	switch k {
	case HostEmpty:
		return "empty"
	case HostIPLiteral:
		return "IP-literal"
	case HostIPv4:
		return "IPv4"
	case HostDNSName:
		return "DNS name"
	case HostRegName:
		return "reg-name"
	default:
		return "unknown"
	}
}

var dnsNameChar = grammar.NewCharSet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-.")

// ClassifyHost returns the kind of the host.
//
//	""              => HostEmpty
//	"[::1]"         => HostIPLiteral
//	"192.0.2.1"     => HostIPv4
//	"example.com"   => HostDNSName
//	"my%20host"     => HostRegName
func ClassifyHost(host encoded.Text) HostKind {
	if encoded.IsEmpty(host) {
		return HostEmpty
	}
	if host.At(0) == '[' {
		return HostIPLiteral
	}
	name := host.Decoded()
	if addr, err := netip.ParseAddr(name); err == nil && addr.Is4() {
		return HostIPv4
	}
	if dnsNameChar.ContainsAll(name) && !strings.HasPrefix(name, ".") {
		if _, ok := dns.IsDomainName(name); ok {
			return HostDNSName
		}
	}
	return HostRegName
}

// UnicodeHost returns the Unicode form of an internationalized DNS host, e.g. "xn--bcher-kva.example"
// gives "bücher.example". Hosts that are not DNS names are returned decoded.
func UnicodeHost(host encoded.Text) (string, error) {
	switch ClassifyHost(host) {
	case HostDNSName:
		name, err := idna.Lookup.ToUnicode(strings.ToLower(host.String()))
		if err != nil {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrHost, err))
		}
		return name, nil
	case HostEmpty:
		return "", nil
	case HostIPLiteral:
		return host.String(), nil
	default:
		return host.Decoded(), nil
	}
}

// ASCIIHost returns the host of an internationalized domain name in its ASCII (punycode) form,
// ready to be used as the host of an authority.
func ASCIIHost(name string) (encoded.Text, error) {
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrHost, err))
	}
	t, err := encoded.Idempotent(ascii)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrHost, err))
	}
	return t, nil
}
