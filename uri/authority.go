package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/grammar"
	"github.com/ghettovoice/rfc3986/internal/ioutil"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// StructuredAuthority is an [Authority] built from its parts.
type StructuredAuthority struct {
	userInfo Optional[encoded.Text]
	host     encoded.Text
	port     Optional[int]
}

// NewAuthority returns an authority made of the given parts.
//
// The user info may contain reg-name characters and ":", the host must be a reg-name
// or an IP literal enclosed in brackets. The port must be below [MaxPort].
func NewAuthority(userInfo Optional[encoded.Text], host encoded.Text, port Optional[int]) (*StructuredAuthority, error) {
	if host == nil {
		host = encoded.Empty
	}
	if ui, ok := userInfo.Get(); ok {
		if ui == nil {
			userInfo = Some(encoded.Empty)
		} else if err := checkChars("userinfo", ui, grammar.UserInfoChar); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if err := checkHost(host); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if p, ok := port.Get(); ok && (p < 0 || p >= MaxPort) {
		return nil, errtrace.Wrap(&RangeError{Port: p, Offset: -1})
	}
	return &StructuredAuthority{userInfo: userInfo, host: host, port: port}, nil
}

// Host returns an authority made of the host only.
func Host(host encoded.Text) (*StructuredAuthority, error) {
	return errtrace.Wrap2(NewAuthority(None[encoded.Text](), host, None[int]()))
}

// HostPort returns an authority made of the host and port.
func HostPort(host encoded.Text, port uint16) (*StructuredAuthority, error) {
	return errtrace.Wrap2(NewAuthority(None[encoded.Text](), host, Some(int(port))))
}

func checkHost(host encoded.Text) error {
	n := host.Len()
	if n == 0 || host.At(0) != '[' {
		return errtrace.Wrap(checkChars("host", host, grammar.RegNameChar))
	}
	for i := 1; i < n-1; i++ {
		if host.At(i) == ']' {
			return errtrace.Wrap(newSyntaxError("host", host.String(), i))
		}
	}
	if n < 2 || host.At(n-1) != ']' {
		return errtrace.Wrap(newSyntaxError("host", host.String(), n))
	}
	return nil
}

func (a *StructuredAuthority) UserInfo() Optional[encoded.Text] { return a.userInfo }

func (a *StructuredAuthority) Host() encoded.Text {
	if a.host == nil {
		return encoded.Empty
	}
	return a.host
}

func (a *StructuredAuthority) Port() Optional[int] { return a.port }

// RenderTo writes the text of the authority to w.
func (a *StructuredAuthority) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(RenderAuthorityTo(w, a))
}

// Render returns the text of the authority.
func (a *StructuredAuthority) Render() string { return RenderAuthority(a) }

// String returns the text of the authority.
func (a *StructuredAuthority) String() string {
	if a == nil {
		return ""
	}
	return a.Render()
}

// Format implements [fmt.Formatter].
func (a *StructuredAuthority) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
	default:
		fmt.Fprint(f, a.String())
	}
}

// RenderAuthority returns the text of the authority:
//
//	[userinfo "@"] host [":" port]
//
// The user info and host are written in their normalized form.
func RenderAuthority(a Authority) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	RenderAuthorityTo(sb, a) //nolint:errcheck
	return sb.String()
}

// RenderAuthorityTo writes the text of the authority to w, see [RenderAuthority].
func RenderAuthorityTo(w io.Writer, a Authority) (num int, err error) {
	if a == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if ui, ok := a.UserInfo().Get(); ok {
		cw.WriteString(ui.Normalized().String()) //nolint:errcheck
		cw.WriteByte('@')                        //nolint:errcheck
	}
	if h := a.Host(); h != nil {
		cw.WriteString(h.Normalized().String()) //nolint:errcheck
	}
	if p, ok := a.Port().Get(); ok {
		cw.WriteDelimited(':', strconv.Itoa(p))
	}
	return errtrace.Wrap2(cw.Result())
}
