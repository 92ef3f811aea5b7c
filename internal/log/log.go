// Package log provides the loggers of the command line tool.
package log

//go:generate go tool errtrace -w .

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/constraints"
	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/uri"
)

// Logger kinds accepted by [New].
const (
	KindConsole = "console"
	KindDev     = "dev"
	KindNone    = "none"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(t encoded.Text) slog.Value {
		return slog.StringValue(t.String())
	}),
	slogformatter.FormatByType(func(u uri.URI) slog.Value {
		return URIValue(u)
	}),
)

// URIValue returns the components of u as a group, absent components are omitted.
func URIValue(u uri.URI) slog.Value {
	attrs := []slog.Attr{slog.String("text", uri.Render(u))}
	if s, ok := u.Scheme().Get(); ok {
		attrs = append(attrs, slog.String("scheme", s))
	}
	if a, ok := u.Authority().Get(); ok {
		auth := make([]slog.Attr, 0, 3)
		if ui, ok := a.UserInfo().Get(); ok {
			auth = append(auth, slog.String("userinfo", ui.String()))
		}
		auth = append(auth, slog.String("host", a.Host().String()))
		if p, ok := a.Port().Get(); ok {
			auth = append(auth, slog.Int("port", p))
		}
		attrs = append(attrs, slog.Attr{Key: "authority", Value: slog.GroupValue(auth...)})
	}
	attrs = append(attrs, slog.String("path", uri.PathText(u.Path())))
	if q, ok := u.Query().Get(); ok {
		attrs = append(attrs, slog.String("query", q.String()))
	}
	if f, ok := u.Fragment().Get(); ok {
		attrs = append(attrs, slog.String("fragment", f.String()))
	}
	return slog.GroupValue(attrs...)
}

// Def is a default logger.
var Def = NewConsole(os.Stderr)

// Dev is a developer logger.
var Dev = NewDev(os.Stderr)

// NewConsole returns a human readable logger writing to w.
func NewConsole(w io.Writer) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a developer logger writing to w.
func NewDev(w io.Writer) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// New returns the logger of the given kind writing to w.
func New(kind string, w io.Writer) (*slog.Logger, error) {
	switch kind {
	case KindConsole:
		return NewConsole(w), nil
	case KindDev:
		return NewDev(w), nil
	case KindNone:
		return Noop, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown logger kind %s", strconv.Quote(kind)))
	}
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type calcValue struct{ fn func() any }

func (v calcValue) LogValue() slog.Value {
	cv := v.fn()
	switch cv := cv.(type) {
	case slog.Value:
		return cv
	default:
		return slog.AnyValue(cv)
	}
}

// CalcValue returns a value logger that computes a value using a fn.
func CalcValue(fn func() any) slog.LogValuer { return calcValue{fn} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
