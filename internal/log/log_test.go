package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/log"
	"github.com/ghettovoice/rfc3986/uri"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind    string
		wantErr error
	}{
		{log.KindConsole, nil},
		{log.KindDev, nil},
		{log.KindNone, nil},
		{"json", errorutil.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.kind, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, err := log.New(c.kind, &buf)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("log.New(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.kind, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}

			logger.Info("parsed", "uri", uri.MustParse("http://user@example.com:8080/a?b#c"))
			out := buf.String()
			if c.kind == log.KindNone {
				if out != "" {
					t.Errorf("log.New(%q) wrote %q, want nothing", c.kind, out)
				}
				return
			}
			for _, want := range []string{"parsed", "example.com", "8080", "/a"} {
				if !strings.Contains(out, want) {
					t.Errorf("log.New(%q) output = %q, want it to contain %q", c.kind, out, want)
				}
			}
		})
	}
}

func TestURIValue(t *testing.T) {
	t.Parallel()

	v := log.URIValue(uri.MustParse("mailto:a@b?subject=x"))
	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}
	want := map[string]string{
		"text":   "mailto:a@b?subject=x",
		"scheme": "mailto",
		"path":   "a@b",
		"query":  "subject=x",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("log.URIValue() mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestValuers(t *testing.T) {
	t.Parallel()

	if got := log.StringValue([]byte("abc")).LogValue().String(); got != "abc" {
		t.Errorf("log.StringValue([]byte(abc)) = %q, want %q", got, "abc")
	}
	calls := 0
	v := log.CalcValue(func() any {
		calls++
		return slog.IntValue(5)
	})
	if calls != 0 {
		t.Errorf("log.CalcValue() called fn %d times before LogValue, want 0", calls)
	}
	if got := v.LogValue().Int64(); got != 5 {
		t.Errorf("log.CalcValue().LogValue() = %d, want 5", got)
	}
}
