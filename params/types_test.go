package params_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/params"
	"github.com/ghettovoice/rfc3986/uri"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	list := params.Pairs(encoded.MustPrecoded("page=2&page=3&debug=TRUE&on=1&off=no&n=x&q=a+b"))

	page, err := params.Lookup(list, params.Int("page"))
	if err != nil || page.ValueOr(0) != 2 {
		t.Errorf("params.Lookup(page) = %v, %v, want 2, nil", page, err)
	}
	last, err := params.LookupLast(list, params.Int("page"))
	if err != nil || last.ValueOr(0) != 3 {
		t.Errorf("params.LookupLast(page) = %v, %v, want 3, nil", last, err)
	}
	for name, want := range map[string]bool{"debug": true, "on": true, "off": false} {
		got, err := params.Lookup(list, params.Bool(name))
		if err != nil || got.ValueOr(!want) != want {
			t.Errorf("params.Lookup(%s) = %v, %v, want %v, nil", name, got, err, want)
		}
	}
	q, err := params.Lookup(list, params.Text("q"))
	if err != nil || q.ValueOr("") != "a b" {
		t.Errorf("params.Lookup(q) = %v, %v, want \"a b\", nil", q, err)
	}
	missing, err := params.Lookup(list, params.Int("missing"))
	if err != nil || missing.IsPresent() {
		t.Errorf("params.Lookup(missing) = %v, %v, want <none>, nil", missing, err)
	}

	_, err = params.Lookup(list, params.Int("n"))
	if diff := cmp.Diff(err, params.ErrInvalidValue, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("params.Lookup(n) error = %v, want %v\ndiff (-got +want):\n%v", err, params.ErrInvalidValue, diff)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("params.Lookup(n) error = %v, want %v", err, strconv.ErrSyntax)
	}
	var valErr *params.ValueError
	if !errors.As(err, &valErr) || valErr.Name != "n" || valErr.Value != "x" {
		t.Errorf("params.Lookup(n) error = %#v, want *params.ValueError{Name: n, Value: x}", err)
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	list := params.Pairs(encoded.MustPrecoded("id=1&id=x&id=3&id=y"))
	got, err := params.All(list, params.Int("id"))
	if diff := cmp.Diff(got, []int{1, 3}); diff != "" {
		t.Errorf("params.All(id) = %v, want [1 3]\ndiff (-got +want):\n%v", got, diff)
	}
	if !errors.Is(err, params.ErrInvalidValue) {
		t.Errorf("params.All(id) error = %v, want %v", err, params.ErrInvalidValue)
	}

	got, err = params.All(list, params.Int("none"))
	if err != nil || len(got) != 0 {
		t.Errorf("params.All(none) = %v, %v, want [], nil", got, err)
	}
}

func TestType_Param(t *testing.T) {
	t.Parallel()

	if got, want := params.Bool("b").Param(true), (params.Param{Name: "b", Value: "true"}); got != want {
		t.Errorf("params.Bool(b).Param(true) = %v, want %v", got, want)
	}
	if got, want := params.Int("n").Param(-5).String(), "n=-5"; got != want {
		t.Errorf("params.Int(n).Param(-5) = %q, want %q", got, want)
	}
}

func TestQuery(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://example.com/p?a=1&b=x+y#k=v")
	if diff := cmp.Diff(params.Query(u), params.List{{"a", "1"}, {"b", "x y"}}); diff != "" {
		t.Errorf("params.Query(%q) mismatch\ndiff (-got +want):\n%v", u, diff)
	}
	if diff := cmp.Diff(params.Fragment(u), params.List{{"k", "v"}}); diff != "" {
		t.Errorf("params.Fragment(%q) mismatch\ndiff (-got +want):\n%v", u, diff)
	}

	got, err := params.WithQuery(u, params.Set(params.Query(u), params.Int("a"), 2))
	if err != nil {
		t.Fatalf("params.WithQuery() error = %v, want nil", err)
	}
	if want := "http://example.com/p?b=x+y&a=2#k=v"; got.String() != want {
		t.Errorf("params.WithQuery() = %q, want %q", got, want)
	}

	got, err = params.WithQuery(u, nil)
	if err != nil {
		t.Fatalf("params.WithQuery(nil) error = %v, want nil", err)
	}
	if want := "http://example.com/p#k=v"; got.String() != want {
		t.Errorf("params.WithQuery(nil) = %q, want %q", got, want)
	}
}
