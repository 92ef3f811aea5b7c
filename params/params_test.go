package params_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/params"
	"github.com/ghettovoice/rfc3986/uri"
)

func TestPairs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want params.List
	}{
		{"", nil},
		{"a=1", params.List{{"a", "1"}}},
		{"a=1&b=2&a=3", params.List{{"a", "1"}, {"b", "2"}, {"a", "3"}}},
		{"a", params.List{{"a", ""}}},
		{"a=", params.List{{"a", ""}}},
		{"=1", params.List{{"", "1"}}},
		{"a=b=c", params.List{{"a", "b=c"}}},
		{"a=1&&b=2&", params.List{{"a", "1"}, {"b", "2"}}},
		{"q=a+b%2Bc&%C3%A9=%E2%82%AC", params.List{{"q", "a b+c"}, {"é", "€"}}},
		{"l=a%0D%0Ab", params.List{{"l", "a\r\nb"}}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got := params.Pairs(encoded.MustPrecoded(c.in))
			if diff := cmp.Diff(got, c.want, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("params.Pairs(%q) = %v, want %v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}

	if got := params.FromOptional(uri.None[encoded.Text]()); got != nil {
		t.Errorf("params.FromOptional(None) = %v, want nil", got)
	}
}

func TestPairsAs(t *testing.T) {
	t.Parallel()

	latin1 := encoded.MustCharset("ISO-8859-1")
	got, err := params.PairsAs(encoded.MustPrecoded("n=%E9t%E9"), latin1)
	if err != nil {
		t.Fatalf("params.PairsAs() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, params.List{{"n", "été"}}); diff != "" {
		t.Errorf("params.PairsAs() = %v, want [n=été]\ndiff (-got +want):\n%v", got, diff)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	list := params.List{{"q", "a b+c"}, {"é", "€"}, {"empty", ""}, {"l", "x\ny"}}
	got := params.Encode(list)
	if want := "q=a+b%2Bc&%C3%A9=%E2%82%AC&empty=&l=x%0D%0Ay"; got.String() != want {
		t.Errorf("params.Encode(%v) = %q, want %q", list, got, want)
	}
	if diff := cmp.Diff(params.Pairs(got), params.List{{"q", "a b+c"}, {"é", "€"}, {"empty", ""}, {"l", "x\r\ny"}}); diff != "" {
		t.Errorf("params.Pairs(params.Encode(%v)) mismatch\ndiff (-got +want):\n%v", list, diff)
	}

	latin1 := encoded.MustCharset("ISO-8859-1")
	if _, err := params.EncodeAs(params.List{{"x", "€"}}, latin1); !cmp.Equal(err, encoded.ErrCharset, cmpopts.EquateErrors()) {
		t.Errorf("params.EncodeAs(€, latin1) error = %v, want %v", err, encoded.ErrCharset)
	}
	if got := params.Encode(nil).String(); got != "" {
		t.Errorf("params.Encode(nil) = %q, want \"\"", got)
	}
}

func TestEditing(t *testing.T) {
	t.Parallel()

	list := params.List{{"a", "1"}, {"b", "2"}, {"a", "3"}}

	cases := []struct {
		name string
		got  params.List
		want params.List
	}{
		{"appending", params.Appending(list, params.Param{"c", "4"}), params.List{{"a", "1"}, {"b", "2"}, {"a", "3"}, {"c", "4"}}},
		{"replacing", params.Replacing(list, params.Param{"a", "9"}), params.List{{"b", "2"}, {"a", "9"}}},
		{"replacing new", params.Replacing(list, params.Param{"z", "0"}), params.List{{"a", "1"}, {"b", "2"}, {"a", "3"}, {"z", "0"}}},
		{"removing", params.Removing(list, "a"), params.List{{"b", "2"}}},
		{"removing missing", params.Removing(list, "z"), list},
		{"set", params.Set(list, params.Int("b"), 7), params.List{{"a", "1"}, {"a", "3"}, {"b", "7"}}},
	}

	for _, c := range cases {
		if diff := cmp.Diff(c.got, c.want); diff != "" {
			t.Errorf("%s: got %v, want %v\ndiff (-got +want):\n%v", c.name, c.got, c.want, diff)
		}
	}

	// the source list is never modified
	if diff := cmp.Diff(list, params.List{{"a", "1"}, {"b", "2"}, {"a", "3"}}); diff != "" {
		t.Errorf("source list was modified\ndiff (-got +want):\n%v", diff)
	}
	if !list.Has("b") || list.Has("c") {
		t.Errorf("list.Has(b), list.Has(c) = %v, %v, want true, false", list.Has("b"), list.Has("c"))
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	vals := params.Collect(params.List{{"a", "1"}, {"b", "2"}, {"a", "3"}})
	if diff := cmp.Diff(vals.Get("a"), []string{"1", "3"}); diff != "" {
		t.Errorf("vals.Get(a) mismatch\ndiff (-got +want):\n%v", diff)
	}
	if v, ok := vals.Last("a"); !ok || v != "3" {
		t.Errorf("vals.Last(a) = %q, %v, want \"3\", true", v, ok)
	}
}
