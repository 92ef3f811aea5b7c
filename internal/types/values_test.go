package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/rfc3986/internal/types"
)

func TestValues(t *testing.T) {
	t.Parallel()

	vals := types.Values{}
	vals.Append("a", "1").Append("a", "2").Set("b", "x")

	if diff := cmp.Diff(vals.Get("a"), []string{"1", "2"}); diff != "" {
		t.Errorf("vals.Get(a) mismatch\ndiff (-got +want):\n%v", diff)
	}
	if v, ok := vals.First("a"); !ok || v != "1" {
		t.Errorf("vals.First(a) = %q, %v, want \"1\", true", v, ok)
	}
	if v, ok := vals.Last("a"); !ok || v != "2" {
		t.Errorf("vals.Last(a) = %q, %v, want \"2\", true", v, ok)
	}
	if _, ok := vals.First("c"); ok {
		t.Error("vals.First(c) ok = true, want false")
	}

	vals.Set("a", "3")
	if diff := cmp.Diff(vals.Get("a"), []string{"3"}); diff != "" {
		t.Errorf("vals.Set(a, 3) mismatch\ndiff (-got +want):\n%v", diff)
	}
	if !vals.Del("b").Has("a") || vals.Has("b") {
		t.Errorf("vals.Del(b) = %v, want only a", vals)
	}
}
