package types

//go:generate go tool errtrace -w .

import (
	"fmt"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
)

// ErrAbsent is returned when the value of an absent [Optional] is requested.
const ErrAbsent errorutil.Error = "value is absent"

// Optional holds either a value or nothing.
// The zero value is absent.
type Optional[T any] struct {
	val T
	ok  bool
}

// Some returns a present optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{val: v, ok: true} }

// None returns an absent optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// FromPair builds an optional from the common (value, ok) pair.
func FromPair[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Optional[T]) IsPresent() bool { return o.ok }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.val, o.ok }

// ValueOr returns the value if present, otherwise def.
func (o Optional[T]) ValueOr(def T) T {
	if !o.ok {
		return def
	}
	return o.val
}

// Value returns the value or [ErrAbsent].
func (o Optional[T]) Value() (T, error) {
	if !o.ok {
		var zero T
		return zero, errtrace.Wrap(ErrAbsent)
	}
	return o.val, nil
}

// MustValue returns the value or panics with [ErrAbsent].
func (o Optional[T]) MustValue() T {
	if !o.ok {
		panic(ErrAbsent)
	}
	return o.val
}

// Format implements [fmt.Formatter].
// Present values are printed as-is, absent values as "<none>".
func (o Optional[T]) Format(f fmt.State, verb rune) {
	if !o.ok {
		fmt.Fprint(f, "<none>")
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), o.val)
}

// Map applies fn to the value of o if it is present.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.val))
}
