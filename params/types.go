package params

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/types"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// ErrInvalidValue is the kind of [ValueError].
const ErrInvalidValue errorutil.Error = "invalid parameter value"

// ValueError reports a parameter value that its [Type] can not parse.
type ValueError struct {
	Name, Value string
	Err         error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s %q=%q: %v", ErrInvalidValue, e.Name, e.Value, e.Err)
}

func (e *ValueError) Unwrap() []error { return []error{ErrInvalidValue, e.Err} }

// Type describes a named parameter with values of type T.
type Type[T any] struct {
	Name   string
	Parse  func(string) (T, error)
	Format func(T) string
}

// Text is a parameter with text values.
func Text(name string) Type[string] {
	return Type[string]{
		Name:   name,
		Parse:  func(s string) (string, error) { return s, nil },
		Format: func(s string) string { return s },
	}
}

// Int is a parameter with decimal integer values.
func Int(name string) Type[int] {
	return Type[int]{
		Name:   name,
		Parse:  strconv.Atoi,
		Format: strconv.Itoa,
	}
}

// Bool is a parameter with boolean values.
// "true" in any case and "1" are true, any other value is false.
func Bool(name string) Type[bool] {
	return Type[bool]{
		Name:   name,
		Parse:  func(s string) (bool, error) { return util.EqFold(s, "true") || s == "1", nil },
		Format: strconv.FormatBool,
	}
}

// Param returns the parameter holding v.
func (t Type[T]) Param(v T) Param { return Param{Name: t.Name, Value: t.Format(v)} }

func (t Type[T]) parse(p Param) (T, error) {
	v, err := t.Parse(p.Value)
	if err != nil {
		return v, errtrace.Wrap(&ValueError{Name: p.Name, Value: p.Value, Err: err})
	}
	return v, nil
}

// Lookup returns the value of the first parameter of the type.
func Lookup[T any](list List, t Type[T]) (Optional[T], error) {
	p, ok := util.IterFirst(list.Named(t.Name))
	if !ok {
		return types.None[T](), nil
	}
	v, err := t.parse(p)
	if err != nil {
		return types.None[T](), errtrace.Wrap(err)
	}
	return types.Some(v), nil
}

// LookupLast is like [Lookup] but returns the value of the last parameter of the type.
func LookupLast[T any](list List, t Type[T]) (Optional[T], error) {
	p, ok := util.IterLast(list.Named(t.Name))
	if !ok {
		return types.None[T](), nil
	}
	v, err := t.parse(p)
	if err != nil {
		return types.None[T](), errtrace.Wrap(err)
	}
	return types.Some(v), nil
}

// All returns the values of all parameters of the type in order.
// Values that can not be parsed are skipped and reported together in the error.
func All[T any](list List, t Type[T]) ([]T, error) {
	var (
		vals []T
		errs []error
	)
	for p := range list.Named(t.Name) {
		v, err := t.parse(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals = append(vals, v)
	}
	return vals, errtrace.Wrap(errorutil.JoinPrefix("parameter "+t.Name, errs...))
}

// Set returns the list with every parameter of the type replaced by a single one holding v.
func Set[T any](list List, t Type[T], v T) List {
	return Replacing(list, t.Param(v))
}
