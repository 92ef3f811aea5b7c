// Package params reads and writes application/x-www-form-urlencoded parameters
// of a URI query or fragment.
//
//	u := uri.MustParse("http://example.com/?page=2&q=a+b")
//	list := params.FromOptional(u.Query())
//	page, err := params.Lookup(list, params.Int("page")) // Some(2)
package params

//go:generate go tool errtrace -w .

import (
	"iter"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/types"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// Optional holds either a value or nothing.
type Optional[T any] = types.Optional[T]

// Values maps parameter names to their values in order of appearance.
type Values = types.Values

// Param is a decoded name-value pair.
type Param struct {
	Name, Value string
}

func (p Param) String() string { return p.Name + "=" + p.Value }

// List is an ordered list of parameters, names may repeat.
type List []Param

// Pairs splits form-encoded text into parameters.
// Pairs are separated by "&", the first "=" of a pair separates the name from the value.
// A pair without "=" has an empty value, empty pairs are skipped.
// Names and values are decoded as UTF-8 with "+" standing for a space.
func Pairs(text encoded.Text) List {
	if encoded.IsEmpty(text) {
		return nil
	}
	s := text.String()
	list := make(List, 0, strings.Count(s, "&")+1)
	for pair := range strings.SplitSeq(s, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		list = append(list, Param{Name: formDecode(name), Value: formDecode(value)})
	}
	return list
}

// PairsAs is like [Pairs] but decodes the names and values in the charset cs.
func PairsAs(text encoded.Text, cs encoded.Charset) (List, error) {
	if encoded.IsEmpty(text) {
		return nil, nil
	}
	var list List
	for pair := range strings.SplitSeq(text.String(), "&") {
		if pair == "" {
			continue
		}
		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := encoded.FormDecodeString(rawName, cs)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		value, err := encoded.FormDecodeString(rawValue, cs)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		list = append(list, Param{Name: name, Value: value})
	}
	return list, nil
}

// FromOptional returns the parameters of an optional component, e.g. [uri.URI.Query].
// An absent component has no parameters.
func FromOptional(text Optional[encoded.Text]) List {
	t, ok := text.Get()
	if !ok {
		return nil
	}
	return Pairs(t)
}

// formDecode decodes a part of valid encoded text, it can not fail for UTF-8.
func formDecode(s string) string {
	return util.Must2(encoded.FormDecodeString(s, encoded.UTF8))
}

// All returns the parameters in order.
func (l List) All() iter.Seq[Param] { return slices.Values(l) }

// Named returns the parameters with the given name in order.
func (l List) Named(name string) iter.Seq[Param] {
	return func(yield func(Param) bool) {
		for _, p := range l {
			if p.Name == name && !yield(p) {
				return
			}
		}
	}
}

// Has reports whether the list contains a parameter with the given name.
func (l List) Has(name string) bool {
	_, ok := util.IterFirst(l.Named(name))
	return ok
}

// Appending returns the list with the parameters added at the end.
func Appending(list List, ps ...Param) List {
	return append(slices.Clip(list), ps...)
}

// Replacing returns the list without the parameters named as any of ps,
// followed by ps.
func Replacing(list List, ps ...Param) List {
	out := slices.DeleteFunc(slices.Clone(list), func(p Param) bool {
		return slices.ContainsFunc(ps, func(np Param) bool { return np.Name == p.Name })
	})
	return append(out, ps...)
}

// Removing returns the list without the parameters with any of the given names.
func Removing(list List, names ...string) List {
	return slices.DeleteFunc(slices.Clone(list), func(p Param) bool {
		return slices.Contains(names, p.Name)
	})
}

// Encode returns the form-encoded UTF-8 text of the list:
//
//	name1=value1&name2=value2
func Encode(list List) encoded.Text {
	return util.Must2(EncodeAs(list, encoded.UTF8))
}

// EncodeAs is like [Encode] but the names and values are represented in the charset cs.
func EncodeAs(list List, cs encoded.Charset) (encoded.Text, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, p := range list {
		if i > 0 {
			sb.WriteByte('&')
		}
		name, err := encoded.FormEncodeString(p.Name, cs)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		value, err := encoded.FormEncodeString(p.Value, cs)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(value)
	}
	return errtrace.Wrap2(encoded.FormPrecoded(sb.String()))
}

// Collect gathers the list into a multimap.
func Collect(list List) Values {
	vals := make(Values, len(list))
	for _, p := range list {
		vals.Append(p.Name, p.Value)
	}
	return vals
}
