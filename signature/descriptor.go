package signature

import (
	"strings"

	"numpydoc/internal/common"
)

// Kind classifies how a parameter is passed.
type Kind int

const (
	KindPositional Kind = iota
	KindKeyword
	KindVarPositional
	KindVarKeyword
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindKeyword:
		return "keyword"
	case KindVarPositional:
		return "var_positional"
	case KindVarKeyword:
		return "var_keyword"
	default:
		return common.UnknownStr
	}
}

// IsVariadic reports whether the parameter collects a variable number of
// arguments.
func (k Kind) IsVariadic() bool {
	return k == KindVarPositional || k == KindVarKeyword
}

// Param describes one declared parameter.
type Param struct {
	// Name is the identifier documentation entries are matched against.
	Name string
	// Display is the name as the signature shows it (for example with a
	// variadic marker). Empty means Name.
	Display string
	// TypeLabel is the rendered type, empty when unknown.
	TypeLabel string
	// HasDefault reports whether the parameter declares a default.
	HasDefault bool
	// DefaultRepr is the display form of the default, empty when it has
	// no useful representation.
	DefaultRepr string
	Kind        Kind
}

// DisplayName returns Display, falling back to Name.
func (p Param) DisplayName() string {
	if p.Display != "" {
		return p.Display
	}

	return p.Name
}

// Value is one returned or yielded value.
type Value struct {
	Name      string
	TypeLabel string
}

// Outputs describes what a callable returns or yields. Label is the
// label of the output as a whole; Values holds per-value labels when the
// output is a tuple.
type Outputs struct {
	Label  string
	Values []Value
}

// IsZero reports whether nothing is known about the outputs.
func (o Outputs) IsZero() bool {
	return o.Label == "" && len(o.Values) == 0
}

// Descriptor is the read-only view of a callable's declared interface.
type Descriptor struct {
	Params  []Param
	Returns Outputs
	Yields  Outputs
}

// Param looks a parameter up by name.
func (d Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}

	return Param{}, false
}

// Names returns the parameter names in declaration order.
func (d Descriptor) Names() []string {
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.Name
	}

	return names
}

// WithDefault returns a copy of d in which the named parameter declares a
// default with the given representation. Unknown names are ignored.
func (d Descriptor) WithDefault(name, repr string) Descriptor {
	out := d.clone()

	for i := range out.Params {
		if out.Params[i].Name == name {
			out.Params[i].HasDefault = true
			out.Params[i].DefaultRepr = repr
		}
	}

	return out
}

func (d Descriptor) clone() Descriptor {
	out := d
	out.Params = append([]Param(nil), d.Params...)
	out.Returns.Values = append([]Value(nil), d.Returns.Values...)
	out.Yields.Values = append([]Value(nil), d.Yields.Values...)

	return out
}

// TupleLabel renders value labels the way Go spells a result list:
// a single label stands alone, several are parenthesised. Unknown labels
// make the whole tuple unknown.
func TupleLabel(values []Value) string {
	if len(values) == 0 {
		return ""
	}

	labels := make([]string, len(values))
	for i, v := range values {
		if v.TypeLabel == "" {
			return ""
		}

		labels[i] = v.TypeLabel
	}

	if len(labels) == 1 {
		return labels[0]
	}

	return "(" + strings.Join(labels, ", ") + ")"
}
