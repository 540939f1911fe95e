package docfields

// Param documents one parameter. Description is the prose; the other
// fields override what the signature would otherwise contribute to the
// header line, for parameters whose type cannot or should not be
// inferred.
type Param struct {
	Description string
	// Type replaces the signature's type label when non-empty.
	Type string
	// Optional marks the parameter optional even when the signature
	// declares no default.
	Optional bool
	// Default replaces the signature's default representation.
	Default string
}

// MarshalYAML emits a bare string when only the description is set.
func (p Param) MarshalYAML() (any, error) {
	if p.Type == "" && !p.Optional && p.Default == "" {
		return p.Description, nil
	}

	type plain struct {
		Description string `yaml:"description"`
		Type        string `yaml:"type,omitempty"`
		Optional    bool   `yaml:"optional,omitempty"`
		Default     string `yaml:"default,omitempty"`
	}

	return plain(p), nil
}

// Params maps parameter names to their documentation.
type Params = OrderedMap[Param]

// Descriptions maps names (error kinds, cross-reference targets, return
// values, citation keys) to prose.
type Descriptions = OrderedMap[string]

// NewParams builds a Params map in the given order.
func NewParams(entries ...Entry[Param]) *Params {
	return NewOrderedMap(entries...)
}

// NewDescriptions builds a Descriptions map in the given order.
func NewDescriptions(entries ...Entry[string]) *Descriptions {
	return NewOrderedMap(entries...)
}

// Arg documents a parameter with description only.
func Arg(name, description string) Entry[Param] {
	return Entry[Param]{Key: name, Value: Param{Description: description}}
}

// ArgWith documents a parameter with explicit header overrides.
func ArgWith(name string, p Param) Entry[Param] {
	return Entry[Param]{Key: name, Value: p}
}

// Item is a generic name/description pair.
func Item(name, description string) Entry[string] {
	return Entry[string]{Key: name, Value: description}
}

// Output documents a returned or yielded value. It is either a single
// unnamed description (Text) or a set of named values (Named).
type Output struct {
	text  string
	named *Descriptions
}

// Text documents a single unnamed output.
func Text(description string) *Output {
	return &Output{text: description}
}

// Named documents one or more named outputs, in order.
func Named(entries ...Entry[string]) *Output {
	return &Output{named: NewDescriptions(entries...)}
}

// IsNamed reports whether the output is in named form.
func (o *Output) IsNamed() bool {
	return o != nil && o.named != nil
}

// Text returns the unnamed description.
func (o *Output) Text() string {
	if o == nil {
		return ""
	}

	return o.text
}

// Named returns a copy of the named outputs, or nil for the text form.
func (o *Output) Named() *Descriptions {
	if o == nil {
		return nil
	}

	return o.named.Clone()
}

func (o *Output) clone() *Output {
	if o == nil {
		return nil
	}

	return &Output{text: o.text, named: o.named.Clone()}
}

// MarshalYAML encodes the text form as a string and the named form as an
// ordered mapping.
func (o *Output) MarshalYAML() (any, error) {
	if o.IsNamed() {
		return o.named, nil
	}

	return o.text, nil
}

// Deprecation marks the documented callable as deprecated.
type Deprecation struct {
	Version string `yaml:"version"`
	Reason  string `yaml:"reason"`
}

// Fields is the caller-facing configuration of a documentation block.
// Every field except Summary is optional: a nil pointer or an empty
// string means "absent" and suppresses the matching section.
type Fields struct {
	Summary         string
	Deprecation     *Deprecation
	ExtendedSummary string
	Parameters      *Params
	Returns         *Output
	Yields          *Output
	Receives        *Params
	OtherParameters *Params
	Raises          *Descriptions
	Warns           *Descriptions
	Warnings        string
	SeeAlso         *Descriptions
	Notes           string
	References      *Descriptions
	Examples        string
}

// clone deep-copies every map so the caller can keep mutating theirs.
func (f Fields) clone() Fields {
	out := f

	if f.Deprecation != nil {
		d := *f.Deprecation
		out.Deprecation = &d
	}

	out.Parameters = f.Parameters.Clone()
	out.Returns = f.Returns.clone()
	out.Yields = f.Yields.clone()
	out.Receives = f.Receives.Clone()
	out.OtherParameters = f.OtherParameters.Clone()
	out.Raises = f.Raises.Clone()
	out.Warns = f.Warns.Clone()
	out.SeeAlso = f.SeeAlso.Clone()
	out.References = f.References.Clone()

	return out
}
