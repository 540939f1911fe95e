package docfields

import (
	"fmt"
	"strings"

	"numpydoc/diagnostic"
)

// Model is a validated, immutable documentation block. Build it with New;
// every accessor returns a copy.
type Model struct {
	f Fields
}

// New validates f and returns the Model. All problems are reported
// together in a single *ConfigurationError. The model keeps its own copy
// of every map, so later changes to f are not observed.
func New(f Fields) (*Model, error) {
	if diags := Validate(f); !diags.IsValid() {
		return nil, &ConfigurationError{Diagnostics: *diags}
	}

	return &Model{f: f.clone()}, nil
}

// MustNew is like New but panics on invalid fields. It suits
// package-level variables, where documentation mistakes should surface
// when the program loads.
func MustNew(f Fields) *Model {
	m, err := New(f)
	if err != nil {
		panic(err)
	}

	return m
}

// Validate checks f without building a Model.
func Validate(f Fields) *diagnostic.Diagnostics {
	d := &diagnostic.Diagnostics{}

	if strings.TrimSpace(f.Summary) == "" {
		d.AddError(CodeMissingSummary, "summary is required and must not be blank", SectionSummary.String(), "")
	}

	if f.Deprecation != nil {
		if strings.TrimSpace(f.Deprecation.Version) == "" || strings.TrimSpace(f.Deprecation.Reason) == "" {
			d.AddError(CodeInvalidDeprecation, "deprecation needs both a version and a reason",
				SectionDeprecation.String(), "")
		}
	}

	validateMap(d, SectionParameters, f.Parameters)
	validateOutput(d, SectionReturns, f.Returns)
	validateOutput(d, SectionYields, f.Yields)
	validateMap(d, SectionReceives, f.Receives)
	validateMap(d, SectionOtherParameters, f.OtherParameters)
	validateMap(d, SectionRaises, f.Raises)
	validateMap(d, SectionWarns, f.Warns)
	validateMap(d, SectionSeeAlso, f.SeeAlso)
	validateMap(d, SectionReferences, f.References)

	return d
}

func validateMap[V any](d *diagnostic.Diagnostics, section Section, m *OrderedMap[V]) {
	if m == nil {
		return
	}

	if m.Len() == 0 {
		d.AddError(CodeEmptySection,
			fmt.Sprintf("%s was supplied without entries; omit it instead", strings.ToLower(section.String())),
			section.String(), "")

		return
	}

	for _, k := range m.Keys() {
		switch strings.TrimSpace(k) {
		case "":
			d.AddError(CodeBlankEntryName, "entry name must not be blank", section.String(), "")
		case k:
		default:
			d.AddError(CodePaddedEntryName, "entry name has leading or trailing whitespace",
				section.String(), fmt.Sprintf("%q", k))
		}
	}
}

func validateOutput(d *diagnostic.Diagnostics, section Section, o *Output) {
	if o == nil {
		return
	}

	if o.IsNamed() {
		validateMap(d, section, o.named)
		return
	}

	if strings.TrimSpace(o.text) == "" {
		d.AddError(CodeEmptyOutput, "description must not be blank", section.String(), "")
	}
}

// Summary returns the one-line summary.
func (m *Model) Summary() string { return m.f.Summary }

// Deprecation returns the deprecation notice, if any.
func (m *Model) Deprecation() (Deprecation, bool) {
	if m.f.Deprecation == nil {
		return Deprecation{}, false
	}

	return *m.f.Deprecation, true
}

// ExtendedSummary returns the extended summary text.
func (m *Model) ExtendedSummary() string { return m.f.ExtendedSummary }

// Parameters returns the documented parameters, or nil.
func (m *Model) Parameters() *Params { return m.f.Parameters.Clone() }

// Returns returns the documented return value(s), or nil.
func (m *Model) Returns() *Output { return m.f.Returns.clone() }

// Yields returns the documented yielded value(s), or nil.
func (m *Model) Yields() *Output { return m.f.Yields.clone() }

// Receives returns the documented received values, or nil.
func (m *Model) Receives() *Params { return m.f.Receives.Clone() }

// OtherParameters returns the separately documented parameters, or nil.
func (m *Model) OtherParameters() *Params { return m.f.OtherParameters.Clone() }

// Raises returns the documented error kinds, or nil.
func (m *Model) Raises() *Descriptions { return m.f.Raises.Clone() }

// Warns returns the documented warning kinds, or nil.
func (m *Model) Warns() *Descriptions { return m.f.Warns.Clone() }

// Warnings returns the free-form warnings text.
func (m *Model) Warnings() string { return m.f.Warnings }

// SeeAlso returns the cross-references, or nil.
func (m *Model) SeeAlso() *Descriptions { return m.f.SeeAlso.Clone() }

// Notes returns the notes text.
func (m *Model) Notes() string { return m.f.Notes }

// References returns the citations, or nil.
func (m *Model) References() *Descriptions { return m.f.References.Clone() }

// Examples returns the examples text.
func (m *Model) Examples() string { return m.f.Examples }

// Fields returns a deep copy of the validated fields.
func (m *Model) Fields() Fields { return m.f.clone() }
