package docfields

import "numpydoc/internal/common"

// Section identifies one part of a rendered docstring. The numeric order
// of the constants is the order in which sections are emitted.
type Section int

const (
	SectionSummary Section = iota
	SectionDeprecation
	SectionExtendedSummary
	SectionParameters
	SectionReturns
	SectionYields
	SectionReceives
	SectionOtherParameters
	SectionRaises
	SectionWarns
	SectionWarnings
	SectionSeeAlso
	SectionNotes
	SectionReferences
	SectionExamples
)

// Sections lists every section in emission order.
func Sections() []Section {
	out := make([]Section, 0, int(SectionExamples)+1)
	for s := SectionSummary; s <= SectionExamples; s++ {
		out = append(out, s)
	}

	return out
}

// String returns the section title as it appears in a heading.
func (s Section) String() string {
	switch s {
	case SectionSummary:
		return "Summary"
	case SectionDeprecation:
		return "Deprecation"
	case SectionExtendedSummary:
		return "Extended Summary"
	case SectionParameters:
		return "Parameters"
	case SectionReturns:
		return "Returns"
	case SectionYields:
		return "Yields"
	case SectionReceives:
		return "Receives"
	case SectionOtherParameters:
		return "Other Parameters"
	case SectionRaises:
		return "Raises"
	case SectionWarns:
		return "Warns"
	case SectionWarnings:
		return "Warnings"
	case SectionSeeAlso:
		return "See Also"
	case SectionNotes:
		return "Notes"
	case SectionReferences:
		return "References"
	case SectionExamples:
		return "Examples"
	default:
		return common.UnknownStr
	}
}

// Headed reports whether the section is introduced by a title and an
// underline. Summary, deprecation and extended summary are not.
func (s Section) Headed() bool {
	switch s {
	case SectionSummary, SectionDeprecation, SectionExtendedSummary:
		return false
	default:
		return s >= SectionParameters && s <= SectionExamples
	}
}
