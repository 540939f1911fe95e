package render

import (
	"strings"

	"numpydoc/docfields"
	"numpydoc/signature"
)

const (
	newline    = "\n"
	bodyIndent = "    "
)

// Config holds renderer options. The zero value keeps the caller's
// line breaks and wording untouched.
type Config struct {
	// WrapWidth fills prose paragraphs to this many columns before they
	// are indented. Zero or less disables wrapping.
	WrapWidth int
	// Punctuate capitalises prose and terminates it with a full stop.
	Punctuate bool
}

// DefaultConfig returns the default renderer configuration: no wrapping,
// no punctuation.
func DefaultConfig() Config {
	return Config{}
}

// Renderer turns a Field Model and a Signature Descriptor into numpydoc
// text. A Renderer holds no mutable state and is safe for concurrent use.
type Renderer struct {
	cfg Config
}

// New creates a Renderer with the given configuration.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render renders m against sig with DefaultConfig.
func Render(m *docfields.Model, sig signature.Descriptor) (string, error) {
	return New(DefaultConfig()).Render(m, sig)
}

// Render produces the docstring. Sections appear in fixed order separated
// by one blank line; absent sections leave no trace. The result has no
// leading or trailing blank lines and no trailing whitespace.
//
// The only failure is a *docfields.ConfigurationError, for a model that
// would not have passed docfields.New.
func (r *Renderer) Render(m *docfields.Model, sig signature.Descriptor) (string, error) {
	if m == nil {
		return "", docfields.NewConfigurationError(docfields.CodeMissingSummary,
			"model is nil", docfields.SectionSummary, "")
	}

	if diags := docfields.Validate(m.Fields()); !diags.IsValid() {
		return "", &docfields.ConfigurationError{Diagnostics: *diags}
	}

	var blocks []string

	for _, section := range docfields.Sections() {
		body, err := r.section(section, m, sig)
		if err != nil {
			return "", err
		}

		if len(body) == 0 {
			continue
		}

		if section.Headed() {
			body = append(heading(section), body...)
		}

		blocks = append(blocks, strings.Join(body, newline))
	}

	return finish(strings.Join(blocks, newline+newline)), nil
}

// section dispatches to the formatting rule of one section and returns
// its body lines, or nil when the section is absent.
func (r *Renderer) section(s docfields.Section, m *docfields.Model, sig signature.Descriptor) ([]string, error) {
	switch s {
	case docfields.SectionSummary:
		return r.summary(m.Summary()), nil
	case docfields.SectionDeprecation:
		d, ok := m.Deprecation()
		if !ok {
			return nil, nil
		}

		return r.deprecation(d), nil
	case docfields.SectionExtendedSummary:
		return r.prose(m.ExtendedSummary()), nil
	case docfields.SectionParameters:
		return r.params(m.Parameters(), sig), nil
	case docfields.SectionReturns:
		return r.outputs(s, m.Returns(), sig.Returns)
	case docfields.SectionYields:
		return r.outputs(s, m.Yields(), sig.Yields)
	case docfields.SectionReceives:
		return r.params(m.Receives(), sig), nil
	case docfields.SectionOtherParameters:
		return r.params(m.OtherParameters(), sig), nil
	case docfields.SectionRaises:
		return r.conditions(m.Raises()), nil
	case docfields.SectionWarns:
		return r.conditions(m.Warns()), nil
	case docfields.SectionWarnings:
		return r.prose(m.Warnings()), nil
	case docfields.SectionSeeAlso:
		return r.seeAlso(m.SeeAlso()), nil
	case docfields.SectionNotes:
		return r.prose(m.Notes()), nil
	case docfields.SectionReferences:
		return r.references(m.References()), nil
	case docfields.SectionExamples:
		return r.prose(m.Examples()), nil
	default:
		return nil, nil
	}
}

// heading returns the title line and its underline.
func heading(s docfields.Section) []string {
	title := s.String()
	return []string{title, strings.Repeat("-", len(title))}
}

// finish strips trailing whitespace from every line and drops blank
// lines at both ends of the document.
func finish(doc string) string {
	lines := strings.Split(doc, newline)
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}

	for end > start && lines[end-1] == "" {
		end--
	}

	return strings.Join(lines[start:end], newline)
}
