package docfields

import (
	"errors"

	"numpydoc/diagnostic"
)

// ErrConfiguration is matched by every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// Diagnostic codes reported inside a ConfigurationError.
const (
	CodeMissingSummary     = "missing_summary"
	CodeEmptySection       = "empty_section"
	CodeBlankEntryName     = "blank_entry_name"
	CodePaddedEntryName    = "padded_entry_name"
	CodeEmptyOutput        = "empty_output"
	CodeInvalidDeprecation = "invalid_deprecation"
	CodeInvalidSignature   = "invalid_signature"
)

// ConfigurationError reports documentation that was authored
// incorrectly. It is raised when a Model is built and, defensively, when
// a Model is rendered. It is never transient.
type ConfigurationError struct {
	Diagnostics diagnostic.Diagnostics
}

// NewConfigurationError builds an error holding a single problem.
func NewConfigurationError(code, message string, section Section, entry string) *ConfigurationError {
	e := &ConfigurationError{}
	e.Diagnostics.AddError(code, message, sectionLabel(section), entry)

	return e
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	const prefix = "numpydoc: invalid documentation"

	if err := e.Diagnostics.Error(); err != nil {
		return prefix + ": " + err.Error()
	}

	return prefix
}

// Unwrap makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// Codes returns the diagnostic codes of every reported problem.
func (e *ConfigurationError) Codes() []string {
	return e.Diagnostics.Codes()
}

func sectionLabel(s Section) string {
	if s < SectionSummary {
		return ""
	}

	return s.String()
}
