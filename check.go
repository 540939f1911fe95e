package numpydoc

import (
	"fmt"

	"numpydoc/diagnostic"
	"numpydoc/docfields"
	"numpydoc/internal/match"
	"numpydoc/signature"
)

// Codes reported by Check.
const (
	CodeUndocumentedParameter = "undocumented_parameter"
	CodeUnknownParameter      = "unknown_parameter"
	CodeReturnCountMismatch   = "return_count_mismatch"
	CodeYieldCountMismatch    = "yield_count_mismatch"
	CodeReturnsAndYields      = "returns_and_yields"
	CodeReceivesWithoutYields = "receives_without_yields"
)

const maxSuggestions = 3

// Check compares documentation with the signature it will be rendered
// against. Findings are advisory: they are reported as warnings (or
// infos) and never stop rendering. Parameter checks are skipped when sig
// declares no parameters, since that means the names are unknown.
func Check(m *docfields.Model, sig signature.Descriptor) *diagnostic.Diagnostics {
	d := &diagnostic.Diagnostics{}
	if m == nil {
		return d
	}

	if len(sig.Params) > 0 {
		checkParams(d, m, sig)
	}

	checkOutputs(d, docfields.SectionReturns, CodeReturnCountMismatch, m.Returns(), sig.Returns)
	checkOutputs(d, docfields.SectionYields, CodeYieldCountMismatch, m.Yields(), sig.Yields)

	if m.Returns() != nil && m.Yields() != nil {
		d.AddInfo(CodeReturnsAndYields, "both returns and yields are documented",
			docfields.SectionYields.String(), "")
	}

	if m.Receives() != nil && m.Yields() == nil {
		d.AddWarning(CodeReceivesWithoutYields, "receives is documented but yields is not",
			docfields.SectionReceives.String(), "")
	}

	return d
}

func checkParams(d *diagnostic.Diagnostics, m *docfields.Model, sig signature.Descriptor) {
	documented := make(map[string]struct{})
	names := sig.Names()

	for _, section := range []docfields.Section{docfields.SectionParameters, docfields.SectionOtherParameters} {
		params := m.Parameters()
		if section == docfields.SectionOtherParameters {
			params = m.OtherParameters()
		}

		for _, name := range params.Keys() {
			documented[name] = struct{}{}

			if _, ok := sig.Param(name); ok {
				continue
			}

			d.AddWarning(CodeUnknownParameter, "not a parameter of the function",
				section.String(), name, match.Suggest(name, names, maxSuggestions)...)
		}
	}

	for _, p := range sig.Params {
		if _, ok := documented[p.Name]; ok {
			continue
		}

		d.AddWarning(CodeUndocumentedParameter, "parameter is not documented",
			docfields.SectionParameters.String(), p.Name)
	}
}

func checkOutputs(d *diagnostic.Diagnostics, section docfields.Section, code string, out *docfields.Output, sig signature.Outputs) {
	if !out.IsNamed() || len(sig.Values) == 0 {
		return
	}

	if n := out.Named().Len(); n != len(sig.Values) {
		d.AddWarning(code, fmt.Sprintf("%d values documented, signature has %d", n, len(sig.Values)),
			section.String(), "")
	}
}
