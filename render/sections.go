package render

import (
	"strings"

	"numpydoc/docfields"
	"numpydoc/internal/textfmt"
	"numpydoc/signature"
)

func (r *Renderer) summary(s string) []string {
	return splitLines(textfmt.FillParagraph(s, r.cfg.WrapWidth, r.cfg.Punctuate))
}

// prose renders a free-form block: cleaned, then optionally filled.
func (r *Renderer) prose(s string) []string {
	return splitLines(textfmt.FillParagraphs(s, r.cfg.WrapWidth, r.cfg.Punctuate))
}

// body renders a description indented under its header line.
func (r *Renderer) body(s string) []string {
	return splitLines(textfmt.Indent(textfmt.FillParagraphs(s, r.cfg.WrapWidth, r.cfg.Punctuate), bodyIndent))
}

func (r *Renderer) deprecation(d docfields.Deprecation) []string {
	lines := []string{".. deprecated:: " + strings.TrimSpace(d.Version)}
	return append(lines, r.body(d.Reason)...)
}

// params renders Parameters, Other Parameters and Receives. Entries keep
// the Field Model order; the descriptor only contributes names and
// header clauses.
func (r *Renderer) params(params *docfields.Params, sig signature.Descriptor) []string {
	var lines []string

	for name, p := range params.All() {
		sp, found := sig.Param(name)

		header := name
		if found {
			header = sp.DisplayName()
		}

		if clause := typeClause(p, sp, found); clause != "" {
			header += " : " + clause
		}

		lines = append(lines, header)
		lines = append(lines, r.body(p.Description)...)
	}

	return lines
}

// outputs renders Returns and Yields.
func (r *Renderer) outputs(s docfields.Section, out *docfields.Output, sig signature.Outputs) ([]string, error) {
	if out == nil {
		return nil, nil
	}

	if !out.IsNamed() {
		label := outputLabel(sig)
		if label == "" {
			// no header to hang an indented body from
			return r.prose(out.Text()), nil
		}

		return append([]string{label}, r.body(out.Text())...), nil
	}

	named := out.Named()
	if named.Len() == 0 {
		return nil, docfields.NewConfigurationError(docfields.CodeEmptySection,
			"named outputs must have at least one entry", s, "")
	}

	labels := namedOutputLabels(named.Len(), sig)

	var lines []string

	i := 0
	for name, desc := range named.All() {
		header := strings.TrimSpace(name)
		if labels[i] != "" {
			header += " : " + labels[i]
		}

		lines = append(lines, header)
		lines = append(lines, r.body(desc)...)
		i++
	}

	return lines, nil
}

// conditions renders Raises and Warns: the kind name alone on the header
// line, the condition indented below.
func (r *Renderer) conditions(m *docfields.Descriptions) []string {
	var lines []string

	for kind, desc := range m.All() {
		lines = append(lines, strings.TrimSpace(kind))
		lines = append(lines, r.body(desc)...)
	}

	return lines
}

// seeAlso renders one line per cross-reference.
func (r *Renderer) seeAlso(m *docfields.Descriptions) []string {
	var lines []string

	for target, desc := range m.All() {
		line := strings.TrimSpace(target)

		explanation := textfmt.OneLine(desc)
		if r.cfg.Punctuate {
			explanation = textfmt.Punctuate(explanation)
		}

		if explanation != "" {
			line += " : " + explanation
		}

		lines = append(lines, line)
	}

	return lines
}

// references renders ".. [key] citation" with continuation lines
// indented under the marker.
func (r *Renderer) references(m *docfields.Descriptions) []string {
	var lines []string

	for key, desc := range m.All() {
		marker := ".. [" + strings.TrimSpace(key) + "]"

		citation := splitLines(textfmt.FillParagraphs(desc, r.cfg.WrapWidth, r.cfg.Punctuate))
		if len(citation) == 0 {
			lines = append(lines, marker)
			continue
		}

		lines = append(lines, marker+" "+citation[0])
		lines = append(lines, splitLines(textfmt.Indent(strings.Join(citation[1:], newline), bodyIndent))...)
	}

	return lines
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, newline)
}
