package render

import (
	"numpydoc/docfields"
	"numpydoc/signature"
)

// typeClause builds the text after "name : " on a parameter header.
//
//	no type label            ""
//	label                    "T"
//	label + default repr     "T, optional, default: D"
//	label + optional only    "T, optional"
//
// Explicit overrides on the documented parameter win over the
// descriptor. Without a type label the clause is empty even when a
// default exists.
func typeClause(p docfields.Param, sp signature.Param, found bool) string {
	label := p.Type
	if label == "" && found {
		label = sp.TypeLabel
	}

	if label == "" {
		return ""
	}

	repr := p.Default
	if repr == "" && found && sp.HasDefault {
		repr = sp.DefaultRepr
	}

	optional := p.Optional || p.Default != "" || (found && sp.HasDefault)

	switch {
	case repr != "":
		return label + ", optional, default: " + repr
	case optional:
		return label + ", optional"
	default:
		return label
	}
}

// outputLabel is the label of an output as a whole.
func outputLabel(o signature.Outputs) string {
	if o.Label != "" {
		return o.Label
	}

	return signature.TupleLabel(o.Values)
}

// namedOutputLabels assigns a label to each of n named outputs. Labels
// are taken positionally when the descriptor lists exactly n values; a
// single named output takes the overall label; otherwise no labels are
// shown.
func namedOutputLabels(n int, o signature.Outputs) []string {
	labels := make([]string, n)

	switch {
	case len(o.Values) == n:
		for i, v := range o.Values {
			labels[i] = v.TypeLabel
		}
	case n == 1:
		labels[0] = outputLabel(o)
	}

	return labels
}
