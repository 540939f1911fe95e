package numpydoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numpydoc/docfields"
	"numpydoc/signature"
)

func TestCheck(t *testing.T) {
	sig := signature.Descriptor{
		Params: []signature.Param{
			{Name: "name", TypeLabel: "string"},
			{Name: "language", TypeLabel: "string"},
			{Name: "verbose", TypeLabel: "bool"},
		},
		Returns: signature.Outputs{
			Label:  "(string, error)",
			Values: []signature.Value{{TypeLabel: "string"}, {TypeLabel: "error"}},
		},
	}

	tests := []struct {
		name     string
		fields   docfields.Fields
		sig      signature.Descriptor
		warnings []string
		infos    []string
	}{
		{
			name: "clean",
			fields: docfields.Fields{
				Summary: "A function.",
				Parameters: docfields.NewParams(
					docfields.Arg("name", "N."),
					docfields.Arg("language", "L."),
				),
				OtherParameters: docfields.NewParams(docfields.Arg("verbose", "V.")),
				Returns:         docfields.Named(docfields.Item("greeting", "G."), docfields.Item("err", "E.")),
			},
			sig: sig,
		},
		{
			name: "undocumented and unknown",
			fields: docfields.Fields{
				Summary: "A function.",
				Parameters: docfields.NewParams(
					docfields.Arg("name", "N."),
					docfields.Arg("langauge", "L."),
				),
			},
			sig:      sig,
			warnings: []string{CodeUnknownParameter, CodeUndocumentedParameter, CodeUndocumentedParameter},
		},
		{
			name: "unknown names skipped without parameter info",
			fields: docfields.Fields{
				Summary:    "A function.",
				Parameters: docfields.NewParams(docfields.Arg("anything", "A.")),
			},
		},
		{
			name: "return count",
			fields: docfields.Fields{
				Summary: "A function.",
				Returns: docfields.Named(docfields.Item("greeting", "G.")),
			},
			sig:      signature.Descriptor{Returns: sig.Returns},
			warnings: []string{CodeReturnCountMismatch},
		},
		{
			name: "yield count",
			fields: docfields.Fields{
				Summary: "A function.",
				Yields:  docfields.Named(docfields.Item("k", "K."), docfields.Item("v", "V."), docfields.Item("x", "X.")),
			},
			sig: signature.Descriptor{Yields: signature.Outputs{
				Values: []signature.Value{{TypeLabel: "string"}, {TypeLabel: "int"}},
			}},
			warnings: []string{CodeYieldCountMismatch},
		},
		{
			name: "text returns are not counted",
			fields: docfields.Fields{
				Summary: "A function.",
				Returns: docfields.Text("Both values."),
			},
			sig: signature.Descriptor{Returns: sig.Returns},
		},
		{
			name: "returns and yields",
			fields: docfields.Fields{
				Summary: "A function.",
				Returns: docfields.Text("R."),
				Yields:  docfields.Text("Y."),
			},
			infos: []string{CodeReturnsAndYields},
		},
		{
			name: "receives without yields",
			fields: docfields.Fields{
				Summary:  "A function.",
				Receives: docfields.NewParams(docfields.Arg("x", "X.")),
			},
			warnings: []string{CodeReceivesWithoutYields},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Check(docfields.MustNew(tt.fields), tt.sig)
			require.False(t, diags.HasErrors())

			var warnings, infos []string
			for _, w := range diags.Warnings {
				warnings = append(warnings, w.Code)
			}

			for _, i := range diags.Infos {
				infos = append(infos, i.Code)
			}

			assert.Equal(t, tt.warnings, warnings)
			assert.Equal(t, tt.infos, infos)
		})
	}
}

func TestCheck_Suggestions(t *testing.T) {
	sig := signature.Descriptor{Params: []signature.Param{{Name: "language"}, {Name: "name"}}}
	m := docfields.MustNew(docfields.Fields{
		Summary: "A function.",
		Parameters: docfields.NewParams(
			docfields.Arg("name", "N."),
			docfields.Arg("langauge", "L."),
		),
	})

	diags := Check(m, sig)
	require.Len(t, diags.Warnings, 2)

	unknown := diags.Warnings[0]
	assert.Equal(t, CodeUnknownParameter, unknown.Code)
	assert.Equal(t, "Parameters", unknown.Section)
	assert.Equal(t, "langauge", unknown.Entry)
	assert.Equal(t, []string{"language"}, unknown.Suggestions)
	assert.Equal(t, `[Parameters] langauge: [unknown_parameter] not a parameter of the function (did you mean "language"?)`,
		unknown.String())

	assert.Equal(t, "language", diags.Warnings[1].Entry)
}

func TestCheck_NilModel(t *testing.T) {
	diags := Check(nil, signature.Descriptor{})
	assert.True(t, diags.IsValid())
	assert.False(t, diags.HasWarnings())
}
