package docfields

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestModel_YAML(t *testing.T) {
	m := MustNew(Fields{
		Summary: "Say hello to someone.",
		Parameters: NewParams(
			Arg("name", "The name of the person to greet."),
			ArgWith("language", Param{Description: "An ISO 639-1 code.", Type: "string", Default: `"en"`}),
		),
		Returns: Text("A pleasant greeting."),
		Raises: NewDescriptions(
			Item("ErrNotImplemented", "If the language is not implemented."),
		),
		Notes: "Be nice.",
	})

	out, err := m.YAML()
	require.NoError(t, err)

	want := `summary: Say hello to someone.
parameters:
    name: The name of the person to greet.
    language:
        description: An ISO 639-1 code.
        type: string
        default: '"en"'
returns: A pleasant greeting.
raises:
    ErrNotImplemented: If the language is not implemented.
notes: Be nice.
`

	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("YAML mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_YAMLNamedOutputs(t *testing.T) {
	m := MustNew(Fields{
		Summary: "Split a pair.",
		Returns: Named(Item("left", "Left half."), Item("right", "Right half.")),
	})

	out, err := m.YAML()
	require.NoError(t, err)

	want := `summary: Split a pair.
returns:
    left: Left half.
    right: Right half.
`

	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("YAML mismatch (-want +got):\n%s", diff)
	}
}
