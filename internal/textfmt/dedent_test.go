package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no indent", "a\nb", "a\nb"},
		{"uniform", "    a\n    b", "a\nb"},
		{"relative", "    a\n      b\n    c", "a\n  b\nc"},
		{"blank lines ignored", "    a\n\n    b", "a\n\nb"},
		{"whitespace-only lines emptied", "    a\n  \n    b", "a\n\nb"},
		{"tabs differ from spaces", "\ta\n    b", "\ta\n    b"},
		{"shared tab", "\ta\n\t\tb", "a\n\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dedent(tt.input))
		})
	}
}

func TestClean(t *testing.T) {
	input := `
        Here is how to greet a friend:

        >>> print(greet("Ford Prefect"))
            Hello Ford Prefect!

    `

	expected := "Here is how to greet a friend:\n\n>>> print(greet(\"Ford Prefect\"))\n    Hello Ford Prefect!"
	assert.Equal(t, expected, Clean(input))
}

func TestCleanLines_Blank(t *testing.T) {
	assert.Nil(t, CleanLines(""))
	assert.Nil(t, CleanLines("  \n\t\n   "))
}

func TestCleanLines_CRLF(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, CleanLines("  a\r\n  b\r\n"))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "", Indent("", "    "))
	assert.Equal(t, "    a\n\n    b", Indent("a\n\nb", "    "))
}
