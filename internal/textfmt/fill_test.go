package textfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do " +
	"eiusmod tempor incididunt ut labore et dolore magna aliqua."

func TestPunctuate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"hello", "Hello."},
		{"hello.", "Hello."},
		{"really?", "Really?"},
		{"note:", "Note:"},
		{"  wow!  ", "Wow!"},
		{"émigré", "Émigré."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Punctuate(tt.input))
		})
	}
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b c", OneLine("  a\n\tb   c \n"))
}

func TestFill_Disabled(t *testing.T) {
	assert.Equal(t, lorem, Fill(lorem, 0))
	assert.Equal(t, lorem, Fill(lorem, -3))
}

func TestFill_Width(t *testing.T) {
	filled := Fill(lorem, 40)

	for _, line := range strings.Split(filled, "\n") {
		assert.LessOrEqual(t, len(line), 40, line)
		assert.Equal(t, strings.TrimSpace(line), line)
	}

	assert.Equal(t, OneLine(lorem), OneLine(filled))
}

func TestFill_LongWord(t *testing.T) {
	word := strings.Repeat("x", 20)
	assert.Equal(t, "a\n"+word+"\nb", Fill("a "+word+" b", 10))
}

func TestFillParagraphs_Passthrough(t *testing.T) {
	input := "\n    one\n\n\n    two  \n"
	assert.Equal(t, "one\n\n\ntwo", FillParagraphs(input, 0, false))
}

func TestFillParagraphs_VerbatimBlocks(t *testing.T) {
	input := `
    this is prose that will be punctuated

    >>> greet("x")
    'Hello x!'

        indented block stays

    .. note:: directive stays
    `

	expected := "This is prose that will be punctuated.\n\n" +
		">>> greet(\"x\")\n'Hello x!'\n\n" +
		"    indented block stays\n\n" +
		".. note:: directive stays"

	assert.Equal(t, expected, FillParagraphs(input, 70, true))
}

func TestFillParagraph(t *testing.T) {
	assert.Equal(t, "A short one.", FillParagraph("  a short one  ", 0, true))
	assert.Equal(t, "a short\none", FillParagraph("a short one", 8, false))
}
