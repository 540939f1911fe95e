package textfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"
)

// terminal lists the runes accepted as sentence endings by Punctuate.
const terminal = ".!?:"

// verbatimPrefixes mark paragraphs that FillParagraphs leaves untouched:
// indented blocks, reST directives, doctest prompts and citations.
var verbatimPrefixes = []string{" ", "\t", "..", ">", "["}

// OneLine collapses every run of whitespace, newlines included, into a
// single space.
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Fill re-flows s into lines of at most width columns. Words longer than
// width are kept whole on their own line. A width below one disables
// wrapping and returns s unchanged.
func Fill(s string, width int) string {
	if width < 1 {
		return s
	}

	return wordwrap.WrapString(OneLine(s), uint(width))
}

// Punctuate capitalises the first letter of s and terminates it with a
// full stop unless it already ends in terminal punctuation.
func Punctuate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]

	last, _ := utf8.DecodeLastRuneInString(s)
	if !strings.ContainsRune(terminal, last) {
		s += "."
	}

	return s
}

// FillParagraphs cleans s and then fills and/or punctuates each
// paragraph. Paragraphs are separated by blank lines and re-joined with
// exactly one. Paragraphs that start with whitespace, "..", ">" or "["
// are emitted verbatim.
func FillParagraphs(s string, width int, punctuate bool) string {
	lines := CleanLines(s)
	if width < 1 && !punctuate {
		return strings.Join(lines, newline)
	}

	paragraphs := splitParagraphs(lines)
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		if isVerbatim(p) {
			out = append(out, p)
			continue
		}

		if punctuate {
			p = Punctuate(p)
		}

		if width > 0 {
			p = Fill(p, width)
		}

		out = append(out, p)
	}

	return strings.Join(out, newline+newline)
}

// FillParagraph is FillParagraphs for text known to be a single block of
// prose, such as a parameter description.
func FillParagraph(s string, width int, punctuate bool) string {
	s = Clean(s)

	if punctuate {
		s = Punctuate(s)
	}

	return Fill(s, width)
}

func splitParagraphs(lines []string) []string {
	var (
		paragraphs []string
		current    []string
	)

	for _, line := range lines {
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, newline))
				current = nil
			}

			continue
		}

		current = append(current, line)
	}

	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, newline))
	}

	return paragraphs
}

func isVerbatim(p string) bool {
	for _, prefix := range verbatimPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}

	return false
}
