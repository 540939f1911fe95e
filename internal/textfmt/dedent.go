package textfmt

import (
	"strings"
)

const newline = "\n"

// Dedent removes the whitespace prefix shared by every non-blank line.
// Lines holding only whitespace are emptied and do not take part in the
// margin computation. Tabs and spaces are not considered equivalent.
func Dedent(s string) string {
	lines := strings.Split(s, newline)

	margin := ""
	found := false

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}

		lead := leadingWhitespace(line)
		if !found {
			margin = lead
			found = true

			continue
		}

		margin = commonPrefix(margin, lead)
	}

	if margin != "" {
		for i, line := range lines {
			if line != "" {
				lines[i] = line[len(margin):]
			}
		}
	}

	return strings.Join(lines, newline)
}

// Clean dedents s, strips trailing whitespace from every line and drops
// blank lines at both ends. Inner blank lines and relative indentation
// survive.
func Clean(s string) string {
	return strings.Join(CleanLines(s), newline)
}

// CleanLines is Clean split into lines. It returns nil for blank input.
func CleanLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", newline)
	lines := strings.Split(Dedent(s), newline)

	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}

	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}

	if start == end {
		return nil
	}

	return lines[start:end]
}

// Indent prefixes every non-empty line of s. Empty lines stay empty so
// that no trailing whitespace is introduced.
func Indent(s, prefix string) string {
	if s == "" {
		return ""
	}

	lines := strings.Split(s, newline)
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}

	return strings.Join(lines, newline)
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))

	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}
