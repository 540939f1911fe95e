package match

import (
	"strings"
	"unicode"
)

// variadicMarkers are stripped from the front of an identifier before
// comparison so that "*args", "...values" and "values" compare equal.
var variadicMarkers = []string{"...", "**", "*"}

// NormalizeIdent folds an identifier into a canonical form for fuzzy
// comparison: variadic markers removed, CamelCase split, lowercased and
// separators dropped.
//
//	"maxRetries"  -> "maxretries"
//	"max_retries" -> "maxretries"
//	"...opts"     -> "opts"
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := splitCamelCase(trimMarkers(s))
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func trimMarkers(s string) string {
	s = strings.TrimSpace(s)
	for _, m := range variadicMarkers {
		if strings.HasPrefix(s, m) {
			return s[len(m):]
		}
	}

	return s
}

// splitCamelCase breaks s at separators, at lower-to-upper transitions
// and before the last capital of an acronym that precedes a lowercase
// letter.
//
//	"HTTPServer" -> ["HTTP", "Server"]
//	"user_name"  -> ["user", "name"]
func splitCamelCase(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
