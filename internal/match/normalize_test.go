package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"maxRetries", "maxretries"},
		{"max_retries", "maxretries"},
		{"max-retries", "maxretries"},
		{"MaxRetries", "maxretries"},
		{"HTTPServer", "httpserver"},
		{"...opts", "opts"},
		{"*args", "args"},
		{"**kwargs", "kwargs"},
		{"  name  ", "name"},
		{"", ""},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestSplitCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"maxRetries", []string{"max", "Retries"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"user_name", []string{"user", "name"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"parseURL", []string{"parse", "URL"}},
		{"a", []string{"a"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitCamelCase(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"max", "retries"}, TokenizeIdent("maxRetries"))
	assert.Equal(t, []string{"values"}, TokenizeIdent("...values"))
	assert.Empty(t, TokenizeIdent(""))
}
