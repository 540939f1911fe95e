package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	ranked := Rank("langauge", []string{"name", "language", "languages"}, DefaultMinScore)
	require.Len(t, ranked, 2)
	assert.Equal(t, "language", ranked[0].Name)
	assert.Equal(t, "languages", ranked[1].Name)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRank_TiesSortByName(t *testing.T) {
	ranked := Rank("x", []string{"b", "a"}, 0)
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []string
		limit      int
		expected   []string
	}{
		{"close match", "nmae", []string{"name", "language"}, 3, []string{"name"}},
		{"normalised equal", "max_retries", []string{"maxRetries"}, 0, []string{"maxRetries"}},
		{"nothing close", "timeout", []string{"name", "language"}, 3, []string{}},
		{"limit", "val", []string{"vals", "value", "valid"}, 1, []string{"vals"}},
		{"no candidates", "name", nil, 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.query, tt.candidates, tt.limit))
		})
	}
}
