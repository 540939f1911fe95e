package match

import (
	"slices"
	"strings"
)

// DefaultMinScore is the similarity below which a candidate is not worth
// suggesting.
const DefaultMinScore = 0.5

// Suggestion is a candidate name with its similarity to the query.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those reaching
// minScore, best first. Ties are broken by candidate name so the result
// is deterministic.
func Rank(name string, candidates []string, minScore float64) []Suggestion {
	var out []Suggestion

	for _, c := range candidates {
		score := NameSimilarity(name, c)
		if score < minScore {
			continue
		}

		out = append(out, Suggestion{Name: c, Score: score})
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})

	return out
}

// Suggest returns at most limit candidate names close to name, best
// first. A limit below one means no limit.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultMinScore)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
	}

	return names
}
