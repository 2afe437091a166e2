// Package suggest ranks candidate names by similarity to a mistyped name.
package suggest

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// threshold is the minimum similarity score required for a string to be considered similar.
const threshold = 0.5

// FindSimilar returns up to maxResults candidates that look like target, best match first. Ties are
// broken alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	type scored struct {
		name  string
		score float64
	}
	suggestions := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if score := calculateSimilarity(target, name); score > threshold {
			suggestions = append(suggestions, scored{name, score})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].score == suggestions[j].score {
			return suggestions[i].name < suggestions[j].name
		}
		return suggestions[i].score > suggestions[j].score
	})

	result := make([]string, 0, maxResults)
	for i := 0; i < len(suggestions) && i < maxResults; i++ {
		result = append(result, suggestions[i].name)
	}
	return result
}

func calculateSimilarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	// A candidate that extends what was typed is almost certainly the intent.
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	return 1.0 - float64(distance(a, b))/float64(max(len(a), len(b)))
}

func distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}
