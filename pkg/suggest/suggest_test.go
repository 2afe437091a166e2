package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		candidates []string
		maxResults int
		expected   []string
	}{
		{
			name:       "typo in option name",
			target:     "verbos",
			candidates: []string{"verbose", "version", "help"},
			maxResults: 3,
			expected:   []string{"verbose", "version"},
		},
		{
			name:       "exact match ranks first",
			target:     "help",
			candidates: []string{"hello", "help", "world"},
			maxResults: 2,
			expected:   []string{"help", "hello"},
		},
		{
			name:       "results are capped",
			target:     "str",
			candidates: []string{"string", "strict", "strip"},
			maxResults: 1,
			expected:   []string{"strict"},
		},
		{
			name:       "empty target",
			target:     "",
			candidates: []string{"hello", "world"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "no matches",
			target:     "xyz",
			candidates: []string{"hello", "world"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "invalid max results",
			target:     "hello",
			candidates: []string{"hello", "world"},
			maxResults: -1,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := FindSimilar(tt.target, tt.candidates, tt.maxResults)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "perfect match", a: "hello", b: "hello", expected: 1.0},
		{name: "perfect match with different case", a: "Hello", b: "hello", expected: 1.0},
		{name: "prefix match", a: "hel", b: "hello", expected: 0.9},
		{name: "one substitution", a: "hello", b: "hallo", expected: 0.8},
		{name: "completely different strings", a: "hello", b: "world", expected: 0.2},
		{name: "empty strings", a: "", b: "", expected: 1.0},
		{name: "one empty string", a: "hello", b: "", expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := calculateSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.expected, result, 0.001, "similarity mismatch for %q and %q", tt.a, tt.b)
		})
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected int
	}{
		{"hello", "hello", 0},
		{"hello", "hallo", 1},
		{"hello", "hello1", 1},
		{"hello", "hell", 1},
		{"", "hello", 5},
		{"hello", "world", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, distance(tt.a, tt.b), "distance mismatch for %q and %q", tt.a, tt.b)
	}
}
