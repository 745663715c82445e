package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"name", "name", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Name", "name", 1},
		// runes, not bytes
		{"straße", "strasse", 2},
		{"é", "e", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("name", "name"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
}

func TestNameScore(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
	}{
		{"BillingCity", "billing_city", 1.0},
		{"accountId", "Account", 1.0},
		{"Region__c", "region", 1.0},
		{"email", "Email", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.GreaterOrEqual(t, NameScore(tt.a, tt.b), tt.minScore)
		})
	}

	assert.Less(t, NameScore("Email", "Amount"), MinScore)
}
