package querygen

import (
	"strings"
	"testing"

	"github.com/poiesic/foodrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_TierOne(t *testing.T) {
	queries := Generate(1, "Bangkok", core.Learnings{})
	require.Len(t, queries, 2)
	assert.Contains(t, queries[0], "Bangkok")
	assert.Contains(t, queries[1], "street food")
}

func TestGenerate_TierTwoUsesCategories(t *testing.T) {
	learnings := core.Learnings{
		Categories: []string{"noodle soups", "grilled skewers", "desserts"},
	}

	queries := Generate(2, "Bangkok", learnings)
	require.Len(t, queries, 2, "capped at two queries per tier")
	assert.Contains(t, queries[0], "noodle soups specialties")
	assert.Contains(t, queries[1], "grilled skewers specialties")
}

func TestGenerate_TierTwoFallback(t *testing.T) {
	queries := Generate(2, "Bangkok", core.Learnings{})
	require.Len(t, queries, 2)
	for _, q := range queries {
		assert.Contains(t, q, "Bangkok")
	}
}

func TestGenerate_TierThreeUsesNeighborhoods(t *testing.T) {
	learnings := core.Learnings{Neighborhoods: []string{"Chinatown (Yaowarat)"}}

	queries := Generate(3, "Bangkok", learnings)
	require.Len(t, queries, 1)
	assert.Equal(t, "food specialties Chinatown Bangkok", queries[0])
}

func TestGenerate_TierThreeFallback(t *testing.T) {
	queries := Generate(3, "Bangkok", core.Learnings{})
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0], "hidden gem")
}

func TestGenerate_TierFour(t *testing.T) {
	t.Run("season and festival", func(t *testing.T) {
		learnings := core.Learnings{
			Seasons:   []string{"rainy season", "cool season"},
			Festivals: []string{"Songkran"},
		}
		queries := Generate(4, "Bangkok", learnings)
		require.Len(t, queries, 2)
		assert.Contains(t, queries[0], "rainy season")
		assert.Contains(t, queries[1], "Songkran festival food")
	})

	t.Run("fallback", func(t *testing.T) {
		queries := Generate(4, "Bangkok", core.Learnings{})
		require.Len(t, queries, 1)
		assert.Contains(t, queries[0], "seasonal and festival foods")
	})
}

func TestGenerate_TierFive(t *testing.T) {
	t.Run("combined", func(t *testing.T) {
		learnings := core.Learnings{
			Categories:    []string{"seafood"},
			Neighborhoods: []string{"Thonburi"},
		}
		queries := Generate(5, "Bangkok", learnings)
		require.Len(t, queries, 1)
		assert.Equal(t, "best seafood in Thonburi Bangkok", queries[0])
	})

	t.Run("fallback without both hints", func(t *testing.T) {
		queries := Generate(5, "Bangkok", core.Learnings{Categories: []string{"seafood"}})
		require.Len(t, queries, 1)
		assert.Contains(t, queries[0], "unique rare food experiences")
	})
}

func TestGenerate_UnknownTierFallsBackToBroad(t *testing.T) {
	queries := Generate(9, "Bangkok", core.Learnings{})
	require.Len(t, queries, 2)
}

func TestGenerate_DeduplicatesQueries(t *testing.T) {
	learnings := core.Learnings{
		Categories: []string{"Seafood", "seafood (fresh)"},
	}
	queries := Generate(2, "Bangkok", learnings)
	require.Len(t, queries, 1, "case-insensitive duplicates collapse")
}

func TestGenerate_DropsRepeatedWordsWithinQuery(t *testing.T) {
	// A destination that repeats a learned term must not produce a
	// stuttering query.
	learnings := core.Learnings{Neighborhoods: []string{"Tokyo"}}
	queries := Generate(3, "Tokyo", learnings)
	require.Len(t, queries, 1)
	assert.Equal(t, "food specialties Tokyo", queries[0])
	assert.Equal(t, 1, strings.Count(strings.ToLower(queries[0]), "tokyo"))
}

func TestCleanTerm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "seafood", "seafood"},
		{"parenthetical stripped", "Chinatown (Yaowarat)", "Chinatown"},
		{"inner whitespace collapsed", "night   market", "night market"},
		{"unclosed parenthesis", "snacks (local", "snacks"},
		{"annotation mid-term", "old (historic) town", "old town"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTerm(tt.input))
		})
	}
}
