package querygen

import (
	"fmt"
	"strings"

	"github.com/poiesic/foodrec/core"
)

// MaxQueriesPerTier caps how many queries one tier may issue.
const MaxQueriesPerTier = 2

// strategy produces the candidate queries for one tier, before
// deduplication and capping.
type strategy func(destination string, learnings core.Learnings) []string

// Tier strategies are kept in a lookup table so tiers can be added or
// reworked without touching unrelated branches. Tier 1 casts a broad
// net; later tiers narrow using accumulated learnings and fall back to
// fixed templates when a tier's hints are missing.
var tierStrategies = map[int]strategy{
	1: broadQueries,
	2: categoryQueries,
	3: neighborhoodQueries,
	4: seasonalQueries,
	5: combinedQueries,
}

// Generate returns the search queries for a tier, at most
// MaxQueriesPerTier, deduplicated case-insensitively. Unknown tiers get
// the broad tier-1 treatment.
func Generate(tier int, destination string, learnings core.Learnings) []string {
	strat, ok := tierStrategies[tier]
	if !ok {
		strat = broadQueries
	}

	queries := strat(destination, learnings)
	return dedupeQueries(queries, MaxQueriesPerTier)
}

func broadQueries(destination string, _ core.Learnings) []string {
	return []string{
		fmt.Sprintf("popular local food in %s", destination),
		fmt.Sprintf("traditional street food in %s", destination),
	}
}

func categoryQueries(destination string, learnings core.Learnings) []string {
	queries := make([]string, 0, MaxQueriesPerTier)
	for _, category := range learnings.Categories {
		if len(queries) == MaxQueriesPerTier {
			break
		}
		if term := CleanTerm(category); term != "" {
			queries = append(queries, fmt.Sprintf("%s specialties in %s", term, destination))
		}
	}
	if len(queries) == 0 {
		return []string{
			fmt.Sprintf("best regional dishes in %s", destination),
			fmt.Sprintf("famous food specialties of %s", destination),
		}
	}
	return queries
}

func neighborhoodQueries(destination string, learnings core.Learnings) []string {
	queries := make([]string, 0, MaxQueriesPerTier)
	for _, neighborhood := range learnings.Neighborhoods {
		if len(queries) == MaxQueriesPerTier {
			break
		}
		if term := CleanTerm(neighborhood); term != "" {
			queries = append(queries, fmt.Sprintf("food specialties %s %s", term, destination))
		}
	}
	if len(queries) == 0 {
		return []string{fmt.Sprintf("hidden gem food spots in %s", destination)}
	}
	return queries
}

func seasonalQueries(destination string, learnings core.Learnings) []string {
	var queries []string
	if len(learnings.Seasons) > 0 {
		if term := CleanTerm(learnings.Seasons[0]); term != "" {
			queries = append(queries, fmt.Sprintf("%s seasonal dishes in %s", term, destination))
		}
	}
	if len(learnings.Festivals) > 0 {
		if term := CleanTerm(learnings.Festivals[0]); term != "" {
			queries = append(queries, fmt.Sprintf("%s festival food in %s", term, destination))
		}
	}
	if len(queries) == 0 {
		return []string{fmt.Sprintf("seasonal and festival foods in %s", destination)}
	}
	return queries
}

func combinedQueries(destination string, learnings core.Learnings) []string {
	if len(learnings.Categories) > 0 && len(learnings.Neighborhoods) > 0 {
		category := CleanTerm(learnings.Categories[0])
		neighborhood := CleanTerm(learnings.Neighborhoods[0])
		if category != "" && neighborhood != "" {
			return []string{fmt.Sprintf("best %s in %s %s", category, neighborhood, destination)}
		}
	}
	return []string{fmt.Sprintf("unique rare food experiences in %s", destination)}
}

// CleanTerm strips any parenthetical annotation from a learned term and
// collapses internal whitespace.
func CleanTerm(term string) string {
	if open := strings.Index(term, "("); open >= 0 {
		rest := term[open:]
		if end := strings.Index(rest, ")"); end >= 0 {
			term = term[:open] + rest[end+1:]
		} else {
			term = term[:open]
		}
	}
	return strings.Join(strings.Fields(term), " ")
}

// dedupeQueries removes case-insensitive duplicate queries, drops
// repeated words within each query (order preserved), and caps the
// result at limit.
func dedupeQueries(queries []string, limit int) []string {
	seen := make(map[string]bool, len(queries))
	out := make([]string, 0, limit)
	for _, q := range queries {
		q = dedupeWords(q)
		key := strings.ToLower(q)
		if q == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out
}

// dedupeWords drops repeated words within one query string, preserving
// the order of first occurrence. "pho in Hanoi Hanoi" becomes
// "pho in Hanoi".
func dedupeWords(query string) string {
	fields := strings.Fields(query)
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		key := strings.ToLower(f)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return strings.Join(out, " ")
}
