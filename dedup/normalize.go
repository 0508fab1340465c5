package dedup

import (
	"sort"
	"strings"
)

// Filler words carry no identity: articles plus the connectives that
// vary freely between menu spellings ("chicken with rice", "rice and
// chicken").
var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"with": true, "and": true, "or": true,
}

// Normalize canonicalizes a dish name for comparison: lower-case, drop
// filler words, collapse whitespace, and sort the remaining tokens so
// simple word-order variation normalizes identically.
func Normalize(name string) string {
	return strings.Join(normalizeTokens(name), " ")
}

func normalizeTokens(name string) []string {
	fields := strings.Fields(strings.ToLower(name))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if fillerWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	sort.Strings(tokens)
	return tokens
}
