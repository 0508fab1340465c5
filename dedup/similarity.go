package dedup

import "strings"

// Similarity thresholds. Token overlap catches reordered or partially
// shared names; the edit-distance ratio catches near-typos like
// "Puchka" vs "Phuchka".
const (
	tokenOverlapThreshold = 0.8
	editRatioThreshold    = 0.85
	maxLengthDifference   = 2
)

// AreSimilar reports whether two dish names likely denote the same dish.
// The matching is heuristic and approximate: it returns true when the
// normalized forms are identical, when their token sets overlap by at
// least 80%, or when the normalized strings are within a small edit
// distance of each other.
func AreSimilar(nameA, nameB string) bool {
	tokensA := normalizeTokens(nameA)
	tokensB := normalizeTokens(nameB)

	normA := strings.Join(tokensA, " ")
	normB := strings.Join(tokensB, " ")
	if normA == normB {
		return true
	}

	if tokenOverlap(tokensA, tokensB) >= tokenOverlapThreshold {
		return true
	}

	// Near-typo check, gated to strings of comparable length so short
	// names don't collide.
	lenA, lenB := len(normA), len(normB)
	if lenA > 3 && lenB > 3 && absInt(lenA-lenB) <= maxLengthDifference {
		longer := max(lenA, lenB)
		dist := boundedEditDistance(normA, normB, maxLengthDifference+1)
		if 1.0-float64(dist)/float64(longer) >= editRatioThreshold {
			return true
		}
	}

	return false
}

// tokenOverlap returns |A∩B| / max(|A|,|B|).
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	common := 0
	for _, t := range b {
		if set[t] {
			common++
		}
	}
	return float64(common) / float64(max(len(a), len(b)))
}

// boundedEditDistance computes the Levenshtein distance between a and b,
// capped at bound: once every entry in a row exceeds the bound the
// function returns bound+1. The single-row formulation keeps allocation
// at O(len(b)).
func boundedEditDistance(a, b string, bound int) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return min(len(rb), bound+1)
	}
	if len(rb) == 0 {
		return min(len(ra), bound+1)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > bound {
			return bound + 1
		}
		prev, curr = curr, prev
	}

	return min(prev[len(rb)], bound+1)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
