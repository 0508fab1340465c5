package scoring

import (
	"math"
	"sort"

	"github.com/poiesic/foodrec/core"
)

// ScoreDish scores a dish using a TF-IDF-inspired formula:
//
//	score = dest_popularity * ln(1/global_commonness) * (1 - origin_availability)
//
// Popularity in the destination acts as a term-frequency signal, inverse
// global commonness as an idf-like rarity signal, and origin availability
// as a direct penalty. When the dish does exist at home but differs
// meaningfully abroad, an authenticity bonus is added on top.
func ScoreDish(dish *core.Dish) float64 {
	destPopularity := clamp(dish.DestPopularity, 0.0, 1.0)
	globalCommonness := clamp(dish.GlobalCommonness, 0.01, 1.0) // avoid log(0)
	originAvailability := clamp(dish.OriginAvailability, 0.0, 1.0)
	authenticityGap := clamp(dish.AuthenticityGap, 0.0, 1.0)

	idf := math.Log(1.0 / globalCommonness)
	score := destPopularity * idf * (1 - originAvailability)

	if originAvailability > 0 && authenticityGap > 0 {
		score += authenticityGap * 0.5 * destPopularity
	}

	return score
}

// Uniqueness measures how rare a dish is, for stopping decisions.
// It deliberately excludes the authenticity gap (which measures quality
// of difference, not rarity) and destination popularity (a dish can be
// rare yet locally beloved).
func Uniqueness(dish *core.Dish) float64 {
	return (1 - dish.GlobalCommonness) * (1 - dish.OriginAvailability)
}

// DiversityScore measures how evenly dish categories are spread, using
// Shannon entropy over category frequencies. Dishes without a category
// are ignored; if no dish has a category the result is a neutral 0.5.
// Output is in [0,1] where 1 is maximal spread.
func DiversityScore(dishes []*core.Dish) float64 {
	if len(dishes) == 0 {
		return 0.0
	}

	counts := make(map[string]int)
	total := 0
	for _, d := range dishes {
		if d.Category == "" {
			continue
		}
		counts[d.Category]++
		total++
	}
	if total == 0 {
		return 0.5 // no category info, assume moderate diversity
	}

	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}

	// Maximum entropy occurs when all categories are equally distributed.
	// With a single category entropy is already 0; default the divisor to
	// 1.0 so we never divide by log2(1)=0.
	unique := len(counts)
	maxEntropy := 1.0
	if unique > 1 {
		maxEntropy = math.Log2(float64(unique))
	}
	normalizedEntropy := entropy / maxEntropy

	// Blend with a category-count ratio: more unique categories relative
	// to the categorized total means higher diversity.
	denom := math.Max(1.0, float64(total)*0.7)
	categoryRatio := math.Min(1.0, float64(unique)/denom)

	return 0.7*normalizedEntropy + 0.3*categoryRatio
}

// RankDishes writes Score and Uniqueness on every dish and returns the
// slice sorted by score descending. Ties break by discovery tier
// ascending, then name ascending, so output is reproducible.
func RankDishes(dishes []*core.Dish) []*core.Dish {
	for _, d := range dishes {
		d.Score = ScoreDish(d)
		d.Uniqueness = Uniqueness(d)
	}

	sort.SliceStable(dishes, func(i, j int) bool {
		if dishes[i].Score != dishes[j].Score {
			return dishes[i].Score > dishes[j].Score
		}
		if dishes[i].TierDiscovered != dishes[j].TierDiscovered {
			return dishes[i].TierDiscovered < dishes[j].TierDiscovered
		}
		return dishes[i].Name < dishes[j].Name
	})

	return dishes
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
