package criteria

import (
	"fmt"

	"github.com/poiesic/foodrec/core"
	"github.com/poiesic/foodrec/scoring"
)

// MaxTiers is the hard ceiling on search rounds.
const MaxTiers = 5

// Yield and quality thresholds for the stopping decision.
const (
	plentyFactor        = 1.5
	lowYieldThreshold   = 3
	uniquenessThreshold = 0.6
	diversityThreshold  = 0.7
)

// ShouldStop decides whether the tiered search should halt, and why.
// The checks are priority-ordered: the first one that fires wins.
//
//  1. All tiers exhausted.
//  2. (short-circuit) Below target and not exhausted: keep searching.
//  3. 1.5x the target found: plenty.
//  4. Enough high-uniqueness dishes with good diversity.
//  5. Past target and the last tier yielded little.
//  6. Two low-yield tiers in a row: diminishing returns.
//
// Uniqueness and diversity are computed here from the raw signals; the
// dishes' Score/Uniqueness fields are not read or written.
//
// Returns ErrMaxTiersExceeded when maxTiers is configured above MaxTiers.
func ShouldStop(dishes []*core.Dish, targetCount int, tierYields []int, currentTier, maxTiers int) (bool, string, error) {
	if maxTiers > MaxTiers {
		return false, "", fmt.Errorf("%w: got %d", ErrMaxTiersExceeded, maxTiers)
	}

	stopReason := ""

	// Check 1: have we exhausted all tiers?
	if currentTier >= maxTiers {
		stopReason = fmt.Sprintf("Exhausted all %d tiers", maxTiers)
	}

	// Early exit: don't stop before reaching the target count, unless
	// tier exhaustion already forced the decision.
	if stopReason == "" && len(dishes) < targetCount {
		return false, "", nil
	}

	// Check 2: 1.5x target means plenty.
	if stopReason == "" && float64(len(dishes)) >= float64(targetCount)*plentyFactor {
		stopReason = fmt.Sprintf("Found %d dishes (1.5x target of %d)", len(dishes), targetCount)
	}

	// Check 3: enough unique dishes with decent diversity.
	if stopReason == "" {
		highUniqueness := 0
		for _, d := range dishes {
			if scoring.Uniqueness(d) > uniquenessThreshold {
				highUniqueness++
			}
		}
		diversity := scoring.DiversityScore(dishes)

		if highUniqueness >= targetCount && diversity > diversityThreshold {
			stopReason = fmt.Sprintf("Found %d high-uniqueness dishes with diversity %.2f",
				highUniqueness, diversity)
		}
	}

	// Check 4: past target and the last tier had low yield.
	if stopReason == "" && len(dishes) >= targetCount && len(tierYields) > 0 {
		if last := tierYields[len(tierYields)-1]; last < lowYieldThreshold {
			stopReason = fmt.Sprintf("Reached target with low yield last tier (%d new dishes)", last)
		}
	}

	// Check 5: diminishing returns across the last two tiers.
	if stopReason == "" && len(tierYields) >= 2 {
		lastTwo := tierYields[len(tierYields)-2:]
		if lastTwo[0] < lowYieldThreshold && lastTwo[1] < lowYieldThreshold {
			stopReason = fmt.Sprintf("Diminishing returns: last 2 tiers yielded %v new dishes", lastTwo)
		}
	}

	return stopReason != "", stopReason, nil
}
