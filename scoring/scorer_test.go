package scoring

import (
	"fmt"
	"testing"

	"github.com/poiesic/foodrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreDish_BaseFormula(t *testing.T) {
	// ln(1/0.2) = ln(5) ~= 1.609; 0.8 * 1.609 * 1 ~= 1.287
	dish := &core.Dish{
		Name:               "Vada Pav",
		DestPopularity:     0.8,
		GlobalCommonness:   0.2,
		OriginAvailability: 0.0,
		AuthenticityGap:    0.0,
	}

	assert.InDelta(t, 1.287, ScoreDish(dish), 0.001)
}

func TestScoreDish_AuthenticityBonus(t *testing.T) {
	// base = 0.8 * ln(1/0.3) * 0.5 ~= 0.482
	// bonus = 0.6 * 0.5 * 0.8 = 0.24
	dish := &core.Dish{
		Name:               "Ramen",
		DestPopularity:     0.8,
		GlobalCommonness:   0.3,
		OriginAvailability: 0.5,
		AuthenticityGap:    0.6,
	}

	assert.InDelta(t, 0.722, ScoreDish(dish), 0.001)
}

func TestScoreDish_NoBonusWithoutOriginAvailability(t *testing.T) {
	// authenticity gap alone earns nothing: the bonus only applies when
	// the dish does exist at home.
	with := &core.Dish{DestPopularity: 0.8, GlobalCommonness: 0.3, AuthenticityGap: 0.9}
	without := &core.Dish{DestPopularity: 0.8, GlobalCommonness: 0.3}

	assert.Equal(t, ScoreDish(without), ScoreDish(with))
}

func TestScoreDish_MonotonicInPopularity(t *testing.T) {
	prev := -1.0
	for p := 0.0; p <= 1.0; p += 0.05 {
		dish := &core.Dish{
			DestPopularity:     p,
			GlobalCommonness:   0.25,
			OriginAvailability: 0.3,
			AuthenticityGap:    0.4,
		}
		score := ScoreDish(dish)
		assert.GreaterOrEqual(t, score, prev, "score must be non-decreasing in popularity (p=%.2f)", p)
		prev = score
	}
}

func TestScoreDish_ClampsOutOfRangeInputs(t *testing.T) {
	tests := []struct {
		name string
		dish *core.Dish
	}{
		{"popularity above one", &core.Dish{DestPopularity: 3.0, GlobalCommonness: 0.5}},
		{"negative availability", &core.Dish{DestPopularity: 0.5, GlobalCommonness: 0.5, OriginAvailability: -2}},
		{"zero commonness avoids log(0)", &core.Dish{DestPopularity: 0.5, GlobalCommonness: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScoreDish(tt.dish)
			assert.False(t, score != score, "score must not be NaN")
			assert.LessOrEqual(t, score, 10.0)
			assert.GreaterOrEqual(t, score, 0.0)
		})
	}
}

func TestUniqueness(t *testing.T) {
	dish := &core.Dish{GlobalCommonness: 0.2, OriginAvailability: 0.5}
	assert.InDelta(t, 0.4, Uniqueness(dish), 0.0001)

	// Authenticity gap and popularity deliberately have no effect.
	dish.AuthenticityGap = 0.9
	dish.DestPopularity = 1.0
	assert.InDelta(t, 0.4, Uniqueness(dish), 0.0001)
}

func TestDiversityScore_Empty(t *testing.T) {
	assert.Equal(t, 0.0, DiversityScore(nil))
}

func TestDiversityScore_NoCategories(t *testing.T) {
	dishes := []*core.Dish{
		{Name: "a"},
		{Name: "b"},
	}
	assert.Equal(t, 0.5, DiversityScore(dishes))
}

func TestDiversityScore_SpreadBeatsMonoculture(t *testing.T) {
	mono := make([]*core.Dish, 10)
	for i := range mono {
		mono[i] = &core.Dish{Name: fmt.Sprintf("mono-%d", i), Category: "curry"}
	}

	spread := make([]*core.Dish, 10)
	categories := []string{"curry", "snack", "dessert", "soup", "grill"}
	for i := range spread {
		spread[i] = &core.Dish{Name: fmt.Sprintf("spread-%d", i), Category: categories[i%5]}
	}

	assert.Greater(t, DiversityScore(spread), DiversityScore(mono))
}

func TestDiversityScore_Range(t *testing.T) {
	dishes := []*core.Dish{
		{Name: "a", Category: "x"},
		{Name: "b", Category: "y"},
		{Name: "c"},
	}
	score := DiversityScore(dishes)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestRankDishes(t *testing.T) {
	dishes := []*core.Dish{
		{Name: "Common", DestPopularity: 0.5, GlobalCommonness: 0.9},
		{Name: "Rare", DestPopularity: 0.9, GlobalCommonness: 0.1},
		{Name: "Middling", DestPopularity: 0.7, GlobalCommonness: 0.5},
	}

	ranked := RankDishes(dishes)
	require.Len(t, ranked, 3)

	for i := 0; i < len(ranked)-1; i++ {
		assert.GreaterOrEqual(t, ranked[i].Score, ranked[i+1].Score)
	}
	assert.Equal(t, "Rare", ranked[0].Name)

	// Score and uniqueness must be written back on every dish.
	for _, d := range ranked {
		assert.NotZero(t, d.Score)
		assert.NotZero(t, d.Uniqueness)
	}
}

func TestRankDishes_DeterministicTieBreak(t *testing.T) {
	make3 := func() []*core.Dish {
		return []*core.Dish{
			{Name: "Zeta", DestPopularity: 0.5, GlobalCommonness: 0.5, TierDiscovered: 2},
			{Name: "Alpha", DestPopularity: 0.5, GlobalCommonness: 0.5, TierDiscovered: 2},
			{Name: "Beta", DestPopularity: 0.5, GlobalCommonness: 0.5, TierDiscovered: 1},
		}
	}

	ranked := RankDishes(make3())
	require.Len(t, ranked, 3)
	// Equal scores: earlier tier first, then name ascending.
	assert.Equal(t, "Beta", ranked[0].Name)
	assert.Equal(t, "Alpha", ranked[1].Name)
	assert.Equal(t, "Zeta", ranked[2].Name)

	again := RankDishes(make3())
	for i := range ranked {
		assert.Equal(t, ranked[i].Name, again[i].Name)
	}
}
