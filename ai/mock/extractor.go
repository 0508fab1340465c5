package mock

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/poiesic/foodrec/ai"
)

// MockDishExtractor is a test double for ai.DishExtractor.
// It allows custom behavior injection via function fields.
// Safe for concurrent use, matching the ai.DishExtractor contract.
type MockDishExtractor struct {
	// ExtractDishesFunc is called by ExtractDishes if set.
	// If nil, uses default deterministic behavior.
	ExtractDishesFunc func(ctx context.Context, query ai.Query) (*ai.Extraction, error)

	callCount atomic.Int64
}

// NewMockDishExtractor creates a mock extractor with default deterministic behavior.
// Note: Returns concrete type to allow test assertions on call counts.
func NewMockDishExtractor() *MockDishExtractor {
	return &MockDishExtractor{}
}

// ExtractDishes returns deterministic dish candidates derived from the query.
func (m *MockDishExtractor) ExtractDishes(ctx context.Context, query ai.Query) (*ai.Extraction, error) {
	m.callCount.Add(1)

	if m.ExtractDishesFunc != nil {
		return m.ExtractDishesFunc(ctx, query)
	}

	return defaultExtraction(query), nil
}

// CallCount returns the number of times ExtractDishes was called.
func (m *MockDishExtractor) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and any injected behavior.
func (m *MockDishExtractor) Reset() {
	m.callCount.Store(0)
	m.ExtractDishesFunc = nil
}

// Name parts for fabricated dishes. Pairs of words keep generated
// names far enough apart that fuzzy matching never folds two distinct
// fabrications into one.
var (
	mockPreparations = []string{"grilled", "braised", "pickled", "smoked", "roasted", "crispy", "fermented", "steamed", "stuffed", "candied"}
	mockIngredients  = []string{"papaya", "catfish", "tamarind", "lotus", "banana", "pandan", "galangal"}
)

// defaultExtraction fabricates three dishes whose names depend on the
// query text, so distinct queries yield distinct dishes while repeated
// queries yield duplicates. Metric values are spread so ranking and
// dedup logic have something to chew on.
func defaultExtraction(query ai.Query) *ai.Extraction {
	seed := simpleHash(query.Text)
	dishes := make([]ai.RawDish, 0, 3)
	for i := 0; i < 3; i++ {
		n := (seed + uint32(i)*7) % 100
		prep := mockPreparations[(seed+uint32(i)*3)%uint32(len(mockPreparations))]
		ingredient := mockIngredients[(seed/3+uint32(i)*5)%uint32(len(mockIngredients))]
		dishes = append(dishes, ai.RawDish{
			Name:               fmt.Sprintf("%s %s", prep, ingredient),
			Description:        fmt.Sprintf("found via %q", query.Text),
			Category:           []string{"street food", "noodles", "dessert"}[i%3],
			DestPopularity:     0.5 + float64(n%5)*0.1,
			GlobalCommonness:   0.1 + float64(n%4)*0.2,
			OriginAvailability: float64(n%3) * 0.25,
			AuthenticityGap:    float64(n%2) * 0.5,
		})
	}
	return &ai.Extraction{
		Dishes: dishes,
		Learnings: ai.Learnings{
			Categories: []string{"street food", "noodles", "dessert"},
		},
	}
}

// simpleHash is a small FNV-1a over the text for deterministic variety.
func simpleHash(s string) uint32 {
	var h uint32 = 2166136261
	for _, c := range []byte(s) {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}
