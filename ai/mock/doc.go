// Package mock provides test double implementations of AI service interfaces.
//
// This package contains a mock implementation of ai.DishExtractor for use
// in unit tests. The mock allows tests to run without an external LLM
// service and enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	extractor := mock.NewMockDishExtractor()
//	result, err := extractor.ExtractDishes(ctx, query)
//
//	// Custom behavior injection
//	extractor.ExtractDishesFunc = func(ctx context.Context, query ai.Query) (*ai.Extraction, error) {
//	    return &ai.Extraction{Dishes: []ai.RawDish{{Name: "Khao Soi"}}}, nil
//	}
//
//	// Check call counts
//	count := extractor.CallCount()
//
// # Default Behavior
//
// The default behavior fabricates three dishes per query, with names
// derived from a hash of the query text. Distinct queries produce
// distinct dishes; repeating a query reproduces the same dishes, which
// exercises deduplication in callers.
package mock
