package ai

import "context"

// Query is one search-and-extract request against the extraction
// service: a query string plus the trip context it runs under.
type Query struct {
	Text        string
	Origin      string
	Destination string
	Tier        int
}

// RawDish is one candidate dish as reported by the extraction service,
// before deduplication. Only Name is guaranteed; absent signal values
// are defaulted at the boundary (0.5 for GlobalCommonness, 0 for the
// rest).
type RawDish struct {
	Name         string
	Description  string
	Category     string
	Neighborhood string
	Season       string
	Context      string

	DestPopularity     float64
	GlobalCommonness   float64
	OriginAvailability float64
	AuthenticityGap    float64
}

// Learnings are the contextual hints an extraction reported alongside
// its dishes. Any collection may be empty.
type Learnings struct {
	Categories    []string
	Neighborhoods []string
	Seasons       []string
	Festivals     []string
	Contexts      []string
}

// Extraction is the outcome of one successful query: zero or more
// candidate dishes plus the learnings gathered while answering it.
type Extraction struct {
	Dishes    []RawDish
	Learnings Learnings
}

// DishExtractor runs one search query against the underlying service
// and extracts structured dish candidates from the results.
// Implementations must be thread-safe for concurrent use.
//
// Failures are reported through the error; callers treat any failure as
// "zero dishes, empty learnings" for that query. The sentinel errors in
// this package classify the failure kind.
type DishExtractor interface {
	ExtractDishes(ctx context.Context, query Query) (*Extraction, error)
}
