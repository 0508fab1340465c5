package discover

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/poiesic/foodrec/ai"
	"github.com/poiesic/foodrec/ai/mock"
	"github.com/poiesic/foodrec/core"
	"github.com/poiesic/foodrec/criteria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMonitor captures monitor callbacks for assertions.
type recordingMonitor struct {
	mu          sync.Mutex
	tierQueries map[int][]string
	tierResults []*core.SearchResult
	finished    bool
	reason      string
}

func newRecordingMonitor() *recordingMonitor {
	return &recordingMonitor{tierQueries: make(map[int][]string)}
}

func (m *recordingMonitor) StartTier(tier int, queries []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tierQueries[tier] = queries
}

func (m *recordingMonitor) QueryDone(_ string, _ int, _ error) {}

func (m *recordingMonitor) TierDone(result *core.SearchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tierResults = append(m.tierResults, result)
}

func (m *recordingMonitor) Finish(_ []*core.Dish, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished = true
	m.reason = reason
}

// Word pairs chosen so no two generated names trip the fuzzy matcher.
var (
	nameAdjectives = []string{"grilled", "braised", "pickled", "smoked", "roasted", "crispy", "fermented", "steamed", "stuffed", "candied", "charred", "frozen"}
	nameNouns      = []string{"papaya", "catfish", "tamarind", "lotus", "banana", "pandan", "galangal", "noodle", "pork", "mackerel"}
)

// dishBatch fabricates n dishes with pairwise-dissimilar names starting
// at the given name offset.
func dishBatch(offset, n int, popularity float64) []ai.RawDish {
	dishes := make([]ai.RawDish, 0, n)
	for i := 0; i < n; i++ {
		k := offset + i
		dishes = append(dishes, ai.RawDish{
			Name:             fmt.Sprintf("%s %s", nameAdjectives[k%len(nameAdjectives)], nameNouns[(k/len(nameAdjectives))%len(nameNouns)]),
			Category:         fmt.Sprintf("category-%d", k%4),
			DestPopularity:   popularity,
			GlobalCommonness: 0.5,
		})
	}
	return dishes
}

// batchCounter hands out non-overlapping name offsets across queries.
type batchCounter struct{ n int32 }

func (b *batchCounter) next(size int) int {
	return int(atomic.AddInt32(&b.n, 1)-1) * size
}

func newTestDiscoverer(t *testing.T, extractor ai.DishExtractor, opts ...Option) *Discoverer {
	t.Helper()
	d, err := NewDiscoverer(extractor, opts...)
	require.NoError(t, err)
	t.Cleanup(d.Release)
	return d
}

func TestSearchValidation(t *testing.T) {
	d := newTestDiscoverer(t, mock.NewMockDishExtractor())

	_, err := d.Search(context.Background(), "", "Bangkok", 10)
	assert.ErrorIs(t, err, ErrOriginRequired)

	_, err = d.Search(context.Background(), "Seattle", "  ", 10)
	assert.ErrorIs(t, err, ErrDestinationRequired)

	_, err = d.Search(context.Background(), "Seattle", "Bangkok", 0)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestSearchRejectsExcessiveTierCap(t *testing.T) {
	extractor := mock.NewMockDishExtractor()
	d := newTestDiscoverer(t, extractor, WithMaxTiers(6))

	_, err := d.Search(context.Background(), "Seattle", "Bangkok", 10)
	assert.ErrorIs(t, err, criteria.ErrMaxTiersExceeded)
	assert.Equal(t, 0, extractor.CallCount(),
		"misconfiguration should fail before any extraction")
}

func TestSearchStopsWhenPlentyFound(t *testing.T) {
	var counter batchCounter
	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		// 10 distinct dishes per query, 2 queries per tier
		return &ai.Extraction{Dishes: dishBatch(counter.next(10), 10, 0.8)}, nil
	}

	monitor := newRecordingMonitor()
	d := newTestDiscoverer(t, extractor, WithMonitor(monitor))

	dishes, err := d.Search(context.Background(), "Seattle", "Bangkok", 10)
	require.NoError(t, err)

	assert.Len(t, dishes, 10, "results should be truncated to the target")
	assert.Equal(t, 2, extractor.CallCount(), "tier 1 alone should satisfy the plenty criterion")
	assert.True(t, monitor.finished)
	assert.Contains(t, monitor.reason, "1.5x target")
}

func TestSearchContinuesWhenAboveTargetButNotPlenty(t *testing.T) {
	var counter batchCounter
	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		if query.Tier == 1 {
			if strings.Contains(query.Text, "street") {
				counter.next(12)
				return &ai.Extraction{}, nil
			}
			// 12 dishes: above the target of 10 but short of the 15
			// the plenty criterion wants.
			return &ai.Extraction{Dishes: dishBatch(counter.next(12), 12, 0.6)}, nil
		}
		return &ai.Extraction{Dishes: dishBatch(counter.next(12), 10, 0.7)}, nil
	}

	d := newTestDiscoverer(t, extractor)

	dishes, err := d.Search(context.Background(), "Seattle", "Bangkok", 10)
	require.NoError(t, err)
	assert.Len(t, dishes, 10)
	assert.Greater(t, extractor.CallCount(), 2, "12 of 10 dishes is not enough to stop at tier 1")
}

func TestSearchIsolatesQueryFailures(t *testing.T) {
	var counter batchCounter
	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		if strings.Contains(query.Text, "street") {
			return nil, errors.New("service down")
		}
		return &ai.Extraction{Dishes: dishBatch(counter.next(8), 8, 0.8)}, nil
	}

	d := newTestDiscoverer(t, extractor)

	dishes, err := d.Search(context.Background(), "Seattle", "Bangkok", 5)
	require.NoError(t, err, "one failing query should not fail the search")
	assert.Len(t, dishes, 5)
}

func TestSearchSkipsInvalidDishes(t *testing.T) {
	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		return &ai.Extraction{Dishes: []ai.RawDish{
			{Name: "   "},
			{Name: "Khao Soi", DestPopularity: 0.8},
		}}, nil
	}

	d := newTestDiscoverer(t, extractor, WithMaxTiers(1))

	dishes, err := d.Search(context.Background(), "Seattle", "Chiang Mai", 10)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Khao Soi", dishes[0].Name)
}

func TestSearchFeedsLearningsIntoLaterTiers(t *testing.T) {
	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		if query.Tier == 1 {
			return &ai.Extraction{
				Dishes:    dishBatch(0, 3, 0.6),
				Learnings: ai.Learnings{Categories: []string{"boat noodles"}},
			}, nil
		}
		return &ai.Extraction{}, nil
	}

	monitor := newRecordingMonitor()
	d := newTestDiscoverer(t, extractor, WithMonitor(monitor), WithMaxTiers(2))

	_, err := d.Search(context.Background(), "Seattle", "Bangkok", 10)
	require.NoError(t, err)

	require.NotEmpty(t, monitor.tierQueries[2])
	assert.Contains(t, monitor.tierQueries[2][0], "boat noodles",
		"tier 2 should target categories learned in tier 1")
}

func TestSearchRecordsProvenance(t *testing.T) {
	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		return &ai.Extraction{Dishes: []ai.RawDish{{Name: "Som Tam", DestPopularity: 0.7}}}, nil
	}

	d := newTestDiscoverer(t, extractor, WithMaxTiers(1))

	dishes, err := d.Search(context.Background(), "Seattle", "Bangkok", 10)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, 1, dishes[0].TierDiscovered)
	require.NotEmpty(t, dishes[0].Sources)
	assert.Contains(t, dishes[0].Sources[0], "Bangkok")
}

func TestTierResultsCarryOnlyNewDishes(t *testing.T) {
	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		// Every query in every tier resurfaces the same two dishes.
		return &ai.Extraction{Dishes: []ai.RawDish{
			{Name: "Khao Soi", DestPopularity: 0.8},
			{Name: "Som Tam", DestPopularity: 0.7},
		}}, nil
	}

	monitor := newRecordingMonitor()
	d := newTestDiscoverer(t, extractor, WithMonitor(monitor), WithMaxTiers(2))

	_, err := d.Search(context.Background(), "Seattle", "Chiang Mai", 10)
	require.NoError(t, err)
	require.Len(t, monitor.tierResults, 2)

	first := monitor.tierResults[0]
	assert.Equal(t, 2, first.NewDishCount)
	assert.Len(t, first.Dishes, 2)

	second := monitor.tierResults[1]
	assert.Equal(t, 0, second.NewDishCount)
	assert.Empty(t, second.Dishes,
		"a tier that only resurfaces known dishes should report none")
}

func TestSearchReturnsPartialResultsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		if query.Tier == 1 {
			return &ai.Extraction{Dishes: dishBatch(0, 4, 0.6)}, nil
		}
		return nil, errors.New("no tier should run after cancellation")
	}

	monitor := &cancelAfterTierMonitor{cancel: cancel}
	d := newTestDiscoverer(t, extractor, WithMonitor(monitor))

	dishes, err := d.Search(ctx, "Seattle", "Bangkok", 10)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, dishes, 4, "dishes found before cancellation should be returned")
}

// cancelAfterTierMonitor cancels the search context once the first tier
// completes.
type cancelAfterTierMonitor struct {
	noopMonitor
	cancel context.CancelFunc
}

func (m *cancelAfterTierMonitor) TierDone(_ *core.SearchResult) {
	m.cancel()
}

func TestSearchResultsAreRanked(t *testing.T) {
	extractor := mock.NewMockDishExtractor()
	extractor.ExtractDishesFunc = func(_ context.Context, query ai.Query) (*ai.Extraction, error) {
		return &ai.Extraction{Dishes: []ai.RawDish{
			{Name: "Common Plate", DestPopularity: 0.4, GlobalCommonness: 0.9, OriginAvailability: 0.8},
			{Name: "Hidden Gem", DestPopularity: 0.9, GlobalCommonness: 0.1, OriginAvailability: 0.0},
		}}, nil
	}

	d := newTestDiscoverer(t, extractor, WithMaxTiers(1))

	dishes, err := d.Search(context.Background(), "Seattle", "Bangkok", 10)
	require.NoError(t, err)
	require.Len(t, dishes, 2)
	assert.Equal(t, "Hidden Gem", dishes[0].Name)
	assert.Greater(t, dishes[0].Score, dishes[1].Score)
}

func TestNewDiscovererRequiresExtractor(t *testing.T) {
	_, err := NewDiscoverer(nil)
	assert.ErrorIs(t, err, ai.ErrExtractorRequired)
}
