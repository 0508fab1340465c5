package discover

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/foodrec/ai"
	"github.com/poiesic/foodrec/core"
	"github.com/poiesic/foodrec/criteria"
	"github.com/poiesic/foodrec/dedup"
	"github.com/poiesic/foodrec/querygen"
	"github.com/poiesic/foodrec/scoring"
)

// Discoverer runs tiered, iterative dish discovery for a trip.
// It coordinates query generation, concurrent extraction, dedup, and
// stopping criteria across up to criteria.MaxTiers search tiers.
type Discoverer struct {
	extractor ai.DishExtractor
	pool      *ants.Pool
	maxTiers  int
	monitor   TierMonitor
	logger    *slog.Logger
}

// Option configures a Discoverer.
type Option func(*Discoverer) error

// WithPoolSize sets the worker pool size for concurrent query execution.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(d *Discoverer) error {
		if size < 1 {
			size = 1
		}

		if d.pool != nil {
			d.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		d.pool = pool
		return nil
	}
}

// WithMaxTiers caps how many tiers a search may run. Values above
// criteria.MaxTiers are rejected at search time.
func WithMaxTiers(maxTiers int) Option {
	return func(d *Discoverer) error {
		d.maxTiers = maxTiers
		return nil
	}
}

// WithMonitor sets a progress monitor.
// Default is a no-op monitor.
func WithMonitor(monitor TierMonitor) Option {
	return func(d *Discoverer) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		d.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Discoverer) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDiscoverer creates a discoverer backed by the given extractor.
func NewDiscoverer(extractor ai.DishExtractor, opts ...Option) (*Discoverer, error) {
	if extractor == nil {
		return nil, ai.ErrExtractorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	d := &Discoverer{
		extractor: extractor,
		pool:      pool,
		maxTiers:  criteria.MaxTiers,
		monitor:   &noopMonitor{},
		logger:    slog.Default().With("component", "discover"),
	}

	for _, opt := range opts {
		if optErr := opt(d); optErr != nil {
			d.Release()
			return nil, optErr
		}
	}

	return d, nil
}

// Release frees the worker pool. The Discoverer must not be used after.
func (d *Discoverer) Release() {
	if d.pool != nil {
		d.pool.Release()
	}
}

// Search discovers dishes worth seeking out in destination for a
// traveler from origin. It runs search tiers until a stopping
// criterion fires or tiers are exhausted, then returns the deduplicated
// dishes ranked by score and truncated to targetCount.
//
// If ctx is cancelled mid-search, the dishes gathered so far are
// ranked and returned alongside the context error.
func (d *Discoverer) Search(ctx context.Context, origin, destination string, targetCount int) ([]*core.Dish, error) {
	if strings.TrimSpace(origin) == "" {
		return nil, ErrOriginRequired
	}
	if strings.TrimSpace(destination) == "" {
		return nil, ErrDestinationRequired
	}
	if targetCount < 1 {
		return nil, ErrInvalidTarget
	}
	// Surface a misconfigured tier cap before any LLM spend.
	if _, _, err := criteria.ShouldStop(nil, targetCount, nil, 1, d.maxTiers); err != nil {
		return nil, err
	}

	ledger := dedup.NewLedger()
	reason := "tiers exhausted"

	for tier := 1; tier <= d.maxTiers; tier++ {
		if err := ctx.Err(); err != nil {
			return d.finish(ledger, targetCount, "search cancelled"), err
		}

		queries := querygen.Generate(tier, destination, ledger.Learnings())
		d.monitor.StartTier(tier, queries)
		d.logger.Info("starting tier", "tier", tier, "queries", len(queries))

		newDishes := d.runTier(ctx, tier, queries, origin, destination, ledger)
		ledger.RecordTierYield(len(newDishes))

		result := &core.SearchResult{
			Dishes:       newDishes,
			QueriesUsed:  queries,
			Learnings:    ledger.Learnings(),
			NewDishCount: len(newDishes),
			Tier:         tier,
		}
		d.monitor.TierDone(result)

		stop, why, err := criteria.ShouldStop(ledger.Dishes(), targetCount, ledger.TierYields(), tier, d.maxTiers)
		if err != nil {
			return nil, err
		}
		if stop {
			reason = why
			break
		}
	}

	dishes := d.finish(ledger, targetCount, reason)
	return dishes, nil
}

// runTier executes one tier's queries concurrently and merges their
// results into the ledger. A failing query contributes nothing but
// never aborts the tier. Returns the dishes that were not already
// known to the ledger.
func (d *Discoverer) runTier(ctx context.Context, tier int, queries []string, origin, destination string, ledger *dedup.Ledger) []*core.Dish {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var newDishes []*core.Dish

	for _, queryText := range queries {
		wg.Add(1)
		query := ai.Query{
			Text:        queryText,
			Origin:      origin,
			Destination: destination,
			Tier:        tier,
		}

		task := func() {
			defer wg.Done()

			extraction, err := d.extractor.ExtractDishes(ctx, query)
			if err != nil {
				d.logger.Warn("query failed", "tier", tier, "query", query.Text, "err", err)
				d.monitor.QueryDone(query.Text, 0, err)
				return
			}

			var merged []*core.Dish
			for _, raw := range extraction.Dishes {
				dish := dishFromRaw(raw, tier, query.Text)
				if err := core.ValidateDish(dish); err != nil {
					d.logger.Debug("skipping invalid dish", "query", query.Text, "err", err)
					continue
				}
				if ledger.MergeDish(dish) {
					merged = append(merged, dish)
				}
			}
			ledger.MergeLearnings(learningsFromExtraction(extraction.Learnings))

			mu.Lock()
			newDishes = append(newDishes, merged...)
			mu.Unlock()

			d.monitor.QueryDone(query.Text, len(extraction.Dishes), nil)
		}

		if err := d.pool.Submit(task); err != nil {
			// Pool rejected the task (released or overloaded); run inline.
			d.logger.Warn("pool submit failed, running query inline", "err", err)
			task()
		}
	}

	wg.Wait()
	return newDishes
}

// finish ranks the ledger contents, truncates to the target, and
// notifies the monitor.
func (d *Discoverer) finish(ledger *dedup.Ledger, targetCount int, reason string) []*core.Dish {
	dishes := scoring.RankDishes(ledger.Dishes())
	if len(dishes) > targetCount {
		dishes = dishes[:targetCount]
	}
	d.logger.Info("search finished", "dishes", len(dishes), "reason", reason)
	d.monitor.Finish(dishes, reason)
	return dishes
}

// dishFromRaw converts an extracted candidate into a ledger-ready dish,
// stamping discovery provenance.
func dishFromRaw(raw ai.RawDish, tier int, query string) *core.Dish {
	return &core.Dish{
		Name:               raw.Name,
		Description:        raw.Description,
		Category:           raw.Category,
		Neighborhood:       raw.Neighborhood,
		Season:             raw.Season,
		Context:            raw.Context,
		DestPopularity:     raw.DestPopularity,
		GlobalCommonness:   raw.GlobalCommonness,
		OriginAvailability: raw.OriginAvailability,
		AuthenticityGap:    raw.AuthenticityGap,
		TierDiscovered:     tier,
		Sources:            []string{query},
	}
}

func learningsFromExtraction(l ai.Learnings) core.Learnings {
	return core.Learnings{
		Categories:    l.Categories,
		Neighborhoods: l.Neighborhoods,
		Seasons:       l.Seasons,
		Festivals:     l.Festivals,
		Contexts:      l.Contexts,
	}
}
