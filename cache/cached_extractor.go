package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/foodrec/ai"
	"github.com/poiesic/foodrec/core"
)

// DefaultTTL is how long cached extraction responses are kept. Food
// scenes don't change quickly; a week keeps repeat research sessions
// cheap without serving stale results forever.
const DefaultTTL = 7 * 24 * time.Hour

// CachedExtractor wraps an ai.DishExtractor with a BadgerDB response
// cache. Cache failures are logged and bypassed so a broken cache never
// takes extraction down with it.
type CachedExtractor struct {
	inner   ai.DishExtractor
	backend *Backend
	ttl     time.Duration
	logger  *slog.Logger
}

// CachedExtractorOption configures a CachedExtractor.
type CachedExtractorOption func(*CachedExtractor)

// WithTTL overrides the default cache entry lifetime. Zero disables expiry.
func WithTTL(ttl time.Duration) CachedExtractorOption {
	return func(c *CachedExtractor) {
		c.ttl = ttl
	}
}

// NewCachedExtractor wraps extractor with a response cache backed by backend.
func NewCachedExtractor(extractor ai.DishExtractor, backend *Backend, opts ...CachedExtractorOption) (*CachedExtractor, error) {
	if extractor == nil {
		return nil, ai.ErrExtractorRequired
	}
	if backend == nil {
		return nil, ErrBackendRequired
	}

	c := &CachedExtractor{
		inner:   extractor,
		backend: backend,
		ttl:     DefaultTTL,
		logger:  slog.Default().With("component", "cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ExtractDishes returns the cached response for this query if present,
// otherwise delegates to the wrapped extractor and stores the result.
func (c *CachedExtractor) ExtractDishes(ctx context.Context, query ai.Query) (*ai.Extraction, error) {
	key := cacheKey(query)

	if raw, err := c.backend.get(key); err != nil {
		c.logger.Warn("cache read failed", "query", query.Text, "err", err)
	} else if raw != nil {
		var cached ai.Extraction
		if err := json.Unmarshal(raw, &cached); err != nil {
			c.logger.Warn("discarding undecodable cache entry", "query", query.Text, "err", err)
		} else {
			c.logger.Debug("cache hit", "query", query.Text, "tier", query.Tier)
			return &cached, nil
		}
	}

	result, err := c.inner.ExtractDishes(ctx, query)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err != nil {
		c.logger.Warn("could not encode extraction for cache", "query", query.Text, "err", err)
	} else if err := c.backend.set(key, raw, c.ttl); err != nil {
		c.logger.Warn("cache write failed", "query", query.Text, "err", err)
	}

	return result, nil
}

// cacheKey derives a stable key from everything that shapes the
// response: the query text plus the origin/destination pair baked into
// the prompt, and the tier.
func cacheKey(query ai.Query) []byte {
	id := core.IDFromContent(fmt.Sprintf("%s|%s|%s|%d", query.Text, query.Origin, query.Destination, query.Tier))
	return []byte(fmt.Sprintf("extr:%016x", uint64(id)))
}
