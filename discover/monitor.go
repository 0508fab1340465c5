package discover

import "github.com/poiesic/foodrec/core"

// TierMonitor provides hooks to observe the discovery process.
// Implement this interface to track per-tier progress during a search.
type TierMonitor interface {
	StartTier(tier int, queries []string)
	QueryDone(query string, dishCount int, err error)
	TierDone(result *core.SearchResult)
	Finish(dishes []*core.Dish, reason string)
}

// noopMonitor is a no-op implementation of TierMonitor
type noopMonitor struct{}

var _ TierMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) StartTier(_ int, _ []string)        {}
func (n *noopMonitor) QueryDone(_ string, _ int, _ error) {}
func (n *noopMonitor) TierDone(_ *core.SearchResult)      {}
func (n *noopMonitor) Finish(_ []*core.Dish, _ string)    {}
