package dedup

import (
	"sync"

	"github.com/poiesic/foodrec/core"
)

// Ledger is the run-scoped accumulation of deduplicated dish records,
// plus the learnings and per-tier yield history that drive the stopping
// decision. It is created empty at run start, mutated only by the tier
// orchestrator, and discarded after final ranking.
//
// All methods are safe for concurrent use; the merge decision ("look up
// similar key, decide keep/replace, write") is a single atomic step so
// queries within a tier may run concurrently.
type Ledger struct {
	mu         sync.Mutex
	entries    map[string]*core.Dish // canonical key: lower-cased name at insertion
	order      []string              // insertion order of keys
	learnings  core.Learnings
	tierYields []int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries: make(map[string]*core.Dish),
	}
}

// MergeDish folds a dish into the ledger. When the name is similar to an
// existing entry, the existing record is kept unless the incoming dish
// has strictly greater destination popularity, in which case the new
// record fully replaces the old one under the same ledger key. Returns
// true when the dish was genuinely new.
//
// The replacement trusts the most recently estimated popularity signal
// over the first-seen one, and discards the replaced record's provenance.
func (l *Ledger) MergeDish(dish *core.Dish) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, key := range l.order {
		existing := l.entries[key]
		if !AreSimilar(dish.Name, existing.Name) {
			continue
		}
		if dish.DestPopularity > existing.DestPopularity {
			l.entries[key] = dish
		}
		return false
	}

	key := dish.Key()
	if _, ok := l.entries[key]; ok {
		// Same canonical key without fuzzy similarity cannot normally
		// happen, but never orphan an order slot.
		l.entries[key] = dish
		return false
	}
	l.entries[key] = dish
	l.order = append(l.order, key)
	return true
}

// Dishes returns the current records in insertion order.
func (l *Ledger) Dishes() []*core.Dish {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*core.Dish, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, l.entries[key])
	}
	return out
}

// Len returns the number of ledger entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// MergeLearnings set-unions tier learnings into the ledger.
func (l *Ledger) MergeLearnings(learnings core.Learnings) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.learnings.Merge(learnings)
}

// Learnings returns a copy of the accumulated learnings.
func (l *Ledger) Learnings() core.Learnings {
	l.mu.Lock()
	defer l.mu.Unlock()

	return core.Learnings{
		Categories:    append([]string(nil), l.learnings.Categories...),
		Neighborhoods: append([]string(nil), l.learnings.Neighborhoods...),
		Seasons:       append([]string(nil), l.learnings.Seasons...),
		Festivals:     append([]string(nil), l.learnings.Festivals...),
		Contexts:      append([]string(nil), l.learnings.Contexts...),
	}
}

// RecordTierYield appends a tier's new-dish count to the yield history.
func (l *Ledger) RecordTierYield(count int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tierYields = append(l.tierYields, count)
}

// TierYields returns a copy of the per-tier new-dish counts in order.
func (l *Ledger) TierYields() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int(nil), l.tierYields...)
}
