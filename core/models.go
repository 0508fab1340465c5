package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier derived from content hashing.
// It is used to key cached extraction responses.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Dish represents a candidate food item discovered during a search run.
// Two dishes are the same ledger entity when their names are equal
// case-insensitively; the looser fuzzy matching applied during merging
// lives in the dedup package.
type Dish struct {
	Name         string
	Description  string
	Category     string // optional
	Neighborhood string // optional
	Season       string // optional
	Context      string // free text: when/where/how to find it

	// Input signals, nominally in [0,1] but not trusted to stay there.
	DestPopularity     float64
	GlobalCommonness   float64 // 0.5 when the extractor had no signal
	OriginAvailability float64
	AuthenticityGap    float64

	// Computed by scoring.RankDishes; stale until then.
	Score      float64
	Uniqueness float64

	// Provenance
	TierDiscovered int      // 1-based
	Sources        []string // queries that produced or reinforced this record
}

// Key returns the canonical ledger key for the dish: its lower-cased name.
func (d *Dish) Key() string {
	return strings.ToLower(d.Name)
}

// Learnings holds contextual hints accumulated across search tiers to
// steer later query generation. Each field is an unordered collection
// of strings.
type Learnings struct {
	Categories    []string
	Neighborhoods []string
	Seasons       []string
	Festivals     []string
	Contexts      []string
}

// Merge unions other into l. Duplicate terms (case-insensitive) are dropped;
// first-seen order is preserved.
func (l *Learnings) Merge(other Learnings) {
	l.Categories = unionStrings(l.Categories, other.Categories)
	l.Neighborhoods = unionStrings(l.Neighborhoods, other.Neighborhoods)
	l.Seasons = unionStrings(l.Seasons, other.Seasons)
	l.Festivals = unionStrings(l.Festivals, other.Festivals)
	l.Contexts = unionStrings(l.Contexts, other.Contexts)
}

// IsEmpty reports whether no hints have been accumulated yet.
func (l *Learnings) IsEmpty() bool {
	return len(l.Categories) == 0 && len(l.Neighborhoods) == 0 &&
		len(l.Seasons) == 0 && len(l.Festivals) == 0 && len(l.Contexts) == 0
}

func unionStrings(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, s := range base {
		seen[strings.ToLower(s)] = true
	}
	for _, s := range extra {
		trimmed := strings.TrimSpace(s)
		key := strings.ToLower(trimmed)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		base = append(base, trimmed)
	}
	return base
}

// SearchResult captures the output of one tier of searching.
type SearchResult struct {
	Dishes       []*Dish // dishes newly extracted this tier
	QueriesUsed  []string
	Learnings    Learnings // accumulated learnings after this tier
	NewDishCount int       // dishes judged new versus the prior ledger
	Tier         int
}
