package output

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/poiesic/foodrec/core"
)

// FormatQuickSummary renders one line per dish: rank, name, score,
// uniqueness.
func FormatQuickSummary(dishes []*core.Dish) string {
	lines := make([]string, 0, len(dishes))
	for i, dish := range dishes {
		lines = append(lines, fmt.Sprintf("%d. %s - Score: %.2f | Uniqueness: %.2f",
			i+1, dish.Name, dish.Score, dish.Uniqueness))
	}
	return strings.Join(lines, "\n")
}

// FormatDetailedText renders a full human-readable report for display.
func FormatDetailedText(dishes []*core.Dish, origin, destination string) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "FOOD RECOMMENDATIONS: %s -> %s\n", origin, destination)
	fmt.Fprintf(&b, "%s\n\n", rule)

	for i, dish := range dishes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.ToUpper(dish.Name))
		fmt.Fprintf(&b, "   Score: %.2f | Uniqueness: %.2f\n", dish.Score, dish.Uniqueness)
		fmt.Fprintf(&b, "   Category: %s\n", orNA(dish.Category))

		if dish.Description != "" {
			fmt.Fprintf(&b, "\n   %s\n", dish.Description)
		}

		fmt.Fprintf(&b, "\n   Why recommended:\n")
		fmt.Fprintf(&b, "      - Popularity in %s: %.0f%%\n", destination, dish.DestPopularity*100)
		fmt.Fprintf(&b, "      - Global commonness: %.0f%%\n", dish.GlobalCommonness*100)
		fmt.Fprintf(&b, "      - Available in %s: %.0f%%\n", origin, dish.OriginAvailability*100)
		if dish.AuthenticityGap > 0 {
			fmt.Fprintf(&b, "      - Authenticity gap: %.0f%% (notably different from the %s version)\n",
				dish.AuthenticityGap*100, origin)
		}

		if dish.Context != "" {
			fmt.Fprintf(&b, "\n   Where/how to find it:\n      %s\n", dish.Context)
		}

		fmt.Fprintf(&b, "\n   Discovered in: Tier %d\n\n", dish.TierDiscovered)
	}

	return b.String()
}

type dishJSON struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Neighborhood string      `json:"neighborhood"`
	Season       string      `json:"season"`
	Context      string      `json:"context"`
	Score        float64     `json:"score"`
	Uniqueness   float64     `json:"uniqueness"`
	Metrics      metricsJSON `json:"metrics"`
	Tier         int         `json:"tier_discovered"`
	Sources      []string    `json:"sources"`
}

type metricsJSON struct {
	DestPopularity     float64 `json:"dest_popularity"`
	GlobalCommonness   float64 `json:"global_commonness"`
	OriginAvailability float64 `json:"origin_availability"`
	AuthenticityGap    float64 `json:"authenticity_gap"`
}

type resultJSON struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Count       int        `json:"count"`
	Dishes      []dishJSON `json:"dishes"`
}

// FormatJSON renders the full result document for API or file use.
func FormatJSON(dishes []*core.Dish, origin, destination string) (string, error) {
	doc := resultJSON{
		Origin:      origin,
		Destination: destination,
		Count:       len(dishes),
		Dishes:      make([]dishJSON, 0, len(dishes)),
	}
	for _, dish := range dishes {
		doc.Dishes = append(doc.Dishes, dishJSON{
			Name:         dish.Name,
			Description:  dish.Description,
			Category:     dish.Category,
			Neighborhood: dish.Neighborhood,
			Season:       dish.Season,
			Context:      dish.Context,
			Score:        round(dish.Score, 3),
			Uniqueness:   round(dish.Uniqueness, 3),
			Metrics: metricsJSON{
				DestPopularity:     dish.DestPopularity,
				GlobalCommonness:   dish.GlobalCommonness,
				OriginAvailability: dish.OriginAvailability,
				AuthenticityGap:    dish.AuthenticityGap,
			},
			Tier:    dish.TierDiscovered,
			Sources: dish.Sources,
		})
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

type compactDishJSON struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Context     string  `json:"context"`
}

// FormatCompactJSON renders a minimal dish list for quick lookup.
func FormatCompactJSON(dishes []*core.Dish) (string, error) {
	compact := make([]compactDishJSON, 0, len(dishes))
	for _, dish := range dishes {
		compact = append(compact, compactDishJSON{
			Name:        dish.Name,
			Score:       round(dish.Score, 2),
			Category:    dish.Category,
			Description: dish.Description,
			Context:     dish.Context,
		})
	}

	raw, err := json.MarshalIndent(compact, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
