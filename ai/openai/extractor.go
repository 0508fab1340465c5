// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/foodrec/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// maxParseAttempts bounds how many times one query is re-asked when the
// model keeps returning unparseable JSON.
const maxParseAttempts = 3

// DishExtractor implements ai.DishExtractor using OpenAI-compatible chat APIs.
type DishExtractor struct {
	client     llms.Model
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// dish is an internal type for JSON unmarshaling. GlobalCommonness is a
// pointer so an absent field can default to 0.5 rather than 0.
type dish struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Neighborhood       string   `json:"neighborhood"`
	Season             string   `json:"season"`
	Context            string   `json:"context"`
	DestPopularity     float64  `json:"dest_popularity"`
	GlobalCommonness   *float64 `json:"global_commonness"`
	OriginAvailability float64  `json:"origin_availability"`
	AuthenticityGap    float64  `json:"authenticity_gap"`
}

// extraction is the wrapper structure for the LLM's JSON response.
type extraction struct {
	Dishes    []dish `json:"dishes"`
	Learnings struct {
		Categories    []string `json:"categories"`
		Neighborhoods []string `json:"neighborhoods"`
		Seasons       []string `json:"seasons"`
		Festivals     []string `json:"festivals"`
		Contexts      []string `json:"contexts"`
	} `json:"learnings"`
}

// newDishExtractor is an internal constructor that returns the concrete type.
func newDishExtractor(config *ai.Config) (*DishExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &DishExtractor{
		client:     client,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		logger:     slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewDishExtractor creates a new dish extractor using the provided configuration.
//
// Returns ai.DishExtractor interface to enforce abstraction.
func NewDishExtractor(config *ai.Config) (ai.DishExtractor, error) {
	return newDishExtractor(config)
}

// ExtractDishes runs one query through the LLM and parses structured
// dish candidates out of the response. Records without a name are
// dropped; the rest of the batch is still processed.
func (e *DishExtractor) ExtractDishes(ctx context.Context, query ai.Query) (*ai.Extraction, error) {
	systemPrompt := buildSystemPrompt(query.Origin, query.Destination)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(fmt.Sprintf("Query: %q (search tier %d)", query.Text, query.Tier)),
			},
		},
	}

	var result extraction
	var lastErr error
	for attempt := 0; attempt < maxParseAttempts; attempt++ {
		var response *llms.ContentResponse
		err := retryWithBackoff(ctx, func() error {
			var genErr error
			response, genErr = e.client.GenerateContent(ctx, content,
				llms.WithTemperature(0.0), llms.WithJSONMode())
			return genErr
		}, e.maxRetries, e.retryDelay)
		if err != nil {
			e.logger.Error("failed to generate content", "query", query.Text, "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model", "query", query.Text)
			return nil, ai.ErrEmptyResponse
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extraction response",
				"query", query.Text,
				"attempt", attempt+1,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extraction response after retries", "query", query.Text, "err", lastErr)
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, lastErr)
	}

	out := &ai.Extraction{
		Dishes: make([]ai.RawDish, 0, len(result.Dishes)),
		Learnings: ai.Learnings{
			Categories:    result.Learnings.Categories,
			Neighborhoods: result.Learnings.Neighborhoods,
			Seasons:       result.Learnings.Seasons,
			Festivals:     result.Learnings.Festivals,
			Contexts:      result.Learnings.Contexts,
		},
	}

	dropped := 0
	for _, d := range result.Dishes {
		if strings.TrimSpace(d.Name) == "" {
			dropped++
			continue
		}
		commonness := 0.5 // neutral when the model had no signal
		if d.GlobalCommonness != nil {
			commonness = *d.GlobalCommonness
		}
		out.Dishes = append(out.Dishes, ai.RawDish{
			Name:               strings.TrimSpace(d.Name),
			Description:        d.Description,
			Category:           strings.ToLower(strings.TrimSpace(d.Category)),
			Neighborhood:       strings.TrimSpace(d.Neighborhood),
			Season:             strings.ToLower(strings.TrimSpace(d.Season)),
			Context:            d.Context,
			DestPopularity:     d.DestPopularity,
			GlobalCommonness:   commonness,
			OriginAvailability: d.OriginAvailability,
			AuthenticityGap:    d.AuthenticityGap,
		})
	}
	if dropped > 0 {
		e.logger.Warn("dropped extracted dishes without names", "query", query.Text, "dropped", dropped)
	}

	e.logger.Debug("extracted dishes",
		"query", query.Text,
		"tier", query.Tier,
		"dishes", len(out.Dishes))

	return out, nil
}
