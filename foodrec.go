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


package foodrec

import (
	"log/slog"

	"github.com/poiesic/foodrec/ai"
	"github.com/poiesic/foodrec/ai/openai"
	"github.com/poiesic/foodrec/cache"
	"github.com/poiesic/foodrec/discover"
)

// System wires the extraction service, the optional response cache, and
// the discovery orchestrator into one handle.
type System struct {
	extractor ai.DishExtractor
	backend   *cache.Backend
	logger    *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
	cacheDir string
}

// WithAIConfig overrides the default extraction service configuration.
func WithAIConfig(config *ai.Config) SystemOption {
	return func(o *systemOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithCacheDir enables the on-disk extraction response cache rooted at dir.
func WithCacheDir(dir string) SystemOption {
	return func(o *systemOptions) {
		o.cacheDir = dir
	}
}

// NewSystem creates a fully wired discovery system.
func NewSystem(opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	extractor, err := openai.NewDishExtractor(options.aiConfig)
	if err != nil {
		return nil, err
	}

	s := &System{
		extractor: extractor,
		logger:    slog.Default(),
	}

	if options.cacheDir != "" {
		backend, err := cache.OpenBackend(options.cacheDir, false)
		if err != nil {
			return nil, err
		}
		cached, err := cache.NewCachedExtractor(extractor, backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		s.backend = backend
		s.extractor = cached
	}

	return s, nil
}

// Close releases the cache backend if one was opened.
func (s *System) Close() error {
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			s.logger.Error("error closing cache backend", "err", err)
			return err
		}
	}
	return nil
}

// Extractor returns the configured dish extractor (cached if a cache
// directory was set).
func (s *System) Extractor() ai.DishExtractor {
	return s.extractor
}

// NewDiscoverer creates a discovery orchestrator backed by this
// system's extractor.
func (s *System) NewDiscoverer(opts ...discover.Option) (*discover.Discoverer, error) {
	return discover.NewDiscoverer(s.extractor, opts...)
}
