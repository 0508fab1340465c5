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


package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/poiesic/foodrec/core"
	"github.com/poiesic/foodrec/discover"
)

// progressMonitor prints per-tier progress to the given writer.
type progressMonitor struct {
	mu  sync.Mutex
	out io.Writer
}

var _ discover.TierMonitor = (*progressMonitor)(nil)

func (p *progressMonitor) StartTier(tier int, queries []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "Tier %d: running %d queries...\n", tier, len(queries))
	for _, q := range queries {
		fmt.Fprintf(p.out, "  - %s\n", q)
	}
}

func (p *progressMonitor) QueryDone(query string, dishCount int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		fmt.Fprintf(p.out, "  query failed: %s (%v)\n", query, err)
		return
	}
	fmt.Fprintf(p.out, "  %d candidates from %q\n", dishCount, query)
}

func (p *progressMonitor) TierDone(result *core.SearchResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "Tier %d done: %d new dishes\n",
		result.Tier, result.NewDishCount)
}

func (p *progressMonitor) Finish(dishes []*core.Dish, reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "Search complete: %s\n\n", reason)
}
