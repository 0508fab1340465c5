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


// Package discover orchestrates tiered, iterative dish discovery.
//
// A search runs in tiers. Each tier generates up to two queries from
// what previous tiers taught us about the destination (categories,
// neighborhoods, seasons), runs them concurrently against the dish
// extractor, merges the candidates into a deduplicating ledger, and
// then consults the stopping criteria. Early tiers cast a wide net;
// later tiers drill into the specifics the destination revealed.
//
//	extractor, _ := openai.NewDishExtractor(ai.DefaultConfig())
//	d, err := discover.NewDiscoverer(extractor)
//	if err != nil { ... }
//	defer d.Release()
//
//	dishes, err := d.Search(ctx, "Seattle", "Bangkok", 10)
//
// Individual query failures are logged and skipped; a tier with some
// failed queries still contributes whatever its surviving queries
// found. Cancelling the context returns the ranked dishes gathered so
// far along with the context error.
package discover
