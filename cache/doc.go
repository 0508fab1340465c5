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


// Package cache provides an optional BadgerDB-backed response cache for
// dish extraction.
//
// LLM calls are the slow, expensive part of a discovery run. Query text
// is deterministic per tier, so repeating a search for the same trip
// re-issues mostly identical queries. CachedExtractor decorates any
// ai.DishExtractor and serves previously seen responses from disk (or
// memory), falling through to the wrapped extractor on a miss.
//
//	backend, err := cache.OpenBackend("/home/user/.foodrec/cache", false)
//	if err != nil { ... }
//	defer backend.Close()
//
//	cached, err := cache.NewCachedExtractor(extractor, backend)
//
// The cache is strictly best-effort. Read, decode, and write failures
// are logged and ignored so extraction keeps working when the cache
// does not.
package cache
