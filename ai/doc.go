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


// Package ai defines the extraction-collaborator boundary: given one
// search query and its trip context, an extractor returns structured
// dish candidates plus contextual learnings.
//
// The package holds only the contract (DishExtractor), the wire-adjacent
// types (Query, RawDish, Extraction, Learnings), the failure taxonomy,
// and configuration. Implementations live in sub-packages:
//
//   - ai/openai: production implementation over an OpenAI-compatible
//     chat API
//   - ai/mock: test double with injectable behavior
//
// The search orchestrator depends only on this package; a failure from
// any implementation is recovered per query as an empty contribution,
// never propagated into the tier loop.
package ai
