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


// Package dedup decides whether two dish names denote the same
// underlying dish, and which record survives when they do.
//
// Matching is heuristic by design. Normalize canonicalizes names
// (lower-case, filler words removed, tokens sorted) so that simple
// word-order variation compares equal. AreSimilar layers a token-overlap
// check and a bounded edit-distance check on top to catch partial and
// near-typo matches; it is an approximation, not a guarantee of true
// string similarity.
//
// The Ledger holds the run's deduplicated records together with the
// accumulated learnings and per-tier yield history. Its merge policy is
// intentionally simple: on a fuzzy match the record with the higher
// destination popularity wins wholesale. The merge step is commutative
// with respect to which duplicate is kept, so queries within a tier can
// merge concurrently without changing the final contents.
package dedup
