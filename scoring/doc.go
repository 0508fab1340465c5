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


// Package scoring contains the pure relevance and diversity mathematics
// for discovered dishes.
//
// Three measures are computed:
//
//   - ScoreDish: a TF-IDF-inspired relevance score combining destination
//     popularity, inverse global commonness, an origin-availability
//     penalty, and an authenticity-gap bonus
//   - Uniqueness: a rarity-only measure used by the stopping criteria
//   - DiversityScore: Shannon-entropy category spread used as a stopping
//     signal
//
// All functions are deterministic and side-effect free except
// RankDishes, which writes the computed Score and Uniqueness back onto
// each dish before sorting. No other component writes those fields.
package scoring
