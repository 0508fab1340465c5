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


package core

import (
	"fmt"
	"strings"
)

// ValidateDish validates a Dish according to domain rules.
//
// Validation rules:
//   - Name must not be empty or whitespace-only
//   - TierDiscovered, when set, must be 1 or greater
//
// NOT validated (populated elsewhere):
//   - Score and Uniqueness (written only by the scoring engine)
//   - Signal values (clamped by the scoring engine, not rejected here)
func ValidateDish(dish *Dish) error {
	if dish == nil {
		return fmt.Errorf("%w: dish is nil", ErrInvalidDish)
	}

	if strings.TrimSpace(dish.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDish, ErrEmptyDishName)
	}

	if dish.TierDiscovered < 0 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidDish, ErrInvalidTier, dish.TierDiscovered)
	}

	return nil
}
