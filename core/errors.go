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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDish indicates a Dish failed validation.
	ErrInvalidDish = errors.New("invalid dish")

	// ErrEmptyDishName indicates the Name field is empty.
	ErrEmptyDishName = errors.New("dish name cannot be empty")

	// ErrInvalidTier indicates a negative tier number. Zero means "not yet
	// discovered" and is valid.
	ErrInvalidTier = errors.New("tier cannot be negative")
)
