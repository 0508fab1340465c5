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


package discover

import "errors"

var (
	// ErrInvalidTarget is returned when the requested dish count is below 1.
	ErrInvalidTarget = errors.New("target dish count must be at least 1")

	// ErrOriginRequired is returned when the origin city is empty.
	ErrOriginRequired = errors.New("origin is required")

	// ErrDestinationRequired is returned when the destination city is empty.
	ErrDestinationRequired = errors.New("destination is required")
)
