package criteria

import "errors"

// ErrMaxTiersExceeded is returned when the configured tier ceiling is
// above the supported maximum.
var ErrMaxTiersExceeded = errors.New("max tiers cannot exceed 5")
