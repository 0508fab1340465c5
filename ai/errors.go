package ai

import "errors"

// Extraction failure kinds. The orchestrator recovers from all of them
// per query; they exist so failures can be classified in logs.
var (
	// ErrMalformedResponse indicates the service responded but the payload
	// could not be parsed even after repair attempts.
	ErrMalformedResponse = errors.New("malformed extraction response")

	// ErrEmptyResponse indicates the service returned no content at all.
	ErrEmptyResponse = errors.New("empty extraction response")

	// ErrExtractorRequired is returned by constructors when the wrapped
	// extractor is missing.
	ErrExtractorRequired = errors.New("dish extractor required")
)
