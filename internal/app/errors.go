package app

import "errors"

// Sentinel kinds for generation-service errors.
var (
	// ErrMissingRegion rejects requests without a region id before any
	// generation work begins.
	ErrMissingRegion = errors.New("region id is required")
)
