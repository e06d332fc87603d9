package sampler

import "errors"

// Sentinel kinds for sampler errors.
var (
	ErrIncompleteBoostTable = errors.New("boost table does not cover every position")
)
