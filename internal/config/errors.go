package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyRegion      = errors.New("region must not be empty")
	ErrInvalidBatchSize = errors.New("batch_size must be positive")
	ErrInvalidWorkers   = errors.New("workers must be positive")
)
