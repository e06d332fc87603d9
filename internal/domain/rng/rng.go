// Package rng provides the random source injected into every sampler.
//
// Samplers never touch package-level randomness: they receive a Source so
// tests can pin a seed and replay a generation run exactly.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform random floats in [0,1). Implementations used
// across goroutines must be safe for concurrent calls.
type Source interface {
	Float64() float64
}

// seeded wraps a *rand.Rand behind a mutex. *rand.Rand itself is not safe
// for concurrent use.
type seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a seeded Source. The same seed replays the same draw
// sequence.
func New(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))} //nolint:gosec // non-cryptographic sampling
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}

func (s *seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// IntBetween draws a uniform integer in [lo, hi] inclusive. A degenerate
// range returns lo.
func IntBetween(s Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(s.Float64()*float64(hi-lo+1))
}

// Coin returns true with probability 0.5.
func Coin(s Source) bool {
	return s.Float64() < 0.5
}

// Pick returns a uniformly chosen element of items. Empty input returns
// the zero value.
func Pick[T any](s Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[IntBetween(s, 0, len(items)-1)]
}
