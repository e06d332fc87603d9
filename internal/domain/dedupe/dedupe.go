// Package dedupe tracks names already handed out in a generation run so a
// roster does not carry two identical players.
package dedupe

import (
	"context"
	"sync"
)

// Default bound for the seen-name set.
const defaultMaxSize = 10000

// Tracker records seen names. Implementations must be safe for concurrent
// use by batch workers.
type Tracker interface {
	// SeenAndRecord atomically checks whether name was seen and records it
	// if not. Returns true if the name was already seen.
	SeenAndRecord(ctx context.Context, name string) bool

	// Unrecord removes a name, freeing it for reuse. Used when a recorded
	// player is discarded before joining the roster.
	Unrecord(ctx context.Context, name string)

	// Size returns the number of names currently tracked.
	Size() int
}

// Option applies a configuration option to the tracker.
type Option func(*inMemoryTracker)

// WithMaxSize bounds the seen set. Zero or negative means unbounded.
func WithMaxSize(n int) Option {
	return func(t *inMemoryTracker) {
		t.maxSize = n
	}
}

// inMemoryTracker keeps seen names in a map with FIFO eviction once the
// bound is reached. Rosters are small; a ring of insertion order is enough.
type inMemoryTracker struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string
	maxSize int
}

// NewInMemoryTracker creates a bounded in-memory tracker.
func NewInMemoryTracker(opts ...Option) Tracker {
	t := &inMemoryTracker{
		seen:    make(map[string]struct{}),
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *inMemoryTracker) SeenAndRecord(_ context.Context, name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[name]; ok {
		return true
	}

	if t.maxSize > 0 && len(t.seen) >= t.maxSize {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.seen, oldest)
	}

	t.seen[name] = struct{}{}
	t.order = append(t.order, name)
	return false
}

func (t *inMemoryTracker) Unrecord(_ context.Context, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[name]; !ok {
		return
	}
	delete(t.seen, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

func (t *inMemoryTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
