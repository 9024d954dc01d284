// Package dedupe tracks previously seen content fingerprints so repeated
// identical inputs can be surfaced in stats and metrics. Duplicates are
// observed, never rejected: an assessment with a seen fingerprint still runs.
package dedupe

import (
	"context"
	"sync"
)

// Default bound on remembered fingerprints.
const defaultMaxSize = 50000

// Deduper records seen fingerprints.
type Deduper interface {
	// SeenAndRecord atomically checks whether hash was seen before and
	// records it if not. Returns true when hash was already known.
	SeenAndRecord(ctx context.Context, hash string) bool

	// Size returns the number of fingerprints currently remembered.
	Size() int
}

// inMemoryDeduper implements Deduper with a map plus a FIFO ring of keys.
// When the bound is reached the oldest fingerprint is forgotten first. A
// non-positive bound means unbounded.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string // insertion order, used only in bounded mode
	head    int      // index of the oldest entry in order
	maxSize int
}

// Option applies a configuration option to the deduper.
type Option func(*inMemoryDeduper)

// WithMaxSize bounds the number of remembered fingerprints. Zero or negative
// disables the bound.
func WithMaxSize(n int) Option {
	return func(d *inMemoryDeduper) {
		d.maxSize = n
	}
}

// NewInMemoryDeduper creates a deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{})
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, hash string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[hash]; ok {
		return true
	}

	if d.maxSize > 0 && len(d.seen) >= d.maxSize {
		// Forget the oldest fingerprint to make room.
		oldest := d.order[d.head]
		delete(d.seen, oldest)
		d.head++
		// Compact the ring occasionally so it does not grow without bound.
		if d.head > len(d.order)/2 {
			d.order = append([]string(nil), d.order[d.head:]...)
			d.head = 0
		}
	}

	d.seen[hash] = struct{}{}
	if d.maxSize > 0 {
		d.order = append(d.order, hash)
	}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
