package repository

import (
	"context"
	"sync"

	"github.com/okian/sentia/internal/domain/model"
)

// MemoryStore implements Store with an in-process slice. Unbounded by
// default, matching the reference behavior; a positive bound switches it to
// drop-oldest retention. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []model.Assessment
	maxSize int // 0 or negative = unbounded
}

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithMaxSize caps the number of retained assessments. Zero or negative
// keeps the store unbounded.
func WithMaxSize(n int) Option {
	return func(s *MemoryStore) {
		s.maxSize = n
	}
}

// NewMemoryStore creates a history store with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds a to the history, evicting the oldest entry when bounded and
// full.
func (s *MemoryStore) Append(_ context.Context, a model.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSize > 0 && len(s.entries) >= s.maxSize {
		// Drop-oldest keeps the most recent window without reallocating
		// the whole slice on every append.
		copy(s.entries, s.entries[1:])
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, a)
	return nil
}

// Recent returns up to n of the most recent assessments, oldest first.
func (s *MemoryStore) Recent(_ context.Context, n int) ([]model.Assessment, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]model.Assessment, len(s.entries)-start)
	copy(out, s.entries[start:])
	return out, nil
}

// Count returns the number of assessments currently held.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
