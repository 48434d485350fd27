// Package dedup provides an in-memory processed set with a bounded memory
// footprint. The set remembers the most recent correlation identifiers and
// evicts the oldest once the capacity is reached. Forgetting an old entry is
// harmless: the order status in the store is the authoritative duplicate
// check, the set only short-circuits the common case.
package dedup

import (
	"context"
	"sync"
)

// DefaultCapacity is the number of correlation ids kept when no capacity is
// given.
const DefaultCapacity = 10000

// MemorySet is an in-memory implementation of ports.ProcessedSet.
// Safe for concurrent use.
type MemorySet struct {
	mu       sync.Mutex
	entries  map[string]struct{}
	ring     []string
	next     int
	capacity int
}

// NewMemorySet creates a set that remembers up to capacity correlation ids.
// A non-positive capacity falls back to DefaultCapacity.
func NewMemorySet(capacity int) *MemorySet {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemorySet{
		entries:  make(map[string]struct{}, capacity),
		ring:     make([]string, capacity),
		capacity: capacity,
	}
}

// Contains reports whether the correlation id was already processed.
func (s *MemorySet) Contains(_ context.Context, correlationID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[correlationID]
	return ok, nil
}

// Add marks the correlation id as processed, evicting the oldest entry when
// the set is full. Adding an id twice is a no-op.
func (s *MemorySet) Add(_ context.Context, correlationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[correlationID]; ok {
		return nil
	}

	if evicted := s.ring[s.next]; evicted != "" {
		delete(s.entries, evicted)
	}
	s.ring[s.next] = correlationID
	s.next = (s.next + 1) % s.capacity
	s.entries[correlationID] = struct{}{}

	return nil
}

// Len returns the number of correlation ids currently remembered.
func (s *MemorySet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
