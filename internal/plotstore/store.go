// Package plotstore keeps rendered plot images in memory for a limited
// time so that HTML pages can reference them by URL.
package plotstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is a bounded, expiring map from plot set ID to named images.
// It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time

	entries map[string]*entry
	order   []string // insertion order, oldest first
}

type entry struct {
	plots   map[string][]byte
	expires time.Time
}

// New returns a store holding at most capacity plot sets, each for ttl.
func New(capacity int, ttl time.Duration) *Store {
	if capacity < 1 {
		capacity = 1
	}

	return &Store{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]*entry),
	}
}

// Put stores a set of named plots and returns its ID.
func (s *Store) Put(plots map[string][]byte) string {
	id := uuid.NewString()

	copied := make(map[string][]byte, len(plots))
	for name, data := range plots {
		copied[name] = data
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	for len(s.order) >= s.capacity {
		s.evictOldestLocked()
	}

	s.entries[id] = &entry{plots: copied, expires: s.now().Add(s.ttl)}
	s.order = append(s.order, id)

	return id
}

// Get returns the plot name of set id, or false if it is unknown or expired.
func (s *Store) Get(id, name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}

	if !s.now().Before(e.expires) {
		s.expireLocked()
		return nil, false
	}

	data, ok := e.plots[name]
	return data, ok
}

// Len returns the number of live plot sets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	return len(s.order)
}

// expireLocked drops expired entries. Entries expire in insertion order.
func (s *Store) expireLocked() {
	now := s.now()
	for len(s.order) > 0 {
		e := s.entries[s.order[0]]
		if now.Before(e.expires) {
			return
		}
		s.evictOldestLocked()
	}
}

func (s *Store) evictOldestLocked() {
	delete(s.entries, s.order[0])
	s.order[0] = ""
	s.order = s.order[1:]
}
