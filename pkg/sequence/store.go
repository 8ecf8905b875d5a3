package sequence

import "sync"

// Store manages auto-incrementing named counters for fixture IDs.
// It is thread-safe via an internal RWMutex.
type Store struct {
	counters map[string]int64
	mu       sync.RWMutex
}

// NewStore creates a new counter store.
func NewStore() *Store {
	return &Store{
		counters: make(map[string]int64),
	}
}

// Next returns the current value of a counter and then increments it.
// If the counter doesn't exist yet, it starts at the given start value.
func (s *Store) Next(name string, start int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.counters[name]; !exists {
		s.counters[name] = start
	}
	val := s.counters[name]
	s.counters[name]++
	return val
}

// Reset removes a counter, causing it to restart from its start value on the
// next call to Next.
func (s *Store) Reset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counters, name)
}

// Current returns the current value of a counter without incrementing.
// Returns 0 if the counter doesn't exist.
func (s *Store) Current(name string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[name]
}
