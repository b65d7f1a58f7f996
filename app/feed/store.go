package feed

import (
	"sync"
)

// Store holds the most recently generated feed per source for the HTTP API.
// Feeds are replaced wholesale on every refresh; nothing is merged.
type Store struct {
	mu    sync.RWMutex
	feeds map[string]*Result
}

func NewStore() *Store {
	return &Store{feeds: make(map[string]*Result)}
}

func (s *Store) Set(name string, result *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeds[name] = result
}

func (s *Store) Get(name string) (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.feeds[name]
	return result, ok
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.feeds)
}
