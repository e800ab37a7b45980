// Package scanstore holds the most recent scan result in memory for the
// API and the scheduler to share.
package scanstore

import (
	"sync"

	"github.com/quantnse/stayup/internal/contracts"
)

// Store is a concurrency-safe holder for the latest scan result.
type Store struct {
	mu     sync.RWMutex
	latest *contracts.ScanResult
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Set replaces the latest result.
func (s *Store) Set(result *contracts.ScanResult) {
	s.mu.Lock()
	s.latest = result
	s.mu.Unlock()
}

// Latest returns the most recent result, or nil if no scan has run.
func (s *Store) Latest() *contracts.ScanResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
