package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store"
)

// Store is an in-memory implementation of store.Cache for tests.
type Store struct {
	mu      sync.RWMutex
	snap    *store.Snapshot
	corrupt bool
	loads   int
	saves   int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Close implements store.Cache.
func (s *Store) Close() error { return nil }

// Load implements store.Cache.
func (s *Store) Load(ctx context.Context) (store.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loads++
	if s.corrupt {
		return store.Snapshot{}, false, fmt.Errorf("memstore: %w", internalerr.ErrCacheCorrupt)
	}
	if s.snap == nil {
		return store.Snapshot{}, false, nil
	}
	return copySnapshot(*s.snap), true, nil
}

// Save implements store.Cache. Saving clears any simulated corruption.
func (s *Store) Save(ctx context.Context, snap store.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves++
	c := copySnapshot(snap)
	s.snap = &c
	s.corrupt = false
	return nil
}

// Corrupt makes subsequent loads fail as if the snapshot were unreadable.
func (s *Store) Corrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corrupt = true
}

// Loads returns the number of Load calls.
func (s *Store) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}

// Saves returns the number of Save calls.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func copySnapshot(snap store.Snapshot) store.Snapshot {
	terms := make([]string, len(snap.Terms))
	copy(terms, snap.Terms)
	return store.Snapshot{Terms: terms, CreatedAt: snap.CreatedAt}
}
