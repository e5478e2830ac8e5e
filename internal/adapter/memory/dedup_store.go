package memory

import (
	"context"
	"sync"
	"time"

	"creative-sync/internal/core/port"
)

// DedupStore is a single-process port.DedupStore. Expired keys are pruned
// lazily on Claim.
type DedupStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewDedupStore creates an empty store.
func NewDedupStore() *DedupStore {
	return &DedupStore{entries: make(map[string]time.Time), now: time.Now}
}

// Claim marks key as held for ttl. It returns false when key is already
// held and not yet expired.
func (s *DedupStore) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.entries {
		if !now.Before(exp) {
			delete(s.entries, k)
		}
	}
	if _, held := s.entries[key]; held {
		return false, nil
	}
	s.entries[key] = now.Add(ttl)
	return true, nil
}

// Release forgets key.
func (s *DedupStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Size returns the number of tracked keys, expired ones included until the
// next Claim prunes them.
func (s *DedupStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

var _ port.DedupStore = (*DedupStore)(nil)
