package ratestore

import (
	"context"
	"sync"
	"time"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/ratelimit"
)

type window struct {
	count     int64
	expiresAt time.Time
}

// MemoryStore keeps counters in process memory for tests and single instance deployments.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*window), now: time.Now}
}

// IncrementWindow implements ratelimit.WindowStore.
func (s *MemoryStore) IncrementWindow(_ context.Context, key string, length time.Duration) (ratelimit.WindowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.expiresAt) {
		w = &window{expiresAt: now.Add(length)}
		s.windows[key] = w
	}
	w.count++
	s.evictLocked(now)
	return ratelimit.WindowState{Count: w.count, TTL: w.expiresAt.Sub(now)}, nil
}

func (s *MemoryStore) evictLocked(now time.Time) {
	for key, w := range s.windows {
		if !now.Before(w.expiresAt) {
			delete(s.windows, key)
		}
	}
}

var _ ratelimit.WindowStore = (*MemoryStore)(nil)
