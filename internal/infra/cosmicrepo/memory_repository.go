package cosmicrepo

import (
	"context"
	"sync"
	"time"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

// MemoryRepository keeps daily readings keyed by calendar date.
type MemoryRepository struct {
	mu     sync.RWMutex
	events map[string]cosmic.DailyEvents
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{events: make(map[string]cosmic.DailyEvents)}
}

// Get implements cosmic.Repository.
func (r *MemoryRepository) Get(_ context.Context, date time.Time) (cosmic.DailyEvents, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ev, ok := r.events[date.Format(util.DateLayout)]
	return ev, ok, nil
}

// Upsert implements cosmic.Repository.
func (r *MemoryRepository) Upsert(_ context.Context, events cosmic.DailyEvents) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[events.Date] = events
	return nil
}

var _ cosmic.Repository = (*MemoryRepository)(nil)
