package subscriptionrepo

import (
	"context"
	"sync"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/subscription"
)

// MemoryRepository keeps subscription records in memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]subscription.Record
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]subscription.Record)}
}

// Get implements subscription.Repository.
func (r *MemoryRepository) Get(_ context.Context, userID string) (subscription.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[userID]
	return rec, ok, nil
}

// Upsert implements subscription.Repository.
func (r *MemoryRepository) Upsert(_ context.Context, record subscription.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.UserID] = record
	return nil
}

var _ subscription.Repository = (*MemoryRepository)(nil)
