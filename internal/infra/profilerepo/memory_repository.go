package profilerepo

import (
	"context"
	"sync"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/guidance"
)

// MemoryRepository keeps spiritual profiles in memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]guidance.SpiritualProfile
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]guidance.SpiritualProfile)}
}

// Get implements guidance.ProfileRepository.
func (r *MemoryRepository) Get(_ context.Context, userID string) (guidance.SpiritualProfile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	return p, ok, nil
}

// Upsert implements guidance.ProfileRepository.
func (r *MemoryRepository) Upsert(_ context.Context, profile guidance.SpiritualProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = profile
	return nil
}

var _ guidance.ProfileRepository = (*MemoryRepository)(nil)
