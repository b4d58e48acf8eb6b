package reportrepo

import (
	"context"
	"sync"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
)

// MemoryRepository is an in-process report log, newest last.
type MemoryRepository struct {
	mu      sync.RWMutex
	reports []moderation.Report
}

// NewMemoryRepository constructs an empty log.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save implements moderation.ReportRepository.
func (r *MemoryRepository) Save(_ context.Context, report moderation.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
	return nil
}

// List returns up to limit reports, newest first. limit <= 0 returns all.
func (r *MemoryRepository) List(_ context.Context, limit int) ([]moderation.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.reports)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]moderation.Report, 0, n)
	for i := len(r.reports) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.reports[i])
	}
	return out, nil
}

var _ moderation.ReportRepository = (*MemoryRepository)(nil)
