package memory

import (
	"context"
	"sync"

	"revos/internal/domain"
	"revos/internal/port"
)

// DefaultCapacity bounds the in-memory log when no database is configured.
const DefaultCapacity = 1000

type commandLogRepo struct {
	mu      sync.Mutex
	entries []domain.CommandLog
	cap     int
}

// NewCommandLogRepo creates an in-memory CommandLogRepository that keeps the
// most recent capacity entries. Used when the audit database is disabled.
func NewCommandLogRepo(capacity int) port.CommandLogRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &commandLogRepo{cap: capacity}
}

func (r *commandLogRepo) Create(_ context.Context, entry *domain.CommandLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
	return nil
}

func (r *commandLogRepo) List(_ context.Context, offset, limit int) ([]domain.CommandLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.page(r.entries, offset, limit)
}

func (r *commandLogRepo) ListByTool(_ context.Context, tool string, offset, limit int) ([]domain.CommandLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var filtered []domain.CommandLog
	for _, e := range r.entries {
		if e.Tool == tool {
			filtered = append(filtered, e)
		}
	}
	return r.page(filtered, offset, limit)
}

// page returns entries newest-first, matching the postgres repository ordering.
func (r *commandLogRepo) page(entries []domain.CommandLog, offset, limit int) ([]domain.CommandLog, int, error) {
	total := len(entries)
	out := make([]domain.CommandLog, 0, limit)
	for i := total - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out, total, nil
}
