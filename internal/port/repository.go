package port

import (
	"context"

	"revos/internal/domain"
)

// CommandLogRepository defines the contract for command audit log persistence.
type CommandLogRepository interface {
	Create(ctx context.Context, entry *domain.CommandLog) error
	List(ctx context.Context, offset, limit int) ([]domain.CommandLog, int, error)
	ListByTool(ctx context.Context, tool string, offset, limit int) ([]domain.CommandLog, int, error)
}
