package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"revos/internal/domain"
	"revos/internal/port"
)

type commandLogRepo struct {
	db *sqlx.DB
}

// NewCommandLogRepo creates a new PostgreSQL-backed CommandLogRepository.
func NewCommandLogRepo(db *sqlx.DB) port.CommandLogRepository {
	return &commandLogRepo{db: db}
}

func (r *commandLogRepo) Create(ctx context.Context, entry *domain.CommandLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO command_logs (id, request_id, tool, method, status, success, message, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.RequestID, entry.Tool, entry.Method, entry.Status,
		entry.Success, entry.Message, entry.DurationMS, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("commandLogRepo.Create: %w", err)
	}
	return nil
}

func (r *commandLogRepo) List(ctx context.Context, offset, limit int) ([]domain.CommandLog, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM command_logs`)
	if err != nil {
		return nil, 0, fmt.Errorf("commandLogRepo.List count: %w", err)
	}

	var entries []domain.CommandLog
	err = r.db.SelectContext(ctx, &entries,
		`SELECT * FROM command_logs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("commandLogRepo.List: %w", err)
	}
	return entries, total, nil
}

func (r *commandLogRepo) ListByTool(ctx context.Context, tool string, offset, limit int) ([]domain.CommandLog, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM command_logs WHERE tool = $1`, tool)
	if err != nil {
		return nil, 0, fmt.Errorf("commandLogRepo.ListByTool count: %w", err)
	}

	var entries []domain.CommandLog
	err = r.db.SelectContext(ctx, &entries,
		`SELECT * FROM command_logs
		 WHERE tool = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		tool, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("commandLogRepo.ListByTool: %w", err)
	}
	return entries, total, nil
}
