package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"revos/internal/domain"
	"revos/internal/port"
)

// CommandRecord captures one executed command for the audit log.
type CommandRecord struct {
	RequestID  string
	Tool       string
	Method     string
	Status     int
	Success    bool
	Message    string
	DurationMS int64
}

// CommandService records and lists executed automation commands.
type CommandService interface {
	Record(ctx context.Context, rec CommandRecord)
	List(ctx context.Context, tool string, offset, limit int) ([]domain.CommandLog, int, error)
}

type commandService struct {
	repo port.CommandLogRepository
}

// NewCommandService creates a new CommandService implementation.
func NewCommandService(repo port.CommandLogRepository) CommandService {
	return &commandService{repo: repo}
}

// Record persists one audit entry. Audit failures are logged, never surfaced;
// a broken audit store must not fail commands.
func (s *commandService) Record(ctx context.Context, rec CommandRecord) {
	entry := &domain.CommandLog{
		ID:         uuid.New(),
		RequestID:  rec.RequestID,
		Tool:       rec.Tool,
		Method:     rec.Method,
		Status:     rec.Status,
		Success:    rec.Success,
		Message:    rec.Message,
		DurationMS: rec.DurationMS,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("recording command log for %s: %v", rec.Tool, err)
	}
}

func (s *commandService) List(ctx context.Context, tool string, offset, limit int) ([]domain.CommandLog, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if tool != "" {
		return s.repo.ListByTool(ctx, tool, offset, limit)
	}
	return s.repo.List(ctx, offset, limit)
}
