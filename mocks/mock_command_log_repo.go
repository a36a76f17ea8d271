package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"revos/internal/domain"
)

// MockCommandLogRepo is a mock implementation of port.CommandLogRepository.
type MockCommandLogRepo struct {
	mock.Mock
}

func (m *MockCommandLogRepo) Create(ctx context.Context, entry *domain.CommandLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCommandLogRepo) List(ctx context.Context, offset, limit int) ([]domain.CommandLog, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CommandLog), args.Int(1), args.Error(2)
}

func (m *MockCommandLogRepo) ListByTool(ctx context.Context, tool string, offset, limit int) ([]domain.CommandLog, int, error) {
	args := m.Called(ctx, tool, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CommandLog), args.Int(1), args.Error(2)
}
