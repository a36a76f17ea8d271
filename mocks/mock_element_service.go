package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"revos/internal/domain"
	"revos/internal/service"
)

// MockElementService is a mock implementation of service.ElementService.
type MockElementService struct {
	mock.Mock
}

func (m *MockElementService) Filter(ctx context.Context, input service.FilterInput) (*service.FilterOutput, []domain.Warning, error) {
	args := m.Called(ctx, input)
	var out *service.FilterOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*service.FilterOutput)
	}
	var warns []domain.Warning
	if args.Get(1) != nil {
		warns = args.Get(1).([]domain.Warning)
	}
	return out, warns, args.Error(2)
}

func (m *MockElementService) Get(ctx context.Context, id int64, detail domain.DetailLevel) (*domain.ElementInfo, error) {
	args := m.Called(ctx, id, detail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ElementInfo), args.Error(1)
}

func (m *MockElementService) OverrideColor(ctx context.Context, input service.ColorOverrideInput) ([]domain.BatchItemResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchItemResult), args.Error(1)
}
