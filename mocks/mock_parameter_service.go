package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"revos/internal/domain"
	"revos/internal/service"
)

// MockParameterService is a mock implementation of service.ParameterService.
type MockParameterService struct {
	mock.Mock
}

func (m *MockParameterService) Get(ctx context.Context, elementID int64, name string) (*domain.ParameterValue, error) {
	args := m.Called(ctx, elementID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParameterValue), args.Error(1)
}

func (m *MockParameterService) GetMany(ctx context.Context, elementID int64, names []string) (map[string]domain.ParameterValue, error) {
	args := m.Called(ctx, elementID, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ParameterValue), args.Error(1)
}

func (m *MockParameterService) Set(ctx context.Context, input service.SetParameterInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockParameterService) SetBatch(ctx context.Context, inputs []service.SetParameterInput) ([]domain.BatchItemResult, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchItemResult), args.Error(1)
}
