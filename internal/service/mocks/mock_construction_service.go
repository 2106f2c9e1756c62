package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"constructdocs/internal/model"
)

type MockConstructionService struct {
	mock.Mock
}

func (m *MockConstructionService) Create(ctx context.Context, name, projectID string) (*model.Construction, error) {
	args := m.Called(ctx, name, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Construction), args.Error(1)
}

func (m *MockConstructionService) Get(ctx context.Context, id string) (*model.Construction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Construction), args.Error(1)
}

func (m *MockConstructionService) ListByProject(ctx context.Context, projectID string) ([]model.Construction, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Construction), args.Error(1)
}
