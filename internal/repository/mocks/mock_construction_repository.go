package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"constructdocs/internal/model"
)

type MockConstructionRepository struct {
	mock.Mock
}

func (m *MockConstructionRepository) Create(ctx context.Context, c *model.Construction) (*model.Construction, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Construction), args.Error(1)
}

func (m *MockConstructionRepository) FindByID(ctx context.Context, id string) (*model.Construction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Construction), args.Error(1)
}

func (m *MockConstructionRepository) ListByProject(ctx context.Context, projectID string) ([]model.Construction, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Construction), args.Error(1)
}
