package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"constructdocs/internal/model"
	repoMocks "constructdocs/internal/repository/mocks"
)

func TestConstructionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mRepo := new(repoMocks.MockConstructionRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Construction) bool {
			return c.ID != "" && c.Name == "Block A" && c.ProjectID == "proj-1"
		})).Return(&model.Construction{ID: "gen-id", Name: "Block A", ProjectID: "proj-1"}, nil)

		svc := NewConstructionService(mRepo)
		c, err := svc.Create(ctx, "Block A", "proj-1")

		assert.NoError(t, err)
		assert.Equal(t, "Block A", c.Name)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := NewConstructionService(new(repoMocks.MockConstructionRepository))
		_, err := svc.Create(ctx, "", "proj-1")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("missing project", func(t *testing.T) {
		svc := NewConstructionService(new(repoMocks.MockConstructionRepository))
		_, err := svc.Create(ctx, "Block A", "")
		assert.ErrorIs(t, err, ErrProjectRequired)
	})
}

func TestConstructionService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mRepo := new(repoMocks.MockConstructionRepository)
		mRepo.On("FindByID", ctx, "con-1").Return(&model.Construction{ID: "con-1"}, nil)

		svc := NewConstructionService(mRepo)
		c, err := svc.Get(ctx, "con-1")

		assert.NoError(t, err)
		assert.Equal(t, "con-1", c.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockConstructionRepository)
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		svc := NewConstructionService(mRepo)
		_, err := svc.Get(ctx, "missing")

		assert.ErrorIs(t, err, ErrConstructionNotFound)
	})
}

func TestConstructionService_ListByProject(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockConstructionRepository)
	mRepo.On("ListByProject", ctx, "proj-1").Return([]model.Construction{{ID: "con-1"}}, nil)

	svc := NewConstructionService(mRepo)
	items, err := svc.ListByProject(ctx, "proj-1")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
