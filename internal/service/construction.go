package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"constructdocs/internal/model"
	"constructdocs/internal/repository"
)

var (
	ErrNameRequired         = errors.New("name is required")
	ErrProjectRequired      = errors.New("project id is required")
	ErrConstructionNotFound = errors.New("construction not found")
)

// ConstructionService covers the minimal construction registry. The
// management console owns the full CRUD flows; this service only needs
// records to attach documents to.
type ConstructionService interface {
	Create(ctx context.Context, name, projectID string) (*model.Construction, error)
	Get(ctx context.Context, id string) (*model.Construction, error)
	ListByProject(ctx context.Context, projectID string) ([]model.Construction, error)
}

type constructionService struct {
	repo repository.ConstructionRepository
}

// NewConstructionService constructs a new ConstructionService.
func NewConstructionService(repo repository.ConstructionRepository) ConstructionService {
	return &constructionService{repo: repo}
}

func (s *constructionService) Create(ctx context.Context, name, projectID string) (*model.Construction, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if projectID == "" {
		return nil, ErrProjectRequired
	}
	now := time.Now().UTC()
	return s.repo.Create(ctx, &model.Construction{
		ID:        uuid.New().String(),
		Name:      name,
		ProjectID: projectID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *constructionService) Get(ctx context.Context, id string) (*model.Construction, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConstructionNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *constructionService) ListByProject(ctx context.Context, projectID string) ([]model.Construction, error) {
	if projectID == "" {
		return nil, ErrProjectRequired
	}
	return s.repo.ListByProject(ctx, projectID)
}
