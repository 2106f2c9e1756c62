package repository

import (
	"context"

	"constructdocs/internal/model"
)

// ConstructionRepository covers the minimal construction registry this
// service keeps so document listings and foreign keys resolve. Full
// construction CRUD is owned by the management console.
type ConstructionRepository interface {
	// Create inserts a new construction record.
	Create(ctx context.Context, c *model.Construction) (*model.Construction, error)

	// FindByID returns a construction by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Construction, error)

	// ListByProject returns the constructions belonging to one project.
	ListByProject(ctx context.Context, projectID string) ([]model.Construction, error)
}
