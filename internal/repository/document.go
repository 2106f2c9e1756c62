package repository

import (
	"context"

	"constructdocs/internal/model"
)

// DocumentRepository defines persistence for document metadata. Strictly data
// access: version assignment, grouping, and permission checks all live above
// this layer.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByConstruction returns the flat set of documents attached to one
	// construction, in no guaranteed order. Empty result is an empty slice.
	ListByConstruction(ctx context.Context, constructionID string) ([]model.Document, error)

	// ListByProject returns every document referencing the project, both
	// project-level documents and those owned through a construction.
	ListByProject(ctx context.Context, projectID string) ([]model.Document, error)

	// Delete removes a document row by ID. It returns nil if the row was
	// deleted or did not exist; existence checks belong to the caller.
	Delete(ctx context.Context, id string) error
}
