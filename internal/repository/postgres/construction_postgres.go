package postgres

import (
	"context"
	"database/sql"

	"constructdocs/internal/model"
	"constructdocs/internal/repository"
)

const constructionColumns = `id, name, project_id, created_at, updated_at`

// ConstructionPostgres is a PostgreSQL implementation of
// repository.ConstructionRepository.
type ConstructionPostgres struct {
	db *sql.DB
}

// NewConstructionPostgres creates a new ConstructionPostgres repository.
func NewConstructionPostgres(db *sql.DB) *ConstructionPostgres {
	return &ConstructionPostgres{db: db}
}

var _ repository.ConstructionRepository = (*ConstructionPostgres)(nil)

// Create inserts a new construction row and returns the stored record.
func (r *ConstructionPostgres) Create(ctx context.Context, c *model.Construction) (*model.Construction, error) {
	const q = `
		INSERT INTO constructions (` + constructionColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + constructionColumns

	row := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.ProjectID, c.CreatedAt, c.UpdatedAt)
	return scanConstruction(row)
}

// FindByID fetches a single construction by its ID.
func (r *ConstructionPostgres) FindByID(ctx context.Context, id string) (*model.Construction, error) {
	const q = `
		SELECT ` + constructionColumns + `
		FROM constructions
		WHERE id = $1
	`
	return scanConstruction(r.db.QueryRowContext(ctx, q, id))
}

// ListByProject returns constructions belonging to one project.
func (r *ConstructionPostgres) ListByProject(ctx context.Context, projectID string) ([]model.Construction, error) {
	const q = `
		SELECT ` + constructionColumns + `
		FROM constructions
		WHERE project_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Construction, 0)
	for rows.Next() {
		var c model.Construction
		if err := rows.Scan(&c.ID, &c.Name, &c.ProjectID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanConstruction(row *sql.Row) (*model.Construction, error) {
	var c model.Construction
	if err := row.Scan(&c.ID, &c.Name, &c.ProjectID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
