package postgres

import (
	"context"
	"database/sql"

	"constructdocs/internal/model"
	"constructdocs/internal/repository"
)

const documentColumns = `id, original_name, file_name, storage_path, size, content_type, category, version, construction_id, project_id, uploaded_at, created_at, updated_at`

// DocumentPostgres is a PostgreSQL implementation of
// repository.DocumentRepository. Parameterized queries only, no business
// logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + documentColumns

	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.OriginalName,
		doc.FileName,
		doc.StoragePath,
		doc.Size,
		doc.ContentType,
		string(doc.Category),
		doc.Version,
		nullString(doc.ConstructionID),
		nullString(doc.ProjectID),
		doc.UploadedAt,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByConstruction returns all documents attached to a construction.
func (r *DocumentPostgres) ListByConstruction(ctx context.Context, constructionID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE construction_id = $1
	`
	return r.list(ctx, q, constructionID)
}

// ListByProject returns all documents referencing a project, including those
// owned through a construction.
func (r *DocumentPostgres) ListByProject(ctx context.Context, projectID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE project_id = $1
	`
	return r.list(ctx, q, projectID)
}

// Delete removes a document by ID. Missing rows are not an error; the service
// layer verifies existence before deleting.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func (r *DocumentPostgres) list(ctx context.Context, q string, arg any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocumentRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row *sql.Row) (*model.Document, error) {
	return scanDocumentRow(row)
}

func scanDocumentRow(s rowScanner) (*model.Document, error) {
	var (
		d              model.Document
		category       string
		constructionID sql.NullString
		projectID      sql.NullString
	)
	if err := s.Scan(
		&d.ID,
		&d.OriginalName,
		&d.FileName,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&category,
		&d.Version,
		&constructionID,
		&projectID,
		&d.UploadedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.Category = model.Category(category)
	d.ConstructionID = constructionID.String
	d.ProjectID = projectID.String
	return &d, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
