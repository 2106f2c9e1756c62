package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructdocs/internal/model"
)

var documentCols = []string{
	"id", "original_name", "file_name", "storage_path", "size", "content_type",
	"category", "version", "construction_id", "project_id",
	"uploaded_at", "created_at", "updated_at",
}

func addDocumentRow(rows *sqlmock.Rows, d model.Document) *sqlmock.Rows {
	return rows.AddRow(
		d.ID, d.OriginalName, d.FileName, d.StoragePath, d.Size, d.ContentType,
		string(d.Category), d.Version, d.ConstructionID, d.ProjectID,
		d.UploadedAt, d.CreatedAt, d.UpdatedAt,
	)
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:             "test-uuid",
		OriginalName:   "plan.pdf",
		FileName:       "gen-uuid.pdf",
		StoragePath:    "documents/con-1/gen-uuid.pdf",
		Size:           123,
		ContentType:    "application/pdf",
		Category:       model.CategoryWorkingDocumentation,
		Version:        2,
		ConstructionID: "con-1",
		ProjectID:      "proj-1",
		UploadedAt:     now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	rows := addDocumentRow(sqlmock.NewRows(documentCols), *doc)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(
			doc.ID, doc.OriginalName, doc.FileName, doc.StoragePath, doc.Size,
			doc.ContentType, string(doc.Category), doc.Version,
			sql.NullString{String: doc.ConstructionID, Valid: true},
			sql.NullString{String: doc.ProjectID, Valid: true},
			doc.UploadedAt, doc.CreatedAt, doc.UpdatedAt,
		).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, 2, result.Version)
	assert.Equal(t, model.CategoryWorkingDocumentation, result.Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := addDocumentRow(sqlmock.NewRows(documentCols), model.Document{
			ID:             "doc-1",
			Category:       model.CategoryProjectDocumentation,
			Version:        3,
			ConstructionID: "con-1",
			ProjectID:      "proj-1",
		})

		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("doc-1").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "doc-1")

		assert.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "doc-1", doc.ID)
		assert.Equal(t, "con-1", doc.ConstructionID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_ListByConstruction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("returns all rows for the construction", func(t *testing.T) {
		rows := sqlmock.NewRows(documentCols)
		addDocumentRow(rows, model.Document{ID: "a", Version: 2, ConstructionID: "con-1"})
		addDocumentRow(rows, model.Document{ID: "b", Version: 1, ConstructionID: "con-1"})

		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("con-1").
			WillReturnRows(rows)

		docs, err := repo.ListByConstruction(ctx, "con-1")

		assert.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("con-2").
			WillReturnRows(sqlmock.NewRows(documentCols))

		docs, err := repo.ListByConstruction(ctx, "con-2")

		assert.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("con-3").
			WillReturnError(errors.New("query failed"))

		_, err := repo.ListByConstruction(ctx, "con-3")

		assert.Error(t, err)
	})
}

func TestDocumentPostgres_ListByProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(documentCols)
	addDocumentRow(rows, model.Document{ID: "a", Version: 1, ProjectID: "proj-1"})

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("proj-1").
		WillReturnRows(rows)

	docs, err := repo.ListByProject(ctx, "proj-1")

	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "proj-1", docs[0].ProjectID)
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents").
			WithArgs("doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "doc-1"))
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "missing"))
	})
}
