package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructdocs/internal/model"
)

var constructionCols = []string{"id", "name", "project_id", "created_at", "updated_at"}

func TestConstructionPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConstructionPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	con := &model.Construction{
		ID:        "con-1",
		Name:      "Block A",
		ProjectID: "proj-1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	rows := sqlmock.NewRows(constructionCols).
		AddRow(con.ID, con.Name, con.ProjectID, con.CreatedAt, con.UpdatedAt)

	mock.ExpectQuery("INSERT INTO constructions").
		WithArgs(con.ID, con.Name, con.ProjectID, con.CreatedAt, con.UpdatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, con)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Block A", result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConstructionPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConstructionPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(constructionCols).
			AddRow("con-1", "Block A", "proj-1", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM constructions").
			WithArgs("con-1").
			WillReturnRows(rows)

		con, err := repo.FindByID(ctx, "con-1")

		assert.NoError(t, err)
		require.NotNil(t, con)
		assert.Equal(t, "con-1", con.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM constructions").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		con, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, con)
	})
}

func TestConstructionPostgres_ListByProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConstructionPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(constructionCols).
		AddRow("con-1", "Block A", "proj-1", time.Now(), time.Now()).
		AddRow("con-2", "Block B", "proj-1", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM constructions").
		WithArgs("proj-1").
		WillReturnRows(rows)

	items, err := repo.ListByProject(ctx, "proj-1")

	assert.NoError(t, err)
	assert.Len(t, items, 2)
}
