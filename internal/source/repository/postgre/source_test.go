package postgre

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/source/repository"
	"analytics-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sourceCols = []string{"id", "name", "platform", "color", "status", "fields", "created_by", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &implRepository{db: db, l: log.NewNop()}, mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	fields := []byte(`[{"id":"likes","label":"Likes","type":"number"}]`)

	mock.ExpectQuery("INSERT INTO sources").
		WithArgs("s1", "Instagram", "instagram", "#ff0000", "active", fields, "u1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(sourceCols).
			AddRow("s1", "Instagram", "instagram", "#ff0000", "active", fields, "u1", now, now))

	s, err := repo.Create(context.Background(), repository.CreateOptions{
		ID:        "s1",
		Name:      "Instagram",
		Platform:  "instagram",
		Color:     "#ff0000",
		Status:    model.SourceStatusActive,
		Fields:    []model.Field{{ID: "likes", Label: "Likes", Type: model.FieldTypeNumber}},
		CreatedBy: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, model.SourceStatusActive, s.Status)
	require.Len(t, s.Fields, 1)
	assert.Equal(t, model.FieldTypeNumber, s.Fields[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetail_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM sources WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrSourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_WithFilters(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("FROM sources WHERE deleted_at IS NULL AND status = \\$1 AND platform = \\$2 ORDER BY created_at DESC LIMIT \\$3 OFFSET \\$4").
		WithArgs("active", "tiktok", int64(10), int64(20)).
		WillReturnRows(sqlmock.NewRows(sourceCols).
			AddRow("s1", "TikTok", "tiktok", "", "active", []byte(`[]`), "u1", now, now).
			AddRow("s2", "TikTok 2", "tiktok", "", "active", nil, "u1", now, now))

	sources, err := repo.List(context.Background(), repository.ListOptions{
		FilterOptions: repository.FilterOptions{Status: model.SourceStatusActive, Platform: "tiktok"},
		Limit:         10,
		Offset:        20,
	})
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Empty(t, sources[1].Fields)
	assert.NotNil(t, sources[1].Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM sources WHERE deleted_at IS NULL$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.Count(context.Background(), repository.FilterOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIDs_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	sources, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, sources)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE sources SET deleted_at").
		WithArgs("s1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE sources SET deleted_at").
		WithArgs("s2", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "s1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "s2"), repository.ErrSourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
