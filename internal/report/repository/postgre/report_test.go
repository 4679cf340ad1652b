package postgre

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportCols = []string{"id", "name", "description", "widgets", "time_range", "formats", "schedule", "next_run_at", "created_by", "created_at", "updated_at"}

var runCols = []string{"id", "report_id", "user_id", "trigger", "params_hash", "status", "error_message", "run_at", "files", "widgets_count", "generation_time_ms", "completed_at", "created_at", "updated_at"}

const (
	reportWidgetsJSON = `[{"id":"w1","type":"metric","title":"Clicks","metric_id":"m1"},{"id":"w2","type":"chart","title":"Mix","metric_ids":["m1","m2"]}]`
	scheduleJSON      = `{"frequency":"weekly","day":1,"time":"08:00","recipients":["ops@example.com"]}`
)

func newMockRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &implRepository{db: db, l: log.NewNop()}, mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	next := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO reports").
		WithArgs("r1", "Weekly", nil, sqlmock.AnyArg(), model.TimeRangeLastWeek, sqlmock.AnyArg(),
			sqlmock.AnyArg(), next, "u1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow("r1", "Weekly", nil, []byte(reportWidgetsJSON), "last-week", []byte("{csv,json}"),
				[]byte(scheduleJSON), next, "u1", now, now))

	rpt, err := repo.Create(context.Background(), repository.CreateOptions{
		ID:        "r1",
		Name:      "Weekly",
		TimeRange: model.TimeRangeLastWeek,
		Formats:   []model.ReportFormat{model.ReportFormatCSV, model.ReportFormatJSON},
		Schedule:  &model.ReportSchedule{Frequency: model.FrequencyWeekly, Day: 1, Time: "08:00"},
		NextRunAt: &next,
		CreatedBy: "u1",
	})
	require.NoError(t, err)

	require.Len(t, rpt.Widgets, 2)
	assert.Equal(t, []string{"m1", "m2"}, rpt.Widgets[1].MetricRefs())
	assert.Equal(t, []model.ReportFormat{model.ReportFormatCSV, model.ReportFormatJSON}, rpt.Formats)
	require.NotNil(t, rpt.Schedule)
	assert.Equal(t, []string{"ops@example.com"}, rpt.Schedule.Recipients)
	require.NotNil(t, rpt.NextRunAt)
	assert.True(t, next.Equal(*rpt.NextRunAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Fails(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO reports").WillReturnError(errors.New("duplicate key"))

	_, err := repo.Create(context.Background(), repository.CreateOptions{ID: "r1", Name: "x"})
	assert.ErrorIs(t, err, repository.ErrReportCreateFailed)
}

func TestDetail_WithoutSchedule(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery("FROM reports WHERE id = \\$1 AND deleted_at IS NULL").
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow("r1", "Adhoc", "desc", []byte(`[]`), "this-month", []byte("{}"), nil, nil, "u1", now, now))

	rpt, err := repo.Detail(context.Background(), "r1")
	require.NoError(t, err)
	assert.Nil(t, rpt.Schedule)
	assert.Nil(t, rpt.NextRunAt)
	assert.Equal(t, "desc", rpt.Description)
	assert.Empty(t, rpt.Formats)
	assert.NotNil(t, rpt.Widgets)
}

func TestDetail_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM reports WHERE id").WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Detail(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrReportNotFound)
}

func TestList_AllOwners(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery("FROM reports WHERE deleted_at IS NULL ORDER BY created_at DESC, id LIMIT \\$1$").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow("r1", "A", nil, []byte(`[]`), "today", []byte("{csv}"), nil, nil, "u1", now, now))

	rs, err := repo.List(context.Background(), repository.ListOptions{Limit: 5})
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_ByOwner(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reports WHERE deleted_at IS NULL AND created_by = \\$1").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background(), repository.FilterOptions{CreatedBy: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("UPDATE reports SET name").WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), repository.UpdateOptions{ID: "r9", Name: "x"})
	assert.ErrorIs(t, err, repository.ErrReportNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE reports SET deleted_at").
		WithArgs("r9", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "r9"), repository.ErrReportNotFound)
}

func TestListDue(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("next_run_at <= \\$1").
		WithArgs(now, 100).
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow("r1", "Weekly", nil, []byte(reportWidgetsJSON), "last-week", []byte("{csv}"),
				[]byte(scheduleJSON), now, "u1", now, now))

	rs, err := repo.ListDue(context.Background(), repository.ListDueOptions{Now: now})
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, model.FrequencyWeekly, rs[0].Schedule.Frequency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvanceNextRun(t *testing.T) {
	prev := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	next := prev.AddDate(0, 0, 7)

	t.Run("claimed", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("UPDATE reports SET next_run_at = \\$3").
			WithArgs("r1", prev, next).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.AdvanceNextRun(context.Background(), repository.AdvanceNextRunOptions{ID: "r1", Previous: prev, Next: &next})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lost race", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("UPDATE reports SET next_run_at = \\$3").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.AdvanceNextRun(context.Background(), repository.AdvanceNextRunOptions{ID: "r1", Previous: prev, Next: &next})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
