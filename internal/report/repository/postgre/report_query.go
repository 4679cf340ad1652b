package postgre

import (
	"fmt"

	"analytics-srv/internal/report/repository"
)

const reportColumns = "id, name, description, widgets, time_range, formats, schedule, next_run_at, created_by, created_at, updated_at"

const (
	insertReportQuery = `INSERT INTO reports (id, name, description, widgets, time_range, formats, schedule, next_run_at, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + reportColumns

	detailReportQuery = `SELECT ` + reportColumns + ` FROM reports WHERE id = $1 AND deleted_at IS NULL`

	updateReportQuery = `UPDATE reports SET name = $2, description = $3, widgets = $4, time_range = $5, formats = $6,
schedule = $7, next_run_at = $8, updated_at = $9
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + reportColumns

	deleteReportQuery = `UPDATE reports SET deleted_at = $2, next_run_at = NULL WHERE id = $1 AND deleted_at IS NULL`

	listDueReportsQuery = `SELECT ` + reportColumns + ` FROM reports
WHERE deleted_at IS NULL AND schedule IS NOT NULL AND next_run_at IS NOT NULL AND next_run_at <= $1
ORDER BY next_run_at
LIMIT $2`

	advanceNextRunQuery = `UPDATE reports SET next_run_at = $3
WHERE id = $1 AND next_run_at = $2 AND deleted_at IS NULL`
)

func buildFilterClause(opts repository.FilterOptions) (string, []any) {
	if opts.CreatedBy == "" {
		return " WHERE deleted_at IS NULL", nil
	}
	return " WHERE deleted_at IS NULL AND created_by = $1", []any{opts.CreatedBy}
}

func buildListQuery(opts repository.ListOptions) (string, []any) {
	where, args := buildFilterClause(opts.FilterOptions)
	query := "SELECT " + reportColumns + " FROM reports" + where + " ORDER BY created_at DESC, id"
	return appendPaging(query, args, opts.Limit, opts.Offset)
}

func buildCountQuery(opts repository.FilterOptions) (string, []any) {
	where, args := buildFilterClause(opts)
	return "SELECT COUNT(*) FROM reports" + where, args
}

func appendPaging(query string, args []any, limit, offset int64) (string, []any) {
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}
