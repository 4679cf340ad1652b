package postgre

import (
	"fmt"

	"analytics-srv/internal/dashboard/repository"
)

const dashboardColumns = "id, name, description, widgets, is_default, created_by, created_at, updated_at"

const (
	insertDashboardQuery = `INSERT INTO dashboards (id, name, description, widgets, is_default, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + dashboardColumns

	detailDashboardQuery = `SELECT ` + dashboardColumns + ` FROM dashboards WHERE id = $1 AND deleted_at IS NULL`

	defaultDashboardQuery = `SELECT ` + dashboardColumns + ` FROM dashboards
WHERE created_by = $1 AND is_default AND deleted_at IS NULL
LIMIT 1`

	clearDefaultQuery = `UPDATE dashboards SET is_default = FALSE, updated_at = $3
WHERE created_by = $1 AND id <> $2 AND is_default AND deleted_at IS NULL`

	updateDashboardQuery = `UPDATE dashboards SET name = $2, description = $3, widgets = $4, is_default = $5, updated_at = $6
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + dashboardColumns

	deleteDashboardQuery = `UPDATE dashboards SET deleted_at = $2, is_default = FALSE WHERE id = $1 AND deleted_at IS NULL`
)

func buildFilterClause(opts repository.FilterOptions) (string, []any) {
	if opts.CreatedBy == "" {
		return " WHERE deleted_at IS NULL", nil
	}
	return " WHERE deleted_at IS NULL AND created_by = $1", []any{opts.CreatedBy}
}

func buildListQuery(opts repository.ListOptions) (string, []any) {
	where, args := buildFilterClause(opts.FilterOptions)
	query := "SELECT " + dashboardColumns + " FROM dashboards" + where + " ORDER BY is_default DESC, name, created_at"

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

func buildCountQuery(opts repository.FilterOptions) (string, []any) {
	where, args := buildFilterClause(opts)
	return "SELECT COUNT(*) FROM dashboards" + where, args
}
