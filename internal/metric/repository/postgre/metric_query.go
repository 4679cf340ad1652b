package postgre

import (
	"fmt"

	"analytics-srv/internal/metric/repository"

	"github.com/lib/pq"
)

const metricColumns = "id, name, source_metrics, calculation_type, custom_formula, created_by, created_at, updated_at"

const (
	insertMetricQuery = `INSERT INTO metric_mappings (id, name, source_metrics, calculation_type, custom_formula, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + metricColumns

	detailMetricQuery = `SELECT ` + metricColumns + ` FROM metric_mappings WHERE id = $1 AND deleted_at IS NULL`

	updateMetricQuery = `UPDATE metric_mappings SET name = $2, source_metrics = $3, calculation_type = $4, custom_formula = $5, updated_at = $6
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + metricColumns

	deleteMetricQuery = `UPDATE metric_mappings SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`
)

func buildFilterClause(opts repository.FilterOptions) (string, []any) {
	if opts.CalculationType == "" {
		return " WHERE deleted_at IS NULL", nil
	}
	return " WHERE deleted_at IS NULL AND calculation_type = $1", []any{string(opts.CalculationType)}
}

func buildListQuery(opts repository.ListOptions) (string, []any) {
	where, args := buildFilterClause(opts.FilterOptions)
	query := "SELECT " + metricColumns + " FROM metric_mappings" + where + " ORDER BY name, created_at"

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
	return "SELECT COUNT(*) FROM metric_mappings" + where, args
}

func buildListByIDsQuery(ids []string) (string, []any) {
	return "SELECT " + metricColumns + " FROM metric_mappings WHERE id = ANY($1) AND deleted_at IS NULL",
		[]any{pq.Array(ids)}
}
