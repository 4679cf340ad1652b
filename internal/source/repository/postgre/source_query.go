package postgre

import (
	"fmt"
	"strings"

	"analytics-srv/internal/source/repository"

	"github.com/lib/pq"
)

const sourceColumns = "id, name, platform, color, status, fields, created_by, created_at, updated_at"

const (
	insertSourceQuery = `INSERT INTO sources (id, name, platform, color, status, fields, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + sourceColumns

	detailSourceQuery = `SELECT ` + sourceColumns + ` FROM sources WHERE id = $1 AND deleted_at IS NULL`

	updateSourceQuery = `UPDATE sources SET name = $2, platform = $3, color = $4, status = $5, fields = $6, updated_at = $7
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + sourceColumns

	deleteSourceQuery = `UPDATE sources SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`
)

// buildFilterClause renders the WHERE clause shared by List and Count.
func buildFilterClause(opts repository.FilterOptions) (string, []any) {
	conds := []string{"deleted_at IS NULL"}
	args := []any{}

	if opts.Status != "" {
		args = append(args, string(opts.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if opts.Platform != "" {
		args = append(args, opts.Platform)
		conds = append(conds, fmt.Sprintf("platform = $%d", len(args)))
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildListQuery(opts repository.ListOptions) (string, []any) {
	where, args := buildFilterClause(opts.FilterOptions)
	query := "SELECT " + sourceColumns + " FROM sources" + where + " ORDER BY created_at DESC"

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
	return "SELECT COUNT(*) FROM sources" + where, args
}

func buildListByIDsQuery(ids []string) (string, []any) {
	return "SELECT " + sourceColumns + " FROM sources WHERE id = ANY($1) AND deleted_at IS NULL ORDER BY created_at",
		[]any{pq.Array(ids)}
}
