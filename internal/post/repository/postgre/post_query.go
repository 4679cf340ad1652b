package postgre

import (
	"fmt"
	"strings"

	"analytics-srv/internal/post/repository"

	"github.com/lib/pq"
)

const postColumns = "id, title, source_id, post_date, status, content, metrics, created_by, created_at, updated_at"

const (
	insertPostQuery = `INSERT INTO posts (id, title, source_id, post_date, status, content, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + postColumns

	detailPostQuery = `SELECT ` + postColumns + ` FROM posts WHERE id = $1 AND deleted_at IS NULL`

	updatePostQuery = `UPDATE posts SET title = $2, source_id = $3, post_date = $4, content = $5, updated_at = $6
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + postColumns

	updatePostStatusQuery = `UPDATE posts SET status = $2, updated_at = $3
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + postColumns

	updatePostMetricsQuery = `UPDATE posts SET metrics = $2, status = $3, updated_at = $4
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + postColumns

	deletePostQuery = `UPDATE posts SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + postColumns
)

func buildFilterClause(opts repository.FilterOptions) (string, []any) {
	conds := []string{"deleted_at IS NULL"}
	args := []any{}

	if opts.SourceID != "" {
		args = append(args, opts.SourceID)
		conds = append(conds, fmt.Sprintf("source_id = $%d", len(args)))
	}
	if opts.Status != "" {
		args = append(args, string(opts.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if !opts.From.IsZero() {
		args = append(args, opts.From.String())
		conds = append(conds, fmt.Sprintf("post_date >= $%d", len(args)))
	}
	if !opts.To.IsZero() {
		args = append(args, opts.To.String())
		conds = append(conds, fmt.Sprintf("post_date <= $%d", len(args)))
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildListQuery(opts repository.ListOptions) (string, []any) {
	where, args := buildFilterClause(opts.FilterOptions)
	query := "SELECT " + postColumns + " FROM posts" + where + " ORDER BY post_date DESC, created_at DESC"

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
	return "SELECT COUNT(*) FROM posts" + where, args
}

// buildEvaluationQuery loads every post of the given sources in the date
// window. Status and metric presence are left to the engine.
func buildEvaluationQuery(opts repository.EvaluationOptions) (string, []any) {
	return "SELECT " + postColumns + " FROM posts" +
			" WHERE deleted_at IS NULL AND source_id = ANY($1) AND post_date >= $2 AND post_date <= $3" +
			" ORDER BY post_date",
		[]any{pq.Array(opts.SourceIDs), opts.From.String(), opts.To.String()}
}
