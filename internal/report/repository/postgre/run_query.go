package postgre

import "analytics-srv/internal/report/repository"

const runColumns = "id, report_id, user_id, trigger, params_hash, status, error_message, run_at, files, widgets_count, generation_time_ms, completed_at, created_at, updated_at"

const (
	insertRunQuery = `INSERT INTO report_runs (id, report_id, user_id, trigger, params_hash, status, run_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + runColumns

	detailRunQuery = `SELECT ` + runColumns + ` FROM report_runs WHERE id = $1`

	findRunByParamsHashQuery = `SELECT ` + runColumns + ` FROM report_runs
WHERE params_hash = $1 AND status = $2 AND created_at >= $3
ORDER BY created_at DESC
LIMIT 1`

	countRunsQuery = `SELECT COUNT(*) FROM report_runs WHERE report_id = $1`

	completeRunQuery = `UPDATE report_runs SET status = $2, files = $3, widgets_count = $4, generation_time_ms = $5,
error_message = NULL, completed_at = $6, updated_at = $6
WHERE id = $1`

	failRunQuery = `UPDATE report_runs SET status = $2, error_message = $3, generation_time_ms = $4, updated_at = $5
WHERE id = $1`
)

func buildListRunsQuery(opts repository.ListRunsOptions) (string, []any) {
	query := "SELECT " + runColumns + " FROM report_runs WHERE report_id = $1 ORDER BY created_at DESC, id"
	return appendPaging(query, []any{opts.ReportID}, opts.Limit, opts.Offset)
}
