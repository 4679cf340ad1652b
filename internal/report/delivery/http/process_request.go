package http

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/paginator"
	"analytics-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processReportRequest(c *gin.Context) (reportReq, model.Scope, error) {
	var req reportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processReportRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processListRequest(c *gin.Context) (paginator.PaginateQuery, model.Scope, error) {
	var req paginator.PaginateQuery

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processGenerateRequest(c *gin.Context) (report.GenerateInput, model.Scope, error) {
	ctx := c.Request.Context()
	input := report.GenerateInput{ReportID: c.Param("id")}

	if raw := c.Query("now"); raw != "" {
		now, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.l.Warnf(ctx, "report.delivery.http.processGenerateRequest: invalid now %q", raw)
			return report.GenerateInput{}, model.Scope{}, errInvalidNow
		}
		input.Now = now
	}

	return input, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope) {
	return c.Param("id"), scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processRunIDRequest(c *gin.Context) (string, model.Scope) {
	return c.Param("run_id"), scope.GetScopeFromContext(c.Request.Context())
}
