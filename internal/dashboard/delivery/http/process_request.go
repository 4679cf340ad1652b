package http

import (
	"time"

	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"
	"analytics-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processDashboardRequest(c *gin.Context) (dashboardReq, model.Scope, error) {
	var req dashboardReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.processDashboardRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processListRequest(c *gin.Context) (paginator.PaginateQuery, model.Scope, error) {
	var req paginator.PaginateQuery

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processRenderRequest(c *gin.Context) (dashboard.RenderInput, model.Scope, error) {
	ctx := c.Request.Context()
	input := dashboard.RenderInput{ID: c.Param("id")}

	if raw := c.Query("now"); raw != "" {
		now, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.l.Warnf(ctx, "dashboard.delivery.http.processRenderRequest: invalid now %q", raw)
			return dashboard.RenderInput{}, model.Scope{}, errInvalidNow
		}
		input.Now = now
	}

	return input, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope) {
	return c.Param("id"), scope.GetScopeFromContext(c.Request.Context())
}
