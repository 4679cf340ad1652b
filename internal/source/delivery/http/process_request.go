package http

import (
	"analytics-srv/internal/model"
	"analytics-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (createSourceReq, model.Scope, error) {
	var req createSourceReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "source.delivery.http.processCreateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (updateSourceReq, model.Scope, error) {
	var req updateSourceReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "source.delivery.http.processUpdateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}
	req.ID = c.Param("id")

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processListRequest(c *gin.Context) (listSourcesReq, model.Scope, error) {
	var req listSourcesReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "source.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope) {
	return c.Param("id"), scope.GetScopeFromContext(c.Request.Context())
}
