package http

import (
	"analytics-srv/internal/model"
	"analytics-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// bindJSON binds the body into req and logs binding failures under op.
func (h *handler) bindJSON(c *gin.Context, op string, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		h.l.Errorf(c.Request.Context(), "post.delivery.http.%s: ShouldBindJSON failed: %v", op, err)
		return errWrongBody
	}
	return nil
}

func (h *handler) processCreateRequest(c *gin.Context) (createPostReq, model.Scope, error) {
	var req createPostReq
	if err := h.bindJSON(c, "processCreateRequest", &req); err != nil {
		return req, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (updatePostReq, model.Scope, error) {
	var req updatePostReq
	if err := h.bindJSON(c, "processUpdateRequest", &req); err != nil {
		return req, model.Scope{}, err
	}
	req.ID = c.Param("id")
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processUpdateStatusRequest(c *gin.Context) (updateStatusReq, model.Scope, error) {
	var req updateStatusReq
	if err := h.bindJSON(c, "processUpdateStatusRequest", &req); err != nil {
		return req, model.Scope{}, err
	}
	req.ID = c.Param("id")
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processRecordMetricsRequest(c *gin.Context) (recordMetricsReq, model.Scope, error) {
	var req recordMetricsReq
	if err := h.bindJSON(c, "processRecordMetricsRequest", &req); err != nil {
		return req, model.Scope{}, err
	}
	req.ID = c.Param("id")
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processListRequest(c *gin.Context) (listPostsReq, model.Scope, error) {
	var req listPostsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "post.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope) {
	return c.Param("id"), scope.GetScopeFromContext(c.Request.Context())
}
