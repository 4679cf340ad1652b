package http

import (
	"analytics-srv/internal/metric"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processMappingRequest(c *gin.Context) (mappingReq, model.Scope, error) {
	var req mappingReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "metric.delivery.http.processMappingRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processListRequest(c *gin.Context) (listMetricsReq, model.Scope, error) {
	var req listMetricsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "metric.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

// processEvaluateRequest accepts an empty body, which evaluates the default
// range at the current time.
func (h *handler) processEvaluateRequest(c *gin.Context) (metric.EvaluateInput, model.Scope, error) {
	var req evaluateReq

	ctx := c.Request.Context()
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "metric.delivery.http.processEvaluateRequest: ShouldBindJSON failed: %v", err)
			return metric.EvaluateInput{}, model.Scope{}, errWrongBody
		}
	}

	input, err := req.toInput(c.Param("id"))
	if err != nil {
		return metric.EvaluateInput{}, model.Scope{}, err
	}
	return input, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope) {
	return c.Param("id"), scope.GetScopeFromContext(c.Request.Context())
}
