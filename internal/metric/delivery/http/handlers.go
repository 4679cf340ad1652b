package http

import (
	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create metric mapping
// @Description Combine source fields with sum, average, count, min, max, latest or a custom formula
// @Tags Metric
// @Accept json
// @Produce json
// @Param body body mappingReq true "Metric mapping"
// @Success 201 {object} mappingResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/metrics [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMappingRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	m, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "metric.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newMappingResp(m))
}

// @Summary List metric mappings
// @Tags Metric
// @Produce json
// @Param calculation_type query string false "Calculation type"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listMetricsResp
// @Router /api/v1/metrics [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "metric.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListMetricsResp(o))
}

// @Summary Get metric mapping
// @Tags Metric
// @Produce json
// @Param id path string true "Metric ID"
// @Success 200 {object} mappingResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/metrics/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	m, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "metric.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newMappingResp(m))
}

// @Summary Update metric mapping
// @Tags Metric
// @Accept json
// @Produce json
// @Param id path string true "Metric ID"
// @Param body body mappingReq true "Metric mapping"
// @Success 200 {object} mappingResp
// @Router /api/v1/metrics/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMappingRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	m, err := h.uc.Update(ctx, sc, req.toUpdateInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "metric.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newMappingResp(m))
}

// @Summary Delete metric mapping
// @Tags Metric
// @Produce json
// @Param id path string true "Metric ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/metrics/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "metric.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Evaluate metric mapping
// @Description Computes the metric over a time range, optionally against a comparison range. Unknown ranges fall back to this-month.
// @Tags Metric
// @Accept json
// @Produce json
// @Param id path string true "Metric ID"
// @Param body body evaluateReq false "Ranges"
// @Success 200 {object} evaluateResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/metrics/{id}/evaluate [post]
func (h *handler) Evaluate(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processEvaluateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Evaluate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "metric.delivery.http.Evaluate: usecase Evaluate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newEvaluateResp(o))
}
