package http

import (
	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create source
// @Description Register a marketing source with its custom metric fields
// @Tags Source
// @Accept json
// @Produce json
// @Param body body createSourceReq true "Source"
// @Success 201 {object} sourceResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/sources [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newSourceResp(s))
}

// @Summary List sources
// @Tags Source
// @Produce json
// @Param status query string false "active | inactive | hidden"
// @Param platform query string false "Platform tag"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listSourcesResp
// @Router /api/v1/sources [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListSourcesResp(o))
}

// @Summary Get source
// @Tags Source
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} sourceResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sources/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	s, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSourceResp(s))
}

// @Summary Update source
// @Description Replace name, platform, color, status and fields. Existing post metrics are not rewritten.
// @Tags Source
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Param body body updateSourceReq true "Source"
// @Success 200 {object} sourceResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sources/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSourceResp(s))
}

// @Summary Delete source
// @Tags Source
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sources/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
