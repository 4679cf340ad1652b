package http

import (
	"analytics-srv/internal/dashboard"
	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create dashboard
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body dashboardReq true "Dashboard"
// @Success 201 {object} dashboardResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboards [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDashboardRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	d, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newDashboardResp(d))
}

// @Summary List dashboards
// @Description Lists the caller's dashboards, default first. Admins see every dashboard.
// @Tags Dashboard
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listDashboardsResp
// @Router /api/v1/dashboards [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, dashboard.ListInput{Paginator: q})
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListDashboardsResp(o))
}

// @Summary Get the caller's default dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboardResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/dashboards/default [get]
func (h *handler) Default(c *gin.Context) {
	ctx := c.Request.Context()
	_, sc := h.processIDRequest(c)

	d, err := h.uc.Default(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.Default: usecase Default failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDashboardResp(d))
}

// @Summary Get dashboard
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dashboard ID"
// @Success 200 {object} dashboardResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/dashboards/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	d, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDashboardResp(d))
}

// @Summary Update dashboard
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param id path string true "Dashboard ID"
// @Param body body dashboardReq true "Dashboard"
// @Success 200 {object} dashboardResp
// @Router /api/v1/dashboards/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDashboardRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	d, err := h.uc.Update(ctx, sc, req.toUpdateInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDashboardResp(d))
}

// @Summary Delete dashboard
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dashboard ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/dashboards/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Render dashboard
// @Description Evaluates every widget. Widgets whose metric no longer exists carry a null value and an error.
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dashboard ID"
// @Param now query string false "Evaluation instant (RFC 3339)"
// @Success 200 {object} renderResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/dashboards/{id}/render [get]
func (h *handler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processRenderRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Render(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Render: usecase Render failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRenderResp(o))
}
