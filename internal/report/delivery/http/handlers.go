package http

import (
	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create report
// @Description Saves a report definition. A schedule makes the report run automatically and email its recipients.
// @Tags Report
// @Accept json
// @Produce json
// @Param body body reportReq true "Report"
// @Success 201 {object} reportResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	r, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newReportResp(r))
}

// @Summary List reports
// @Tags Report
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listReportsResp
// @Router /api/v1/reports [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, report.ListInput{Paginator: q})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(o))
}

// @Summary Get report
// @Tags Report
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} reportResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	r, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(r))
}

// @Summary Update report
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param body body reportReq true "Report"
// @Success 200 {object} reportResp
// @Failure 403 {object} response.Resp
// @Router /api/v1/reports/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	r, err := h.uc.Update(ctx, sc, req.toUpdateInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(r))
}

// @Summary Delete report
// @Tags Report
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/reports/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Generate report
// @Description Queues a run. When an identical run is still processing it is returned with existing=true.
// @Tags Report
// @Produce json
// @Param id path string true "Report ID"
// @Param now query string false "Evaluation instant (RFC 3339)"
// @Success 202 {object} generateResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{id}/generate [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processGenerateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Accepted(c, h.newGenerateResp(o))
}

// @Summary List runs of a report
// @Tags Report
// @Produce json
// @Param id path string true "Report ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listRunsResp
// @Router /api/v1/reports/{id}/runs [get]
func (h *handler) ListRuns(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListRuns(ctx, sc, report.ListRunsInput{ReportID: c.Param("id"), Paginator: q})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListRuns: usecase ListRuns failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListRunsResp(o))
}

// @Summary Get report run
// @Tags Report
// @Produce json
// @Param run_id path string true "Run ID"
// @Success 200 {object} runResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/runs/{run_id} [get]
func (h *handler) GetRun(c *gin.Context) {
	ctx := c.Request.Context()
	runID, sc := h.processRunIDRequest(c)

	run, err := h.uc.GetRun(ctx, sc, runID)
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.GetRun: usecase GetRun failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRunResp(run))
}

// @Summary Download report run
// @Description Returns a presigned URL for one rendered file of a completed run.
// @Tags Report
// @Produce json
// @Param run_id path string true "Run ID"
// @Param format query string false "csv or json; defaults to the first rendered file"
// @Success 200 {object} downloadResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/reports/runs/{run_id}/download [get]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()
	runID, sc := h.processRunIDRequest(c)

	o, err := h.uc.DownloadRun(ctx, sc, report.DownloadInput{
		RunID:  runID,
		Format: model.ReportFormat(c.Query("format")),
	})
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.Download: usecase DownloadRun failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDownloadResp(o))
}
