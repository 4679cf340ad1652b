package http

import (
	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create post
// @Tags Post
// @Accept json
// @Produce json
// @Param body body createPostReq true "Post"
// @Success 201 {object} postResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/posts [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	p, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newPostResp(p))
}

// @Summary List posts
// @Tags Post
// @Produce json
// @Param source_id query string false "Source ID"
// @Param status query string false "draft | scheduled | published | completed"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listPostsResp
// @Router /api/v1/posts [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPostsResp(o))
}

// @Summary Get post
// @Tags Post
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} postResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/posts/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	p, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPostResp(p))
}

// @Summary Update post
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param body body updatePostReq true "Post"
// @Success 200 {object} postResp
// @Router /api/v1/posts/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	p, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPostResp(p))
}

// @Summary Change post status
// @Description Statuses only move forward: draft, scheduled, published, completed.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param body body updateStatusReq true "Status"
// @Success 200 {object} postResp
// @Failure 409 {object} response.Resp
// @Router /api/v1/posts/{id}/status [patch]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateStatusRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	p, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.UpdateStatus: usecase UpdateStatus failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPostResp(p))
}

// @Summary Record post metrics
// @Description Replaces the post's metrics, keyed by source field id, and marks it completed.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param body body recordMetricsReq true "Metrics"
// @Success 200 {object} postResp
// @Router /api/v1/posts/{id}/metrics [put]
func (h *handler) RecordMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRecordMetricsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	p, err := h.uc.RecordMetrics(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.RecordMetrics: usecase RecordMetrics failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPostResp(p))
}

// @Summary Delete post
// @Tags Post
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/posts/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, sc := h.processIDRequest(c)

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
