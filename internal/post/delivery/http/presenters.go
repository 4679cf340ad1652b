package http

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/pkg/paginator"
)

type createPostReq struct {
	Title    string `json:"title" binding:"required"`
	SourceID string `json:"source_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Status   string `json:"status"`
	Content  string `json:"content"`
}

func (r createPostReq) toInput() post.CreateInput {
	return post.CreateInput{
		Title:    r.Title,
		SourceID: r.SourceID,
		Date:     r.Date,
		Status:   model.PostStatus(r.Status),
		Content:  r.Content,
	}
}

type updatePostReq struct {
	ID       string `json:"-"`
	Title    string `json:"title" binding:"required"`
	SourceID string `json:"source_id"`
	Date     string `json:"date" binding:"required"`
	Content  string `json:"content"`
}

func (r updatePostReq) toInput() post.UpdateInput {
	return post.UpdateInput{
		ID:       r.ID,
		Title:    r.Title,
		SourceID: r.SourceID,
		Date:     r.Date,
		Content:  r.Content,
	}
}

type updateStatusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) toInput() post.UpdateStatusInput {
	return post.UpdateStatusInput{ID: r.ID, Status: model.PostStatus(r.Status)}
}

type recordMetricsReq struct {
	ID      string         `json:"-"`
	Metrics map[string]any `json:"metrics" binding:"required"`
}

func (r recordMetricsReq) toInput() post.RecordMetricsInput {
	return post.RecordMetricsInput{ID: r.ID, Values: r.Metrics}
}

type listPostsReq struct {
	SourceID string `form:"source_id"`
	Status   string `form:"status"`
	From     string `form:"from"`
	To       string `form:"to"`
	paginator.PaginateQuery
}

func (r listPostsReq) toInput() post.ListInput {
	return post.ListInput{
		SourceID:  r.SourceID,
		Status:    model.PostStatus(r.Status),
		From:      r.From,
		To:        r.To,
		Paginator: r.PaginateQuery,
	}
}

type postResp struct {
	ID        string                       `json:"id"`
	Title     string                       `json:"title"`
	SourceID  string                       `json:"source_id"`
	Date      string                       `json:"date"`
	Status    string                       `json:"status"`
	Content   string                       `json:"content,omitempty"`
	Metrics   map[string]model.MetricValue `json:"metrics,omitempty"`
	CreatedBy string                       `json:"created_by"`
	CreatedAt string                       `json:"created_at"`
	UpdatedAt string                       `json:"updated_at"`
}

type listPostsResp struct {
	Posts     []postResp                  `json:"posts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newPostResp(p model.Post) postResp {
	return postResp{
		ID:        p.ID,
		Title:     p.Title,
		SourceID:  p.SourceID,
		Date:      p.Date.String(),
		Status:    string(p.Status),
		Content:   p.Content,
		Metrics:   p.Metrics,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListPostsResp(o post.ListOutput) listPostsResp {
	items := make([]postResp, 0, len(o.Posts))
	for _, p := range o.Posts {
		items = append(items, h.newPostResp(p))
	}
	return listPostsResp{
		Posts:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
