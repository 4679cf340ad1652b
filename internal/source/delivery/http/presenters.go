package http

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/source"
	"analytics-srv/pkg/paginator"
)

type fieldReq struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type" binding:"required"`
}

type createSourceReq struct {
	Name     string     `json:"name" binding:"required"`
	Platform string     `json:"platform"`
	Color    string     `json:"color"`
	Status   string     `json:"status"`
	Fields   []fieldReq `json:"fields" binding:"dive"`
}

func toFieldInputs(fields []fieldReq) []source.FieldInput {
	out := make([]source.FieldInput, 0, len(fields))
	for _, f := range fields {
		out = append(out, source.FieldInput{ID: f.ID, Label: f.Label, Type: model.FieldType(f.Type)})
	}
	return out
}

func (r createSourceReq) toInput() source.CreateInput {
	return source.CreateInput{
		Name:     r.Name,
		Platform: r.Platform,
		Color:    r.Color,
		Status:   model.SourceStatus(r.Status),
		Fields:   toFieldInputs(r.Fields),
	}
}

type updateSourceReq struct {
	ID       string     `json:"-"`
	Name     string     `json:"name" binding:"required"`
	Platform string     `json:"platform"`
	Color    string     `json:"color"`
	Status   string     `json:"status" binding:"required"`
	Fields   []fieldReq `json:"fields" binding:"dive"`
}

func (r updateSourceReq) toInput() source.UpdateInput {
	return source.UpdateInput{
		ID:       r.ID,
		Name:     r.Name,
		Platform: r.Platform,
		Color:    r.Color,
		Status:   model.SourceStatus(r.Status),
		Fields:   toFieldInputs(r.Fields),
	}
}

type listSourcesReq struct {
	Status   string `form:"status"`
	Platform string `form:"platform"`
	paginator.PaginateQuery
}

func (r listSourcesReq) toInput() source.ListInput {
	return source.ListInput{
		Status:    model.SourceStatus(r.Status),
		Platform:  r.Platform,
		Paginator: r.PaginateQuery,
	}
}

type fieldResp struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type sourceResp struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Platform  string      `json:"platform"`
	Color     string      `json:"color"`
	Status    string      `json:"status"`
	Fields    []fieldResp `json:"fields"`
	CreatedBy string      `json:"created_by"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

type listSourcesResp struct {
	Sources   []sourceResp                `json:"sources"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newSourceResp(s model.Source) sourceResp {
	fields := make([]fieldResp, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, fieldResp{ID: f.ID, Label: f.Label, Type: string(f.Type)})
	}
	return sourceResp{
		ID:        s.ID,
		Name:      s.Name,
		Platform:  s.Platform,
		Color:     s.Color,
		Status:    string(s.Status),
		Fields:    fields,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListSourcesResp(o source.ListOutput) listSourcesResp {
	items := make([]sourceResp, 0, len(o.Sources))
	for _, s := range o.Sources {
		items = append(items, h.newSourceResp(s))
	}
	return listSourcesResp{
		Sources:   items,
		Paginator: o.Paginator.ToResponse(),
	}
}
