package http

import (
	"time"

	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"
)

type widgetReq struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Type            string               `json:"type" binding:"required"`
	Metrics         []string             `json:"metrics" binding:"required,min=1"`
	TimeRange       string               `json:"time_range" binding:"required"`
	CustomTimeRange *model.DateRange     `json:"custom_time_range"`
	Filters         []model.WidgetFilter `json:"filters"`
	Layout          model.WidgetLayout   `json:"layout"`
	DisplayOptions  model.DisplayOptions `json:"display_options"`
}

type dashboardReq struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Widgets     []widgetReq `json:"widgets" binding:"dive"`
	IsDefault   bool        `json:"is_default"`
}

func (r dashboardReq) widgets() []model.DashboardWidget {
	out := make([]model.DashboardWidget, 0, len(r.Widgets))
	for _, w := range r.Widgets {
		out = append(out, model.DashboardWidget{
			ID:              w.ID,
			Name:            w.Name,
			Type:            model.WidgetType(w.Type),
			Metrics:         w.Metrics,
			TimeRange:       model.TimeRange(w.TimeRange),
			CustomTimeRange: w.CustomTimeRange,
			Filters:         w.Filters,
			Layout:          w.Layout,
			DisplayOptions:  w.DisplayOptions,
		})
	}
	return out
}

func (r dashboardReq) toCreateInput() dashboard.CreateInput {
	return dashboard.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Widgets:     r.widgets(),
		IsDefault:   r.IsDefault,
	}
}

func (r dashboardReq) toUpdateInput(id string) dashboard.UpdateInput {
	return dashboard.UpdateInput{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Widgets:     r.widgets(),
		IsDefault:   r.IsDefault,
	}
}

type dashboardResp struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Widgets     []model.DashboardWidget `json:"widgets"`
	IsDefault   bool                    `json:"is_default"`
	CreatedBy   string                  `json:"created_by"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

type listDashboardsResp struct {
	Dashboards []dashboardResp             `json:"dashboards"`
	Paginator  paginator.PaginatorResponse `json:"paginator"`
}

type renderResp struct {
	DashboardID string                   `json:"dashboard_id"`
	Name        string                   `json:"name"`
	Day         string                   `json:"day"`
	RenderedAt  string                   `json:"rendered_at"`
	Cached      bool                     `json:"cached"`
	Widgets     []dashboard.WidgetResult `json:"widgets"`
}

func (h *handler) newDashboardResp(d model.Dashboard) dashboardResp {
	widgets := d.Widgets
	if widgets == nil {
		widgets = []model.DashboardWidget{}
	}
	return dashboardResp{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Widgets:     widgets,
		IsDefault:   d.IsDefault,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   d.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListDashboardsResp(o dashboard.ListOutput) listDashboardsResp {
	items := make([]dashboardResp, 0, len(o.Dashboards))
	for _, d := range o.Dashboards {
		items = append(items, h.newDashboardResp(d))
	}
	return listDashboardsResp{
		Dashboards: items,
		Paginator:  o.Paginator.ToResponse(),
	}
}

func (h *handler) newRenderResp(o dashboard.RenderOutput) renderResp {
	widgets := o.Widgets
	if widgets == nil {
		widgets = []dashboard.WidgetResult{}
	}
	return renderResp{
		DashboardID: o.DashboardID,
		Name:        o.Name,
		Day:         o.Day.String(),
		RenderedAt:  o.RenderedAt.Format(time.RFC3339),
		Cached:      o.Cached,
		Widgets:     widgets,
	}
}
