package dashboard

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"
)

type CreateInput struct {
	Name        string
	Description string
	Widgets     []model.DashboardWidget
	IsDefault   bool
}

type UpdateInput struct {
	ID          string
	Name        string
	Description string
	Widgets     []model.DashboardWidget
	IsDefault   bool
}

type ListInput struct {
	Paginator paginator.PaginateQuery
}

type ListOutput struct {
	Dashboards []model.Dashboard
	Paginator  paginator.Paginator
}

// RenderInput selects the dashboard to render. A zero Now means the current time.
type RenderInput struct {
	ID  string
	Now time.Time
}

// WidgetResult is one rendered widget. Value is nil when the widget's metric
// could not be resolved, in which case Error says why.
type WidgetResult struct {
	WidgetID        string               `json:"widget_id"`
	Name            string               `json:"name"`
	Type            model.WidgetType     `json:"type"`
	MetricID        string               `json:"metric_id"`
	Value           *float64             `json:"value"`
	FormattedValue  string               `json:"formatted_value,omitempty"`
	Start           time.Time            `json:"start"`
	End             time.Time            `json:"end"`
	Fallback        bool                 `json:"fallback"`
	ComparisonValue *float64             `json:"comparison_value,omitempty"`
	PercentChange   *float64             `json:"percent_change,omitempty"`
	ComparisonLabel string               `json:"comparison_label,omitempty"`
	Layout          model.WidgetLayout   `json:"layout"`
	DisplayOptions  model.DisplayOptions `json:"display_options"`
	Error           string               `json:"error,omitempty"`
}

// RenderOutput is cached as JSON, so every field carries a tag.
type RenderOutput struct {
	DashboardID string         `json:"dashboard_id"`
	Name        string         `json:"name"`
	Day         model.Date     `json:"day"`
	Widgets     []WidgetResult `json:"widgets"`
	RenderedAt  time.Time      `json:"rendered_at"`
	CreatedBy   string         `json:"created_by,omitempty"`
	Cached      bool           `json:"-"`
}
