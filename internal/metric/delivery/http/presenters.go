package http

import (
	"time"

	"analytics-srv/internal/metric"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"
)

type sourceMetricReq struct {
	SourceID string `json:"source_id" binding:"required"`
	FieldID  string `json:"field_id" binding:"required"`
}

func toSourceMetrics(in []sourceMetricReq) []model.SourceMetric {
	out := make([]model.SourceMetric, 0, len(in))
	for _, sm := range in {
		out = append(out, model.SourceMetric{SourceID: sm.SourceID, FieldID: sm.FieldID})
	}
	return out
}

type mappingReq struct {
	Name            string            `json:"name" binding:"required"`
	SourceMetrics   []sourceMetricReq `json:"source_metrics" binding:"dive"`
	CalculationType string            `json:"calculation_type" binding:"required"`
	CustomFormula   string            `json:"custom_formula"`
}

func (r mappingReq) toCreateInput() metric.CreateInput {
	return metric.CreateInput{
		Name:            r.Name,
		SourceMetrics:   toSourceMetrics(r.SourceMetrics),
		CalculationType: model.CalculationType(r.CalculationType),
		CustomFormula:   r.CustomFormula,
	}
}

func (r mappingReq) toUpdateInput(id string) metric.UpdateInput {
	return metric.UpdateInput{
		ID:              id,
		Name:            r.Name,
		SourceMetrics:   toSourceMetrics(r.SourceMetrics),
		CalculationType: model.CalculationType(r.CalculationType),
		CustomFormula:   r.CustomFormula,
	}
}

type listMetricsReq struct {
	CalculationType string `form:"calculation_type"`
	paginator.PaginateQuery
}

func (r listMetricsReq) toInput() metric.ListInput {
	return metric.ListInput{
		CalculationType: model.CalculationType(r.CalculationType),
		Paginator:       r.PaginateQuery,
	}
}

type evaluateReq struct {
	TimeRange           string `json:"time_range"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	ComparisonTimeRange string `json:"comparison_time_range"`
	ComparisonStartDate string `json:"comparison_start_date"`
	ComparisonEndDate   string `json:"comparison_end_date"`
	Now                 string `json:"now"`
}

func (r evaluateReq) toInput(id string) (metric.EvaluateInput, error) {
	custom, err := model.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return metric.EvaluateInput{}, errInvalidDate
	}
	comparisonCustom, err := model.ParseDateRange(r.ComparisonStartDate, r.ComparisonEndDate)
	if err != nil {
		return metric.EvaluateInput{}, errInvalidDate
	}

	var now time.Time
	if r.Now != "" {
		if now, err = time.Parse(time.RFC3339, r.Now); err != nil {
			return metric.EvaluateInput{}, errInvalidNow
		}
	}

	return metric.EvaluateInput{
		ID:                    id,
		TimeRange:             model.TimeRange(r.TimeRange),
		CustomRange:           custom,
		ComparisonTimeRange:   model.TimeRange(r.ComparisonTimeRange),
		ComparisonCustomRange: comparisonCustom,
		Now:                   now,
	}, nil
}

type mappingResp struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	SourceMetrics   []model.SourceMetric `json:"source_metrics"`
	CalculationType string               `json:"calculation_type"`
	CustomFormula   string               `json:"custom_formula,omitempty"`
	CreatedBy       string               `json:"created_by"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
}

type listMetricsResp struct {
	Metrics   []mappingResp               `json:"metrics"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

// evaluateResp carries null comparison fields when no comparison was
// requested or no change can be computed.
type evaluateResp struct {
	MetricID        string   `json:"metric_id"`
	Name            string   `json:"name"`
	Value           float64  `json:"value"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Fallback        bool     `json:"fallback"`
	ComparisonValue *float64 `json:"comparison_value"`
	ComparisonStart string   `json:"comparison_start,omitempty"`
	ComparisonEnd   string   `json:"comparison_end,omitempty"`
	PercentChange   *float64 `json:"percent_change"`
	ChangeAvailable bool     `json:"change_available"`
}

func (h *handler) newMappingResp(m model.MetricMapping) mappingResp {
	return mappingResp{
		ID:              m.ID,
		Name:            m.Name,
		SourceMetrics:   m.SourceMetrics,
		CalculationType: string(m.CalculationType),
		CustomFormula:   m.CustomFormula,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       m.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListMetricsResp(o metric.ListOutput) listMetricsResp {
	items := make([]mappingResp, 0, len(o.Mappings))
	for _, m := range o.Mappings {
		items = append(items, h.newMappingResp(m))
	}
	return listMetricsResp{
		Metrics:   items,
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newEvaluateResp(o metric.EvaluateOutput) evaluateResp {
	resp := evaluateResp{
		MetricID: o.Mapping.ID,
		Name:     o.Mapping.Name,
		Value:    o.Current.Value,
		Start:    o.Current.Start.Format(time.RFC3339),
		End:      o.Current.End.Format(time.RFC3339),
		Fallback: o.Current.Fallback,
	}
	if o.Comparison != nil {
		v := o.Comparison.Value
		resp.ComparisonValue = &v
		resp.ComparisonStart = o.Comparison.Start.Format(time.RFC3339)
		resp.ComparisonEnd = o.Comparison.End.Format(time.RFC3339)
	}
	if o.ChangeAvailable {
		change := o.PercentChange
		resp.PercentChange = &change
		resp.ChangeAvailable = true
	}
	return resp
}
