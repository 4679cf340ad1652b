package metric

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"
)

type CreateInput struct {
	Name            string
	SourceMetrics   []model.SourceMetric
	CalculationType model.CalculationType
	CustomFormula   string
}

type UpdateInput struct {
	ID              string
	Name            string
	SourceMetrics   []model.SourceMetric
	CalculationType model.CalculationType
	CustomFormula   string
}

type ListInput struct {
	CalculationType model.CalculationType
	Paginator       paginator.PaginateQuery
}

type ListOutput struct {
	Mappings  []model.MetricMapping
	Paginator paginator.Paginator
}

// EvaluateInput selects the mapping and ranges to evaluate. An empty
// ComparisonTimeRange skips the comparison. A zero Now means the current time.
type EvaluateInput struct {
	ID                    string
	TimeRange             model.TimeRange
	CustomRange           *model.DateRange
	ComparisonTimeRange   model.TimeRange
	ComparisonCustomRange *model.DateRange
	Now                   time.Time
}

type Period struct {
	Value    float64
	Start    time.Time
	End      time.Time
	Fallback bool
}

type EvaluateOutput struct {
	Mapping         model.MetricMapping
	Current         Period
	Comparison      *Period
	PercentChange   float64
	ChangeAvailable bool
}
