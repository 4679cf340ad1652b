package repository

import "analytics-srv/internal/model"

type CreateOptions struct {
	ID              string
	Name            string
	SourceMetrics   []model.SourceMetric
	CalculationType model.CalculationType
	CustomFormula   string
	CreatedBy       string
}

type FilterOptions struct {
	CalculationType model.CalculationType
}

type ListOptions struct {
	FilterOptions
	Limit  int64
	Offset int64
}

type UpdateOptions struct {
	ID              string
	Name            string
	SourceMetrics   []model.SourceMetric
	CalculationType model.CalculationType
	CustomFormula   string
}
