package repository

import "analytics-srv/internal/model"

type CreateOptions struct {
	ID        string
	Title     string
	SourceID  string
	Date      model.Date
	Status    model.PostStatus
	Content   string
	CreatedBy string
}

// FilterOptions narrows List and Count. Zero values are ignored.
type FilterOptions struct {
	SourceID string
	Status   model.PostStatus
	From     model.Date
	To       model.Date
}

type ListOptions struct {
	FilterOptions
	Limit  int64
	Offset int64
}

type UpdateOptions struct {
	ID       string
	Title    string
	SourceID string
	Date     model.Date
	Content  string
}

type UpdateMetricsOptions struct {
	ID      string
	Metrics map[string]model.MetricValue
	Status  model.PostStatus
}

type EvaluationOptions struct {
	SourceIDs []string
	From      model.Date
	To        model.Date
}
