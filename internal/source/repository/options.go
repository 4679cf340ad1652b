package repository

import "analytics-srv/internal/model"

type CreateOptions struct {
	ID        string
	Name      string
	Platform  string
	Color     string
	Status    model.SourceStatus
	Fields    []model.Field
	CreatedBy string
}

type FilterOptions struct {
	Status   model.SourceStatus
	Platform string
}

type ListOptions struct {
	FilterOptions
	Limit  int64
	Offset int64
}

type UpdateOptions struct {
	ID       string
	Name     string
	Platform string
	Color    string
	Status   model.SourceStatus
	Fields   []model.Field
}
