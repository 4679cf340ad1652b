package source

import (
	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"
)

type FieldInput struct {
	ID    string
	Label string
	Type  model.FieldType
}

type CreateInput struct {
	Name     string
	Platform string
	Color    string
	Status   model.SourceStatus
	Fields   []FieldInput
}

type UpdateInput struct {
	ID       string
	Name     string
	Platform string
	Color    string
	Status   model.SourceStatus
	Fields   []FieldInput
}

type ListInput struct {
	Status    model.SourceStatus
	Platform  string
	Paginator paginator.PaginateQuery
}

type ListOutput struct {
	Sources   []model.Source
	Paginator paginator.Paginator
}
