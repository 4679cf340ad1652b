package repository

import "analytics-srv/internal/model"

type CreateOptions struct {
	ID          string
	Name        string
	Description string
	Widgets     []model.DashboardWidget
	IsDefault   bool
	CreatedBy   string
}

// FilterOptions narrows listings. An empty CreatedBy matches every owner.
type FilterOptions struct {
	CreatedBy string
}

type ListOptions struct {
	FilterOptions
	Limit  int64
	Offset int64
}

type UpdateOptions struct {
	ID          string
	Name        string
	Description string
	Widgets     []model.DashboardWidget
	IsDefault   bool
	// CreatedBy scopes the default flag; it is not written.
	CreatedBy string
}
