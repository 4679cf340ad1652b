package repository

import (
	"time"

	"analytics-srv/internal/model"
)

type CreateOptions struct {
	ID          string
	Name        string
	Description string
	Widgets     []model.ReportWidget
	TimeRange   model.TimeRange
	Formats     []model.ReportFormat
	Schedule    *model.ReportSchedule
	NextRunAt   *time.Time
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
	Widgets     []model.ReportWidget
	TimeRange   model.TimeRange
	Formats     []model.ReportFormat
	Schedule    *model.ReportSchedule
	NextRunAt   *time.Time
}

type ListDueOptions struct {
	Now   time.Time
	Limit int
}

type AdvanceNextRunOptions struct {
	ID       string
	Previous time.Time
	Next     *time.Time
}

type CreateRunOptions struct {
	ID         string
	ReportID   string
	UserID     string
	Trigger    string
	ParamsHash string
	RunAt      time.Time
}

// FindRunByParamsHashOptions matches runs created after Since.
type FindRunByParamsHashOptions struct {
	ParamsHash string
	Status     string
	Since      time.Time
}

type ListRunsOptions struct {
	ReportID string
	Limit    int64
	Offset   int64
}

type UpdateRunCompletedOptions struct {
	RunID            string
	Files            []model.ReportFile
	WidgetsCount     int
	GenerationTimeMs int64
	CompletedAt      time.Time
}

type UpdateRunFailedOptions struct {
	RunID            string
	ErrorMessage     string
	GenerationTimeMs int64
}
