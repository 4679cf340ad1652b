package report

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"
)

type CreateInput struct {
	Name        string
	Description string
	Widgets     []model.ReportWidget
	TimeRange   model.TimeRange
	Formats     []model.ReportFormat
	Schedule    *model.ReportSchedule
}

type UpdateInput struct {
	ID          string
	Name        string
	Description string
	Widgets     []model.ReportWidget
	TimeRange   model.TimeRange
	Formats     []model.ReportFormat
	Schedule    *model.ReportSchedule
}

type ListInput struct {
	Paginator paginator.PaginateQuery
}

type ListOutput struct {
	Reports   []model.Report
	Paginator paginator.Paginator
}

// GenerateInput asks for a run of ReportID as of Now. A zero Now means the
// current time.
type GenerateInput struct {
	ReportID string
	Now      time.Time
}

type GenerateOutput struct {
	Run model.ReportRun
	// Existing is set when an in-progress run was returned.
	Existing bool
}

type ListRunsInput struct {
	ReportID  string
	Paginator paginator.PaginateQuery
}

type ListRunsOutput struct {
	Runs      []model.ReportRun
	Paginator paginator.Paginator
}

// DownloadInput selects a file of a run. An empty Format picks the first
// rendered file.
type DownloadInput struct {
	RunID  string
	Format model.ReportFormat
}

type DownloadOutput struct {
	URL       string
	ExpiresAt time.Time
	FileName  string
	Format    model.ReportFormat
	SizeBytes int64
}

// Job is the queued unit of work for one run.
type Job struct {
	RunID    string
	ReportID string
	Now      time.Time
}

// Notification tells one recipient that a scheduled run finished.
type Notification struct {
	RunID     string
	ReportID  string
	Recipient string
	Subject   string
	Body      string
}

// Document is the evaluated content of a run, shared by every output format.
type Document struct {
	ReportID    string            `json:"report_id"`
	RunID       string            `json:"run_id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	TimeRange   model.TimeRange   `json:"time_range"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	Fallback    bool              `json:"fallback,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
	Sections    []DocumentSection `json:"sections"`
}

type DocumentSection struct {
	WidgetID string                 `json:"widget_id"`
	Type     model.ReportWidgetType `json:"type"`
	Title    string                 `json:"title"`
	Values   []DocumentValue        `json:"values"`
}

// DocumentValue is one metric of a section. Value is nil when the metric
// could not be evaluated and Error says why.
type DocumentValue struct {
	MetricID   string   `json:"metric_id"`
	MetricName string   `json:"metric_name,omitempty"`
	Value      *float64 `json:"value"`
	Error      string   `json:"error,omitempty"`
}
