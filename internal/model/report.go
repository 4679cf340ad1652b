package model

import "time"

// ReportFormat is an output format for a report run.
type ReportFormat string

const (
	ReportFormatCSV   ReportFormat = "csv"
	ReportFormatJSON  ReportFormat = "json"
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
	ReportFormatImage ReportFormat = "image"
)

// IsKnown reports whether f is a recognised format name.
func (f ReportFormat) IsKnown() bool {
	switch f {
	case ReportFormatCSV, ReportFormatJSON, ReportFormatPDF, ReportFormatExcel, ReportFormatImage:
		return true
	}
	return false
}

// IsSupported reports whether the service can render f.
func (f ReportFormat) IsSupported() bool {
	return f == ReportFormatCSV || f == ReportFormatJSON
}

// ContentType is the MIME type of a rendered file.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatCSV:
		return "text/csv"
	case ReportFormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

type ScheduleFrequency string

const (
	FrequencyDaily     ScheduleFrequency = "daily"
	FrequencyWeekly    ScheduleFrequency = "weekly"
	FrequencyMonthly   ScheduleFrequency = "monthly"
	FrequencyQuarterly ScheduleFrequency = "quarterly"
)

func (f ScheduleFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly:
		return true
	}
	return false
}

// ReportSchedule describes when a report is generated automatically.
// Day is a weekday (0-6, Sunday=0) for weekly schedules and a day of month
// (1-31) otherwise. Time is HH:MM.
type ReportSchedule struct {
	Frequency  ScheduleFrequency `json:"frequency"`
	Day        int               `json:"day,omitempty"`
	Time       string            `json:"time,omitempty"`
	Recipients []string          `json:"recipients"`
}

type ReportWidgetType string

const (
	ReportWidgetMetric ReportWidgetType = "metric"
	ReportWidgetChart  ReportWidgetType = "chart"
)

// ReportWidget is one section of a report.
type ReportWidget struct {
	ID        string           `json:"id"`
	Type      ReportWidgetType `json:"type"`
	Title     string           `json:"title"`
	MetricID  string           `json:"metric_id,omitempty"`
	MetricIDs []string         `json:"metric_ids,omitempty"`
}

// MetricRefs returns the metric ids the widget reads.
func (w ReportWidget) MetricRefs() []string {
	if w.Type == ReportWidgetMetric {
		if w.MetricID == "" {
			return nil
		}
		return []string{w.MetricID}
	}
	return w.MetricIDs
}

// Report is a saved report definition.
type Report struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Widgets     []ReportWidget  `json:"widgets"`
	TimeRange   TimeRange       `json:"time_range"`
	Formats     []ReportFormat  `json:"formats"`
	Schedule    *ReportSchedule `json:"schedule,omitempty"`
	NextRunAt   *time.Time      `json:"next_run_at,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Run statuses.
const (
	RunStatusProcessing = "PROCESSING"
	RunStatusCompleted  = "COMPLETED"
	RunStatusFailed     = "FAILED"
)

// Run triggers.
const (
	RunTriggerManual    = "manual"
	RunTriggerScheduled = "scheduled"
)

// ReportFile is one rendered artefact of a run.
type ReportFile struct {
	Format    ReportFormat `json:"format"`
	ObjectKey string       `json:"object_key"`
	SizeBytes int64        `json:"size_bytes"`
}

// ReportRun is one generation of a report.
type ReportRun struct {
	ID               string
	ReportID         string
	UserID           string
	Trigger          string
	ParamsHash       string
	Status           string
	ErrorMessage     string
	RunAt            time.Time
	Files            []ReportFile
	WidgetsCount     int
	GenerationTimeMs int64
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// File returns the rendered artefact for format.
func (r ReportRun) File(format ReportFormat) (ReportFile, bool) {
	for _, f := range r.Files {
		if f.Format == format {
			return f, true
		}
	}
	return ReportFile{}, false
}
