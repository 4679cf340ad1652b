package http

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/paginator"
)

type widgetReq struct {
	ID        string   `json:"id"`
	Type      string   `json:"type" binding:"required,oneof=metric chart"`
	Title     string   `json:"title"`
	MetricID  string   `json:"metric_id"`
	MetricIDs []string `json:"metric_ids"`
}

type scheduleReq struct {
	Frequency  string   `json:"frequency" binding:"required"`
	Day        int      `json:"day"`
	Time       string   `json:"time"`
	Recipients []string `json:"recipients"`
}

type reportReq struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Widgets     []widgetReq  `json:"widgets" binding:"required,min=1,dive"`
	TimeRange   string       `json:"time_range"`
	Formats     []string     `json:"formats"`
	Schedule    *scheduleReq `json:"schedule"`
}

func (r reportReq) widgets() []model.ReportWidget {
	out := make([]model.ReportWidget, 0, len(r.Widgets))
	for _, w := range r.Widgets {
		out = append(out, model.ReportWidget{
			ID:        w.ID,
			Type:      model.ReportWidgetType(w.Type),
			Title:     w.Title,
			MetricID:  w.MetricID,
			MetricIDs: w.MetricIDs,
		})
	}
	return out
}

func (r reportReq) formats() []model.ReportFormat {
	out := make([]model.ReportFormat, 0, len(r.Formats))
	for _, f := range r.Formats {
		out = append(out, model.ReportFormat(f))
	}
	return out
}

func (r reportReq) schedule() *model.ReportSchedule {
	if r.Schedule == nil {
		return nil
	}
	return &model.ReportSchedule{
		Frequency:  model.ScheduleFrequency(r.Schedule.Frequency),
		Day:        r.Schedule.Day,
		Time:       r.Schedule.Time,
		Recipients: r.Schedule.Recipients,
	}
}

func (r reportReq) toCreateInput() report.CreateInput {
	return report.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Widgets:     r.widgets(),
		TimeRange:   model.TimeRange(r.TimeRange),
		Formats:     r.formats(),
		Schedule:    r.schedule(),
	}
}

func (r reportReq) toUpdateInput(id string) report.UpdateInput {
	return report.UpdateInput{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Widgets:     r.widgets(),
		TimeRange:   model.TimeRange(r.TimeRange),
		Formats:     r.formats(),
		Schedule:    r.schedule(),
	}
}

type reportResp struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Widgets     []model.ReportWidget  `json:"widgets"`
	TimeRange   model.TimeRange       `json:"time_range"`
	Formats     []model.ReportFormat  `json:"formats"`
	Schedule    *model.ReportSchedule `json:"schedule,omitempty"`
	NextRunAt   string                `json:"next_run_at,omitempty"`
	CreatedBy   string                `json:"created_by"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

type listReportsResp struct {
	Reports   []reportResp                `json:"reports"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type runResp struct {
	ID               string             `json:"id"`
	ReportID         string             `json:"report_id"`
	UserID           string             `json:"user_id,omitempty"`
	Trigger          string             `json:"trigger"`
	Status           string             `json:"status"`
	ErrorMessage     string             `json:"error_message,omitempty"`
	RunAt            string             `json:"run_at"`
	Files            []model.ReportFile `json:"files"`
	WidgetsCount     int                `json:"widgets_count"`
	GenerationTimeMs int64              `json:"generation_time_ms"`
	CompletedAt      string             `json:"completed_at,omitempty"`
	CreatedAt        string             `json:"created_at"`
}

type generateResp struct {
	Run      runResp `json:"run"`
	Existing bool    `json:"existing"`
}

type listRunsResp struct {
	Runs      []runResp                   `json:"runs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type downloadResp struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
	FileName  string `json:"file_name"`
	Format    string `json:"format"`
	SizeBytes int64  `json:"size_bytes"`
}

func (h *handler) newReportResp(r model.Report) reportResp {
	widgets := r.Widgets
	if widgets == nil {
		widgets = []model.ReportWidget{}
	}
	formats := r.Formats
	if formats == nil {
		formats = []model.ReportFormat{}
	}
	resp := reportResp{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Widgets:     widgets,
		TimeRange:   r.TimeRange,
		Formats:     formats,
		Schedule:    r.Schedule,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
	if r.NextRunAt != nil {
		resp.NextRunAt = r.NextRunAt.Format(time.RFC3339)
	}
	return resp
}

func (h *handler) newListReportsResp(o report.ListOutput) listReportsResp {
	items := make([]reportResp, 0, len(o.Reports))
	for _, r := range o.Reports {
		items = append(items, h.newReportResp(r))
	}
	return listReportsResp{
		Reports:   items,
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newRunResp(r model.ReportRun) runResp {
	files := r.Files
	if files == nil {
		files = []model.ReportFile{}
	}
	resp := runResp{
		ID:               r.ID,
		ReportID:         r.ReportID,
		UserID:           r.UserID,
		Trigger:          r.Trigger,
		Status:           r.Status,
		ErrorMessage:     r.ErrorMessage,
		RunAt:            r.RunAt.Format(time.RFC3339),
		Files:            files,
		WidgetsCount:     r.WidgetsCount,
		GenerationTimeMs: r.GenerationTimeMs,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
	if r.CompletedAt != nil {
		resp.CompletedAt = r.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

func (h *handler) newGenerateResp(o report.GenerateOutput) generateResp {
	return generateResp{Run: h.newRunResp(o.Run), Existing: o.Existing}
}

func (h *handler) newListRunsResp(o report.ListRunsOutput) listRunsResp {
	items := make([]runResp, 0, len(o.Runs))
	for _, r := range o.Runs {
		items = append(items, h.newRunResp(r))
	}
	return listRunsResp{
		Runs:      items,
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newDownloadResp(o report.DownloadOutput) downloadResp {
	return downloadResp{
		URL:       o.URL,
		ExpiresAt: o.ExpiresAt.Format(time.RFC3339),
		FileName:  o.FileName,
		Format:    string(o.Format),
		SizeBytes: o.SizeBytes,
	}
}
