package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/internal/report/repository"

	"github.com/google/uuid"
)

type reportInput struct {
	Name        string
	Description string
	Widgets     []model.ReportWidget
	TimeRange   model.TimeRange
	Formats     []model.ReportFormat
	Schedule    *model.ReportSchedule
}

// validate normalises the input in place. Widgets without an id get one,
// an empty time range means this month and no formats means csv.
func (uc *implUseCase) validate(ctx context.Context, in *reportInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return report.ErrNameRequired
	}

	if in.TimeRange == "" {
		in.TimeRange = aggregation.DefaultTimeRange
	}
	// Reports store no custom bounds.
	if !in.TimeRange.IsValid() || in.TimeRange == model.TimeRangeCustom {
		return report.ErrInvalidTimeRange
	}

	formats, err := normalizeFormats(in.Formats)
	if err != nil {
		return err
	}
	in.Formats = formats

	if err := report.NormalizeSchedule(in.Schedule); err != nil {
		return err
	}

	if len(in.Widgets) == 0 {
		return report.ErrWidgetsRequired
	}
	for i := range in.Widgets {
		w := &in.Widgets[i]
		if err := validateWidget(w); err != nil {
			return err
		}
		if w.ID == "" {
			w.ID = uuid.New().String()
		}
	}

	ids := metricIDs(in.Widgets)
	mappings, err := uc.metricUC.ListByIDs(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.validate: Failed to list metric mappings: %v", err)
		return err
	}
	if len(mappings) != len(ids) {
		return report.ErrUnknownMetric
	}
	return nil
}

func validateWidget(w *model.ReportWidget) error {
	w.Title = strings.TrimSpace(w.Title)
	switch w.Type {
	case model.ReportWidgetMetric:
		w.MetricID = strings.TrimSpace(w.MetricID)
		w.MetricIDs = nil
		if w.MetricID == "" {
			return report.ErrInvalidWidget
		}
	case model.ReportWidgetChart:
		w.MetricID = ""
		if len(w.MetricIDs) == 0 {
			return report.ErrInvalidWidget
		}
		for i, id := range w.MetricIDs {
			id = strings.TrimSpace(id)
			if id == "" {
				return report.ErrInvalidWidget
			}
			w.MetricIDs[i] = id
		}
	default:
		return report.ErrInvalidWidget
	}
	return nil
}

func normalizeFormats(in []model.ReportFormat) ([]model.ReportFormat, error) {
	if len(in) == 0 {
		return []model.ReportFormat{model.ReportFormatCSV}, nil
	}
	out := make([]model.ReportFormat, 0, len(in))
	seen := make(map[model.ReportFormat]struct{}, len(in))
	for _, f := range in {
		f = model.ReportFormat(strings.ToLower(strings.TrimSpace(string(f))))
		if !f.IsKnown() {
			return nil, report.ErrInvalidFormat
		}
		if !f.IsSupported() {
			return nil, report.ErrUnsupportedFormat
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out, nil
}

// metricIDs returns the distinct metric ids of ws in first-seen order.
func metricIDs(ws []model.ReportWidget) []string {
	var ids []string
	seen := map[string]struct{}{}
	for _, w := range ws {
		for _, id := range w.MetricRefs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func canModify(sc model.Scope, r model.Report) bool {
	if !sc.CanWrite() {
		return false
	}
	return sc.IsAdmin() || r.CreatedBy == "" || r.CreatedBy == sc.UserID
}

// readableReport loads report id when sc may read it.
func (uc *implUseCase) readableReport(ctx context.Context, sc model.Scope, id, op string) (model.Report, error) {
	r, err := uc.repo.Detail(ctx, id)
	if err != nil {
		return model.Report{}, uc.mapRepoError(ctx, op, err)
	}
	if !sc.CanRead(r.CreatedBy) {
		return model.Report{}, report.ErrForbidden
	}
	return r, nil
}

// readableRun loads a run whose report sc may read.
func (uc *implUseCase) readableRun(ctx context.Context, sc model.Scope, runID, op string) (model.ReportRun, error) {
	run, err := uc.repo.DetailRun(ctx, runID)
	if err != nil {
		return model.ReportRun{}, uc.mapRepoError(ctx, op, err)
	}
	if sc.IsAdmin() || sc.IsSystem() {
		return run, nil
	}
	if _, err := uc.readableReport(ctx, sc, run.ReportID, op); err != nil {
		return model.ReportRun{}, err
	}
	return run, nil
}

// nextRunAt is the first schedule slot after now, or nil without a schedule.
func (uc *implUseCase) nextRunAt(s *model.ReportSchedule, now time.Time) *time.Time {
	if s == nil {
		return nil
	}
	next := report.NextRun(*s, now.In(uc.config.Location))
	return &next
}

func (uc *implUseCase) resolveNow(t time.Time) time.Time {
	if t.IsZero() {
		t = uc.now()
	}
	return t.In(uc.config.Location)
}

// paramsHash identifies the output of a run: the report definition as of
// its last update and the period it resolves to at now.
func paramsHash(r model.Report, now time.Time) (string, error) {
	iv := aggregation.ResolveTimeRange(r.TimeRange, nil, now)
	data := map[string]any{
		"report_id":  r.ID,
		"updated_at": r.UpdatedAt.UTC().Format(time.RFC3339Nano),
		"start":      iv.Start.UTC().Format(time.RFC3339),
		"end":        iv.End.UTC().Format(time.RFC3339),
		"formats":    r.Formats,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", sha256.Sum256(b)), nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrReportNotFound):
		return report.ErrReportNotFound
	case errors.Is(err, repository.ErrRunNotFound):
		return report.ErrRunNotFound
	}
	uc.l.Errorf(ctx, "report.usecase.%s: %v", op, err)
	return err
}
