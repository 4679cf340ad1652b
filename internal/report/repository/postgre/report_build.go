package postgre

import (
	"encoding/json"

	"analytics-srv/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/lib/pq"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (model.Report, error) {
	var (
		r           model.Report
		description null.String
		widgets     []byte
		formats     []string
		schedule    null.JSON
		nextRunAt   null.Time
	)
	if err := row.Scan(&r.ID, &r.Name, &description, &widgets, &r.TimeRange, pq.Array(&formats),
		&schedule, &nextRunAt, &r.CreatedBy, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return model.Report{}, err
	}

	r.Description = description.String
	r.NextRunAt = nextRunAt.Ptr()
	if len(widgets) > 0 {
		if err := json.Unmarshal(widgets, &r.Widgets); err != nil {
			return model.Report{}, err
		}
	}
	if r.Widgets == nil {
		r.Widgets = []model.ReportWidget{}
	}
	r.Formats = make([]model.ReportFormat, 0, len(formats))
	for _, f := range formats {
		r.Formats = append(r.Formats, model.ReportFormat(f))
	}
	if schedule.Valid && len(schedule.JSON) > 0 && string(schedule.JSON) != "null" {
		var s model.ReportSchedule
		if err := json.Unmarshal(schedule.JSON, &s); err != nil {
			return model.Report{}, err
		}
		r.Schedule = &s
	}
	return r, nil
}

func scanRun(row scanner) (model.ReportRun, error) {
	var (
		run          model.ReportRun
		errorMessage null.String
		files        []byte
		completedAt  null.Time
	)
	if err := row.Scan(&run.ID, &run.ReportID, &run.UserID, &run.Trigger, &run.ParamsHash, &run.Status,
		&errorMessage, &run.RunAt, &files, &run.WidgetsCount, &run.GenerationTimeMs, &completedAt,
		&run.CreatedAt, &run.UpdatedAt); err != nil {
		return model.ReportRun{}, err
	}

	run.ErrorMessage = errorMessage.String
	run.CompletedAt = completedAt.Ptr()
	if len(files) > 0 {
		if err := json.Unmarshal(files, &run.Files); err != nil {
			return model.ReportRun{}, err
		}
	}
	if run.Files == nil {
		run.Files = []model.ReportFile{}
	}
	return run, nil
}

type reportValues struct {
	widgets  []byte
	formats  any
	schedule null.JSON
}

func buildReportValues(widgets []model.ReportWidget, formats []model.ReportFormat, schedule *model.ReportSchedule) (reportValues, error) {
	if widgets == nil {
		widgets = []model.ReportWidget{}
	}
	w, err := json.Marshal(widgets)
	if err != nil {
		return reportValues{}, err
	}

	fs := make([]string, 0, len(formats))
	for _, f := range formats {
		fs = append(fs, string(f))
	}

	v := reportValues{widgets: w, formats: pq.Array(fs)}
	if schedule != nil {
		s, err := json.Marshal(schedule)
		if err != nil {
			return reportValues{}, err
		}
		v.schedule = null.JSONFrom(s)
	}
	return v, nil
}

func toNullString(s string) null.String {
	return null.NewString(s, s != "")
}
