package usecase

import (
	"context"
	"errors"
	"strings"

	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/dashboard/repository"
	"analytics-srv/internal/model"

	"github.com/google/uuid"
)

const maxDecimals = 10

type dashboardInput struct {
	Name        string
	Description string
	Widgets     []model.DashboardWidget
	IsDefault   bool
}

// validate normalises the input in place and checks every widget. Widgets
// without an id get one.
func (uc *implUseCase) validate(ctx context.Context, in *dashboardInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return dashboard.ErrNameRequired
	}
	if in.Widgets == nil {
		in.Widgets = []model.DashboardWidget{}
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

	ids := model.Dashboard{Widgets: in.Widgets}.MetricIDs()
	if len(ids) == 0 {
		return nil
	}
	mappings, err := uc.metricUC.ListByIDs(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.validate: Failed to list metric mappings: %v", err)
		return err
	}
	if len(mappings) != len(ids) {
		return dashboard.ErrUnknownMetric
	}
	return nil
}

func validateWidget(w *model.DashboardWidget) error {
	w.Name = strings.TrimSpace(w.Name)
	if !w.Type.IsValid() || len(w.Metrics) == 0 {
		return dashboard.ErrInvalidWidget
	}
	for _, id := range w.Metrics {
		if strings.TrimSpace(id) == "" {
			return dashboard.ErrInvalidWidget
		}
	}

	if !w.TimeRange.IsValid() {
		return dashboard.ErrInvalidTimeRange
	}
	if w.TimeRange == model.TimeRangeCustom {
		if !w.CustomTimeRange.IsSet() {
			return dashboard.ErrInvalidTimeRange
		}
	} else {
		w.CustomTimeRange = nil
	}

	for _, f := range w.Filters {
		if strings.TrimSpace(f.Field) == "" || !f.Operator.IsValid() {
			return dashboard.ErrInvalidFilter
		}
	}
	if w.Filters == nil {
		w.Filters = []model.WidgetFilter{}
	}

	opts := w.DisplayOptions
	switch opts.Format {
	case "", model.DisplayFormatNumber, model.DisplayFormatCurrency, model.DisplayFormatPercentage:
	default:
		return dashboard.ErrInvalidDisplay
	}
	if opts.Decimals < 0 || opts.Decimals > maxDecimals {
		return dashboard.ErrInvalidDisplay
	}
	// Custom comparison bounds are not stored, so custom cannot be compared against.
	if opts.ComparisonTimeRange != "" &&
		(!opts.ComparisonTimeRange.IsValid() || opts.ComparisonTimeRange == model.TimeRangeCustom) {
		return dashboard.ErrInvalidTimeRange
	}
	return nil
}

func canModify(sc model.Scope, d model.Dashboard) bool {
	if !sc.CanWrite() {
		return false
	}
	return sc.IsAdmin() || d.CreatedBy == "" || d.CreatedBy == sc.UserID
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrDashboardNotFound) {
		return dashboard.ErrDashboardNotFound
	}
	uc.l.Errorf(ctx, "dashboard.usecase.%s: %v", op, err)
	return err
}

func (uc *implUseCase) invalidate(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateDashboard(ctx, id); err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.invalidate: Failed to invalidate render cache of %s: %v", id, err)
	}
}
