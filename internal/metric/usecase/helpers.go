package usecase

import (
	"context"
	"errors"
	"strings"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/metric"
	"analytics-srv/internal/metric/repository"
	"analytics-srv/internal/model"
)

type mappingInput struct {
	Name            string
	SourceMetrics   []model.SourceMetric
	CalculationType model.CalculationType
	CustomFormula   string
}

// validate checks the mapping shape and that every source metric points at
// an existing source field.
func (uc *implUseCase) validate(ctx context.Context, in *mappingInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.CustomFormula = strings.TrimSpace(in.CustomFormula)

	if in.Name == "" {
		return metric.ErrNameRequired
	}
	if !in.CalculationType.IsValid() {
		return metric.ErrInvalidCalculationType
	}
	if len(in.SourceMetrics) == 0 {
		return metric.ErrSourceMetricsRequired
	}
	if in.CalculationType == model.CalculationCustom {
		if in.CustomFormula == "" {
			return metric.ErrFormulaRequired
		}
		if err := aggregation.CheckFormula(in.CustomFormula); err != nil {
			return metric.ErrInvalidFormula
		}
	} else {
		in.CustomFormula = ""
	}

	mapping := model.MetricMapping{SourceMetrics: in.SourceMetrics}
	sources, err := uc.sourceUC.ListByIDs(ctx, mapping.SourceIDs())
	if err != nil {
		uc.l.Errorf(ctx, "metric.usecase.validate: Failed to list sources: %v", err)
		return err
	}
	byID := make(map[string]model.Source, len(sources))
	for _, s := range sources {
		byID[s.ID] = s
	}
	for _, sm := range in.SourceMetrics {
		s, ok := byID[sm.SourceID]
		if !ok {
			return metric.ErrUnknownSourceMetric
		}
		if _, ok := s.Field(sm.FieldID); !ok {
			return metric.ErrUnknownSourceMetric
		}
	}
	return nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrMetricNotFound) {
		return metric.ErrMetricNotFound
	}
	uc.l.Errorf(ctx, "metric.usecase.%s: %v", op, err)
	return err
}

func (uc *implUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateAll(ctx); err != nil {
		uc.l.Warnf(ctx, "metric.usecase.invalidate: Failed to invalidate dashboard cache: %v", err)
	}
}

func toPeriod(r aggregation.Result) metric.Period {
	return metric.Period{
		Value:    r.Value,
		Start:    r.Interval.Start,
		End:      r.Interval.End,
		Fallback: r.Interval.Fallback,
	}
}
