package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/internal/post/repository"
	"analytics-srv/internal/source"
)

func parseDate(s string) (model.Date, error) {
	d, err := model.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return model.Date{}, post.ErrInvalidDate
	}
	return d, nil
}

// parseOptionalDate accepts an empty string as "no bound".
func parseOptionalDate(s string) (model.Date, error) {
	if strings.TrimSpace(s) == "" {
		return model.Date{}, nil
	}
	return parseDate(s)
}

func (uc *implUseCase) loadSource(ctx context.Context, sc model.Scope, id string) (model.Source, error) {
	s, err := uc.sourceUC.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, source.ErrSourceNotFound) {
			return model.Source{}, post.ErrSourceNotFound
		}
		uc.l.Errorf(ctx, "post.usecase.loadSource: Failed to get source: %v", err)
		return model.Source{}, err
	}
	return s, nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return post.ErrPostNotFound
	}
	uc.l.Errorf(ctx, "post.usecase.%s: %v", op, err)
	return err
}

// buildMetrics tags raw values with the type of the matching source field.
func buildMetrics(s model.Source, values map[string]any) (map[string]model.MetricValue, error) {
	metrics := make(map[string]model.MetricValue, len(values))
	for fieldID, raw := range values {
		field, ok := s.Field(fieldID)
		if !ok {
			return nil, post.ErrUnknownMetricField
		}
		v, err := model.NewMetricValue(field.Type, raw)
		if err != nil {
			return nil, post.ErrInvalidMetricValue
		}
		metrics[fieldID] = v
	}
	return metrics, nil
}

// publish emits a change event. Failures are logged and never returned.
func (uc *implUseCase) publish(ctx context.Context, p model.Post, action string) {
	if uc.producer == nil {
		return
	}
	err := uc.producer.PublishPostChanged(ctx, post.ChangedEvent{
		PostID:     p.ID,
		SourceID:   p.SourceID,
		Date:       p.Date,
		Action:     action,
		OccurredAt: time.Now(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "post.usecase.publish: Failed to publish %s event for post %s: %v", action, p.ID, err)
	}
}
