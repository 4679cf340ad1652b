package usecase

import (
	"context"

	"analytics-srv/internal/metric"
	"analytics-srv/internal/metric/repository"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"

	"github.com/google/uuid"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input metric.CreateInput) (model.MetricMapping, error) {
	if !sc.CanWrite() {
		return model.MetricMapping{}, metric.ErrForbidden
	}

	in := mappingInput(input)
	if err := uc.validate(ctx, &in); err != nil {
		return model.MetricMapping{}, err
	}

	m, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:              uuid.New().String(),
		Name:            in.Name,
		SourceMetrics:   in.SourceMetrics,
		CalculationType: in.CalculationType,
		CustomFormula:   in.CustomFormula,
		CreatedBy:       sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "metric.usecase.Create: Failed to create metric mapping: %v", err)
		return model.MetricMapping{}, err
	}
	return m, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.MetricMapping, error) {
	m, err := uc.repo.Detail(ctx, id)
	if err != nil {
		return model.MetricMapping{}, uc.mapRepoError(ctx, "Detail", err)
	}
	return m, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input metric.ListInput) (metric.ListOutput, error) {
	if input.CalculationType != "" && !input.CalculationType.IsValid() {
		return metric.ListOutput{}, metric.ErrInvalidCalculationType
	}

	input.Paginator.Adjust()
	filter := repository.FilterOptions{CalculationType: input.CalculationType}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "metric.usecase.List: Failed to count metric mappings: %v", err)
		return metric.ListOutput{}, err
	}

	mappings, err := uc.repo.List(ctx, repository.ListOptions{
		FilterOptions: filter,
		Limit:         input.Paginator.Limit,
		Offset:        input.Paginator.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "metric.usecase.List: Failed to list metric mappings: %v", err)
		return metric.ListOutput{}, err
	}

	return metric.ListOutput{
		Mappings:  mappings,
		Paginator: paginator.New(input.Paginator, total, int64(len(mappings))),
	}, nil
}

func (uc *implUseCase) ListByIDs(ctx context.Context, ids []string) ([]model.MetricMapping, error) {
	mappings, err := uc.repo.ListByIDs(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "metric.usecase.ListByIDs: Failed to list metric mappings: %v", err)
		return nil, err
	}
	return mappings, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input metric.UpdateInput) (model.MetricMapping, error) {
	if !sc.CanWrite() {
		return model.MetricMapping{}, metric.ErrForbidden
	}

	in := mappingInput{
		Name:            input.Name,
		SourceMetrics:   input.SourceMetrics,
		CalculationType: input.CalculationType,
		CustomFormula:   input.CustomFormula,
	}
	if err := uc.validate(ctx, &in); err != nil {
		return model.MetricMapping{}, err
	}

	m, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:              input.ID,
		Name:            in.Name,
		SourceMetrics:   in.SourceMetrics,
		CalculationType: in.CalculationType,
		CustomFormula:   in.CustomFormula,
	})
	if err != nil {
		return model.MetricMapping{}, uc.mapRepoError(ctx, "Update", err)
	}

	uc.invalidate(ctx)
	return m, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !sc.CanWrite() {
		return metric.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}

	uc.invalidate(ctx)
	return nil
}
