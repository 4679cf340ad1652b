package usecase

import (
	"context"
	"errors"
	"strings"

	"analytics-srv/internal/model"
	"analytics-srv/internal/source"
	"analytics-srv/internal/source/repository"
	"analytics-srv/pkg/paginator"

	"github.com/google/uuid"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input source.CreateInput) (model.Source, error) {
	if !sc.CanWrite() {
		return model.Source{}, source.ErrForbidden
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Status == "" {
		input.Status = model.SourceStatusActive
	}
	if err := validateSource(input.Name, input.Status, input.Color); err != nil {
		return model.Source{}, err
	}

	fields, err := buildFields(input.Fields)
	if err != nil {
		return model.Source{}, err
	}

	s, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Platform:  strings.TrimSpace(input.Platform),
		Color:     input.Color,
		Status:    input.Status,
		Fields:    fields,
		CreatedBy: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "source.usecase.Create: Failed to create source: %v", err)
		return model.Source{}, err
	}
	return s, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Source, error) {
	s, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSourceNotFound) {
			return model.Source{}, source.ErrSourceNotFound
		}
		uc.l.Errorf(ctx, "source.usecase.Detail: Failed to get source: %v", err)
		return model.Source{}, err
	}
	return s, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input source.ListInput) (source.ListOutput, error) {
	input.Paginator.Adjust()
	filter := repository.FilterOptions{
		Status:   input.Status,
		Platform: input.Platform,
	}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "source.usecase.List: Failed to count sources: %v", err)
		return source.ListOutput{}, err
	}

	sources, err := uc.repo.List(ctx, repository.ListOptions{
		FilterOptions: filter,
		Limit:         input.Paginator.Limit,
		Offset:        input.Paginator.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "source.usecase.List: Failed to list sources: %v", err)
		return source.ListOutput{}, err
	}

	return source.ListOutput{
		Sources:   sources,
		Paginator: paginator.New(input.Paginator, total, int64(len(sources))),
	}, nil
}

func (uc *implUseCase) ListByIDs(ctx context.Context, ids []string) ([]model.Source, error) {
	sources, err := uc.repo.ListByIDs(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "source.usecase.ListByIDs: Failed to list sources: %v", err)
		return nil, err
	}
	return sources, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input source.UpdateInput) (model.Source, error) {
	if !sc.CanWrite() {
		return model.Source{}, source.ErrForbidden
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := validateSource(input.Name, input.Status, input.Color); err != nil {
		return model.Source{}, err
	}

	fields, err := buildFields(input.Fields)
	if err != nil {
		return model.Source{}, err
	}

	// Posts keep the metric keys they were recorded with; field edits apply
	// to future recordings only.
	s, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:       input.ID,
		Name:     input.Name,
		Platform: strings.TrimSpace(input.Platform),
		Color:    input.Color,
		Status:   input.Status,
		Fields:   fields,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSourceNotFound) {
			return model.Source{}, source.ErrSourceNotFound
		}
		uc.l.Errorf(ctx, "source.usecase.Update: Failed to update source: %v", err)
		return model.Source{}, err
	}
	return s, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !sc.CanWrite() {
		return source.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSourceNotFound) {
			return source.ErrSourceNotFound
		}
		uc.l.Errorf(ctx, "source.usecase.Delete: Failed to delete source: %v", err)
		return err
	}
	return nil
}
