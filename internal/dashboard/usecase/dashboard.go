package usecase

import (
	"context"
	"errors"

	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/dashboard/repository"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"

	"github.com/google/uuid"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input dashboard.CreateInput) (model.Dashboard, error) {
	if !sc.CanWrite() {
		return model.Dashboard{}, dashboard.ErrForbidden
	}

	in := dashboardInput(input)
	if err := uc.validate(ctx, &in); err != nil {
		return model.Dashboard{}, err
	}

	d, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Widgets:     in.Widgets,
		IsDefault:   in.IsDefault,
		CreatedBy:   sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Create: Failed to create dashboard: %v", err)
		return model.Dashboard{}, err
	}
	return d, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Dashboard, error) {
	d, err := uc.repo.Detail(ctx, id)
	if err != nil {
		return model.Dashboard{}, uc.mapRepoError(ctx, "Detail", err)
	}
	if !sc.CanRead(d.CreatedBy) {
		return model.Dashboard{}, dashboard.ErrForbidden
	}
	return d, nil
}

// Default returns the caller's default dashboard.
func (uc *implUseCase) Default(ctx context.Context, sc model.Scope) (model.Dashboard, error) {
	d, err := uc.repo.Default(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrDashboardNotFound) {
			return model.Dashboard{}, dashboard.ErrNoDefaultDashboard
		}
		return model.Dashboard{}, uc.mapRepoError(ctx, "Default", err)
	}
	return d, nil
}

// List returns the caller's dashboards; admins see every owner's.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input dashboard.ListInput) (dashboard.ListOutput, error) {
	input.Paginator.Adjust()

	filter := repository.FilterOptions{CreatedBy: sc.UserID}
	if sc.IsAdmin() {
		filter.CreatedBy = ""
	}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.List: Failed to count dashboards: %v", err)
		return dashboard.ListOutput{}, err
	}

	ds, err := uc.repo.List(ctx, repository.ListOptions{
		FilterOptions: filter,
		Limit:         input.Paginator.Limit,
		Offset:        input.Paginator.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.List: Failed to list dashboards: %v", err)
		return dashboard.ListOutput{}, err
	}

	return dashboard.ListOutput{
		Dashboards: ds,
		Paginator:  paginator.New(input.Paginator, total, int64(len(ds))),
	}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input dashboard.UpdateInput) (model.Dashboard, error) {
	current, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		return model.Dashboard{}, uc.mapRepoError(ctx, "Update", err)
	}
	if !canModify(sc, current) {
		return model.Dashboard{}, dashboard.ErrForbidden
	}

	in := dashboardInput{
		Name:        input.Name,
		Description: input.Description,
		Widgets:     input.Widgets,
		IsDefault:   input.IsDefault,
	}
	if err := uc.validate(ctx, &in); err != nil {
		return model.Dashboard{}, err
	}

	d, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:          current.ID,
		Name:        in.Name,
		Description: in.Description,
		Widgets:     in.Widgets,
		IsDefault:   in.IsDefault,
		CreatedBy:   current.CreatedBy,
	})
	if err != nil {
		return model.Dashboard{}, uc.mapRepoError(ctx, "Update", err)
	}

	uc.invalidate(ctx, d.ID)
	return d, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	current, err := uc.repo.Detail(ctx, id)
	if err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}
	if !canModify(sc, current) {
		return dashboard.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}

	uc.invalidate(ctx, id)
	return nil
}

func (uc *implUseCase) InvalidateCache(ctx context.Context) error {
	if uc.cache == nil {
		return nil
	}
	if err := uc.cache.InvalidateAll(ctx); err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.InvalidateCache: %v", err)
		return err
	}
	return nil
}
