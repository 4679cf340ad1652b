package usecase

import (
	"context"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/paginator"

	"github.com/google/uuid"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input report.CreateInput) (model.Report, error) {
	if !sc.CanWrite() {
		return model.Report{}, report.ErrForbidden
	}

	in := reportInput(input)
	if err := uc.validate(ctx, &in); err != nil {
		return model.Report{}, err
	}

	r, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Widgets:     in.Widgets,
		TimeRange:   in.TimeRange,
		Formats:     in.Formats,
		Schedule:    in.Schedule,
		NextRunAt:   uc.nextRunAt(in.Schedule, uc.now()),
		CreatedBy:   sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Create: Failed to create report: %v", err)
		return model.Report{}, err
	}
	return r, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Report, error) {
	return uc.readableReport(ctx, sc, id, "Detail")
}

// List returns the caller's reports; admins see every owner's.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input report.ListInput) (report.ListOutput, error) {
	input.Paginator.Adjust()

	filter := repository.FilterOptions{CreatedBy: sc.UserID}
	if sc.IsAdmin() {
		filter.CreatedBy = ""
	}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.List: Failed to count reports: %v", err)
		return report.ListOutput{}, err
	}

	rs, err := uc.repo.List(ctx, repository.ListOptions{
		FilterOptions: filter,
		Limit:         input.Paginator.Limit,
		Offset:        input.Paginator.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.List: Failed to list reports: %v", err)
		return report.ListOutput{}, err
	}

	return report.ListOutput{
		Reports:   rs,
		Paginator: paginator.New(input.Paginator, total, int64(len(rs))),
	}, nil
}

// Update replaces the definition. The next scheduled run is recomputed from
// the current time.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input report.UpdateInput) (model.Report, error) {
	current, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		return model.Report{}, uc.mapRepoError(ctx, "Update", err)
	}
	if !canModify(sc, current) {
		return model.Report{}, report.ErrForbidden
	}

	in := reportInput{
		Name:        input.Name,
		Description: input.Description,
		Widgets:     input.Widgets,
		TimeRange:   input.TimeRange,
		Formats:     input.Formats,
		Schedule:    input.Schedule,
	}
	if err := uc.validate(ctx, &in); err != nil {
		return model.Report{}, err
	}

	r, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:          current.ID,
		Name:        in.Name,
		Description: in.Description,
		Widgets:     in.Widgets,
		TimeRange:   in.TimeRange,
		Formats:     in.Formats,
		Schedule:    in.Schedule,
		NextRunAt:   uc.nextRunAt(in.Schedule, uc.now()),
	})
	if err != nil {
		return model.Report{}, uc.mapRepoError(ctx, "Update", err)
	}
	return r, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	current, err := uc.repo.Detail(ctx, id)
	if err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}
	if !canModify(sc, current) {
		return report.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}
	return nil
}
