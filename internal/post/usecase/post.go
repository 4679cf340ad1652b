package usecase

import (
	"context"
	"strings"

	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/internal/post/repository"
	"analytics-srv/pkg/paginator"

	"github.com/google/uuid"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input post.CreateInput) (model.Post, error) {
	if !sc.CanWrite() {
		return model.Post{}, post.ErrForbidden
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return model.Post{}, post.ErrTitleRequired
	}
	if input.Status == "" {
		input.Status = model.PostStatusDraft
	}
	if !input.Status.IsValid() {
		return model.Post{}, post.ErrInvalidStatus
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return model.Post{}, err
	}
	if _, err := uc.loadSource(ctx, sc, input.SourceID); err != nil {
		return model.Post{}, err
	}

	p, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:        uuid.New().String(),
		Title:     input.Title,
		SourceID:  input.SourceID,
		Date:      date,
		Status:    input.Status,
		Content:   input.Content,
		CreatedBy: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Create: Failed to create post: %v", err)
		return model.Post{}, err
	}

	uc.publish(ctx, p, post.ActionCreated)
	return p, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Post, error) {
	p, err := uc.repo.Detail(ctx, id)
	if err != nil {
		return model.Post{}, uc.mapRepoError(ctx, "Detail", err)
	}
	return p, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input post.ListInput) (post.ListOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return post.ListOutput{}, post.ErrInvalidStatus
	}
	from, err := parseOptionalDate(input.From)
	if err != nil {
		return post.ListOutput{}, err
	}
	to, err := parseOptionalDate(input.To)
	if err != nil {
		return post.ListOutput{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return post.ListOutput{}, post.ErrInvalidDateRange
	}

	input.Paginator.Adjust()
	filter := repository.FilterOptions{
		SourceID: input.SourceID,
		Status:   input.Status,
		From:     from,
		To:       to,
	}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.List: Failed to count posts: %v", err)
		return post.ListOutput{}, err
	}

	posts, err := uc.repo.List(ctx, repository.ListOptions{
		FilterOptions: filter,
		Limit:         input.Paginator.Limit,
		Offset:        input.Paginator.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.List: Failed to list posts: %v", err)
		return post.ListOutput{}, err
	}

	return post.ListOutput{
		Posts:     posts,
		Paginator: paginator.New(input.Paginator, total, int64(len(posts))),
	}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input post.UpdateInput) (model.Post, error) {
	if !sc.CanWrite() {
		return model.Post{}, post.ErrForbidden
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return model.Post{}, post.ErrTitleRequired
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return model.Post{}, err
	}

	current, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		return model.Post{}, uc.mapRepoError(ctx, "Update", err)
	}
	if input.SourceID == "" {
		input.SourceID = current.SourceID
	}
	if input.SourceID != current.SourceID {
		if _, err := uc.loadSource(ctx, sc, input.SourceID); err != nil {
			return model.Post{}, err
		}
	}

	p, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:       input.ID,
		Title:    input.Title,
		SourceID: input.SourceID,
		Date:     date,
		Content:  input.Content,
	})
	if err != nil {
		return model.Post{}, uc.mapRepoError(ctx, "Update", err)
	}

	// A moved post leaves its old date or source stale in cached renders too.
	if current.Date != p.Date || current.SourceID != p.SourceID {
		uc.publish(ctx, current, post.ActionUpdated)
	}
	uc.publish(ctx, p, post.ActionUpdated)
	return p, nil
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input post.UpdateStatusInput) (model.Post, error) {
	if !sc.CanWrite() {
		return model.Post{}, post.ErrForbidden
	}
	if !input.Status.IsValid() {
		return model.Post{}, post.ErrInvalidStatus
	}

	current, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		return model.Post{}, uc.mapRepoError(ctx, "UpdateStatus", err)
	}
	if !current.Status.CanTransitionTo(input.Status) {
		return model.Post{}, post.ErrInvalidStatusTransition
	}
	if current.Status == input.Status {
		return current, nil
	}

	p, err := uc.repo.UpdateStatus(ctx, input.ID, input.Status)
	if err != nil {
		return model.Post{}, uc.mapRepoError(ctx, "UpdateStatus", err)
	}

	uc.publish(ctx, p, post.ActionStatusChanged)
	return p, nil
}

// RecordMetrics replaces the post's metrics and marks it completed.
func (uc *implUseCase) RecordMetrics(ctx context.Context, sc model.Scope, input post.RecordMetricsInput) (model.Post, error) {
	if !sc.CanWrite() {
		return model.Post{}, post.ErrForbidden
	}

	current, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		return model.Post{}, uc.mapRepoError(ctx, "RecordMetrics", err)
	}
	s, err := uc.loadSource(ctx, sc, current.SourceID)
	if err != nil {
		return model.Post{}, err
	}
	metrics, err := buildMetrics(s, input.Values)
	if err != nil {
		return model.Post{}, err
	}

	p, err := uc.repo.UpdateMetrics(ctx, repository.UpdateMetricsOptions{
		ID:      input.ID,
		Metrics: metrics,
		Status:  model.PostStatusCompleted,
	})
	if err != nil {
		return model.Post{}, uc.mapRepoError(ctx, "RecordMetrics", err)
	}

	uc.publish(ctx, p, post.ActionMetrics)
	return p, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !sc.CanWrite() {
		return post.ErrForbidden
	}

	p, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}

	uc.publish(ctx, p, post.ActionDeleted)
	return nil
}

func (uc *implUseCase) ListForEvaluation(ctx context.Context, input post.EvaluationInput) ([]model.Post, error) {
	posts, err := uc.repo.ListForEvaluation(ctx, repository.EvaluationOptions{
		SourceIDs: input.SourceIDs,
		From:      input.From,
		To:        input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.ListForEvaluation: Failed to list posts: %v", err)
		return nil, err
	}
	return posts, nil
}
