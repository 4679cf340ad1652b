package usecase

import (
	"context"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/metric"
	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
)

// Evaluate computes a mapping over the requested range and, when asked, a
// comparison range. Only posts of the mapping's sources inside the union of
// both intervals are loaded.
func (uc *implUseCase) Evaluate(ctx context.Context, sc model.Scope, input metric.EvaluateInput) (metric.EvaluateOutput, error) {
	m, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		return metric.EvaluateOutput{}, uc.mapRepoError(ctx, "Evaluate", err)
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}
	now = now.In(uc.loc)

	ivs := []aggregation.Interval{aggregation.ResolveTimeRange(input.TimeRange, input.CustomRange, now)}
	if input.ComparisonTimeRange != "" {
		ivs = append(ivs, aggregation.ResolveTimeRange(input.ComparisonTimeRange, input.ComparisonCustomRange, now))
	}
	from, to := aggregation.Span(ivs...)

	posts, err := uc.postUC.ListForEvaluation(ctx, post.EvaluationInput{
		SourceIDs: m.SourceIDs(),
		From:      from,
		To:        to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "metric.usecase.Evaluate: Failed to load posts: %v", err)
		return metric.EvaluateOutput{}, err
	}

	in := aggregation.Input{
		Mapping:     m,
		Posts:       posts,
		TimeRange:   input.TimeRange,
		CustomRange: input.CustomRange,
		Now:         now,
	}

	if input.ComparisonTimeRange == "" {
		return metric.EvaluateOutput{
			Mapping: m,
			Current: toPeriod(uc.engine.Evaluate(ctx, in)),
		}, nil
	}

	cmp := uc.engine.Compare(ctx, in, input.ComparisonTimeRange, input.ComparisonCustomRange)
	previous := toPeriod(cmp.Previous)
	return metric.EvaluateOutput{
		Mapping:         m,
		Current:         toPeriod(cmp.Current),
		Comparison:      &previous,
		PercentChange:   cmp.PercentChange,
		ChangeAvailable: cmp.ChangeAvailable,
	}, nil
}
