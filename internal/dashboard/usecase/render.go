package usecase

import (
	"context"
	"encoding/json"
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/pkg/monitoring"

	"golang.org/x/sync/errgroup"
)

// Render evaluates every widget at input.Now in the service location. Only
// the owner, admins and workers may render a dashboard.
// Intervals only depend on the calendar day of now, so results are cached
// per (dashboard, day).
func (uc *implUseCase) Render(ctx context.Context, sc model.Scope, input dashboard.RenderInput) (dashboard.RenderOutput, error) {
	started := time.Now()

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}
	now = now.In(uc.loc)
	day := model.DateOf(now)

	if out, ok := uc.cachedRender(ctx, input.ID, day); ok {
		if !sc.CanRead(out.CreatedBy) {
			return dashboard.RenderOutput{}, dashboard.ErrForbidden
		}
		uc.metrics.ObserveDashboardRender(monitoring.CacheHit, time.Since(started))
		return out, nil
	}

	d, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		return dashboard.RenderOutput{}, uc.mapRepoError(ctx, "Render", err)
	}
	if !sc.CanRead(d.CreatedBy) {
		return dashboard.RenderOutput{}, dashboard.ErrForbidden
	}

	out, err := uc.render(ctx, d, now)
	if err != nil {
		return dashboard.RenderOutput{}, err
	}

	uc.storeRender(ctx, out)
	uc.metrics.ObserveDashboardRender(monitoring.CacheMiss, time.Since(started))
	return out, nil
}

type widgetPlan struct {
	widget     model.DashboardWidget
	mapping    model.MetricMapping
	found      bool
	comparison bool
}

func (uc *implUseCase) render(ctx context.Context, d model.Dashboard, now time.Time) (dashboard.RenderOutput, error) {
	mappings, err := uc.metricUC.ListByIDs(ctx, d.MetricIDs())
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.render: Failed to list metric mappings: %v", err)
		return dashboard.RenderOutput{}, err
	}
	byID := make(map[string]model.MetricMapping, len(mappings))
	for _, m := range mappings {
		byID[m.ID] = m
	}

	plans := make([]widgetPlan, len(d.Widgets))
	var (
		ivs       []aggregation.Interval
		sourceIDs []string
		seen      = map[string]struct{}{}
	)
	for i, w := range d.Widgets {
		p := widgetPlan{widget: w}
		if len(w.Metrics) > 0 {
			p.mapping, p.found = byID[w.Metrics[0]]
		}
		p.comparison = w.DisplayOptions.ShowChange && w.DisplayOptions.ComparisonTimeRange != ""
		plans[i] = p
		if !p.found {
			continue
		}

		ivs = append(ivs, aggregation.ResolveTimeRange(w.TimeRange, w.CustomTimeRange, now))
		if p.comparison {
			ivs = append(ivs, aggregation.ResolveTimeRange(w.DisplayOptions.ComparisonTimeRange, nil, now))
		}
		for _, id := range p.mapping.SourceIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			sourceIDs = append(sourceIDs, id)
		}
	}

	var posts []model.Post
	if len(sourceIDs) > 0 {
		from, to := aggregation.Span(ivs...)
		posts, err = uc.postUC.ListForEvaluation(ctx, post.EvaluationInput{
			SourceIDs: sourceIDs,
			From:      from,
			To:        to,
		})
		if err != nil {
			uc.l.Errorf(ctx, "dashboard.usecase.render: Failed to load posts: %v", err)
			return dashboard.RenderOutput{}, err
		}
	}

	results := make([]dashboard.WidgetResult, len(plans))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultRenderConcurrency)
	for i := range plans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.renderWidget(gctx, plans[i], posts, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dashboard.RenderOutput{}, err
	}

	return dashboard.RenderOutput{
		DashboardID: d.ID,
		Name:        d.Name,
		Day:         model.DateOf(now),
		Widgets:     results,
		RenderedAt:  now,
		CreatedBy:   d.CreatedBy,
	}, nil
}

func (uc *implUseCase) renderWidget(ctx context.Context, p widgetPlan, posts []model.Post, now time.Time) dashboard.WidgetResult {
	w := p.widget
	res := dashboard.WidgetResult{
		WidgetID:       w.ID,
		Name:           w.Name,
		Type:           w.Type,
		Layout:         w.Layout,
		DisplayOptions: w.DisplayOptions,
	}
	if len(w.Metrics) > 0 {
		res.MetricID = w.Metrics[0]
	}

	iv := aggregation.ResolveTimeRange(w.TimeRange, w.CustomTimeRange, now)
	res.Start, res.End, res.Fallback = iv.Start, iv.End, iv.Fallback
	if !p.found {
		res.Error = dashboard.ErrMetricNotFound.Error()
		return res
	}

	in := aggregation.Input{
		Mapping:     p.mapping,
		Posts:       applyFilters(posts, w.Filters),
		TimeRange:   w.TimeRange,
		CustomRange: w.CustomTimeRange,
		Now:         now,
	}

	if !p.comparison {
		r := uc.engine.Evaluate(ctx, in)
		res.Value = &r.Value
		res.FormattedValue = formatValue(r.Value, w.DisplayOptions)
		return res
	}

	cmp := uc.engine.Compare(ctx, in, w.DisplayOptions.ComparisonTimeRange, nil)
	res.Value = &cmp.Current.Value
	res.FormattedValue = formatValue(cmp.Current.Value, w.DisplayOptions)
	res.ComparisonValue = &cmp.Previous.Value
	res.ComparisonLabel = comparisonLabel(w.DisplayOptions.ComparisonTimeRange)
	if cmp.ChangeAvailable {
		res.PercentChange = &cmp.PercentChange
	}
	return res
}

func (uc *implUseCase) cachedRender(ctx context.Context, id string, day model.Date) (dashboard.RenderOutput, bool) {
	if uc.cache == nil {
		return dashboard.RenderOutput{}, false
	}
	data, ok, err := uc.cache.GetRender(ctx, id, day)
	if err != nil || !ok {
		return dashboard.RenderOutput{}, false
	}

	var out dashboard.RenderOutput
	if err := json.Unmarshal(data, &out); err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.cachedRender: Failed to unmarshal cached render: %v", err)
		return dashboard.RenderOutput{}, false
	}
	out.Cached = true
	return out, true
}

func (uc *implUseCase) storeRender(ctx context.Context, out dashboard.RenderOutput) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(out)
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.storeRender: Failed to marshal render: %v", err)
		return
	}
	_ = uc.cache.SetRender(ctx, out.DashboardID, out.Day, data)
}
