package aggregation

import (
	"context"
	"errors"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/monitoring"
)

// Input is everything one evaluation depends on. Posts may be the full
// universe or any superset of the posts that can qualify.
type Input struct {
	Mapping     model.MetricMapping
	Posts       []model.Post
	TimeRange   model.TimeRange
	CustomRange *model.DateRange
	Now         time.Time
}

// Result is the value of one mapping over one interval.
type Result struct {
	Value        float64
	Interval     Interval
	SourceValues []float64
}

// Comparison holds a primary and a comparison result. PercentChange is only
// meaningful when ChangeAvailable is true.
type Comparison struct {
	Current         Result
	Previous        Result
	PercentChange   float64
	ChangeAvailable bool
}

// Engine evaluates metric mappings. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	l       log.Logger
	metrics *monitoring.Collector
}

// New builds an Engine. metrics may be nil.
func New(l log.Logger, metrics *monitoring.Collector) *Engine {
	return &Engine{l: l, metrics: metrics}
}

// Evaluate computes the mapping's value over the requested range. It never
// fails: bad formulas and unknown calculation types are logged and yield 0.
func (e *Engine) Evaluate(ctx context.Context, in Input) Result {
	iv := ResolveTimeRange(in.TimeRange, in.CustomRange, in.Now)
	if iv.Fallback {
		e.l.Debugf(ctx, "aggregation.Engine.Evaluate: time range %q resolved to %s", in.TimeRange, DefaultTimeRange)
	}
	return e.evaluateInterval(ctx, in.Mapping, in.Posts, iv)
}

// Compare evaluates the primary range of in and the comparison range and
// derives the percent change between them.
func (e *Engine) Compare(ctx context.Context, in Input, comparison model.TimeRange, comparisonCustom *model.DateRange) Comparison {
	current := e.Evaluate(ctx, in)

	prevIn := in
	prevIn.TimeRange = comparison
	prevIn.CustomRange = comparisonCustom
	previous := e.Evaluate(ctx, prevIn)

	change, ok := PercentChange(current.Value, previous.Value)
	return Comparison{
		Current:         current,
		Previous:        previous,
		PercentChange:   change,
		ChangeAvailable: ok,
	}
}

func (e *Engine) evaluateInterval(ctx context.Context, m model.MetricMapping, posts []model.Post, iv Interval) Result {
	values := ReduceSourceMetrics(m.SourceMetrics, posts, iv)

	value, err := Calculate(m.CalculationType, m.CustomFormula, values)
	outcome := monitoring.OutcomeOK
	if err != nil {
		outcome = monitoring.OutcomeFallback
		if errors.Is(err, ErrUnknownCalculationType) {
			e.l.Warnf(ctx, "aggregation.Engine.Evaluate: mapping %s has calculation type %q, using 0", m.ID, m.CalculationType)
		} else {
			e.metrics.IncFormulaFailure()
			e.l.Warnf(ctx, "aggregation.Engine.Evaluate: formula %q of mapping %s failed, using 0: %v", m.CustomFormula, m.ID, err)
		}
	}
	e.metrics.ObserveEvaluation(string(m.CalculationType), outcome)

	return Result{
		Value:        value,
		Interval:     iv,
		SourceValues: values,
	}
}

// PercentChange returns (current-previous)/previous*100. ok is false when
// previous is 0, in which case no change can be reported.
func PercentChange(current, previous float64) (float64, bool) {
	if previous == 0 {
		return 0, false
	}
	return (current - previous) / previous * 100, true
}
