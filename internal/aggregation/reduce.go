package aggregation

import "analytics-srv/internal/model"

// ReduceSourceMetrics returns one total per source metric, in order. Only
// completed posts of the matching source dated inside iv count; missing or
// non-numeric values contribute 0.
func ReduceSourceMetrics(sms []model.SourceMetric, posts []model.Post, iv Interval) []float64 {
	values := make([]float64, len(sms))
	if len(sms) == 0 {
		return values
	}

	eligible := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status != model.PostStatusCompleted || len(p.Metrics) == 0 {
			continue
		}
		if !iv.Contains(p.Date) {
			continue
		}
		eligible = append(eligible, p)
	}

	for i, sm := range sms {
		var total float64
		for _, p := range eligible {
			if p.SourceID != sm.SourceID {
				continue
			}
			total += p.Metric(sm.FieldID)
		}
		values[i] = total
	}
	return values
}
