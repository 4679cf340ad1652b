package model

import "time"

// CalculationType selects how per-source values combine into one metric.
type CalculationType string

const (
	CalculationSum     CalculationType = "sum"
	CalculationAverage CalculationType = "average"
	CalculationCount   CalculationType = "count"
	CalculationMin     CalculationType = "min"
	CalculationMax     CalculationType = "max"
	CalculationLatest  CalculationType = "latest"
	CalculationCustom  CalculationType = "custom"
)

func (c CalculationType) IsValid() bool {
	switch c {
	case CalculationSum, CalculationAverage, CalculationCount, CalculationMin,
		CalculationMax, CalculationLatest, CalculationCustom:
		return true
	}
	return false
}

// SourceMetric points at one field of one source.
type SourceMetric struct {
	SourceID string `json:"source_id"`
	FieldID  string `json:"field_id"`
}

// MetricMapping is a named aggregate over source fields. In a custom
// formula, metric1..N bind to SourceMetrics by position.
type MetricMapping struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SourceMetrics   []SourceMetric  `json:"source_metrics"`
	CalculationType CalculationType `json:"calculation_type"`
	CustomFormula   string          `json:"custom_formula,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SourceIDs returns the distinct source ids referenced, in first-seen order.
func (m MetricMapping) SourceIDs() []string {
	seen := make(map[string]struct{}, len(m.SourceMetrics))
	ids := make([]string, 0, len(m.SourceMetrics))
	for _, sm := range m.SourceMetrics {
		if _, ok := seen[sm.SourceID]; ok {
			continue
		}
		seen[sm.SourceID] = struct{}{}
		ids = append(ids, sm.SourceID)
	}
	return ids
}
