package postgre

import (
	"encoding/json"

	"analytics-srv/internal/model"

	"github.com/aarondl/null/v8"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanMetric(row scanner) (model.MetricMapping, error) {
	var (
		m             model.MetricMapping
		sourceMetrics []byte
		calc          string
		formula       null.String
	)
	if err := row.Scan(&m.ID, &m.Name, &sourceMetrics, &calc, &formula, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return model.MetricMapping{}, err
	}
	m.CalculationType = model.CalculationType(calc)
	m.CustomFormula = formula.String

	if len(sourceMetrics) > 0 {
		if err := json.Unmarshal(sourceMetrics, &m.SourceMetrics); err != nil {
			return model.MetricMapping{}, err
		}
	}
	if m.SourceMetrics == nil {
		m.SourceMetrics = []model.SourceMetric{}
	}
	return m, nil
}

func marshalSourceMetrics(sms []model.SourceMetric) ([]byte, error) {
	if sms == nil {
		sms = []model.SourceMetric{}
	}
	return json.Marshal(sms)
}

func toNullFormula(calc model.CalculationType, f string) null.String {
	return null.NewString(f, calc == model.CalculationCustom && f != "")
}
