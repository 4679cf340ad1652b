package aggregation

import (
	"strconv"
	"strings"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/formula"
)

// Identifiers bound inside custom formulas.
const (
	metricPrefix          = "metric"
	identTotalImpressions = "totalImpressions"
)

// Calculate reduces per-source values to one number. An empty list is 0 for
// every calculation type. A non-nil error always comes with a 0 value and
// only describes why the calculation degraded.
func Calculate(calc model.CalculationType, customFormula string, values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, nil
	}

	switch calc {
	case model.CalculationSum:
		return sum(values), nil
	case model.CalculationAverage:
		return sum(values) / float64(len(values)), nil
	case model.CalculationCount:
		return float64(len(values)), nil
	case model.CalculationMin:
		m := values[0]
		for _, v := range values[1:] {
			if v < m {
				m = v
			}
		}
		return m, nil
	case model.CalculationMax:
		m := values[0]
		for _, v := range values[1:] {
			if v > m {
				m = v
			}
		}
		return m, nil
	case model.CalculationLatest:
		return values[len(values)-1], nil
	case model.CalculationCustom:
		if strings.TrimSpace(customFormula) == "" {
			return 0, nil
		}
		v, err := formula.Evaluate(customFormula, Bindings(values))
		if err != nil {
			return 0, err
		}
		return v, nil
	default:
		return 0, ErrUnknownCalculationType
	}
}

// Bindings resolves formula identifiers against per-source values:
// metricN is values[N-1] (0 when out of range) and totalImpressions is
// the sum of all values.
func Bindings(values []float64) formula.Resolver {
	total := sum(values)
	return func(name string) (float64, bool) {
		if name == identTotalImpressions {
			return total, true
		}
		digits, ok := strings.CutPrefix(name, metricPrefix)
		if !ok || digits == "" {
			return 0, false
		}
		for _, r := range digits {
			if r < '0' || r > '9' {
				return 0, false
			}
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 || n > len(values) {
			return 0, true
		}
		return values[n-1], true
	}
}

// CheckFormula reports whether src parses and only references identifiers
// Bindings understands.
func CheckFormula(src string) error {
	expr, err := formula.Parse(src)
	if err != nil {
		return err
	}
	resolve := Bindings(nil)
	for _, name := range expr.Identifiers() {
		if _, ok := resolve(name); !ok {
			return &formula.UnknownIdentifierError{Name: name}
		}
	}
	return nil
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}
