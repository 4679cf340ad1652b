package aggregation

import (
	"errors"
	"testing"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/formula"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCalculations = []model.CalculationType{
	model.CalculationSum,
	model.CalculationAverage,
	model.CalculationCount,
	model.CalculationMin,
	model.CalculationMax,
	model.CalculationLatest,
	model.CalculationCustom,
}

func TestCalculate_EmptyListIsZero(t *testing.T) {
	for _, calc := range allCalculations {
		for _, values := range [][]float64{nil, {}} {
			got, err := Calculate(calc, "metric1 + 5", values)
			require.NoError(t, err, string(calc))
			assert.Equal(t, 0.0, got, string(calc))
		}
	}
}

func TestCalculate(t *testing.T) {
	values := []float64{40, 10, 25}

	tests := []struct {
		calc model.CalculationType
		want float64
	}{
		{model.CalculationSum, 75},
		{model.CalculationAverage, 25},
		{model.CalculationCount, 3},
		{model.CalculationMin, 10},
		{model.CalculationMax, 40},
		{model.CalculationLatest, 25},
	}
	for _, tc := range tests {
		t.Run(string(tc.calc), func(t *testing.T) {
			got, err := Calculate(tc.calc, "", values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculate_SumEqualsAverageTimesLength(t *testing.T) {
	lists := [][]float64{
		{1},
		{3, 4},
		{0.1, 0.2, 0.3},
		{-5, 12.5, 1e6, 7},
		{0, 0, 0, 0, 0},
	}
	for _, l := range lists {
		s, err := Calculate(model.CalculationSum, "", l)
		require.NoError(t, err)
		avg, err := Calculate(model.CalculationAverage, "", l)
		require.NoError(t, err)
		assert.InDelta(t, s, avg*float64(len(l)), 1e-9)
	}
}

func TestCalculate_LatestIgnoresMagnitude(t *testing.T) {
	got, err := Calculate(model.CalculationLatest, "", []float64{1000, 5, 999})
	require.NoError(t, err)
	assert.Equal(t, 999.0, got)

	got, err = Calculate(model.CalculationLatest, "", []float64{1000, 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestCalculate_Custom(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		values  []float64
		want    float64
	}{
		{name: "ratio", formula: "metric1 / metric2 * 100", values: []float64{50, 200}, want: 25},
		{name: "total impressions", formula: "totalImpressions", values: []float64{50, 200}, want: 250},
		{name: "share of total", formula: "metric2 / totalImpressions * 100", values: []float64{25, 75}, want: 75},
		{name: "out of range index", formula: "metric1 + metric5", values: []float64{7, 3}, want: 7},
		{name: "metric0 is out of range", formula: "metric0 + 1", values: []float64{7}, want: 1},
		{name: "leading zero index", formula: "metric02", values: []float64{7, 3}, want: 3},
		{name: "no formula", formula: "  ", values: []float64{7}, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Calculate(model.CalculationCustom, tc.formula, tc.values)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestCalculate_CustomFailuresYieldZero(t *testing.T) {
	tests := []struct {
		name    string
		formula string
	}{
		{name: "syntax", formula: "metric1 +"},
		{name: "code injection", formula: "process.exit(1)"},
		{name: "unknown identifier", formula: "metric1 * impressions"},
		{name: "division by zero", formula: "metric1 / metric2"},
		{name: "zero over zero", formula: "metric2 / metric2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Calculate(model.CalculationCustom, tc.formula, []float64{10, 0})
			assert.Error(t, err)
			assert.Equal(t, 0.0, got)
		})
	}
}

func TestCalculate_UnknownType(t *testing.T) {
	got, err := Calculate("median", "", []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnknownCalculationType)
	assert.Equal(t, 0.0, got)
}

func TestCalculate_FormulaSubstitutionIsPositional(t *testing.T) {
	base := []float64{10, 20, 30}
	changed := []float64{10, 99, 30}

	uses, err := Calculate(model.CalculationCustom, "metric1 + metric2 * 2 - metric3", base)
	require.NoError(t, err)
	usesChanged, err := Calculate(model.CalculationCustom, "metric1 + metric2 * 2 - metric3", changed)
	require.NoError(t, err)
	assert.NotEqual(t, uses, usesChanged)

	ignores, err := Calculate(model.CalculationCustom, "metric1 * 3 + metric3", base)
	require.NoError(t, err)
	ignoresChanged, err := Calculate(model.CalculationCustom, "metric1 * 3 + metric3", changed)
	require.NoError(t, err)
	assert.Equal(t, ignores, ignoresChanged)
}

func TestCheckFormula(t *testing.T) {
	assert.NoError(t, CheckFormula("metric1 / metric2 * 100"))
	assert.NoError(t, CheckFormula("totalImpressions / 2"))

	var unknown *formula.UnknownIdentifierError
	assert.True(t, errors.As(CheckFormula("metric1 + reach"), &unknown))
	assert.Equal(t, "reach", unknown.Name)

	var syntax *formula.SyntaxError
	assert.True(t, errors.As(CheckFormula("metric1 +* 2"), &syntax))
}
