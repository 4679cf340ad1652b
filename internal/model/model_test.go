package model

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricValue_Float(t *testing.T) {
	tests := []struct {
		name string
		v    MetricValue
		want float64
	}{
		{name: "number", v: NumberValue(12.5), want: 12.5},
		{name: "percentage", v: PercentageValue(3), want: 3},
		{name: "currency", v: CurrencyValue(9.99), want: 9.99},
		{name: "numeric text", v: TextValue(" 42 "), want: 42},
		{name: "non numeric text", v: TextValue("n/a"), want: 0},
		{name: "nan text", v: TextValue("NaN"), want: 0},
		{name: "infinite text", v: TextValue("Inf"), want: 0},
		{name: "date", v: DateValue("2024-05-01"), want: 0},
		{name: "nan number", v: NumberValue(math.NaN()), want: 0},
		{name: "zero value", v: MetricValue{}, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Float())
		})
	}
}

func TestNewMetricValue(t *testing.T) {
	v, err := NewMetricValue(FieldTypeNumber, float64(100))
	require.NoError(t, err)
	assert.Equal(t, NumberValue(100), v)

	v, err = NewMetricValue(FieldTypeCurrency, "19.5")
	require.NoError(t, err)
	assert.Equal(t, CurrencyValue(19.5), v)

	v, err = NewMetricValue(FieldTypeText, float64(3))
	require.NoError(t, err)
	assert.Equal(t, TextValue("3"), v)

	_, err = NewMetricValue(FieldTypeNumber, "lots")
	assert.ErrorIs(t, err, ErrInvalidMetricValue)

	_, err = NewMetricValue(FieldTypeNumber, []any{1})
	assert.ErrorIs(t, err, ErrInvalidMetricValue)

	_, err = NewMetricValue("weird", 1)
	assert.ErrorIs(t, err, ErrInvalidMetricValue)
}

func TestMetricValue_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]MetricValue{"likes": NumberValue(7), "note": TextValue("hi")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"likes":{"type":"number","number":7},"note":{"type":"text","text":"hi"}}`, string(data))

	var decoded map[string]MetricValue
	require.NoError(t, json.Unmarshal([]byte(`{"a":{"type":"currency","number":2.5},"b":5,"c":"x","d":true,"e":null}`), &decoded))
	assert.Equal(t, CurrencyValue(2.5), decoded["a"])
	assert.Equal(t, NumberValue(5), decoded["b"])
	assert.Equal(t, TextValue("x"), decoded["c"])
	assert.Equal(t, NumberValue(1), decoded["d"])
	assert.Equal(t, 0.0, decoded["e"].Float())

	var bad MetricValue
	assert.Error(t, json.Unmarshal([]byte(`{"type":"blob"}`), &bad))
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2023-02-29")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ParseDate("29/02/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC)
	assert.True(t, d.Within(start, end))
	assert.False(t, Date{Year: 2024, Month: time.March, Day: 1}.Within(start, end))

	var scanned Date
	require.NoError(t, scanned.Scan(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-01", scanned.String())
	require.NoError(t, scanned.Scan([]byte("2024-06-02T00:00:00Z")))
	assert.Equal(t, "2024-06-02", scanned.String())

	data, err := json.Marshal(struct {
		D Date `json:"d"`
	}{D: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-02-29"}`, string(data))
}

func TestPostStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PostStatusDraft.CanTransitionTo(PostStatusScheduled))
	assert.True(t, PostStatusDraft.CanTransitionTo(PostStatusCompleted))
	assert.True(t, PostStatusPublished.CanTransitionTo(PostStatusPublished))
	assert.False(t, PostStatusCompleted.CanTransitionTo(PostStatusDraft))
	assert.False(t, PostStatusPublished.CanTransitionTo(PostStatusScheduled))
	assert.False(t, PostStatusDraft.CanTransitionTo("archived"))
}

func TestMetricMapping_SourceIDs(t *testing.T) {
	m := MetricMapping{SourceMetrics: []SourceMetric{
		{SourceID: "s2", FieldID: "a"},
		{SourceID: "s1", FieldID: "b"},
		{SourceID: "s2", FieldID: "c"},
	}}
	assert.Equal(t, []string{"s2", "s1"}, m.SourceIDs())
}

func TestDateRange_IsSet(t *testing.T) {
	var nilRange *DateRange
	assert.False(t, nilRange.IsSet())
	assert.False(t, (&DateRange{Start: Date{2024, 5, 2}, End: Date{2024, 5, 1}}).IsSet())
	assert.True(t, (&DateRange{Start: Date{2024, 5, 1}, End: Date{2024, 5, 1}}).IsSet())
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("", "")
	assert.NoError(t, err)
	assert.Nil(t, r)

	r, err = ParseDateRange("2024-05-01", "2024-05-31")
	assert.NoError(t, err)
	assert.True(t, r.IsSet())

	r, err = ParseDateRange("2024-05-01", "")
	assert.NoError(t, err)
	assert.False(t, r.IsSet())

	_, err = ParseDateRange("2024-13-01", "2024-05-31")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestScope_CanRead(t *testing.T) {
	owner := Scope{UserID: "u1", Role: RoleEditor}
	assert.True(t, owner.CanRead("u1"))
	assert.True(t, owner.CanRead(""))
	assert.False(t, owner.CanRead("u2"))
	assert.False(t, Scope{UserID: "u3", Role: RoleViewer}.CanRead("u1"))
	assert.True(t, Scope{UserID: "root", Role: RoleAdmin}.CanRead("u1"))
	assert.True(t, SystemScope().CanRead("u1"))
}
