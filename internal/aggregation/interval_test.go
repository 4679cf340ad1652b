package aggregation

import (
	"testing"
	"time"

	"analytics-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 999999999, time.UTC)
}

func TestResolveTimeRange(t *testing.T) {
	// Wednesday.
	now := time.Date(2024, time.May, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		token model.TimeRange
		start time.Time
		end   time.Time
	}{
		{model.TimeRangeToday, day(2024, 5, 15), endDay(2024, 5, 15)},
		{model.TimeRangeYesterday, day(2024, 5, 14), endDay(2024, 5, 14)},
		{model.TimeRangeThisWeek, day(2024, 5, 12), endDay(2024, 5, 18)},
		{model.TimeRangeLastWeek, day(2024, 5, 5), endDay(2024, 5, 11)},
		{model.TimeRangeThisMonth, day(2024, 5, 1), endDay(2024, 5, 31)},
		{model.TimeRangeLastMonth, day(2024, 4, 1), endDay(2024, 4, 30)},
		{model.TimeRangeThisQuarter, day(2024, 4, 1), endDay(2024, 6, 30)},
		{model.TimeRangeLastQuarter, day(2024, 1, 1), endDay(2024, 3, 31)},
		{model.TimeRangeThisYear, day(2024, 1, 1), endDay(2024, 12, 31)},
		{model.TimeRangeLastYear, day(2023, 1, 1), endDay(2023, 12, 31)},
	}

	for _, tc := range tests {
		t.Run(string(tc.token), func(t *testing.T) {
			iv := ResolveTimeRange(tc.token, nil, now)
			assert.Equal(t, tc.start, iv.Start)
			assert.Equal(t, tc.end, iv.End)
			assert.False(t, iv.Fallback)
			assert.False(t, iv.Start.After(iv.End))
		})
	}
}

func TestResolveTimeRange_CalendarStepping(t *testing.T) {
	// A fixed 30 day offset from March 31st would land in March again.
	iv := ResolveTimeRange(model.TimeRangeLastMonth, nil, time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, day(2024, 2, 1), iv.Start)
	assert.Equal(t, endDay(2024, 2, 29), iv.End)

	iv = ResolveTimeRange(model.TimeRangeLastMonth, nil, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, day(2023, 12, 1), iv.Start)
	assert.Equal(t, endDay(2023, 12, 31), iv.End)

	iv = ResolveTimeRange(model.TimeRangeLastQuarter, nil, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, day(2023, 10, 1), iv.Start)
	assert.Equal(t, endDay(2023, 12, 31), iv.End)

	// Sunday is the first day of its own week.
	iv = ResolveTimeRange(model.TimeRangeThisWeek, nil, time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, day(2024, 6, 2), iv.Start)
	assert.Equal(t, endDay(2024, 6, 8), iv.End)

	iv = ResolveTimeRange(model.TimeRangeYesterday, nil, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, day(2024, 2, 29), iv.Start)
}

func TestResolveTimeRange_Fallback(t *testing.T) {
	now := time.Date(2024, time.May, 15, 10, 30, 0, 0, time.UTC)
	thisMonth := ResolveTimeRange(model.TimeRangeThisMonth, nil, now)

	for _, tc := range []struct {
		name   string
		token  model.TimeRange
		custom *model.DateRange
	}{
		{name: "custom without bounds", token: model.TimeRangeCustom},
		{name: "custom with reversed bounds", token: model.TimeRangeCustom, custom: &model.DateRange{
			Start: model.Date{Year: 2024, Month: 5, Day: 10},
			End:   model.Date{Year: 2024, Month: 5, Day: 1},
		}},
		{name: "unknown token", token: "fortnight"},
		{name: "empty token", token: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			iv := ResolveTimeRange(tc.token, tc.custom, now)
			assert.True(t, iv.Fallback)
			assert.Equal(t, thisMonth.Start, iv.Start)
			assert.Equal(t, thisMonth.End, iv.End)
		})
	}
}

func TestResolveTimeRange_Custom(t *testing.T) {
	now := time.Date(2024, time.May, 15, 10, 30, 0, 0, time.UTC)
	iv := ResolveTimeRange(model.TimeRangeCustom, &model.DateRange{
		Start: model.Date{Year: 2024, Month: 2, Day: 10},
		End:   model.Date{Year: 2024, Month: 2, Day: 20},
	}, now)

	assert.False(t, iv.Fallback)
	assert.Equal(t, day(2024, 2, 10), iv.Start)
	assert.Equal(t, endDay(2024, 2, 20), iv.End)
	assert.True(t, iv.Contains(model.Date{Year: 2024, Month: 2, Day: 20}))
	assert.False(t, iv.Contains(model.Date{Year: 2024, Month: 2, Day: 21}))
}

func TestResolveTimeRange_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	// 2024-05-31 20:00 UTC is already June 1st in loc.
	now := time.Date(2024, time.May, 31, 20, 0, 0, 0, time.UTC).In(loc)

	iv := ResolveTimeRange(model.TimeRangeToday, nil, now)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, loc), iv.Start)
	assert.Equal(t, loc, iv.Start.Location())
	assert.True(t, iv.Contains(model.Date{Year: 2024, Month: 6, Day: 1}))
	assert.False(t, iv.Contains(model.Date{Year: 2024, Month: 5, Day: 31}))
}

func TestResolveTimeRange_Idempotent(t *testing.T) {
	now := time.Date(2024, time.November, 3, 1, 30, 0, 0, time.UTC)
	for _, token := range model.TimeRanges {
		first := ResolveTimeRange(token, nil, now)
		second := ResolveTimeRange(token, nil, now)
		assert.Equal(t, first, second, string(token))
	}
}

func TestSpan(t *testing.T) {
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

	from, to := Span(
		ResolveTimeRange(model.TimeRangeThisMonth, nil, now),
		ResolveTimeRange(model.TimeRangeLastQuarter, nil, now),
	)
	assert.Equal(t, "2024-01-01", from.String())
	assert.Equal(t, "2024-05-31", to.String())

	from, to = Span()
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())
}
