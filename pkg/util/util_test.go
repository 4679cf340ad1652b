package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarHelpers(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// Wednesday.
	now := time.Date(2024, time.May, 15, 13, 45, 10, 0, loc)

	assert.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, loc), StartOfDay(now))
	assert.Equal(t, time.Date(2024, time.May, 15, 23, 59, 59, 999999999, loc), EndOfDay(now))
	assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, loc), StartOfWeek(now))
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, loc), StartOfMonth(now))
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, loc), StartOfQuarter(now))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, loc), StartOfYear(now))
	assert.Equal(t, 2, Quarter(now))

	sunday := time.Date(2024, time.May, 12, 8, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, loc), StartOfWeek(sunday))
}

func TestAddMonths(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC), AddMonths(jan31, 1))
	assert.Equal(t, time.Date(2023, time.December, 31, 9, 0, 0, 0, time.UTC), AddMonths(jan31, -1))
	assert.Equal(t, time.Date(2025, time.February, 28, 9, 0, 0, 0, time.UTC), AddMonths(jan31, 13))
	assert.Equal(t, 29, DaysInMonth(2024, time.February, time.UTC))
	assert.Equal(t, 28, DaysInMonth(2023, time.February, time.UTC))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	_, _, err = ParseClock("25:00")
	assert.Error(t, err)
	_, _, err = ParseClock("9am")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29", nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.Format(DateFormat))

	_, err = ParseDate("2023-02-29", time.UTC)
	assert.Error(t, err)
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "link_clicks_total", ToSnake("Link Clicks (Total)"))
	assert.Equal(t, "impressions", ToSnake("  Impressions "))
	assert.Equal(t, "ctr_2", ToSnake("CTR-2"))
	assert.Equal(t, "", ToSnake("!!"))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, IsHexColor("#1DA1F2"))
	assert.NoError(t, IsHexColor("#fff"))
	assert.Error(t, IsHexColor("blue"))
}

func TestMapSliceAndUnique(t *testing.T) {
	out := MapSlice([]int{1, 2, 3, 4}, func(v int) *string {
		if v%2 == 0 {
			return nil
		}
		s := string(rune('a' + v))
		return &s
	})
	assert.Equal(t, []string{"b", "d"}, out)
	assert.Equal(t, []string{"s1", "s2"}, Unique([]string{"s1", "s2", "s1"}))
}
