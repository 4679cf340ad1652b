package report

import (
	"testing"
	"time"

	"analytics-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRun(t *testing.T) {
	utc := func(y int, m time.Month, d, hh, mm int) time.Time {
		return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		schedule model.ReportSchedule
		after    time.Time
		want     time.Time
	}{
		{
			name:     "daily later today",
			schedule: model.ReportSchedule{Frequency: model.FrequencyDaily, Time: "09:00"},
			after:    utc(2024, 5, 10, 8, 0),
			want:     utc(2024, 5, 10, 9, 0),
		},
		{
			name:     "daily at the exact time moves to tomorrow",
			schedule: model.ReportSchedule{Frequency: model.FrequencyDaily, Time: "09:00"},
			after:    utc(2024, 5, 10, 9, 0),
			want:     utc(2024, 5, 11, 9, 0),
		},
		{
			name:     "daily default time",
			schedule: model.ReportSchedule{Frequency: model.FrequencyDaily},
			after:    utc(2024, 12, 31, 12, 0),
			want:     utc(2025, 1, 1, 9, 0),
		},
		{
			name:     "weekly next monday",
			schedule: model.ReportSchedule{Frequency: model.FrequencyWeekly, Day: 1, Time: "09:00"},
			after:    utc(2024, 5, 10, 12, 0),
			want:     utc(2024, 5, 13, 9, 0),
		},
		{
			name:     "weekly same weekday already passed",
			schedule: model.ReportSchedule{Frequency: model.FrequencyWeekly, Day: 5, Time: "10:00"},
			after:    utc(2024, 5, 10, 12, 0),
			want:     utc(2024, 5, 17, 10, 0),
		},
		{
			name:     "weekly same weekday still ahead",
			schedule: model.ReportSchedule{Frequency: model.FrequencyWeekly, Day: 5, Time: "18:30"},
			after:    utc(2024, 5, 10, 12, 0),
			want:     utc(2024, 5, 10, 18, 30),
		},
		{
			name:     "monthly clamps to leap february",
			schedule: model.ReportSchedule{Frequency: model.FrequencyMonthly, Day: 31, Time: "09:00"},
			after:    utc(2024, 2, 10, 0, 0),
			want:     utc(2024, 2, 29, 9, 0),
		},
		{
			name:     "monthly rolls over to next month clamped",
			schedule: model.ReportSchedule{Frequency: model.FrequencyMonthly, Day: 31, Time: "09:00"},
			after:    utc(2024, 1, 31, 10, 0),
			want:     utc(2024, 2, 29, 9, 0),
		},
		{
			name:     "monthly across year end",
			schedule: model.ReportSchedule{Frequency: model.FrequencyMonthly, Day: 1, Time: "09:00"},
			after:    utc(2024, 12, 15, 0, 0),
			want:     utc(2025, 1, 1, 9, 0),
		},
		{
			name:     "quarterly current quarter still ahead",
			schedule: model.ReportSchedule{Frequency: model.FrequencyQuarterly, Day: 15, Time: "09:00"},
			after:    utc(2024, 1, 3, 0, 0),
			want:     utc(2024, 1, 15, 9, 0),
		},
		{
			name:     "quarterly next quarter",
			schedule: model.ReportSchedule{Frequency: model.FrequencyQuarterly, Day: 15, Time: "09:00"},
			after:    utc(2024, 5, 10, 0, 0),
			want:     utc(2024, 7, 15, 9, 0),
		},
		{
			name:     "quarterly across year end",
			schedule: model.ReportSchedule{Frequency: model.FrequencyQuarterly, Day: 1, Time: "09:00"},
			after:    utc(2024, 11, 20, 0, 0),
			want:     utc(2025, 1, 1, 9, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NextRun(tc.schedule, tc.after)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
			assert.True(t, got.After(tc.after))
		})
	}
}

func TestNextRun_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	after := time.Date(2024, 5, 10, 20, 0, 0, 0, loc)

	got := NextRun(model.ReportSchedule{Frequency: model.FrequencyDaily, Time: "08:15"}, after)

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, time.Date(2024, 5, 11, 8, 15, 0, 0, loc), got)
}

func TestNormalizeSchedule(t *testing.T) {
	t.Run("nil is fine", func(t *testing.T) {
		assert.NoError(t, NormalizeSchedule(nil))
	})

	t.Run("defaults", func(t *testing.T) {
		s := &model.ReportSchedule{Frequency: model.FrequencyMonthly}
		require.NoError(t, NormalizeSchedule(s))
		assert.Equal(t, DefaultScheduleTime, s.Time)
		assert.Equal(t, 1, s.Day)
		assert.Empty(t, s.Recipients)
	})

	t.Run("weekly keeps sunday", func(t *testing.T) {
		s := &model.ReportSchedule{Frequency: model.FrequencyWeekly}
		require.NoError(t, NormalizeSchedule(s))
		assert.Equal(t, 0, s.Day)
	})

	t.Run("daily drops day", func(t *testing.T) {
		s := &model.ReportSchedule{Frequency: model.FrequencyDaily, Day: 12}
		require.NoError(t, NormalizeSchedule(s))
		assert.Equal(t, 0, s.Day)
	})

	t.Run("recipients are trimmed and deduplicated", func(t *testing.T) {
		s := &model.ReportSchedule{
			Frequency:  model.FrequencyDaily,
			Recipients: []string{" ops@example.com ", "OPS@example.com", "", "Ana <ana@example.com>"},
		}
		require.NoError(t, NormalizeSchedule(s))
		assert.Equal(t, []string{"ops@example.com", "ana@example.com"}, s.Recipients)
	})

	invalid := []struct {
		name string
		s    model.ReportSchedule
		err  error
	}{
		{name: "frequency", s: model.ReportSchedule{Frequency: "hourly"}, err: ErrInvalidSchedule},
		{name: "time", s: model.ReportSchedule{Frequency: model.FrequencyDaily, Time: "25:00"}, err: ErrInvalidSchedule},
		{name: "weekday", s: model.ReportSchedule{Frequency: model.FrequencyWeekly, Day: 7}, err: ErrInvalidSchedule},
		{name: "month day", s: model.ReportSchedule{Frequency: model.FrequencyMonthly, Day: 32}, err: ErrInvalidSchedule},
		{name: "recipient", s: model.ReportSchedule{Frequency: model.FrequencyDaily, Recipients: []string{"not-an-email"}}, err: ErrInvalidRecipient},
	}
	for _, tc := range invalid {
		t.Run("invalid "+tc.name, func(t *testing.T) {
			s := tc.s
			assert.ErrorIs(t, NormalizeSchedule(&s), tc.err)
		})
	}
}
