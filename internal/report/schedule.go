package report

import (
	"net/mail"
	"strings"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/util"
)

// DefaultScheduleTime is used when a schedule has no time of day.
const DefaultScheduleTime = "09:00"

// NormalizeSchedule fills defaults in place and validates s. Weekly
// schedules default to Sunday, monthly and quarterly ones to day 1.
// Recipients are trimmed and must be valid addresses.
func NormalizeSchedule(s *model.ReportSchedule) error {
	if s == nil {
		return nil
	}
	if !s.Frequency.IsValid() {
		return ErrInvalidSchedule
	}

	s.Time = strings.TrimSpace(s.Time)
	if s.Time == "" {
		s.Time = DefaultScheduleTime
	}
	if _, _, err := util.ParseClock(s.Time); err != nil {
		return ErrInvalidSchedule
	}

	switch s.Frequency {
	case model.FrequencyDaily:
		s.Day = 0
	case model.FrequencyWeekly:
		if s.Day < 0 || s.Day > 6 {
			return ErrInvalidSchedule
		}
	default:
		if s.Day == 0 {
			s.Day = 1
		}
		if s.Day < 1 || s.Day > 31 {
			return ErrInvalidSchedule
		}
	}

	recipients := make([]string, 0, len(s.Recipients))
	seen := make(map[string]struct{}, len(s.Recipients))
	for _, r := range s.Recipients {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		addr, err := mail.ParseAddress(r)
		if err != nil {
			return ErrInvalidRecipient
		}
		key := strings.ToLower(addr.Address)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		recipients = append(recipients, addr.Address)
	}
	s.Recipients = recipients
	return nil
}

// NextRun returns the first scheduled instant strictly after after, in
// after's location. Days past the end of a month are clamped to its last
// day. Quarterly schedules fire in January, April, July and October.
func NextRun(s model.ReportSchedule, after time.Time) time.Time {
	hh, mm, err := util.ParseClock(s.Time)
	if err != nil {
		hh, mm, _ = util.ParseClock(DefaultScheduleTime)
	}
	loc := after.Location()
	y, m, d := after.Date()

	switch s.Frequency {
	case model.FrequencyWeekly:
		delta := (s.Day - int(after.Weekday()) + 7) % 7
		next := time.Date(y, m, d+delta, hh, mm, 0, 0, loc)
		if !next.After(after) {
			next = time.Date(y, m, d+delta+7, hh, mm, 0, 0, loc)
		}
		return next

	case model.FrequencyMonthly:
		next := clampedDate(y, m, s.Day, hh, mm, loc)
		if !next.After(after) {
			next = clampedDate(y, m+1, s.Day, hh, mm, loc)
		}
		return next

	case model.FrequencyQuarterly:
		first := time.Month((int(m)-1)/3*3 + 1)
		next := clampedDate(y, first, s.Day, hh, mm, loc)
		if !next.After(after) {
			next = clampedDate(y, first+3, s.Day, hh, mm, loc)
		}
		return next

	default:
		next := time.Date(y, m, d, hh, mm, 0, 0, loc)
		if !next.After(after) {
			next = time.Date(y, m, d+1, hh, mm, 0, 0, loc)
		}
		return next
	}
}

// clampedDate builds y-m-day hh:mm with day clamped into the month. m may
// overflow into the next year.
func clampedDate(y int, m time.Month, day, hh, mm int, loc *time.Location) time.Time {
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1).Day()
	if day < 1 {
		day = 1
	}
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hh, mm, 0, 0, loc)
}
