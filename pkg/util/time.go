package util

import (
	"fmt"
	"time"
)

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

// All helpers below keep the location of their input.

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Quarter returns 1..4.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func StartOfQuarter(t time.Time) time.Time {
	firstMonth := time.Month((Quarter(t)-1)*3 + 1)
	return time.Date(t.Year(), firstMonth, 1, 0, 0, 0, 0, t.Location())
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func DaysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// AddMonths adds months to t, clamping the day to the length of the target month
// so Jan 31 + 1 month is Feb 28/29 rather than early March.
func AddMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := DaysInMonth(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// ParseDate parses YYYY-MM-DD at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateFormat, s, loc)
}

// ParseClock parses an HH:MM wall-clock time.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock %q: want HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}
