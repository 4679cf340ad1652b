package aggregation

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/util"
)

// DefaultTimeRange is used for unknown tokens and for custom without bounds.
const DefaultTimeRange = model.TimeRangeThisMonth

// Interval is an inclusive range of instants. Fallback is set when the
// requested range could not be honoured and DefaultTimeRange was used.
type Interval struct {
	Start    time.Time
	End      time.Time
	Fallback bool
}

// Contains reports whether the post date d lies inside the interval.
func (iv Interval) Contains(d model.Date) bool {
	return d.Within(iv.Start, iv.End)
}

type unit int

const (
	unitDay unit = iota
	unitWeek
	unitMonth
	unitQuarter
	unitYear
)

// ResolveTimeRange maps a token to whole calendar units around now, in
// now's location. Weeks start on Sunday. "last-*" ranges step back one
// calendar unit from the start of the current one. Unknown tokens and
// custom without valid bounds resolve to DefaultTimeRange with Fallback set.
func ResolveTimeRange(tr model.TimeRange, custom *model.DateRange, now time.Time) Interval {
	switch tr {
	case model.TimeRangeToday:
		return bounds(now, unitDay)
	case model.TimeRangeYesterday:
		return previous(now, unitDay)
	case model.TimeRangeThisWeek:
		return bounds(now, unitWeek)
	case model.TimeRangeLastWeek:
		return previous(now, unitWeek)
	case model.TimeRangeThisMonth:
		return bounds(now, unitMonth)
	case model.TimeRangeLastMonth:
		return previous(now, unitMonth)
	case model.TimeRangeThisQuarter:
		return bounds(now, unitQuarter)
	case model.TimeRangeLastQuarter:
		return previous(now, unitQuarter)
	case model.TimeRangeThisYear:
		return bounds(now, unitYear)
	case model.TimeRangeLastYear:
		return previous(now, unitYear)
	case model.TimeRangeCustom:
		if custom.IsSet() {
			loc := now.Location()
			return Interval{
				Start: custom.Start.In(loc),
				End:   util.EndOfDay(custom.End.In(loc)),
			}
		}
	}

	iv := bounds(now, unitMonth)
	iv.Fallback = true
	return iv
}

func bounds(t time.Time, u unit) Interval {
	start := startOf(t, u)
	return Interval{
		Start: start,
		End:   util.EndOfDay(step(start, u, 1).AddDate(0, 0, -1)),
	}
}

func previous(t time.Time, u unit) Interval {
	return bounds(step(startOf(t, u), u, -1), u)
}

func startOf(t time.Time, u unit) time.Time {
	switch u {
	case unitWeek:
		return util.StartOfWeek(t)
	case unitMonth:
		return util.StartOfMonth(t)
	case unitQuarter:
		return util.StartOfQuarter(t)
	case unitYear:
		return util.StartOfYear(t)
	default:
		return util.StartOfDay(t)
	}
}

// step moves a unit start by n units. start is always the first day of its
// unit, so month arithmetic never overflows into the following month.
func step(start time.Time, u unit, n int) time.Time {
	switch u {
	case unitWeek:
		return start.AddDate(0, 0, 7*n)
	case unitMonth:
		return start.AddDate(0, n, 0)
	case unitQuarter:
		return start.AddDate(0, 3*n, 0)
	case unitYear:
		return start.AddDate(n, 0, 0)
	default:
		return start.AddDate(0, 0, n)
	}
}

// Span returns the first and last calendar dates covered by any of the
// intervals. It is the post window a caller must load to evaluate all of them.
func Span(ivs ...Interval) (from, to model.Date) {
	for i, iv := range ivs {
		s, e := model.DateOf(iv.Start), model.DateOf(iv.End)
		if i == 0 || s.Before(from) {
			from = s
		}
		if i == 0 || e.After(to) {
			to = e
		}
	}
	return from, to
}
