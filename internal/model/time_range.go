package model

// TimeRange is a symbolic period resolved against the current instant.
type TimeRange string

const (
	TimeRangeToday       TimeRange = "today"
	TimeRangeYesterday   TimeRange = "yesterday"
	TimeRangeThisWeek    TimeRange = "this-week"
	TimeRangeLastWeek    TimeRange = "last-week"
	TimeRangeThisMonth   TimeRange = "this-month"
	TimeRangeLastMonth   TimeRange = "last-month"
	TimeRangeThisQuarter TimeRange = "this-quarter"
	TimeRangeLastQuarter TimeRange = "last-quarter"
	TimeRangeThisYear    TimeRange = "this-year"
	TimeRangeLastYear    TimeRange = "last-year"
	TimeRangeCustom      TimeRange = "custom"
)

// TimeRanges lists every supported token.
var TimeRanges = []TimeRange{
	TimeRangeToday, TimeRangeYesterday,
	TimeRangeThisWeek, TimeRangeLastWeek,
	TimeRangeThisMonth, TimeRangeLastMonth,
	TimeRangeThisQuarter, TimeRangeLastQuarter,
	TimeRangeThisYear, TimeRangeLastYear,
	TimeRangeCustom,
}

func (r TimeRange) IsValid() bool {
	for _, t := range TimeRanges {
		if r == t {
			return true
		}
	}
	return false
}

// DateRange holds explicit bounds for the custom range. Both ends are inclusive.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// IsSet reports whether both bounds are present and ordered.
func (r *DateRange) IsSet() bool {
	return r != nil && !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// ParseDateRange builds a DateRange from YYYY-MM-DD bounds. Two empty bounds
// yield nil; a single empty bound is left zero so IsSet reports false.
func ParseDateRange(start, end string) (*DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	var (
		r   DateRange
		err error
	)
	if start != "" {
		if r.Start, err = ParseDate(start); err != nil {
			return nil, err
		}
	}
	if end != "" {
		if r.End, err = ParseDate(end); err != nil {
			return nil, err
		}
	}
	return &r, nil
}
