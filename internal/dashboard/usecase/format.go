package usecase

import (
	"strconv"

	"analytics-srv/internal/model"
)

// formatValue renders v the way widgets display it: numbers of 1000 and
// more are shortened to K or M with one decimal, percentages get a trailing
// %, currency a leading $. Prefix and suffix wrap the result.
func formatValue(v float64, opts model.DisplayOptions) string {
	decimals := opts.Decimals
	if decimals < 0 {
		decimals = 0
	} else if decimals > maxDecimals {
		decimals = maxDecimals
	}

	s := strconv.FormatFloat(v, 'f', decimals, 64)
	switch opts.Format {
	case model.DisplayFormatNumber:
		if v >= 1_000_000 {
			s = strconv.FormatFloat(v/1_000_000, 'f', 1, 64) + "M"
		} else if v >= 1000 {
			s = strconv.FormatFloat(v/1000, 'f', 1, 64) + "K"
		}
	case model.DisplayFormatPercentage:
		s += "%"
	case model.DisplayFormatCurrency:
		s = "$" + s
	}
	return opts.Prefix + s + opts.Suffix
}

func comparisonLabel(tr model.TimeRange) string {
	switch tr {
	case model.TimeRangeYesterday:
		return "yesterday"
	case model.TimeRangeLastWeek:
		return "last week"
	case model.TimeRangeLastMonth:
		return "last month"
	case model.TimeRangeLastQuarter:
		return "last quarter"
	case model.TimeRangeLastYear:
		return "last year"
	default:
		return "previous period"
	}
}
