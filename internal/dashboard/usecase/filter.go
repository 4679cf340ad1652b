package usecase

import (
	"strconv"
	"strings"

	"analytics-srv/internal/model"
)

// applyFilters keeps the posts matching every filter. Nil or empty filters
// keep everything.
func applyFilters(posts []model.Post, filters []model.WidgetFilter) []model.Post {
	if len(filters) == 0 {
		return posts
	}
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if matchesAll(p, filters) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAll(p model.Post, filters []model.WidgetFilter) bool {
	for _, f := range filters {
		if !matches(p, f) {
			return false
		}
	}
	return true
}

// matches compares one post attribute. Metric fields compare numerically
// when both sides parse as numbers; everything else compares as text. A
// metric the post never recorded reads as 0.
func matches(p model.Post, f model.WidgetFilter) bool {
	var (
		text    string
		number  float64
		numeric bool
	)
	switch f.Field {
	case model.FilterFieldSourceID:
		text = p.SourceID
	case model.FilterFieldStatus:
		text = string(p.Status)
	case model.FilterFieldDate:
		text = p.Date.String()
	default:
		v := p.Metrics[f.Field]
		text = v.String()
		if v.Type.IsNumeric() || v.Type == "" {
			number, numeric = v.Float(), true
		} else if n, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			number, numeric = n, true
		}
	}

	target, targetErr := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	numeric = numeric && targetErr == nil

	switch f.Operator {
	case model.FilterEquals:
		if numeric {
			return number == target
		}
		return text == f.Value
	case model.FilterNotEquals:
		if numeric {
			return number != target
		}
		return text != f.Value
	case model.FilterGreaterThan:
		if numeric {
			return number > target
		}
		return text > f.Value
	case model.FilterLessThan:
		if numeric {
			return number < target
		}
		return text < f.Value
	case model.FilterContains:
		return strings.Contains(strings.ToLower(text), strings.ToLower(f.Value))
	case model.FilterNotContains:
		return !strings.Contains(strings.ToLower(text), strings.ToLower(f.Value))
	default:
		return false
	}
}
