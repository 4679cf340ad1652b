package model

import "time"

// WidgetType is how a widget is drawn by clients.
type WidgetType string

const (
	WidgetTypeNumber     WidgetType = "number"
	WidgetTypePercentage WidgetType = "percentage"
	WidgetTypeChartLine  WidgetType = "chart-line"
	WidgetTypeChartBar   WidgetType = "chart-bar"
	WidgetTypeChartPie   WidgetType = "chart-pie"
	WidgetTypeList       WidgetType = "list"
	WidgetTypeTable      WidgetType = "table"
	WidgetTypeComparison WidgetType = "comparison"
)

func (t WidgetType) IsValid() bool {
	switch t {
	case WidgetTypeNumber, WidgetTypePercentage, WidgetTypeChartLine, WidgetTypeChartBar,
		WidgetTypeChartPie, WidgetTypeList, WidgetTypeTable, WidgetTypeComparison:
		return true
	}
	return false
}

// FilterOperator compares a post attribute with a filter value.
type FilterOperator string

const (
	FilterEquals      FilterOperator = "equals"
	FilterNotEquals   FilterOperator = "not-equals"
	FilterGreaterThan FilterOperator = "greater-than"
	FilterLessThan    FilterOperator = "less-than"
	FilterContains    FilterOperator = "contains"
	FilterNotContains FilterOperator = "not-contains"
)

func (o FilterOperator) IsValid() bool {
	switch o {
	case FilterEquals, FilterNotEquals, FilterGreaterThan, FilterLessThan, FilterContains, FilterNotContains:
		return true
	}
	return false
}

// Well-known filter fields. Any other field names a metric field id.
const (
	FilterFieldSourceID = "sourceId"
	FilterFieldDate     = "date"
	FilterFieldStatus   = "status"
)

// WidgetFilter narrows the posts a widget aggregates over.
type WidgetFilter struct {
	Field    string         `json:"field"`
	Operator FilterOperator `json:"operator"`
	Value    string         `json:"value"`
}

// DisplayFormat selects how a value is rendered.
type DisplayFormat string

const (
	DisplayFormatNumber     DisplayFormat = "number"
	DisplayFormatCurrency   DisplayFormat = "currency"
	DisplayFormatPercentage DisplayFormat = "percentage"
)

type DisplayOptions struct {
	Title               string        `json:"title"`
	Description         string        `json:"description,omitempty"`
	Format              DisplayFormat `json:"format,omitempty"`
	Decimals            int           `json:"decimals"`
	Prefix              string        `json:"prefix,omitempty"`
	Suffix              string        `json:"suffix,omitempty"`
	Colors              []string      `json:"colors,omitempty"`
	ShowChange          bool          `json:"show_change"`
	ComparisonTimeRange TimeRange     `json:"comparison_time_range,omitempty"`
}

type WidgetLayout struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// DashboardWidget renders one or more metric mappings.
type DashboardWidget struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            WidgetType     `json:"type"`
	Metrics         []string       `json:"metrics"`
	TimeRange       TimeRange      `json:"time_range"`
	CustomTimeRange *DateRange     `json:"custom_time_range,omitempty"`
	Filters         []WidgetFilter `json:"filters"`
	Layout          WidgetLayout   `json:"layout"`
	DisplayOptions  DisplayOptions `json:"display_options"`
}

// Dashboard is an ordered collection of widgets owned by a user.
type Dashboard struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Widgets     []DashboardWidget `json:"widgets"`
	IsDefault   bool              `json:"is_default"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// MetricIDs returns every metric mapping id referenced by the dashboard.
func (d Dashboard) MetricIDs() []string {
	seen := map[string]struct{}{}
	var ids []string
	for _, w := range d.Widgets {
		for _, id := range w.Metrics {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
