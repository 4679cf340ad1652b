package model

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidMetricValue = errors.New("model: invalid metric value")

// MetricValue is a recorded metric. Numeric kinds (number, percentage,
// currency) use Number; text and date use Text.
type MetricValue struct {
	Type   FieldType
	Number float64
	Text   string
}

func NumberValue(v float64) MetricValue     { return MetricValue{Type: FieldTypeNumber, Number: v} }
func PercentageValue(v float64) MetricValue { return MetricValue{Type: FieldTypePercentage, Number: v} }
func CurrencyValue(v float64) MetricValue   { return MetricValue{Type: FieldTypeCurrency, Number: v} }
func TextValue(s string) MetricValue        { return MetricValue{Type: FieldTypeText, Text: s} }
func DateValue(s string) MetricValue        { return MetricValue{Type: FieldTypeDate, Text: s} }

// Float coerces the value to a number. It is total: anything that does not
// hold a finite number yields 0.
func (v MetricValue) Float() float64 {
	switch {
	case v.Type.IsNumeric():
		return finiteOrZero(v.Number)
	case v.Type == FieldTypeText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	default:
		return 0
	}
}

func (v MetricValue) String() string {
	if v.Type.IsNumeric() {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// NewMetricValue tags a raw JSON value with the field type it was recorded for.
func NewMetricValue(ft FieldType, raw any) (MetricValue, error) {
	if !ft.IsValid() {
		return MetricValue{}, ErrInvalidMetricValue
	}

	if ft.IsNumeric() {
		switch x := raw.(type) {
		case nil:
			return MetricValue{Type: ft}, nil
		case float64:
			return MetricValue{Type: ft, Number: finiteOrZero(x)}, nil
		case int:
			return MetricValue{Type: ft, Number: float64(x)}, nil
		case int64:
			return MetricValue{Type: ft, Number: float64(x)}, nil
		case json.Number:
			f, err := x.Float64()
			if err != nil {
				return MetricValue{}, ErrInvalidMetricValue
			}
			return MetricValue{Type: ft, Number: finiteOrZero(f)}, nil
		case string:
			s := strings.TrimSpace(x)
			if s == "" {
				return MetricValue{Type: ft}, nil
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return MetricValue{}, ErrInvalidMetricValue
			}
			return MetricValue{Type: ft, Number: finiteOrZero(f)}, nil
		case bool:
			if x {
				return MetricValue{Type: ft, Number: 1}, nil
			}
			return MetricValue{Type: ft}, nil
		default:
			return MetricValue{}, ErrInvalidMetricValue
		}
	}

	switch x := raw.(type) {
	case nil:
		return MetricValue{Type: ft}, nil
	case string:
		return MetricValue{Type: ft, Text: x}, nil
	case float64:
		return MetricValue{Type: ft, Text: strconv.FormatFloat(x, 'f', -1, 64)}, nil
	case json.Number:
		return MetricValue{Type: ft, Text: x.String()}, nil
	case bool:
		return MetricValue{Type: ft, Text: strconv.FormatBool(x)}, nil
	default:
		return MetricValue{}, ErrInvalidMetricValue
	}
}

type metricValueJSON struct {
	Type   FieldType `json:"type"`
	Number *float64  `json:"number,omitempty"`
	Text   *string   `json:"text,omitempty"`
}

func (v MetricValue) MarshalJSON() ([]byte, error) {
	out := metricValueJSON{Type: v.Type}
	if v.Type.IsNumeric() {
		n := finiteOrZero(v.Number)
		out.Number = &n
	} else {
		t := v.Text
		out.Text = &t
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the tagged form as well as bare scalars, which are
// tagged as number (numbers, booleans) or text (strings).
func (v *MetricValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*v = MetricValue{}
		return nil
	case strings.HasPrefix(trimmed, "{"):
		var in metricValueJSON
		if err := json.Unmarshal(data, &in); err != nil {
			return err
		}
		if !in.Type.IsValid() {
			return ErrInvalidMetricValue
		}
		out := MetricValue{Type: in.Type}
		if in.Number != nil {
			out.Number = finiteOrZero(*in.Number)
		}
		if in.Text != nil {
			out.Text = *in.Text
		}
		*v = out
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case trimmed == "true":
		*v = NumberValue(1)
		return nil
	case trimmed == "false":
		*v = NumberValue(0)
		return nil
	default:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return ErrInvalidMetricValue
		}
		*v = NumberValue(finiteOrZero(f))
		return nil
	}
}
