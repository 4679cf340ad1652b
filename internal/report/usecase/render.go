package usecase

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
)

var csvHeader = []string{
	"widget_id", "widget_title", "widget_type",
	"metric_id", "metric_name", "value",
	"period_start", "period_end", "error",
}

func renderDocument(doc report.Document, f model.ReportFormat) ([]byte, error) {
	switch f {
	case model.ReportFormatCSV:
		return renderCSV(doc)
	case model.ReportFormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	}
	return nil, report.ErrUnsupportedFormat
}

// renderCSV writes one row per widget metric.
func renderCSV(doc report.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	start := doc.Start.Format(time.RFC3339)
	end := doc.End.Format(time.RFC3339)
	for _, s := range doc.Sections {
		for _, v := range s.Values {
			value := ""
			if v.Value != nil {
				value = strconv.FormatFloat(*v.Value, 'f', -1, 64)
			}
			row := []string{s.WidgetID, s.Title, string(s.Type), v.MetricID, v.MetricName, value, start, end, v.Error}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
