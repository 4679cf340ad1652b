package postgre

import (
	"encoding/json"

	"analytics-srv/internal/model"

	"github.com/aarondl/null/v8"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (model.Post, error) {
	var (
		p       model.Post
		status  string
		content null.String
		metrics []byte
	)
	if err := row.Scan(&p.ID, &p.Title, &p.SourceID, &p.Date, &status, &content, &metrics, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return model.Post{}, err
	}
	p.Status = model.PostStatus(status)
	p.Content = content.String

	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &p.Metrics); err != nil {
			return model.Post{}, err
		}
	}
	return p, nil
}

func toNullContent(content string) null.String {
	return null.NewString(content, content != "")
}

func marshalMetrics(metrics map[string]model.MetricValue) ([]byte, error) {
	if metrics == nil {
		return nil, nil
	}
	return json.Marshal(metrics)
}
