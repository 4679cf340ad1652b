package postgre

import (
	"encoding/json"

	"analytics-srv/internal/model"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanSource(row scanner) (model.Source, error) {
	var (
		s      model.Source
		status string
		fields []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Platform, &s.Color, &status, &fields, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return model.Source{}, err
	}
	s.Status = model.SourceStatus(status)

	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &s.Fields); err != nil {
			return model.Source{}, err
		}
	}
	if s.Fields == nil {
		s.Fields = []model.Field{}
	}
	return s, nil
}

func marshalFields(fields []model.Field) ([]byte, error) {
	if fields == nil {
		fields = []model.Field{}
	}
	return json.Marshal(fields)
}
