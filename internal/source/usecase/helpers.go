package usecase

import (
	"analytics-srv/internal/model"
	"analytics-srv/internal/source"
	"analytics-srv/pkg/util"
)

// buildFields validates field definitions and derives missing ids from labels.
func buildFields(inputs []source.FieldInput) ([]model.Field, error) {
	fields := make([]model.Field, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = util.ToSnake(in.Label)
		}
		if id == "" {
			return nil, source.ErrInvalidField
		}
		if !in.Type.IsValid() {
			return nil, source.ErrInvalidFieldType
		}
		if _, ok := seen[id]; ok {
			return nil, source.ErrDuplicateFieldID
		}
		seen[id] = struct{}{}

		label := in.Label
		if label == "" {
			label = id
		}
		fields = append(fields, model.Field{ID: id, Label: label, Type: in.Type})
	}
	return fields, nil
}

func validateSource(name string, status model.SourceStatus, color string) error {
	if name == "" {
		return source.ErrNameRequired
	}
	if !status.IsValid() {
		return source.ErrInvalidStatus
	}
	if color != "" {
		if err := util.IsHexColor(color); err != nil {
			return source.ErrInvalidColor
		}
	}
	return nil
}
