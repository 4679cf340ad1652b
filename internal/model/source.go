package model

import "time"

// SourceStatus is the visibility state of a Source.
type SourceStatus string

const (
	SourceStatusActive   SourceStatus = "active"
	SourceStatusInactive SourceStatus = "inactive"
	SourceStatusHidden   SourceStatus = "hidden"
)

func (s SourceStatus) IsValid() bool {
	switch s {
	case SourceStatusActive, SourceStatusInactive, SourceStatusHidden:
		return true
	}
	return false
}

// FieldType is the value kind recorded for a source field.
type FieldType string

const (
	FieldTypeNumber     FieldType = "number"
	FieldTypePercentage FieldType = "percentage"
	FieldTypeText       FieldType = "text"
	FieldTypeCurrency   FieldType = "currency"
	FieldTypeDate       FieldType = "date"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeNumber, FieldTypePercentage, FieldTypeText, FieldTypeCurrency, FieldTypeDate:
		return true
	}
	return false
}

// IsNumeric reports whether values of this type carry a number.
func (t FieldType) IsNumeric() bool {
	return t == FieldTypeNumber || t == FieldTypePercentage || t == FieldTypeCurrency
}

// Field is a user-defined metric column on a Source.
type Field struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
}

// Source is an external content origin such as a social account.
type Source struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Platform  string       `json:"platform"`
	Color     string       `json:"color"`
	Status    SourceStatus `json:"status"`
	Fields    []Field      `json:"fields"`
	CreatedBy string       `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Field returns the field with the given id.
func (s Source) Field(id string) (Field, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
