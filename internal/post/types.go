package post

import (
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/paginator"
)

type CreateInput struct {
	Title    string
	SourceID string
	Date     string
	Status   model.PostStatus
	Content  string
}

type UpdateInput struct {
	ID       string
	Title    string
	SourceID string
	Date     string
	Content  string
}

type UpdateStatusInput struct {
	ID     string
	Status model.PostStatus
}

// RecordMetricsInput carries raw values keyed by source field id.
type RecordMetricsInput struct {
	ID     string
	Values map[string]any
}

type ListInput struct {
	SourceID  string
	Status    model.PostStatus
	From      string
	To        string
	Paginator paginator.PaginateQuery
}

type ListOutput struct {
	Posts     []model.Post
	Paginator paginator.Paginator
}

type EvaluationInput struct {
	SourceIDs []string
	From      model.Date
	To        model.Date
}

// Change actions carried by ChangedEvent.
const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionStatusChanged = "status_changed"
	ActionMetrics       = "metrics_recorded"
	ActionDeleted       = "deleted"
)

// ChangedEvent is emitted after every post mutation.
type ChangedEvent struct {
	PostID     string
	SourceID   string
	Date       model.Date
	Action     string
	OccurredAt time.Time
}
