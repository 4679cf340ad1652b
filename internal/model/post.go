package model

import "time"

// PostStatus is the lifecycle state of a Post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusCompleted PostStatus = "completed"
)

var postStatusRank = map[PostStatus]int{
	PostStatusDraft:     0,
	PostStatusScheduled: 1,
	PostStatusPublished: 2,
	PostStatusCompleted: 3,
}

func (s PostStatus) IsValid() bool {
	_, ok := postStatusRank[s]
	return ok
}

// CanTransitionTo reports whether a post may move from s to next.
// Statuses only move forward; skipping ahead is allowed.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	from, ok := postStatusRank[s]
	if !ok {
		return false
	}
	to, ok := postStatusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// Post is a dated content item belonging to one Source.
type Post struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	SourceID  string                 `json:"source_id"`
	Date      Date                   `json:"date"`
	Status    PostStatus             `json:"status"`
	Content   string                 `json:"content,omitempty"`
	Metrics   map[string]MetricValue `json:"metrics,omitempty"`
	CreatedBy string                 `json:"created_by,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Metric returns the numeric value recorded for fieldID, 0 when absent.
func (p Post) Metric(fieldID string) float64 {
	if p.Metrics == nil {
		return 0
	}
	return p.Metrics[fieldID].Float()
}
