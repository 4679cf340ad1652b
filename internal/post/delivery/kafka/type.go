package kafka

import "time"

// PostChangedMessage is the wire form of a post change event.
type PostChangedMessage struct {
	PostID     string    `json:"post_id"`
	SourceID   string    `json:"source_id"`
	Date       string    `json:"date"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}
