package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"analytics-srv/internal/post"
	kafkaDelivery "analytics-srv/internal/post/delivery/kafka"
)

// PublishPostChanged publishes a post change keyed by source id, so events of
// one source stay ordered within a partition.
func (p *implProducer) PublishPostChanged(ctx context.Context, event post.ChangedEvent) error {
	msg := kafkaDelivery.PostChangedMessage{
		PostID:     event.PostID,
		SourceID:   event.SourceID,
		Date:       event.Date.String(),
		Action:     event.Action,
		OccurredAt: event.OccurredAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal post changed event: %w", err)
	}

	if err := p.producer.Publish(ctx, []byte(event.SourceID), body); err != nil {
		return fmt.Errorf("failed to publish post changed event: %w", err)
	}

	p.l.Debugf(ctx, "post.delivery.kafka.producer.PublishPostChanged: Published %s for post %s", event.Action, event.PostID)
	return nil
}
