package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"analytics-srv/internal/model"
	postKafka "analytics-srv/internal/post/delivery/kafka"
	"analytics-srv/pkg/monitoring"
	"analytics-srv/pkg/scope"

	"github.com/IBM/sarama"
)

const eventSource = "kafka"

// handlePostChangedMessage drops cached dashboard renders. Malformed messages
// are skipped; a failed invalidation is returned so the offset is not marked.
func (c *Consumer) handlePostChangedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var message postKafka.PostChangedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "dashboard.delivery.kafka.consumer.handlePostChangedMessage: Invalid message format (skipping): %v", err)
		c.metrics.IncEventConsumed(eventSource, monitoring.OutcomeError)
		return nil
	}
	if message.PostID == "" || message.SourceID == "" {
		c.l.Warnf(ctx, "dashboard.delivery.kafka.consumer.handlePostChangedMessage: Missing post or source id (skipping)")
		c.metrics.IncEventConsumed(eventSource, monitoring.OutcomeError)
		return nil
	}

	ctx = scope.SetScopeToContext(ctx, model.SystemScope())
	if err := c.uc.InvalidateCache(ctx); err != nil {
		c.metrics.IncEventConsumed(eventSource, monitoring.OutcomeError)
		return fmt.Errorf("invalidate dashboard cache: %w", err)
	}

	c.metrics.IncEventConsumed(eventSource, monitoring.OutcomeOK)
	c.l.Debugf(ctx, "dashboard.delivery.kafka.consumer.handlePostChangedMessage: Invalidated renders after %s of post %s (partition %d, offset %d)",
		message.Action, message.PostID, msg.Partition, msg.Offset)
	return nil
}
