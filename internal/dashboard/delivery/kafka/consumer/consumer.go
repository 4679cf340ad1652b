package consumer

import (
	"context"

	postKafka "analytics-srv/internal/post/delivery/kafka"
)

// ConsumePostChanged starts consuming post change events in the background.
func (c *Consumer) ConsumePostChanged(ctx context.Context) error {
	groupID := c.kafkaConfig.GroupID
	if groupID == "" {
		groupID = postKafka.ConsumerGroupDashboardCache
	}
	group, err := c.createConsumerGroup(groupID)
	if err != nil {
		return err
	}
	c.postChangedGroup = group

	topic := c.kafkaConfig.Topic
	if topic == "" {
		topic = postKafka.TopicPostChanged
	}
	handler := &postChangedHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "dashboard.delivery.kafka.consumer.ConsumePostChanged: Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "dashboard.delivery.kafka.consumer.ConsumePostChanged: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)
	return nil
}
