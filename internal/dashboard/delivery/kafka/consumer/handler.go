package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type postChangedHandler struct {
	consumer *Consumer
}

func (h *postChangedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *postChangedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim stops at the first failed message so no later offset is marked
// past it. The session then ends and the group re-joins from the last mark.
func (h *postChangedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handlePostChangedMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "dashboard.delivery.kafka.consumer.ConsumeClaim: Failed to process post changed message at offset %d: %v", msg.Offset, err)
			return err
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
