package rabbitmq

import (
	"fmt"

	pkgRabbit "analytics-srv/pkg/rabbitmq"
)

// Declare creates the durable direct exchange and binds the job queue and,
// when set, the notification queue to it. It is idempotent.
func Declare(ch pkgRabbit.IChannel, t Topology) error {
	if err := ch.ExchangeDeclare(pkgRabbit.ExchangeArgs{
		Name:    t.Exchange,
		Type:    pkgRabbit.ExchangeTypeDirect,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("declare exchange %s: %w", t.Exchange, err)
	}

	bindings := []struct{ queue, key string }{
		{t.ReportQueue, RoutingKeyGenerate},
		{t.NotificationQueue, RoutingKeyNotification},
	}
	for _, b := range bindings {
		if b.queue == "" {
			continue
		}
		if _, err := ch.QueueDeclare(pkgRabbit.QueueArgs{Name: b.queue, Durable: true}); err != nil {
			return fmt.Errorf("declare queue %s: %w", b.queue, err)
		}
		if err := ch.QueueBind(pkgRabbit.QueueBindArgs{
			Queue:      b.queue,
			Exchange:   t.Exchange,
			RoutingKey: b.key,
		}); err != nil {
			return fmt.Errorf("bind queue %s: %w", b.queue, err)
		}
	}
	return nil
}
