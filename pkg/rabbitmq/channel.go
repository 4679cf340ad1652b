package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *channelImpl) current() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ch
}

func (c *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return c.current().ExchangeDeclare(exc.spread())
}

func (c *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return c.current().QueueDeclare(queue.spread())
}

func (c *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	return c.current().QueueBind(queueBind.spread())
}

func (c *channelImpl) Qos(prefetchCount int) error {
	return c.current().Qos(prefetchCount, 0, false)
}

func (c *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return c.current().PublishWithContext(publish.spread(ctx))
}

func (c *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	return c.current().Consume(consume.spread())
}

func (c *channelImpl) Close() error {
	return c.current().Close()
}

func (c *channelImpl) listenNotifyReconnect() {
	reconnected := make(chan bool, 1)
	c.conn.notifyReconnect(reconnected)

	go func() {
		for range reconnected {
			ch, err := c.conn.channel()
			if err != nil {
				c.conn.l.Errorf(context.Background(), "pkg.rabbitmq.listenNotifyReconnect: recreate channel failed: %v", err)
				continue
			}
			c.mu.Lock()
			old := c.ch
			c.ch = ch
			c.mu.Unlock()
			_ = old.Close()
		}
	}()
}
