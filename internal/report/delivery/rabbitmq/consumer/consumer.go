package consumer

import (
	"context"
	"fmt"

	rabbitDelivery "analytics-srv/internal/report/delivery/rabbitmq"
	pkgRabbit "analytics-srv/pkg/rabbitmq"
)

// ConsumeReportJobs declares the topology and processes jobs in the
// background until ctx is done.
func (c *Consumer) ConsumeReportJobs(ctx context.Context) error {
	if err := rabbitDelivery.Declare(c.ch, c.topology); err != nil {
		return err
	}
	if err := c.ch.Qos(c.prefetch); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := c.ch.Consume(pkgRabbit.ConsumeArgs{
		Queue:    c.topology.ReportQueue,
		Consumer: rabbitDelivery.ConsumerTagReportWorker,
	})
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.topology.ReportQueue, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.ConsumeReportJobs: Delivery channel closed")
					return
				}
				c.handleDelivery(ctx, d)
			}
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.topology.ReportQueue)
	return nil
}
