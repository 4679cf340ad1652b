package consumer

import (
	"context"
	"encoding/json"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	rabbitDelivery "analytics-srv/internal/report/delivery/rabbitmq"
	"analytics-srv/pkg/monitoring"
	pkgRabbit "analytics-srv/pkg/rabbitmq"
	"analytics-srv/pkg/scope"
)

const eventSource = "rabbitmq"

// handleDelivery acks processed jobs and drops malformed ones. Failed runs
// are acked too: the run is already marked FAILED and the caller can
// generate again.
func (c *Consumer) handleDelivery(ctx context.Context, d pkgRabbit.Delivery) {
	var msg rabbitDelivery.JobMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil || msg.RunID == "" {
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handleDelivery: Invalid job message (dropping): %v", err)
		c.metrics.IncEventConsumed(eventSource, monitoring.OutcomeError)
		if err := d.Nack(false, false); err != nil {
			c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.handleDelivery: Nack failed: %v", err)
		}
		return
	}

	ctx = scope.SetScopeToContext(ctx, model.SystemScope())
	outcome := monitoring.OutcomeOK
	if err := c.uc.ProcessJob(ctx, toJob(msg)); err != nil {
		outcome = monitoring.OutcomeError
		c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.handleDelivery: usecase ProcessJob failed for run %s: %v", msg.RunID, err)
	}
	c.metrics.IncEventConsumed(eventSource, outcome)

	if err := d.Ack(false); err != nil {
		c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.handleDelivery: Ack failed: %v", err)
	}
}

func toJob(m rabbitDelivery.JobMessage) report.Job {
	job := report.Job{RunID: m.RunID, ReportID: m.ReportID}
	if m.Now != nil {
		job.Now = *m.Now
	}
	return job
}
