package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"analytics-srv/internal/report"
	rabbitDelivery "analytics-srv/internal/report/delivery/rabbitmq"
	pkgRabbit "analytics-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (p *implProducer) PublishJob(ctx context.Context, job report.Job) error {
	msg := rabbitDelivery.JobMessage{RunID: job.RunID, ReportID: job.ReportID}
	if !job.Now.IsZero() {
		now := job.Now
		msg.Now = &now
	}
	if err := p.publish(ctx, rabbitDelivery.RoutingKeyGenerate, job.RunID, msg); err != nil {
		return fmt.Errorf("failed to publish report job: %w", err)
	}

	p.l.Debugf(ctx, "report.delivery.rabbitmq.producer.PublishJob: Queued run %s of report %s", job.RunID, job.ReportID)
	return nil
}

func (p *implProducer) PublishNotification(ctx context.Context, n report.Notification) error {
	msg := rabbitDelivery.NotificationMessage{
		RunID:     n.RunID,
		ReportID:  n.ReportID,
		To:        n.Recipient,
		Subject:   n.Subject,
		HTMLBody:  n.Body,
		CreatedAt: p.now(),
	}
	if err := p.publish(ctx, rabbitDelivery.RoutingKeyNotification, n.RunID, msg); err != nil {
		return fmt.Errorf("failed to publish report notification: %w", err)
	}
	return nil
}

func (p *implProducer) publish(ctx context.Context, key, messageID string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.Publish(ctx, pkgRabbit.PublishArgs{
		Exchange:   p.exchange,
		RoutingKey: key,
		Msg: pkgRabbit.Publishing{
			ContentType:  pkgRabbit.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Body:         body,
		},
	})
}
