package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"analytics-srv/internal/report"
	rabbitDelivery "analytics-srv/internal/report/delivery/rabbitmq"
	"analytics-srv/pkg/log"
	pkgRabbit "analytics-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	pkgRabbit.IChannel
	exchanges []pkgRabbit.ExchangeArgs
	queues    []string
	bindings  []pkgRabbit.QueueBindArgs
	published []pkgRabbit.PublishArgs
	err       error
}

func (f *fakeChannel) ExchangeDeclare(exc pkgRabbit.ExchangeArgs) error {
	f.exchanges = append(f.exchanges, exc)
	return nil
}

func (f *fakeChannel) QueueDeclare(q pkgRabbit.QueueArgs) (amqp.Queue, error) {
	f.queues = append(f.queues, q.Name)
	return amqp.Queue{Name: q.Name}, nil
}

func (f *fakeChannel) QueueBind(b pkgRabbit.QueueBindArgs) error {
	f.bindings = append(f.bindings, b)
	return nil
}

func (f *fakeChannel) Publish(ctx context.Context, p pkgRabbit.PublishArgs) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, p)
	return nil
}

var topology = rabbitDelivery.Topology{
	Exchange:          "analytics.reports",
	ReportQueue:       "analytics.reports.generate",
	NotificationQueue: "analytics.reports.notifications",
}

func TestNew_DeclaresTopology(t *testing.T) {
	ch := &fakeChannel{}
	_, err := New(log.NewNop(), ch, topology)
	require.NoError(t, err)

	require.Len(t, ch.exchanges, 1)
	assert.True(t, ch.exchanges[0].Durable)
	assert.Equal(t, []string{"analytics.reports.generate", "analytics.reports.notifications"}, ch.queues)
	require.Len(t, ch.bindings, 2)
	assert.Equal(t, rabbitDelivery.RoutingKeyGenerate, ch.bindings[0].RoutingKey)
	assert.Equal(t, rabbitDelivery.RoutingKeyNotification, ch.bindings[1].RoutingKey)
}

func TestPublishJob(t *testing.T) {
	ch := &fakeChannel{}
	p, err := New(log.NewNop(), ch, topology)
	require.NoError(t, err)

	now := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	require.NoError(t, p.PublishJob(context.Background(), report.Job{RunID: "run1", ReportID: "r1", Now: now}))

	require.Len(t, ch.published, 1)
	pub := ch.published[0]
	assert.Equal(t, "analytics.reports", pub.Exchange)
	assert.Equal(t, rabbitDelivery.RoutingKeyGenerate, pub.RoutingKey)
	assert.Equal(t, amqp.Persistent, pub.Msg.DeliveryMode)
	assert.Equal(t, "run1", pub.Msg.MessageId)

	var msg rabbitDelivery.JobMessage
	require.NoError(t, json.Unmarshal(pub.Msg.Body, &msg))
	assert.Equal(t, "r1", msg.ReportID)
	require.NotNil(t, msg.Now)
	assert.True(t, msg.Now.Equal(now))
}

func TestPublishJob_WithoutNow(t *testing.T) {
	ch := &fakeChannel{}
	p, err := New(log.NewNop(), ch, topology)
	require.NoError(t, err)

	require.NoError(t, p.PublishJob(context.Background(), report.Job{RunID: "run1", ReportID: "r1"}))
	assert.NotContains(t, string(ch.published[0].Msg.Body), `"now"`)
}

func TestPublishNotification(t *testing.T) {
	ch := &fakeChannel{}
	p, err := New(log.NewNop(), ch, topology)
	require.NoError(t, err)

	require.NoError(t, p.PublishNotification(context.Background(), report.Notification{
		RunID: "run1", ReportID: "r1", Recipient: "ops@example.com", Subject: "Report ready: Weekly", Body: "<p>hi</p>",
	}))

	pub := ch.published[0]
	assert.Equal(t, rabbitDelivery.RoutingKeyNotification, pub.RoutingKey)
	var msg rabbitDelivery.NotificationMessage
	require.NoError(t, json.Unmarshal(pub.Msg.Body, &msg))
	assert.Equal(t, "ops@example.com", msg.To)
	assert.Equal(t, "<p>hi</p>", msg.HTMLBody)
	assert.NotEmpty(t, msg.CreatedAt)
}

func TestPublish_Error(t *testing.T) {
	ch := &fakeChannel{}
	p, err := New(log.NewNop(), ch, topology)
	require.NoError(t, err)
	ch.err = errors.New("channel closed")

	err = p.PublishJob(context.Background(), report.Job{RunID: "run1"})
	assert.ErrorContains(t, err, "channel closed")
}
