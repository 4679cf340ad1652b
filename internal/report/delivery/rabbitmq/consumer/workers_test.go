package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/log"
	pkgRabbit "analytics-srv/pkg/rabbitmq"
	"analytics-srv/pkg/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acks    int
	nacks   int
	requeue bool
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acks++
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacks++
	a.requeue = requeue
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

type stubUseCase struct {
	report.UseCase
	jobs []report.Job
	sc   model.Scope
	err  error
}

func (s *stubUseCase) ProcessJob(ctx context.Context, job report.Job) error {
	s.jobs = append(s.jobs, job)
	s.sc = scope.GetScopeFromContext(ctx)
	return s.err
}

func delivery(ack *fakeAcknowledger, body string) pkgRabbit.Delivery {
	return pkgRabbit.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(body)}
}

func TestHandleDelivery(t *testing.T) {
	uc := &stubUseCase{}
	c := &Consumer{l: log.NewNop(), uc: uc}
	ack := &fakeAcknowledger{}

	c.handleDelivery(context.Background(), delivery(ack, `{"run_id":"run1","report_id":"r1","now":"2024-05-13T08:00:00Z"}`))

	require.Len(t, uc.jobs, 1)
	assert.Equal(t, "run1", uc.jobs[0].RunID)
	assert.True(t, uc.jobs[0].Now.Equal(time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, model.SystemScope(), uc.sc)
	assert.Equal(t, 1, ack.acks)
	assert.Zero(t, ack.nacks)
}

func TestHandleDelivery_FailedRunIsAcked(t *testing.T) {
	uc := &stubUseCase{err: errors.New("upload csv: boom")}
	c := &Consumer{l: log.NewNop(), uc: uc}
	ack := &fakeAcknowledger{}

	c.handleDelivery(context.Background(), delivery(ack, `{"run_id":"run1","report_id":"r1"}`))

	assert.True(t, uc.jobs[0].Now.IsZero())
	assert.Equal(t, 1, ack.acks)
}

func TestHandleDelivery_InvalidMessage(t *testing.T) {
	for _, body := range []string{`garbage`, `{"report_id":"r1"}`} {
		uc := &stubUseCase{}
		c := &Consumer{l: log.NewNop(), uc: uc}
		ack := &fakeAcknowledger{}

		c.handleDelivery(context.Background(), delivery(ack, body))

		assert.Empty(t, uc.jobs, body)
		assert.Equal(t, 1, ack.nacks, body)
		assert.False(t, ack.requeue, body)
		assert.Zero(t, ack.acks, body)
	}
}
