package producer

import (
	"analytics-srv/internal/report"
	rabbitDelivery "analytics-srv/internal/report/delivery/rabbitmq"
	"analytics-srv/pkg/log"
	pkgRabbit "analytics-srv/pkg/rabbitmq"
)

type implProducer struct {
	l        log.Logger
	ch       pkgRabbit.IChannel
	exchange string
	now      func() string
}

// New declares the report topology on ch and returns a producer publishing
// to it.
func New(l log.Logger, ch pkgRabbit.IChannel, t rabbitDelivery.Topology) (report.Producer, error) {
	if err := rabbitDelivery.Declare(ch, t); err != nil {
		return nil, err
	}
	return &implProducer{
		l:        l,
		ch:       ch,
		exchange: t.Exchange,
		now:      nowRFC3339,
	}, nil
}
