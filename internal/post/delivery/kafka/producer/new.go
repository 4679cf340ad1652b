package producer

import (
	"analytics-srv/internal/post"
	pkgKafka "analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a post change producer on top of a configured Kafka producer.
func New(l log.Logger, producer pkgKafka.IProducer) post.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
