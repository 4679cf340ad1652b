package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes keyed messages to a single topic.
// Implementations are safe for concurrent use.
//
//go:generate mockery --name IProducer
type IProducer interface {
	Publish(ctx context.Context, key, value []byte) error
	Topic() string
	Close() error
	HealthCheck() error
}

// IConsumer wraps sarama.ConsumerGroup.
type IConsumer interface {
	// ConsumeWithContext blocks, re-joining the group after every rebalance, until ctx is done.
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Errors() <-chan error
	Close() error
}

// NewProducer creates a synchronous producer bound to cfg.Topic.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewProducerFromSync wraps an existing sarama.SyncProducer.
func NewProducerFromSync(producer sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: producer, topic: topic}
}

// NewConsumer creates a consumer group.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}
