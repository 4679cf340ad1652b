package kafka

import (
	"fmt"
	"sync"

	"analytics-srv/config"
	"analytics-srv/pkg/kafka"
)

var (
	mu       sync.Mutex
	producer kafka.IProducer
)

// ConnectProducer returns the shared producer for cfg.Topic, creating it on
// first use. The producer publishes post change events.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if producer != nil {
		return producer, nil
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka.brokers is empty")
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}
	producer = p
	return producer, nil
}

func DisconnectProducer() error {
	mu.Lock()
	defer mu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	return err
}
