package consumer

import (
	"fmt"

	"analytics-srv/config"
	"analytics-srv/internal/dashboard"
	pkgKafka "analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/monitoring"
)

// Config holds the configuration for the dashboard cache consumer.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     dashboard.UseCase
	Metrics     *monitoring.Collector
}

// Consumer invalidates rendered dashboards when posts change.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          dashboard.UseCase
	metrics     *monitoring.Collector

	postChangedGroup pkgKafka.IConsumer
}

func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
		metrics:     cfg.Metrics,
	}, nil
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c.postChangedGroup != nil {
		if err := c.postChangedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close post changed group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCreateConsumerGroupFailed, groupID, err)
	}
	return group, nil
}
