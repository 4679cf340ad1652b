package consumer

import (
	"fmt"

	"analytics-srv/internal/report"
	rabbitDelivery "analytics-srv/internal/report/delivery/rabbitmq"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/monitoring"
	pkgRabbit "analytics-srv/pkg/rabbitmq"
)

// Config holds the configuration for the report worker.
type Config struct {
	Logger   log.Logger
	Channel  pkgRabbit.IChannel
	Topology rabbitDelivery.Topology
	Prefetch int
	UseCase  report.UseCase
	Metrics  *monitoring.Collector
}

// Consumer renders queued report runs.
type Consumer struct {
	l        log.Logger
	ch       pkgRabbit.IChannel
	topology rabbitDelivery.Topology
	prefetch int
	uc       report.UseCase
	metrics  *monitoring.Collector
}

func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Channel == nil {
		return nil, fmt.Errorf("channel is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Topology.ReportQueue == "" {
		return nil, fmt.Errorf("report queue is required")
	}
	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}

	return &Consumer{
		l:        cfg.Logger,
		ch:       cfg.Channel,
		topology: cfg.Topology,
		prefetch: prefetch,
		uc:       cfg.UseCase,
		metrics:  cfg.Metrics,
	}, nil
}

func (c *Consumer) Close() error {
	return c.ch.Close()
}
