package rabbitmq

import (
	"fmt"
	"sync"

	"analytics-srv/config"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/rabbitmq"
)

var (
	mu       sync.Mutex
	instance rabbitmq.IRabbitMQ
)

// Connect dials the broker and shares the connection. Report producers and
// consumers each open their own channel on it.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	conn, err := rabbitmq.NewRabbitMQ(l, cfg.URL, cfg.RetryWithoutTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	instance = conn
	return instance, nil
}

func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
	}
}
