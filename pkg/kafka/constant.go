package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	ProducerTimeout  = 10 * time.Second
	ProducerRetryMax = 3
)

// KafkaVersion is the protocol version negotiated with brokers.
var KafkaVersion = sarama.V2_6_0_0
