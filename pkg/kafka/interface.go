package kafka

import "errors"

// IProducer defines the interface for a Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

var (
	errBrokersRequired = errors.New("at least one broker is required")
	errTopicRequired   = errors.New("topic is required")
)

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errBrokersRequired
	}
	if cfg.Topic == "" {
		return nil, errTopicRequired
	}
	return newProducerImpl(cfg)
}
