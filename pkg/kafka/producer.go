package kafka

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout is the Kafka producer request timeout.
	ProducerTimeout = 10 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 3
)

// KafkaVersion is the sarama protocol version used.
var KafkaVersion = sarama.V2_6_0_0

func newProducerImpl(cfg Config) (IProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	config.Version = KafkaVersion

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &producerImpl{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

// Publish sends a message to the configured topic.
func (p *producerImpl) Publish(key, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish message to Kafka: %w", err)
	}
	return nil
}

// Close closes the Kafka producer.
func (p *producerImpl) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// HealthCheck verifies the producer is initialized.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return fmt.Errorf("producer is not initialized")
	}
	return nil
}
