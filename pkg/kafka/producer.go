package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"order-intake/pkg/log"
)

// Config configures the synchronous producer.
type Config struct {
	Brokers  []string
	ClientID string
}

// NewSyncProducer dials the brokers with acks from all in-sync replicas.
func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 5
	sc.Producer.Return.Successes = true
	sc.Version = sarama.V2_6_0_0

	p, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka: new sync producer: %w", err)
	}
	return p, nil
}

// Producer publishes JSON-encoded messages to one topic.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	l        log.Logger
}

func NewProducer(p sarama.SyncProducer, topic string, l log.Logger) *Producer {
	return &Producer{producer: p, topic: topic, l: l}
}

// Publish sends value keyed by key and waits for the broker ack.
func (p *Producer) Publish(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kafka: encode message: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.l.Errorf(ctx, "pkg.kafka.Publish: topic=%s key=%s: %v", p.topic, key, err)
		return fmt.Errorf("kafka: send message: %w", err)
	}

	p.l.Debugf(ctx, "pkg.kafka.Publish: topic=%s partition=%d offset=%d key=%s", p.topic, partition, offset, key)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
