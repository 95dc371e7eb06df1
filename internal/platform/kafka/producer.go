// Package kafka carries eventbus messages over Kafka using franz-go.
package kafka

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"agora/pkg/platform/codec"
)

type syncProducer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Producer publishes events synchronously; Publish returns once the broker acked.
type Producer struct {
	client syncProducer
}

func NewProducer(client *kgo.Client) *Producer {
	return &Producer{client: client}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, event any) error {
	value, err := codec.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}
	record := &kgo.Record{Topic: topic, Key: []byte(key), Value: value}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce %s: %w", topic, err)
	}
	return nil
}
