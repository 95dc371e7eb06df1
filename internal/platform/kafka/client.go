package kafka

import (
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"agora/internal/platform/config"
)

// NewClient builds a franz-go client. Topics is empty for producer-only clients.
func NewClient(cfg config.KafkaConfig, topics ...string) (*kgo.Client, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.AllowAutoTopicCreation(),
	}
	if len(topics) > 0 {
		opts = append(opts,
			kgo.ConsumerGroup(cfg.ConsumerGroup),
			kgo.ConsumeTopics(topics...),
			kgo.DisableAutoCommit(),
		)
	}
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return client, nil
}
