package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"agora/internal/platform/eventbus"
)

const (
	handlerTimeout = 10 * time.Second
	maxAttempts    = 3
	retryBackoff   = 200 * time.Millisecond
)

type fetcher interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitRecords(ctx context.Context, rs ...*kgo.Record) error
}

// Consumer polls the group's topics and hands every record to a handler.
// A record is committed after the handler succeeds or after maxAttempts
// failures, so one poison message cannot stall the partition.
type Consumer struct {
	client fetcher
	logger *slog.Logger
}

func NewConsumer(client *kgo.Client, logger *slog.Logger) *Consumer {
	return &Consumer{client: client, logger: logger}
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context, handler eventbus.Handler) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if fetches.IsClientClosed() {
			return nil
		}
		for _, fe := range fetches.Errors() {
			c.logger.WarnContext(ctx, "kafka fetch error",
				"topic", fe.Topic,
				"partition", fe.Partition,
				"error", fe.Err,
			)
		}

		var handled []*kgo.Record
		fetches.EachRecord(func(rec *kgo.Record) {
			c.deliver(ctx, handler, rec)
			handled = append(handled, rec)
		})
		if len(handled) == 0 {
			continue
		}
		if err := c.client.CommitRecords(ctx, handled...); err != nil {
			c.logger.ErrorContext(ctx, "kafka commit failed", "error", err, "records", len(handled))
		}
	}
}

func (c *Consumer) deliver(ctx context.Context, handler eventbus.Handler, rec *kgo.Record) {
	msg := &eventbus.Message{
		Topic:     rec.Topic,
		Key:       rec.Key,
		Value:     rec.Value,
		Partition: rec.Partition,
		Offset:    rec.Offset,
	}
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		hctx, cancel := context.WithTimeout(ctx, handlerTimeout)
		err = handler.Handle(hctx, msg)
		cancel()
		if err == nil {
			return
		}
		c.logger.WarnContext(ctx, "event handler failed",
			"topic", rec.Topic,
			"offset", rec.Offset,
			"attempt", attempt,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	c.logger.ErrorContext(ctx, "dropping event after retries",
		"topic", rec.Topic,
		"partition", rec.Partition,
		"offset", rec.Offset,
		"error", err,
	)
}
