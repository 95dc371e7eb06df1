package eventbus

import (
	"context"
	"fmt"
	"sync"

	"agora/pkg/platform/codec"
)

// InMemory delivers events synchronously to the registered handler. Handler
// errors are returned to the publisher.
type InMemory struct {
	mu      sync.RWMutex
	handler Handler
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// Attach sets the handler that receives every published message, typically a Router.
func (b *InMemory) Attach(h Handler) {
	b.mu.Lock()
	b.handler = h
	b.mu.Unlock()
}

func (b *InMemory) Publish(ctx context.Context, topic, key string, event any) error {
	value, err := codec.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}
	b.mu.RLock()
	h := b.handler
	b.mu.RUnlock()
	if h == nil {
		return nil
	}
	return h.Handle(ctx, &Message{Topic: topic, Key: []byte(key), Value: value})
}
