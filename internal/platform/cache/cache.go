// Package cache is the key/value cache used read-through by the access
// evaluator. Values are opaque bytes; callers own the encoding.
package cache

import (
	"context"
	"time"
)

// Cache is a get/set/exists/remove store with per-entry TTL.
// A zero ttl stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Remove(ctx context.Context, keys ...string) error
}
