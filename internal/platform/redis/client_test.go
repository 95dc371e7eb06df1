package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/internal/platform/config"
)

func TestNew_EmptyURLIsNotConfigured(t *testing.T) {
	c, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNew_RejectsMalformedURL(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	require.Error(t, err)
}

func TestApplyPool(t *testing.T) {
	opts, err := redis.ParseURL("redis://localhost:6379/2")
	require.NoError(t, err)

	applyPool(opts, config.RedisConfig{PoolSize: 7, ReadTimeout: 2 * time.Second})

	assert.Equal(t, "agora", opts.ClientName)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, 2*time.Second, opts.ReadTimeout)
	assert.Equal(t, 2, opts.DB, "database from the url is kept")
	assert.Zero(t, opts.MinIdleConns, "unset values keep the go-redis default")
}
