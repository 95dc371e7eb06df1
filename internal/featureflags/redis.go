package featureflags

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	id "agora/pkg/domain"
)

// RedisStore keeps one hash per territory: agora:flags:{territory} -> flag -> "1"/"0".
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func flagsKey(territoryID id.TerritoryID) string {
	return "agora:flags:" + territoryID.String()
}

func (s *RedisStore) Get(ctx context.Context, territoryID id.TerritoryID, flag Flag) (bool, bool, error) {
	v, err := s.client.HGet(ctx, flagsKey(territoryID), string(flag)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("hget feature flag: %w", err)
	}
	return v == "1", true, nil
}

func (s *RedisStore) Set(ctx context.Context, territoryID id.TerritoryID, flag Flag, enabled bool) error {
	v := "0"
	if enabled {
		v = "1"
	}
	if err := s.client.HSet(ctx, flagsKey(territoryID), string(flag), v).Err(); err != nil {
		return fmt.Errorf("hset feature flag: %w", err)
	}
	return nil
}
