package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vivuplan/pkg/utils"
)

const redisKeyPrefix = "vivu:"

type RedisKeyValueStore struct {
	rdb *redis.Client
}

func NewRedisKeyValueStore(rdb *redis.Client) *RedisKeyValueStore {
	return &RedisKeyValueStore{rdb: rdb}
}

func (s *RedisKeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return v, true, nil
}

func (s *RedisKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
