// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
)

// RedisCmdable is the subset of [redis.Cmdable] used by the redis store.
type RedisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisStore keeps slots as plain redis strings under prefix.
type redisStore struct {
	client RedisCmdable
	prefix string
	logger *logger.Logger
}

func NewRedisStore(client RedisCmdable, prefix string, log *logger.Logger) SecureStore {
	return &redisStore{
		client: client,
		prefix: prefix,
		logger: log,
	}
}

func (s *redisStore) key(key string) string {
	return s.prefix + key
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("redis get failed")
		return "", fmt.Errorf("redis get: %w", err)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		s.logger.Err(err).Str("key", key).Msg("redis set failed")
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.logger.Err(err).Str("key", key).Msg("redis del failed")
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}
