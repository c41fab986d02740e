package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainRepo "easymed-booking/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// scanBatchSize bounds the keys fetched per SCAN round in DeletePrefix.
const scanBatchSize = 100

type redisClientStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClientStore stores client state in Redis. A zero ttl keeps keys until deleted.
func NewRedisClientStore(client *redis.Client, ttl time.Duration) domainRepo.ClientStore {
	return &redisClientStore{client: client, ttl: ttl}
}

func (s *redisClientStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *redisClientStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *redisClientStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *redisClientStore) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s: %w", prefix, err)
		}

		// One pipeline per SCAN batch
		if len(keys) > 0 {
			pipe := s.client.TxPipeline()
			pipe.Del(ctx, keys...)
			if _, err := pipe.Exec(ctx); err != nil {
				return fmt.Errorf("redis del prefix %s: %w", prefix, err)
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}
