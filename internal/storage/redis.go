// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

// RedisStore keeps all records of one store in a single Redis hash, one
// field per key. HSETNX gives the conditional write PutIfAbsent relies
// on; the hash survives restarts and is shared across service
// instances.
type RedisStore[T any] struct {
	client  redis.UniversalClient
	hashKey string
	codec   Codec[T]

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRedisStore[T any](
	client redis.UniversalClient,
	hashKey string,
	codec Codec[T],
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *RedisStore[T] {
	return &RedisStore[T]{
		client:  client,
		hashKey: hashKey,
		codec:   codec,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *RedisStore[T]) Get(ctx context.Context, key string) (T, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RedisStore.Get")
	defer span.End()

	var zero T
	data, err := s.client.HGet(ctx, s.hashKey, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("failed to read %q from %q: %w", key, s.hashKey, err)
	}

	return s.codec.Decode(data)
}

func (s *RedisStore[T]) Put(ctx context.Context, key string, value T) error {
	ctx, span := s.tracer.Start(ctx, "storage.RedisStore.Put")
	defer span.End()

	data, err := s.codec.Encode(value)
	if err != nil {
		return err
	}

	if err := s.client.HSet(ctx, s.hashKey, key, data).Err(); err != nil {
		return fmt.Errorf("failed to write %q to %q: %w", key, s.hashKey, err)
	}
	return nil
}

func (s *RedisStore[T]) PutIfAbsent(ctx context.Context, key string, value T) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RedisStore.PutIfAbsent")
	defer span.End()

	data, err := s.codec.Encode(value)
	if err != nil {
		return false, err
	}

	inserted, err := s.client.HSetNX(ctx, s.hashKey, key, data).Result()
	if err != nil {
		return false, fmt.Errorf("failed conditional write of %q to %q: %w", key, s.hashKey, err)
	}
	return inserted, nil
}

func (s *RedisStore[T]) Remove(ctx context.Context, key string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RedisStore.Remove")
	defer span.End()

	if err := s.client.HDel(ctx, s.hashKey, key).Err(); err != nil {
		return fmt.Errorf("failed to remove %q from %q: %w", key, s.hashKey, err)
	}
	return nil
}

func (s *RedisStore[T]) HasKey(ctx context.Context, key string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RedisStore.HasKey")
	defer span.End()

	exists, err := s.client.HExists(ctx, s.hashKey, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed existence check of %q in %q: %w", key, s.hashKey, err)
	}
	return exists, nil
}

func (s *RedisStore[T]) Keys(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RedisStore.Keys")
	defer span.End()

	keys, err := s.client.HKeys(ctx, s.hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of %q: %w", s.hashKey, err)
	}
	return keys, nil
}
