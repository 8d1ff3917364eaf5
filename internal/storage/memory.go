// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is the process-local backend. No persistence, records are
// lost on restart; only suitable for single-instance deployments.
//
// Values are kept JSON-encoded so a caller mutating a value it got from
// Get (or handed to Put) never reaches the stored record. Readers always
// receive their own copy, same as the Redis backend.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		records: make(map[string][]byte),
	}
}

func (s *MemoryStore[T]) Get(ctx context.Context, key string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value T
	data, ok := s.records[key]
	if !ok {
		return value, ErrNotFound
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, err
	}
	return value, nil
}

func (s *MemoryStore[T]) Put(ctx context.Context, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = data
	return nil
}

func (s *MemoryStore[T]) PutIfAbsent(ctx context.Context, key string, value T) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; ok {
		return false, nil
	}
	s.records[key] = data
	return true, nil
}

func (s *MemoryStore[T]) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}

func (s *MemoryStore[T]) HasKey(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[key]
	return ok, nil
}

func (s *MemoryStore[T]) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.records))
	for key := range s.records {
		keys = append(keys, key)
	}
	return keys, nil
}
