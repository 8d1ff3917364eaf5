// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// HashedKeyStore hides record addresses from the backend by hashing
// every key with salted SHA-256 before delegating. Keys returns the
// hashed forms, so the decorator only suits stores that are addressed
// by exact key and never scanned.
type HashedKeyStore[T any] struct {
	inner KeyValueStore[T]
	salt  []byte
}

func NewHashedKeyStore[T any](inner KeyValueStore[T], salt string) *HashedKeyStore[T] {
	return &HashedKeyStore[T]{
		inner: inner,
		salt:  []byte(salt),
	}
}

func (s *HashedKeyStore[T]) hash(key string) string {
	sum := sha256.Sum256(append(s.salt, key...))
	return hex.EncodeToString(sum[:])
}

func (s *HashedKeyStore[T]) Get(ctx context.Context, key string) (T, error) {
	return s.inner.Get(ctx, s.hash(key))
}

func (s *HashedKeyStore[T]) Put(ctx context.Context, key string, value T) error {
	return s.inner.Put(ctx, s.hash(key), value)
}

func (s *HashedKeyStore[T]) PutIfAbsent(ctx context.Context, key string, value T) (bool, error) {
	return s.inner.PutIfAbsent(ctx, s.hash(key), value)
}

func (s *HashedKeyStore[T]) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.hash(key))
}

func (s *HashedKeyStore[T]) HasKey(ctx context.Context, key string) (bool, error) {
	return s.inner.HasKey(ctx, s.hash(key))
}

func (s *HashedKeyStore[T]) Keys(ctx context.Context) ([]string, error) {
	return s.inner.Keys(ctx)
}
