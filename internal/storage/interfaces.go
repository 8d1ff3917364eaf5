// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
)

// KeyValueStore is the at-most-once-per-key storage abstraction shared
// by the pending invitation services. Keys are opaque strings, in
// practice the invitee email. Implementations must make PutIfAbsent a
// single conditional write against the backend.
type KeyValueStore[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Put(ctx context.Context, key string, value T) error
	PutIfAbsent(ctx context.Context, key string, value T) (bool, error)
	Remove(ctx context.Context, key string) error
	HasKey(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context) ([]string, error)
}
