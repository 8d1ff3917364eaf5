// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"testing"
)

func TestHashedKeyStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore[string]()
	store := NewHashedKeyStore(inner, "pepper")

	if err := store.Put(ctx, "a@b.com", "record"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, err := store.Get(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "record" {
		t.Errorf("expected record, got %q", value)
	}

	// the backend must not see the address in clear
	if has, _ := inner.HasKey(ctx, "a@b.com"); has {
		t.Error("expected the raw key to be absent from the inner store")
	}

	if err := store.Remove(ctx, "a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if has, _ := store.HasKey(ctx, "a@b.com"); has {
		t.Error("expected key to be gone after Remove")
	}
}

func TestHashedKeyStore_SaltSeparatesKeys(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore[string]()

	first := NewHashedKeyStore(inner, "salt-1")
	second := NewHashedKeyStore(inner, "salt-2")

	if err := first.Put(ctx, "a@b.com", "record"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if has, _ := second.HasKey(ctx, "a@b.com"); has {
		t.Error("expected a different salt to address a different slot")
	}
}
