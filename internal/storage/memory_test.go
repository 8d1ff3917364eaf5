// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/canonical/onboarding-service/internal/types"
)

func TestMemoryStore_GetPutRemove(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[types.SecurityCode]()

	if _, err := store.Get(ctx, "a@b.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	code := types.SecurityCode{Email: "a@b.com", Code: "c-1"}
	if err := store.Put(ctx, "a@b.com", code); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != code {
		t.Errorf("expected %v, got %v", code, got)
	}

	if err := store.Remove(ctx, "a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if has, _ := store.HasKey(ctx, "a@b.com"); has {
		t.Error("expected key to be gone after Remove")
	}
}

func TestMemoryStore_GetReturnsDetachedCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[*types.AccessInvitations]()

	record := types.NewAccessInvitations()
	record.AddOrgAccessInvitation("org-1", types.RoleUser)
	if err := store.Put(ctx, "a@b.com", record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mutating a read value must not reach the stored record
	first, err := store.Get(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.AddOrgAccessInvitation("org-2", types.RoleAdmin)

	second, err := store.Get(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := second.OrgAccessInvitations["org-2"]; ok {
		t.Error("expected the stored record to be untouched by the caller's mutation")
	}

	// mutating after Put must not reach it either
	record.AddOrgAccessInvitation("org-3", types.RoleUser)
	third, _ := store.Get(ctx, "a@b.com")
	if _, ok := third.OrgAccessInvitations["org-3"]; ok {
		t.Error("expected the stored record to be detached from the writer's value")
	}
}

func TestMemoryStore_PutIfAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[string]()

	inserted, err := store.PutIfAbsent(ctx, "k", "first")
	if err != nil || !inserted {
		t.Fatalf("expected first conditional write to succeed, got (%v, %v)", inserted, err)
	}

	inserted, err = store.PutIfAbsent(ctx, "k", "second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted {
		t.Error("expected second conditional write to report the key as taken")
	}

	value, _ := store.Get(ctx, "k")
	if value != "first" {
		t.Errorf("expected first value to win, got %q", value)
	}
}

func TestMemoryStore_Keys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[int]()

	for i, key := range []string{"x@y.com", "a@b.com"} {
		if err := store.Put(ctx, key, i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slices.Sort(keys)
	if !slices.Equal(keys, []string{"a@b.com", "x@y.com"}) {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestMemoryStore_ConcurrentPutIfAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[int]()

	const writers = 32
	var wg sync.WaitGroup
	wins := make(chan int, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			inserted, err := store.PutIfAbsent(ctx, "contended", n)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if inserted {
				wins <- n
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	if len(wins) != 1 {
		t.Fatalf("expected exactly one writer to win, got %d", len(wins))
	}
	winner := <-wins
	value, _ := store.Get(ctx, "contended")
	if value != winner {
		t.Errorf("stored value %d does not match winning writer %d", value, winner)
	}
}
