// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// CreateOrUpdateState reports whether an upsert created a fresh
// invitation record or amended an existing one.
type CreateOrUpdateState int

const (
	StateCreated CreateOrUpdateState = iota
	StateUpdated
)

func (s CreateOrUpdateState) String() string {
	if s == StateCreated {
		return "created"
	}
	return "updated"
}

type ServiceInterface interface {
	// Get returns the pending grant record for the email, or nil when
	// there is none.
	Get(context.Context, string) (*types.AccessInvitations, error)
	// Update applies the mutator to the email's record, creating an
	// empty record first when none exists.
	Update(context.Context, string, func(*types.AccessInvitations)) error
	// CreateOrUpdate applies the mutator to the email's record exactly
	// once, reporting whether the record is new.
	CreateOrUpdate(context.Context, string, func(*types.AccessInvitations)) (CreateOrUpdateState, error)
	// Redeem removes and returns the email's record. A nil record means
	// nothing was pending.
	Redeem(context.Context, string) (*types.AccessInvitations, error)
}

type StoreInterface interface {
	Get(ctx context.Context, key string) (types.AccessInvitations, error)
	Put(ctx context.Context, key string, value types.AccessInvitations) error
	PutIfAbsent(ctx context.Context, key string, value types.AccessInvitations) (bool, error)
	Remove(ctx context.Context, key string) error
	HasKey(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context) ([]string, error)
}
