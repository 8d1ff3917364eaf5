// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package securitycode

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	// Generate mints a fresh one-time code for the email, retrying on
	// code collisions. The same email getting a second code replaces
	// nothing, each call stores an independent code entry.
	Generate(context.Context, string) (*types.SecurityCode, error)
	// FindByMail returns the pending code issued to the email, if any.
	FindByMail(context.Context, string) (*types.SecurityCode, error)
	// Verify resolves a presented code back to its record.
	Verify(context.Context, string) (*types.SecurityCode, error)
	// Redeem consumes a verified code so it cannot be used again.
	Redeem(context.Context, *types.SecurityCode) error
	// PendingEmails lists the emails holding an unredeemed code.
	PendingEmails(context.Context) ([]string, error)
}

type StoreInterface interface {
	Get(ctx context.Context, key string) (types.SecurityCode, error)
	Put(ctx context.Context, key string, value types.SecurityCode) error
	PutIfAbsent(ctx context.Context, key string, value types.SecurityCode) (bool, error)
	Remove(ctx context.Context, key string) error
	HasKey(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context) ([]string, error)
}
