// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authgateway

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// RollbackFunc compensates for side effects committed before a gateway
// call failed. It receives the causing error and runs before that error
// is propagated to the caller.
type RollbackFunc func(ctx context.Context, cause error) error

type ClientInterface interface {
	CreateUser(ctx context.Context, orgID, userID string, rollback RollbackFunc) (*types.UserState, error)
	DeleteUser(ctx context.Context, orgID, userID string, rollback RollbackFunc) (*types.UserState, error)
}
