// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrations

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	// Register turns a one-time code and a password into a provisioned
	// account, applies the pending org role grants and consumes both
	// invitation records. It returns the new user id and the invited
	// email.
	Register(ctx context.Context, code, password string) (string, string, error)
	// InvitationFor resolves a code without consuming it.
	InvitationFor(ctx context.Context, code string) (*types.SecurityCode, error)
}
