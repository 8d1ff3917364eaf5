// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgs

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	// ListOrgs returns the organizations this deployment serves. The
	// organization context is configuration, not storage.
	ListOrgs(ctx context.Context) []types.Org
	ListOrgUsers(ctx context.Context, orgID string) ([]types.User, error)
	// UpdateUserRoles reconciles the user's grants in the organization
	// against the requested role set.
	UpdateUserRoles(ctx context.Context, orgID, userID string, roles []types.UserRole) ([]types.UserRole, error)
	// DeleteOrgUser un-registers the user from the authorization
	// gateway, revokes its grants and removes the identity account.
	DeleteOrgUser(ctx context.Context, orgID, userID string) error
}
