// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/openfga/go-sdk/client"

	"github.com/canonical/onboarding-service/internal/openfga"
	"github.com/canonical/onboarding-service/internal/types"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ListObjects(context.Context, string, string, string) ([]string, error)

	// AssignOrgRole grants the user the given role within the organization.
	AssignOrgRole(context.Context, string, string, types.UserRole) error
	// RemoveOrgRole revokes a single role grant, leaving other grants intact.
	RemoveOrgRole(context.Context, string, string, types.UserRole) error
	// RemoveOrgAccess revokes every role the user holds in the organization.
	RemoveOrgAccess(context.Context, string, string) error

	ListUserOrgs(context.Context, string) ([]string, error)
	ListOrgUsers(context.Context, string) (map[string][]types.UserRole, error)
	UserOrgRoles(context.Context, string, string) ([]types.UserRole, error)
	CheckOrgAccess(context.Context, string, string, string) (bool, error)
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error)
	ListObjects(context.Context, string, string, string) ([]string, error)
	ListUsers(ctx context.Context, relation, objectType, objectID string) ([]string, error)
}
