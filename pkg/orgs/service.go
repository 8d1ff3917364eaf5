// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgs

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/canonical/onboarding-service/internal/authgateway"
	"github.com/canonical/onboarding-service/internal/authorization"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/internal/uaa"
)

// Service manages the users of the configured organization. The
// deployment serves a single org whose identity comes from
// configuration rather than a directory.
type Service struct {
	org      types.Org
	authz    authorization.AuthorizerInterface
	identity uaa.ClientInterface
	gateway  authgateway.ClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListOrgs(ctx context.Context) []types.Org {
	_, span := s.tracer.Start(ctx, "orgs.Service.ListOrgs")
	defer span.End()

	return []types.Org{s.org}
}

func (s *Service) ListOrgUsers(ctx context.Context, orgID string) ([]types.User, error) {
	ctx, span := s.tracer.Start(ctx, "orgs.Service.ListOrgUsers")
	defer span.End()

	if orgID != s.org.ID {
		return nil, ErrUnknownOrg
	}

	grants, err := s.authz.ListOrgUsers(ctx, orgID)
	if err != nil {
		return nil, err
	}

	users := make([]types.User, 0, len(grants))
	for userID, roles := range grants {
		user := types.User{ID: userID, Roles: roles}
		account, err := s.identity.GetUser(ctx, userID)
		if err != nil {
			// A grant can outlive the identity account, keep the entry
			// with the id as its name.
			s.logger.Warnf("failed to resolve username for %s: %s", userID, err)
			user.Username = userID
		} else {
			user.Username = account.Username
		}
		users = append(users, user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (s *Service) UpdateUserRoles(ctx context.Context, orgID, userID string, roles []types.UserRole) ([]types.UserRole, error) {
	ctx, span := s.tracer.Start(ctx, "orgs.Service.UpdateUserRoles")
	defer span.End()

	if orgID != s.org.ID {
		return nil, ErrUnknownOrg
	}

	current, err := s.authz.UserOrgRoles(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, ErrUnknownUser
	}

	for _, role := range roles {
		if !slices.Contains(current, role) {
			if err := s.authz.AssignOrgRole(ctx, orgID, userID, role); err != nil {
				return nil, fmt.Errorf("unable to assign %s to user %s: %w", role, userID, err)
			}
		}
	}
	for _, role := range current {
		if !slices.Contains(roles, role) {
			if err := s.authz.RemoveOrgRole(ctx, orgID, userID, role); err != nil {
				return nil, fmt.Errorf("unable to revoke %s from user %s: %w", role, userID, err)
			}
		}
	}

	return roles, nil
}

func (s *Service) DeleteOrgUser(ctx context.Context, orgID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "orgs.Service.DeleteOrgUser")
	defer span.End()

	if orgID != s.org.ID {
		return ErrUnknownOrg
	}

	roles, err := s.authz.UserOrgRoles(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return ErrUnknownUser
	}

	// Gateway un-registration goes first, the user must not keep
	// platform access once the org record is gone.
	if _, err := s.gateway.DeleteUser(ctx, orgID, userID, nil); err != nil {
		return err
	}
	if err := s.authz.RemoveOrgAccess(ctx, orgID, userID); err != nil {
		return err
	}
	if err := s.identity.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("unable to remove identity account %s: %w", userID, err)
	}

	return nil
}

func NewService(
	org types.Org,
	authz authorization.AuthorizerInterface,
	identity uaa.ClientInterface,
	gateway authgateway.ClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)
	s.org = org
	s.authz = authz
	s.identity = identity
	s.gateway = gateway
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
