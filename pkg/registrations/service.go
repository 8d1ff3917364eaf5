// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrations

import (
	"context"
	"fmt"

	"github.com/canonical/onboarding-service/internal/authorization"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/access"
	"github.com/canonical/onboarding-service/pkg/invitations"
	"github.com/canonical/onboarding-service/pkg/securitycode"
)

// Service completes registrations: code verification, password policy,
// account provisioning through the invitation orchestrator, grant
// application and record consumption. Grant application after the
// account exists is not compensated, a failure there leaves the account
// in place and the invitation unconsumed.
type Service struct {
	invites   invitations.ServiceInterface
	codes     securitycode.ServiceInterface
	access    access.ServiceInterface
	authz     authorization.AuthorizerInterface
	validator *PasswordValidator

	defaultOrgID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Register(ctx context.Context, code, password string) (string, string, error) {
	ctx, span := s.tracer.Start(ctx, "registrations.Service.Register")
	defer span.End()

	sc, err := s.invites.InvitationFor(ctx, code)
	if err != nil {
		return "", "", err
	}

	if err := s.validator.Validate(password); err != nil {
		return "", "", err
	}

	userID, err := s.invites.CreateUser(ctx, sc.Email, password, s.defaultOrgID)
	if err != nil {
		return "", "", err
	}

	if userID != "" {
		grants, err := s.access.Get(ctx, sc.Email)
		if err != nil {
			return "", "", err
		}
		if grants != nil {
			if err := s.applyGrants(ctx, userID, grants); err != nil {
				return "", "", err
			}
		}
	}

	if err := s.codes.Redeem(ctx, sc); err != nil {
		return "", "", err
	}
	if _, err := s.access.Redeem(ctx, sc.Email); err != nil {
		return "", "", err
	}

	return userID, sc.Email, nil
}

func (s *Service) InvitationFor(ctx context.Context, code string) (*types.SecurityCode, error) {
	ctx, span := s.tracer.Start(ctx, "registrations.Service.InvitationFor")
	defer span.End()

	return s.invites.InvitationFor(ctx, code)
}

func (s *Service) applyGrants(ctx context.Context, userID string, grants *types.AccessInvitations) error {
	for orgID, roles := range grants.OrgAccessInvitations {
		for _, role := range roles {
			if err := s.authz.AssignOrgRole(ctx, orgID, userID, role); err != nil {
				return fmt.Errorf("unable to grant %s in org %s to user %s: %w", role, orgID, userID, err)
			}
		}
	}
	return nil
}

func NewService(
	invites invitations.ServiceInterface,
	codes securitycode.ServiceInterface,
	accessInvitations access.ServiceInterface,
	authz authorization.AuthorizerInterface,
	validator *PasswordValidator,
	defaultOrgID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)
	s.invites = invites
	s.codes = codes
	s.access = accessInvitations
	s.authz = authz
	s.validator = validator
	s.defaultOrgID = defaultOrgID
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
