// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"fmt"

	"github.com/canonical/onboarding-service/internal/authgateway"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/mail"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/internal/uaa"
	"github.com/canonical/onboarding-service/pkg/access"
	"github.com/canonical/onboarding-service/pkg/securitycode"
)

// resendInviter is the sender named in re-sent invitations, the
// original inviter is not persisted with the code.
const resendInviter = "The platform team"

// Service orchestrates the invitation lifecycle across the code store,
// the access grant store, the identity store and the authorization
// gateway.
type Service struct {
	codes      securitycode.ServiceInterface
	access     access.ServiceInterface
	identity   uaa.ClientInterface
	gateway    authgateway.ClientInterface
	dispatcher mail.DispatcherInterface

	consoleURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) SendInviteEmail(ctx context.Context, email, invitedBy string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.SendInviteEmail")
	defer span.End()

	exists, err := s.UserExists(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrUserExists
	}

	sc, err := s.codes.Generate(ctx, email)
	if err != nil {
		return "", err
	}

	link := invitationLink(s.consoleURL, sc.Code)
	body, err := renderInviteBody(invitedBy, link)
	if err != nil {
		return "", err
	}

	if err := s.dispatcher.Send(ctx, email, inviteSubject, body); err != nil {
		return "", fmt.Errorf("unable to deliver invitation to %s: %w", email, err)
	}

	s.logger.Security().InvitationIssued(email, invitedBy)
	return link, nil
}

func (s *Service) ResendInviteEmail(ctx context.Context, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ResendInviteEmail")
	defer span.End()

	sc, err := s.codes.FindByMail(ctx, email)
	if err != nil {
		return "", err
	}
	if sc == nil {
		return "", ErrNoPendingInvitation
	}

	link := invitationLink(s.consoleURL, sc.Code)
	body, err := renderInviteBody(resendInviter, link)
	if err != nil {
		return "", err
	}

	if err := s.dispatcher.Send(ctx, email, inviteSubject, body); err != nil {
		return "", fmt.Errorf("unable to deliver invitation to %s: %w", email, err)
	}

	return link, nil
}

func (s *Service) CreateUser(ctx context.Context, email, password, orgID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CreateUser")
	defer span.End()

	exists, err := s.UserExists(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrUserExists
	}

	grants, err := s.access.Get(ctx, email)
	if err != nil {
		return "", err
	}
	if grants == nil {
		s.logger.Warnf("no access invitations for %s, skipping account creation", email)
		return "", nil
	}

	account, err := s.identity.CreateUser(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("unable to create identity account for %s: %w", email, err)
	}

	rollback := func(ctx context.Context, cause error) error {
		s.logger.Security().AccountRolledBack(account.ID)
		return s.identity.DeleteUser(ctx, account.ID)
	}

	if _, err := s.gateway.CreateUser(ctx, orgID, account.ID, rollback); err != nil {
		return "", err
	}

	s.logger.Security().AccountProvisioned(account.ID, orgID)
	return account.ID, nil
}

func (s *Service) DeleteInvitation(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.DeleteInvitation")
	defer span.End()

	sc, err := s.codes.FindByMail(ctx, email)
	if err != nil {
		return err
	}
	if sc == nil {
		return ErrNoPendingInvitation
	}

	if err := s.codes.Redeem(ctx, sc); err != nil {
		return err
	}
	if _, err := s.access.Redeem(ctx, email); err != nil {
		return err
	}

	s.logger.Security().InvitationRevoked(email)
	return nil
}

func (s *Service) UserExists(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.UserExists")
	defer span.End()

	userID, err := s.identity.FindUserIDByName(ctx, email)
	if err != nil {
		return false, fmt.Errorf("unable to look up %s in the identity store: %w", email, err)
	}
	return userID != "", nil
}

func (s *Service) HasPendingInvitation(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.HasPendingInvitation")
	defer span.End()

	sc, err := s.codes.FindByMail(ctx, email)
	if err != nil {
		return false, err
	}
	return sc != nil, nil
}

func (s *Service) PendingInvitationsEmails(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.PendingInvitationsEmails")
	defer span.End()

	return s.codes.PendingEmails(ctx)
}

func (s *Service) InvitationFor(ctx context.Context, code string) (*types.SecurityCode, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.InvitationFor")
	defer span.End()

	return s.codes.Verify(ctx, code)
}

func NewService(
	codes securitycode.ServiceInterface,
	accessInvitations access.ServiceInterface,
	identity uaa.ClientInterface,
	gateway authgateway.ClientInterface,
	dispatcher mail.DispatcherInterface,
	consoleURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)
	s.codes = codes
	s.access = accessInvitations
	s.identity = identity
	s.gateway = gateway
	s.dispatcher = dispatcher
	s.consoleURL = consoleURL
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
