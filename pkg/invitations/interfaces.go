// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	// SendInviteEmail invites the email on behalf of invitedBy and
	// returns the registration link mailed out. An already registered
	// address fails with ErrUserExists.
	SendInviteEmail(ctx context.Context, email, invitedBy string) (string, error)
	// ResendInviteEmail mails the existing pending code again without
	// minting a new one. No pending code fails with
	// ErrNoPendingInvitation.
	ResendInviteEmail(ctx context.Context, email string) (string, error)
	// CreateUser provisions the invitee in the identity store and
	// registers it with the authorization gateway, rolling the identity
	// account back when registration fails. An email with no pending
	// access grants is a no-op and yields an empty user id.
	CreateUser(ctx context.Context, email, password, orgID string) (string, error)
	// DeleteInvitation withdraws the pending invitation, consuming both
	// the code and the access grant records.
	DeleteInvitation(ctx context.Context, email string) error
	UserExists(ctx context.Context, email string) (bool, error)
	// HasPendingInvitation reports whether a registration code is
	// outstanding for the email.
	HasPendingInvitation(ctx context.Context, email string) (bool, error)
	PendingInvitationsEmails(ctx context.Context) ([]string, error)
	InvitationFor(ctx context.Context, code string) (*types.SecurityCode, error)
}
