// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import "errors"

var (
	// ErrUserExists is returned when the invitee already holds an
	// account in the identity store.
	ErrUserExists = errors.New("user already exists")
	// ErrNoPendingInvitation is returned when an operation needs an
	// outstanding invitation and none is found for the email.
	ErrNoPendingInvitation = errors.New("no pending invitation found")
	// ErrForbiddenDomain is returned when the invitee address belongs
	// to a blacklisted domain.
	ErrForbiddenDomain = errors.New("email domain is not allowed")
)
