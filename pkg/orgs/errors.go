// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgs

import "errors"

var (
	// ErrUnknownOrg is returned when the organization id is not the one
	// this deployment serves.
	ErrUnknownOrg = errors.New("organization does not exist")
	// ErrUnknownUser is returned when the user holds no grant in the
	// organization.
	ErrUnknownUser = errors.New("user is not a member of the organization")
)
