// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrations

import "errors"

var (
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrTooShortPassword = errors.New("password is too short")
)
