// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import "errors"

// ErrEmptyEmail is returned when an operation is attempted with an
// empty invitee address.
var ErrEmptyEmail = errors.New("email cannot be empty")
