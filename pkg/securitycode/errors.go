// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package securitycode

import "errors"

var (
	// ErrInvalidCode is returned when a presented code is empty, unknown
	// or already redeemed.
	ErrInvalidCode = errors.New("invalid security code")
	// ErrGenerationExhausted is returned when the generation retry budget
	// is spent without finding an unused code.
	ErrGenerationExhausted = errors.New("security code generation attempts exhausted")
)
