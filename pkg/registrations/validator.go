// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrations

// PasswordValidator enforces the platform password policy on
// registration.
type PasswordValidator struct {
	minChars int
}

func (v *PasswordValidator) Validate(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < v.minChars {
		return ErrTooShortPassword
	}
	return nil
}

func NewPasswordValidator(minChars int) *PasswordValidator {
	return &PasswordValidator{minChars: minChars}
}
