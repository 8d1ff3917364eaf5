// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits structured audit events for security
// sensitive state transitions.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthzFailure(subject, operation string)
	InvitationIssued(email, invitedBy string)
	InvitationRevoked(email string)
	CodeRedeemed(email string)
	AccountProvisioned(userID, orgID string)
	AccountRolledBack(userID string)
}
