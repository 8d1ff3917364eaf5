// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes audit events at info level with a fixed event
// taxonomy so they can be shipped to a SIEM independently of the
// application log stream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, operation string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz.failure"),
		zap.String("subject", subject),
		zap.String("operation", operation),
	)
}

func (s *SecurityLogger) InvitationIssued(email, invitedBy string) {
	s.l.Info("invitation issued",
		zap.String("event", "invitation.issued"),
		zap.String("email", email),
		zap.String("invited_by", invitedBy),
	)
}

func (s *SecurityLogger) InvitationRevoked(email string) {
	s.l.Info("invitation revoked",
		zap.String("event", "invitation.revoked"),
		zap.String("email", email),
	)
}

func (s *SecurityLogger) CodeRedeemed(email string) {
	s.l.Info("security code redeemed",
		zap.String("event", "code.redeemed"),
		zap.String("email", email),
	)
}

func (s *SecurityLogger) AccountProvisioned(userID, orgID string) {
	s.l.Info("account provisioned",
		zap.String("event", "account.provisioned"),
		zap.String("user_id", userID),
		zap.String("org_id", orgID),
	)
}

func (s *SecurityLogger) AccountRolledBack(userID string) {
	s.l.Warn("account rolled back",
		zap.String("event", "account.rolled_back"),
		zap.String("user_id", userID),
	)
}
