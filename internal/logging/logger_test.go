// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityEventsCarryTaxonomy(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := &Logger{
		SugaredLogger: zap.New(core).Sugar(),
		security:      &SecurityLogger{l: zap.New(core)},
	}

	logger.Security().InvitationIssued("a@b.com", "admin")
	logger.Security().CodeRedeemed("a@b.com")
	logger.Security().AccountRolledBack("user-1")

	entries := observed.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(entries))
	}

	expectedEvents := []string{"invitation.issued", "code.redeemed", "account.rolled_back"}
	for i, entry := range entries {
		fields := entry.ContextMap()
		if fields["event"] != expectedEvents[i] {
			t.Errorf("expected event %q, got %v", expectedEvents[i], fields["event"])
		}
	}

	if entries[2].Level != zapcore.WarnLevel {
		t.Errorf("expected rollback to log at warn level, got %v", entries[2].Level)
	}
}
