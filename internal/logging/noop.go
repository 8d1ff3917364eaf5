// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// NewNoopLogger returns a logger that discards everything, including
// security audit events. Meant for tests.
func NewNoopLogger() *Logger {
	nop := zap.NewNop()

	return &Logger{
		SugaredLogger: nop.Sugar(),
		security:      &SecurityLogger{l: nop},
	}
}
