// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type contextKey struct{}

var userContextKey = contextKey{}

// WithUserID stores the authenticated caller's ID on the context. The
// invitation handlers read it back to attribute who invited whom.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// GetUserID returns the authenticated caller's ID, or false when the
// request went through without authentication.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey).(string)
	return id, ok
}
