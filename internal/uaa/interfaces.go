// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package uaa

import (
	"context"
)

type ClientInterface interface {
	FindUserIDByName(ctx context.Context, email string) (string, error)
	CreateUser(ctx context.Context, email, password string) (*ScimUser, error)
	DeleteUser(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*ScimUser, error)
}
