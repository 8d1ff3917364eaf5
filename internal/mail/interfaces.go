// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type DispatcherInterface interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
