// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT and validates the claims that gate
	// the admin endpoints (allowed subjects, admin scope). Returns the
	// token's subject when the caller is authorized.
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
