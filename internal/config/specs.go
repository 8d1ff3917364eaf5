// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// ConsoleURL is the public address the invitation link points at.
	ConsoleURL string `envconfig:"console_url" required:"true"`

	UaaURL          string `envconfig:"uaa_url" required:"true"`
	UaaClientID     string `envconfig:"uaa_client_id" required:"true"`
	UaaClientSecret string `envconfig:"uaa_client_secret" required:"true"`

	AuthGatewayURL            string        `envconfig:"auth_gateway_url" required:"true"`
	AuthGatewayConnectTimeout time.Duration `envconfig:"auth_gateway_connect_timeout" default:"30s"`
	// Gateway provisioning can be slow, keep the read deadline generous.
	AuthGatewayReadTimeout time.Duration `envconfig:"auth_gateway_read_timeout" default:"10m"`

	// StoreBackend selects where pending invitations live: "in-memory" or "redis".
	StoreBackend   string `envconfig:"store_backend" default:"in-memory"`
	RedisAddr      string `envconfig:"redis_addr"`
	RedisPassword  string `envconfig:"redis_password"`
	RedisDB        int    `envconfig:"redis_db" default:"0"`
	StoreCipherKey string `envconfig:"store_cipher_key"`
	// StoreHashSalt, when set, hashes invitation record keys so the
	// invitee addresses never reach the shared backend in clear.
	StoreHashSalt string `envconfig:"store_hash_salt"`

	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`
	SMTPTLS      bool   `envconfig:"smtp_tls" default:"true"`
	SMTPFrom     string `envconfig:"smtp_from" required:"true"`

	ServiceName      string   `envconfig:"service_name" default:"Canonical Platform"`
	ForbiddenDomains []string `envconfig:"forbidden_domains"`
	MinPasswordChars int      `envconfig:"min_password_chars" default:"6"`

	DefaultOrgID   string `envconfig:"default_org_id" default:"00000000-0000-0000-0000-000000000000"`
	DefaultOrgName string `envconfig:"default_org_name" default:"default"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	AdminScope            string   `envconfig:"admin_scope" default:"onboarding.admin"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
