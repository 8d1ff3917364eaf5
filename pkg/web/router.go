// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/invitations"
	"github.com/canonical/onboarding-service/pkg/metrics"
	"github.com/canonical/onboarding-service/pkg/orgs"
	"github.com/canonical/onboarding-service/pkg/registrations"
	"github.com/canonical/onboarding-service/pkg/status"
)

// NewRouter assembles the HTTP surface. Registration endpoints are public,
// the invitation and org management endpoints are mounted behind the token
// verifier when one is passed.
func NewRouter(
	invitationsAPI *invitations.API,
	registrationsAPI *registrations.API,
	orgsAPI *orgs.API,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	registrationsAPI.RegisterEndpoints(router)

	admin := chi.NewMux()
	if verifier != nil {
		admin.Use(authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate())
	}
	invitationsAPI.RegisterEndpoints(admin)
	orgsAPI.RegisterEndpoints(admin)

	router.Mount("/", admin)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
