// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/pkg/invitations"
	"github.com/canonical/onboarding-service/pkg/securitycode"
)

type RegistrationRequest struct {
	Password string `json:"password"`
}

type RegistrationResponse struct {
	UserID string `json:"user_guid"`
	Email  string `json:"email"`
}

type InvitationLookupResponse struct {
	Email string `json:"email"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/rest/registrations", a.register)
	mux.Get("/rest/registrations/{code}", a.lookup)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "registrations.API.register")
	defer span.End()

	code := r.URL.Query().Get("code")

	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID, email, err := a.service.Register(ctx, code, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, securitycode.ErrInvalidCode):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, ErrEmptyPassword), errors.Is(err, ErrTooShortPassword):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, invitations.ErrUserExists):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			a.logger.Errorf("registration failed: %s", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(RegistrationResponse{UserID: userID, Email: email}); err != nil {
		a.logger.Errorf("failed to encode response: %s", err)
	}
}

func (a *API) lookup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "registrations.API.lookup")
	defer span.End()

	code := chi.URLParam(r, "code")

	sc, err := a.service.InvitationFor(ctx, code)
	if err != nil {
		if errors.Is(err, securitycode.ErrInvalidCode) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to resolve code: %s", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(InvitationLookupResponse{Email: sc.Email}); err != nil {
		a.logger.Errorf("failed to encode response: %s", err)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.service = service
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
