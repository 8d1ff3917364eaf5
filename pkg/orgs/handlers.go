// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

type RolesRequest struct {
	Roles []types.UserRole `json:"roles"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/rest/orgs", a.list)
	mux.Get("/rest/orgs/{orgID}/users", a.listUsers)
	mux.Post("/rest/orgs/{orgID}/users/{userID}", a.updateUserRoles)
	mux.Delete("/rest/orgs/{orgID}/users/{userID}", a.deleteUser)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "orgs.API.list")
	defer span.End()

	a.writeJSON(w, http.StatusOK, a.service.ListOrgs(ctx))
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "orgs.API.listUsers")
	defer span.End()

	users, err := a.service.ListOrgUsers(ctx, chi.URLParam(r, "orgID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, users)
}

func (a *API) updateUserRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "orgs.API.updateUserRoles")
	defer span.End()

	var req RolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Roles) == 0 {
		http.Error(w, "At least one role is required", http.StatusBadRequest)
		return
	}

	roles, err := a.service.UpdateUserRoles(ctx, chi.URLParam(r, "orgID"), chi.URLParam(r, "userID"), req.Roles)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, RolesRequest{Roles: roles})
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "orgs.API.deleteUser")
	defer span.End()

	if err := a.service.DeleteOrgUser(ctx, chi.URLParam(r, "orgID"), chi.URLParam(r, "userID")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownOrg), errors.Is(err, ErrUnknownUser):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		a.logger.Errorf("org operation failed: %s", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
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
