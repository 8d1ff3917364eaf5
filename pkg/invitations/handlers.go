// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/access"
	"github.com/canonical/onboarding-service/pkg/authentication"
)

type InvitationRequest struct {
	Email string           `json:"email" validate:"required,email"`
	OrgID string           `json:"org_id"`
	Roles []types.UserRole `json:"roles"`
}

type InvitationResponse struct {
	State   string `json:"state"`
	Details string `json:"details,omitempty"`
	Link    string `json:"link,omitempty"`
}

type API struct {
	service          ServiceInterface
	access           access.ServiceInterface
	validate         *validator.Validate
	forbiddenDomains []string
	defaultOrgID     string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/rest/invitations", a.create)
	mux.Get("/rest/invitations", a.list)
	mux.Post("/rest/invitations/{email}/resend", a.resend)
	mux.Delete("/rest/invitations/{email}", a.delete)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.create")
	defer span.End()

	var req InvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, "A valid email address is required", http.StatusBadRequest)
		return
	}
	if a.domainForbidden(req.Email) {
		http.Error(w, ErrForbiddenDomain.Error(), http.StatusConflict)
		return
	}

	orgID := req.OrgID
	if orgID == "" {
		orgID = a.defaultOrgID
	}
	roles := req.Roles
	if len(roles) == 0 {
		roles = []types.UserRole{types.RoleUser}
	}

	invitedBy, ok := authentication.GetUserID(ctx)
	if !ok {
		invitedBy = "platform administrator"
	}

	exists, err := a.service.UserExists(ctx, req.Email)
	if err != nil {
		a.logger.Errorf("failed to check user %s: %s", req.Email, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, ErrUserExists.Error(), http.StatusConflict)
		return
	}

	pending, err := a.service.HasPendingInvitation(ctx, req.Email)
	if err != nil {
		a.logger.Errorf("failed to check pending invitation for %s: %s", req.Email, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// An already pending email only gets its grants amended, no second
	// invitation mail goes out.
	if pending {
		if _, err := a.access.CreateOrUpdate(ctx, req.Email, func(inv *types.AccessInvitations) {
			inv.AddOrgAccessInvitation(orgID, roles...)
		}); err != nil {
			a.logger.Errorf("failed to record access invitation for %s: %s", req.Email, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		a.writeResponse(w, http.StatusOK, InvitationResponse{
			State:   "UPDATED",
			Details: "Updated pending invitation",
		})
		return
	}

	// The mail goes out before the access record is written. A delivery
	// failure leaves nothing behind and the request can simply be
	// retried; a record failure after delivery heals on retry through
	// the pending branch above.
	link, err := a.service.SendInviteEmail(ctx, req.Email, invitedBy)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		a.logger.Errorf("failed to send invitation to %s: %s", req.Email, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := a.access.CreateOrUpdate(ctx, req.Email, func(inv *types.AccessInvitations) {
		inv.AddOrgAccessInvitation(orgID, roles...)
	}); err != nil {
		a.logger.Errorf("failed to record access invitation for %s: %s", req.Email, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	a.writeResponse(w, http.StatusCreated, InvitationResponse{
		State: "NEW",
		Link:  link,
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.list")
	defer span.End()

	emails, err := a.service.PendingInvitationsEmails(ctx)
	if err != nil {
		a.logger.Errorf("failed to list pending invitations: %s", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if emails == nil {
		emails = []string{}
	}

	a.writeResponse(w, http.StatusOK, emails)
}

func (a *API) resend(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.resend")
	defer span.End()

	email := chi.URLParam(r, "email")

	if _, err := a.service.ResendInviteEmail(ctx, email); err != nil {
		if errors.Is(err, ErrNoPendingInvitation) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to resend invitation to %s: %s", email, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.delete")
	defer span.End()

	email := chi.URLParam(r, "email")

	if err := a.service.DeleteInvitation(ctx, email); err != nil {
		if errors.Is(err, ErrNoPendingInvitation) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to delete invitation for %s: %s", email, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) domainForbidden(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, forbidden := range a.forbiddenDomains {
		if domain == strings.ToLower(forbidden) {
			return true
		}
	}
	return false
}

func (a *API) writeResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %s", err)
	}
}

func NewAPI(
	service ServiceInterface,
	accessInvitations access.ServiceInterface,
	forbiddenDomains []string,
	defaultOrgID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)
	a.service = service
	a.access = accessInvitations
	a.validate = validator.New()
	a.forbiddenDomains = forbiddenDomains
	a.defaultOrgID = defaultOrgID
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
