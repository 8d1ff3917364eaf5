// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

func newTestAPI(service ServiceInterface) *API {
	return NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func serve(api *API, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.ServeHTTP(w, r)
	return w
}

func TestAPI_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListOrgs(gomock.Any()).
		Return([]types.Org{{ID: "org-1", Name: "platform"}})

	w := serve(newTestAPI(mockService), httptest.NewRequest(http.MethodGet, "/rest/orgs", nil))

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
	}

	var orgs []types.Org
	if err := json.NewDecoder(w.Result().Body).Decode(&orgs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(orgs) != 1 || orgs[0].ID != "org-1" {
		t.Fatalf("unexpected orgs %v", orgs)
	}
}

func TestAPI_ListUsers(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ListOrgUsers(gomock.Any(), "org-1").
					Return([]types.User{{ID: "user-1", Username: "alice@example.com", Roles: []types.UserRole{types.RoleUser}}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown org",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ListOrgUsers(gomock.Any(), "org-1").Return(nil, ErrUnknownOrg)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			w := serve(newTestAPI(mockService), httptest.NewRequest(http.MethodGet, "/rest/orgs/org-1/users", nil))

			if w.Result().StatusCode != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Result().StatusCode)
			}
		})
	}
}

func TestAPI_UpdateUserRoles(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    any
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: RolesRequest{Roles: []types.UserRole{types.RoleAdmin}},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateUserRoles(gomock.Any(), "org-1", "user-1", []types.UserRole{types.RoleAdmin}).
					Return([]types.UserRole{types.RoleAdmin}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty role set is rejected",
			requestBody:    RolesRequest{},
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown member",
			requestBody: RolesRequest{Roles: []types.UserRole{types.RoleUser}},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateUserRoles(gomock.Any(), "org-1", "user-1", gomock.Any()).
					Return(nil, ErrUnknownUser)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("failed to marshal request: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/rest/orgs/org-1/users/user-1", bytes.NewBuffer(body))
			w := serve(newTestAPI(mockService), req)

			if w.Result().StatusCode != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Result().StatusCode)
			}
		})
	}
}

func TestAPI_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().DeleteOrgUser(gomock.Any(), "org-1", "user-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/rest/orgs/org-1/users/user-1", nil)
	w := serve(newTestAPI(mockService), req)

	if w.Result().StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Result().StatusCode)
	}
}
