// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrations

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/invitations"
	"github.com/canonical/onboarding-service/pkg/securitycode"
)

func newTestAPI(service ServiceInterface) *API {
	return NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestAPI_Register(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    any
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validateResp   func(*testing.T, *http.Response)
	}{
		{
			name:        "success",
			requestBody: RegistrationRequest{Password: "passw0rd"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), "code-1", "passw0rd").
					Return("user-1", "invitee@example.com", nil)
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result RegistrationResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.UserID != "user-1" || result.Email != "invitee@example.com" {
					t.Fatalf("unexpected response %+v", result)
				}
			},
		},
		{
			name:        "invalid code is forbidden",
			requestBody: RegistrationRequest{Password: "passw0rd"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), "code-1", "passw0rd").
					Return("", "", securitycode.ErrInvalidCode)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "short password is a bad request",
			requestBody: RegistrationRequest{Password: "pw"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), "code-1", "pw").
					Return("", "", ErrTooShortPassword)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "already registered conflicts",
			requestBody: RegistrationRequest{Password: "passw0rd"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), "code-1", "passw0rd").
					Return("", "", invitations.ErrUserExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "backend failure",
			requestBody: RegistrationRequest{Password: "passw0rd"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), "code-1", "passw0rd").
					Return("", "", errors.New("backend down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			var body []byte
			if str, ok := tc.requestBody.(string); ok {
				body = []byte(str)
			} else {
				var err error
				body, err = json.Marshal(tc.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/rest/registrations?code=code-1", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			newTestAPI(mockService).RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, res.StatusCode)
			}
			if tc.validateResp != nil {
				tc.validateResp(t, res)
			}
		})
	}
}

func TestAPI_Lookup(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "resolves the invited email",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().InvitationFor(gomock.Any(), "code-1").
					Return(&types.SecurityCode{Email: "invitee@example.com", Code: "code-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown code is not found",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().InvitationFor(gomock.Any(), "code-1").
					Return(nil, securitycode.ErrInvalidCode)
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

			req := httptest.NewRequest(http.MethodGet, "/rest/registrations/code-1", nil)
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			newTestAPI(mockService).RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			if w.Result().StatusCode != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Result().StatusCode)
			}
		})
	}
}
