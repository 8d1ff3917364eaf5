// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package uaa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "test-token",
				"token_type":   "bearer",
				"expires_in":   3600,
			})
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(
		&Config{URL: server.URL, ClientID: "admin", ClientSecret: "secret"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("failed to build the client: %v", err)
	}
	return server, client
}

func TestClient_FindUserIDByName(t *testing.T) {
	testCases := []struct {
		name       string
		response   map[string]interface{}
		expectedID string
	}{
		{
			name: "found",
			response: map[string]interface{}{
				"totalResults": 1,
				"startIndex":   1,
				"itemsPerPage": 1,
				"resources":    []ScimUser{{ID: "user-123", Username: "a@b.com"}},
			},
			expectedID: "user-123",
		},
		{
			name: "not found",
			response: map[string]interface{}{
				"totalResults": 0,
				"startIndex":   1,
				"itemsPerPage": 1,
				"resources":    []ScimUser{},
			},
			expectedID: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/Users" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.URL.Query().Get("filter") == "" {
					t.Error("expected a SCIM filter")
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tc.response)
			})

			id, err := client.FindUserIDByName(context.Background(), "a@b.com")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tc.expectedID {
				t.Errorf("expected id %q, got %q", tc.expectedID, id)
			}
		})
	}
}

func TestClient_CreateUser(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Users" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body["userName"] != "a@b.com" {
			t.Errorf("unexpected userName %v", body["userName"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(ScimUser{ID: "new-id", Username: "a@b.com"})
	})

	user, err := client.CreateUser(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "new-id" {
		t.Errorf("expected id new-id, got %q", user.ID)
	}
}

type recordingMonitor struct {
	tags  map[string]string
	value float64
}

func (m *recordingMonitor) GetService() string { return "test" }

func (m *recordingMonitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	return nil
}

func (m *recordingMonitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	m.tags = tags
	m.value = value
	return nil
}

func TestClient_ReportsDependencyAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "test-token",
				"token_type":   "bearer",
				"expires_in":   3600,
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ScimUser{ID: "user-123"})
	}))
	t.Cleanup(server.Close)

	monitor := &recordingMonitor{}
	client, err := NewClient(
		&Config{URL: server.URL, ClientID: "admin", ClientSecret: "secret"},
		tracing.NewNoopTracer(),
		monitor,
		logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("failed to build the client: %v", err)
	}

	if _, err := client.GetUser(context.Background(), "user-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if monitor.tags["dependency"] != "uaa" {
		t.Errorf("expected the uaa dependency tag, got %v", monitor.tags)
	}
	if monitor.value != 1 {
		t.Errorf("expected availability 1, got %v", monitor.value)
	}
}

func TestClient_DeleteUser_Error(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	if err := client.DeleteUser(context.Background(), "user-123"); err == nil {
		t.Error("expected an error on 500 response")
	}
}
