// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_interfaces.go -source=./interfaces.go

func newService(store StoreInterface) *Service {
	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_CreateOrUpdate(t *testing.T) {
	email := "invitee@example.com"
	orgId := "org-1"

	testCases := []struct {
		name          string
		email         string
		setupMocks    func(*MockStoreInterface)
		expectedState CreateOrUpdateState
		expectedErr   error
	}{
		{
			name:  "no record creates one",
			email: email,
			setupMocks: func(mockStore *MockStoreInterface) {
				mockStore.EXPECT().Get(gomock.Any(), email).
					Return(types.AccessInvitations{}, storage.ErrNotFound)
				mockStore.EXPECT().Put(gomock.Any(), email, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, inv types.AccessInvitations) error {
						expected := []types.UserRole{types.RoleUser}
						if !reflect.DeepEqual(inv.OrgAccessInvitations[orgId], expected) {
							t.Fatalf("expected %v, got %v", expected, inv.OrgAccessInvitations[orgId])
						}
						return nil
					})
			},
			expectedState: StateCreated,
			expectedErr:   nil,
		},
		{
			name:  "existing record is amended",
			email: email,
			setupMocks: func(mockStore *MockStoreInterface) {
				existing := types.NewAccessInvitations()
				existing.AddOrgAccessInvitation(orgId, types.RoleUser)
				mockStore.EXPECT().Get(gomock.Any(), email).Return(*existing, nil)
				mockStore.EXPECT().Put(gomock.Any(), email, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, inv types.AccessInvitations) error {
						expected := []types.UserRole{types.RoleUser, types.RoleAdmin}
						if !reflect.DeepEqual(inv.OrgAccessInvitations[orgId], expected) {
							t.Fatalf("expected %v, got %v", expected, inv.OrgAccessInvitations[orgId])
						}
						return nil
					})
			},
			expectedState: StateUpdated,
			expectedErr:   nil,
		},
		{
			name:          "empty email is rejected before any store access",
			email:         "",
			setupMocks:    func(mockStore *MockStoreInterface) {},
			expectedState: StateCreated,
			expectedErr:   ErrEmptyEmail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStoreInterface(ctrl)
			tc.setupMocks(mockStore)

			roles := []types.UserRole{types.RoleUser}
			if tc.name == "existing record is amended" {
				roles = []types.UserRole{types.RoleAdmin}
			}

			mutations := 0
			state, err := newService(mockStore).CreateOrUpdate(context.Background(), tc.email, func(inv *types.AccessInvitations) {
				mutations++
				inv.AddOrgAccessInvitation(orgId, roles...)
			})
			if tc.expectedErr == nil && mutations != 1 {
				t.Fatalf("expected the mutator to run exactly once, ran %d times", mutations)
			}

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if state != tc.expectedState {
				t.Fatalf("expected state %v, got %v", tc.expectedState, state)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	email := "invitee@example.com"

	t.Run("mutator runs against a fresh record when none exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := NewMockStoreInterface(ctrl)
		mockStore.EXPECT().Get(gomock.Any(), email).
			Return(types.AccessInvitations{}, storage.ErrNotFound)
		mockStore.EXPECT().Put(gomock.Any(), email, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, inv types.AccessInvitations) error {
				if len(inv.OrgAccessInvitations["org-2"]) != 1 {
					t.Fatalf("expected mutation to be persisted, got %+v", inv)
				}
				return nil
			})

		err := newService(mockStore).Update(context.Background(), email, func(inv *types.AccessInvitations) {
			inv.AddOrgAccessInvitation("org-2", types.RoleUser)
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty email is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := NewMockStoreInterface(ctrl)

		err := newService(mockStore).Update(context.Background(), "", func(*types.AccessInvitations) {})
		if !errors.Is(err, ErrEmptyEmail) {
			t.Fatalf("expected ErrEmptyEmail, got %v", err)
		}
	})
}

func TestService_Redeem(t *testing.T) {
	email := "invitee@example.com"

	t.Run("removes and returns the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		existing := types.NewAccessInvitations()
		existing.AddOrgAccessInvitation("org-1", types.RoleUser)

		mockStore := NewMockStoreInterface(ctrl)
		mockStore.EXPECT().Get(gomock.Any(), email).Return(*existing, nil)
		mockStore.EXPECT().Remove(gomock.Any(), email).Return(nil)

		inv, err := newService(mockStore).Redeem(context.Background(), email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if inv == nil || len(inv.OrgAccessInvitations["org-1"]) != 1 {
			t.Fatalf("expected the stored record, got %+v", inv)
		}
	})

	t.Run("nothing pending yields nil without a delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := NewMockStoreInterface(ctrl)
		mockStore.EXPECT().Get(gomock.Any(), email).
			Return(types.AccessInvitations{}, storage.ErrNotFound)

		inv, err := newService(mockStore).Redeem(context.Background(), email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if inv != nil {
			t.Fatalf("expected nil, got %+v", inv)
		}
	})
}
