// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/authgateway"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/mail"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/internal/uaa"
	"github.com/canonical/onboarding-service/pkg/access"
	"github.com/canonical/onboarding-service/pkg/securitycode"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go

const testConsoleURL = "https://console.example.com"

type serviceMocks struct {
	codes      *securitycode.MockServiceInterface
	access     *access.MockServiceInterface
	identity   *uaa.MockClientInterface
	gateway    *authgateway.MockClientInterface
	dispatcher *mail.MockDispatcherInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		codes:      securitycode.NewMockServiceInterface(ctrl),
		access:     access.NewMockServiceInterface(ctrl),
		identity:   uaa.NewMockClientInterface(ctrl),
		gateway:    authgateway.NewMockClientInterface(ctrl),
		dispatcher: mail.NewMockDispatcherInterface(ctrl),
	}
	s := NewService(m.codes, m.access, m.identity, m.gateway, m.dispatcher, testConsoleURL,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, m
}

func TestService_SendInviteEmail(t *testing.T) {
	email := "invitee@example.com"

	t.Run("mails a registration link carrying the code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.identity.EXPECT().FindUserIDByName(gomock.Any(), email).Return("", nil)
		m.codes.EXPECT().Generate(gomock.Any(), email).
			Return(&types.SecurityCode{Email: email, Code: "code-1"}, nil)
		m.dispatcher.EXPECT().Send(gomock.Any(), email, inviteSubject, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string) error {
				if !strings.Contains(body, "code-1") {
					t.Fatal("expected the mail body to carry the code")
				}
				if !strings.Contains(body, "admin@example.com") {
					t.Fatal("expected the mail body to name the inviter")
				}
				return nil
			})

		link, err := s.SendInviteEmail(context.Background(), email, "admin@example.com")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if link != testConsoleURL+"/new-account?code=code-1" {
			t.Fatalf("unexpected link %s", link)
		}
	})

	t.Run("registered address is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.identity.EXPECT().FindUserIDByName(gomock.Any(), email).Return("user-1", nil)

		_, err := s.SendInviteEmail(context.Background(), email, "admin@example.com")
		if !errors.Is(err, ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	t.Run("delivery failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.identity.EXPECT().FindUserIDByName(gomock.Any(), email).Return("", nil)
		m.codes.EXPECT().Generate(gomock.Any(), email).
			Return(&types.SecurityCode{Email: email, Code: "code-1"}, nil)
		m.dispatcher.EXPECT().Send(gomock.Any(), email, inviteSubject, gomock.Any()).
			Return(errors.New("smtp down"))

		if _, err := s.SendInviteEmail(context.Background(), email, "admin@example.com"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestService_ResendInviteEmail(t *testing.T) {
	email := "invitee@example.com"

	t.Run("reuses the pending code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.codes.EXPECT().FindByMail(gomock.Any(), email).
			Return(&types.SecurityCode{Email: email, Code: "code-1"}, nil)
		m.dispatcher.EXPECT().Send(gomock.Any(), email, inviteSubject, gomock.Any()).Return(nil)

		link, err := s.ResendInviteEmail(context.Background(), email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(link, "code-1") {
			t.Fatalf("expected the original code in %s", link)
		}
	})

	t.Run("no pending code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.codes.EXPECT().FindByMail(gomock.Any(), email).Return(nil, nil)

		_, err := s.ResendInviteEmail(context.Background(), email)
		if !errors.Is(err, ErrNoPendingInvitation) {
			t.Fatalf("expected ErrNoPendingInvitation, got %v", err)
		}
	})
}

func TestService_HasPendingInvitation(t *testing.T) {
	email := "invitee@example.com"

	t.Run("outstanding code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.codes.EXPECT().FindByMail(gomock.Any(), email).
			Return(&types.SecurityCode{Email: email, Code: "code-1"}, nil)

		pending, err := s.HasPendingInvitation(context.Background(), email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !pending {
			t.Fatal("expected a pending invitation")
		}
	})

	t.Run("no code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.codes.EXPECT().FindByMail(gomock.Any(), email).Return(nil, nil)

		pending, err := s.HasPendingInvitation(context.Background(), email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if pending {
			t.Fatal("expected no pending invitation")
		}
	})
}

func TestService_CreateUser(t *testing.T) {
	email := "invitee@example.com"
	orgID := "org-1"

	grants := func() *types.AccessInvitations {
		inv := types.NewAccessInvitations()
		inv.AddOrgAccessInvitation(orgID, types.RoleUser)
		return inv
	}

	t.Run("provisions identity account and registers it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.identity.EXPECT().FindUserIDByName(gomock.Any(), email).Return("", nil)
		m.access.EXPECT().Get(gomock.Any(), email).Return(grants(), nil)
		m.identity.EXPECT().CreateUser(gomock.Any(), email, "passw0rd").
			Return(&uaa.ScimUser{ID: "user-1", Username: email}, nil)
		m.gateway.EXPECT().CreateUser(gomock.Any(), orgID, "user-1", gomock.Any()).
			Return(&types.UserState{UserID: "user-1", Synchronized: true}, nil)

		userID, err := s.CreateUser(context.Background(), email, "passw0rd", orgID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if userID != "user-1" {
			t.Fatalf("expected user-1, got %s", userID)
		}
	})

	t.Run("registered address is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.identity.EXPECT().FindUserIDByName(gomock.Any(), email).Return("user-1", nil)

		_, err := s.CreateUser(context.Background(), email, "passw0rd", orgID)
		if !errors.Is(err, ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	t.Run("no access grants is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.identity.EXPECT().FindUserIDByName(gomock.Any(), email).Return("", nil)
		m.access.EXPECT().Get(gomock.Any(), email).Return(nil, nil)

		userID, err := s.CreateUser(context.Background(), email, "passw0rd", orgID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if userID != "" {
			t.Fatalf("expected empty user id, got %s", userID)
		}
	})

	t.Run("rollback handed to the gateway deletes the identity account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gatewayErr := errors.New("gateway unavailable")

		s, m := newTestService(ctrl)
		m.identity.EXPECT().FindUserIDByName(gomock.Any(), email).Return("", nil)
		m.access.EXPECT().Get(gomock.Any(), email).Return(grants(), nil)
		m.identity.EXPECT().CreateUser(gomock.Any(), email, "passw0rd").
			Return(&uaa.ScimUser{ID: "user-1", Username: email}, nil)
		m.gateway.EXPECT().CreateUser(gomock.Any(), orgID, "user-1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string, rollback authgateway.RollbackFunc) (*types.UserState, error) {
				// The gateway client runs the rollback before it
				// returns the failure.
				if err := rollback(ctx, gatewayErr); err != nil {
					t.Fatalf("rollback failed: %v", err)
				}
				return nil, gatewayErr
			})
		m.identity.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(nil)

		_, err := s.CreateUser(context.Background(), email, "passw0rd", orgID)
		if !errors.Is(err, gatewayErr) {
			t.Fatalf("expected the gateway error, got %v", err)
		}
	})
}

func TestService_DeleteInvitation(t *testing.T) {
	email := "invitee@example.com"

	t.Run("redeems both records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sc := &types.SecurityCode{Email: email, Code: "code-1"}

		s, m := newTestService(ctrl)
		m.codes.EXPECT().FindByMail(gomock.Any(), email).Return(sc, nil)
		m.codes.EXPECT().Redeem(gomock.Any(), sc).Return(nil)
		m.access.EXPECT().Redeem(gomock.Any(), email).Return(nil, nil)

		if err := s.DeleteInvitation(context.Background(), email); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.codes.EXPECT().FindByMail(gomock.Any(), email).Return(nil, nil)

		err := s.DeleteInvitation(context.Background(), email)
		if !errors.Is(err, ErrNoPendingInvitation) {
			t.Fatalf("expected ErrNoPendingInvitation, got %v", err)
		}
	})
}
