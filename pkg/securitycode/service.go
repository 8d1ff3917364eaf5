// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package securitycode

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

const (
	// generationRetries bounds the conditional writes attempted before
	// giving up on finding an unused code.
	generationRetries = 3
	codeEntropyBytes  = 24
)

// Service issues and redeems one-time registration codes. Records are
// keyed by the code itself, which is what makes the conditional write
// in Generate the collision detector.
type Service struct {
	store StoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Generate(ctx context.Context, email string) (*types.SecurityCode, error) {
	ctx, span := s.tracer.Start(ctx, "securitycode.Service.Generate")
	defer span.End()

	for attempt := 0; attempt < generationRetries; attempt++ {
		code, err := newCode()
		if err != nil {
			return nil, err
		}

		sc := types.SecurityCode{Email: email, Code: code}
		ok, err := s.store.PutIfAbsent(ctx, code, sc)
		if err != nil {
			return nil, err
		}
		if ok {
			return &sc, nil
		}
		s.logger.Warnf("security code collision on attempt %d for %s", attempt+1, email)
	}

	return nil, ErrGenerationExhausted
}

func (s *Service) FindByMail(ctx context.Context, email string) (*types.SecurityCode, error) {
	ctx, span := s.tracer.Start(ctx, "securitycode.Service.FindByMail")
	defer span.End()

	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		sc, err := s.store.Get(ctx, key)
		if err != nil {
			// Another instance may have redeemed the code mid-scan.
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if sc.Email == email {
			return &sc, nil
		}
	}

	return nil, nil
}

func (s *Service) Verify(ctx context.Context, code string) (*types.SecurityCode, error) {
	ctx, span := s.tracer.Start(ctx, "securitycode.Service.Verify")
	defer span.End()

	if code == "" {
		return nil, ErrInvalidCode
	}

	sc, err := s.store.Get(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	return &sc, nil
}

func (s *Service) Redeem(ctx context.Context, sc *types.SecurityCode) error {
	ctx, span := s.tracer.Start(ctx, "securitycode.Service.Redeem")
	defer span.End()

	if err := s.store.Remove(ctx, sc.Code); err != nil {
		return fmt.Errorf("unable to redeem security code for %s: %w", sc.Email, err)
	}

	s.logger.Security().CodeRedeemed(sc.Email)
	return nil
}

func (s *Service) PendingEmails(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "securitycode.Service.PendingEmails")
	defer span.End()

	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(keys))
	for _, key := range keys {
		sc, err := s.store.Get(ctx, key)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		emails = append(emails, sc.Email)
	}

	return emails, nil
}

func newCode() (string, error) {
	raw := make([]byte, codeEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("unable to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func NewService(store StoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)
	s.store = store
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
