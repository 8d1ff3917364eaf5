// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

// Service keeps the org role grants an invited email is entitled to
// claim on registration, keyed by the invitee address. Updates are
// read-modify-write, concurrent writers for the same email may lose
// an amendment but never corrupt the record.
type Service struct {
	store StoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Get(ctx context.Context, email string) (*types.AccessInvitations, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Get")
	defer span.End()

	if email == "" {
		return nil, ErrEmptyEmail
	}

	invitations, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invitations, nil
}

func (s *Service) Update(ctx context.Context, email string, mutate func(*types.AccessInvitations)) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.Update")
	defer span.End()

	if email == "" {
		return ErrEmptyEmail
	}

	invitations, err := s.Get(ctx, email)
	if err != nil {
		return err
	}
	if invitations == nil {
		invitations = types.NewAccessInvitations()
	}

	mutate(invitations)
	return s.store.Put(ctx, email, *invitations)
}

func (s *Service) CreateOrUpdate(ctx context.Context, email string, mutate func(*types.AccessInvitations)) (CreateOrUpdateState, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.CreateOrUpdate")
	defer span.End()

	if email == "" {
		return StateCreated, ErrEmptyEmail
	}

	existing, err := s.Get(ctx, email)
	if err != nil {
		return StateCreated, err
	}

	state := StateUpdated
	if existing == nil {
		existing = types.NewAccessInvitations()
		state = StateCreated
	}

	mutate(existing)
	if err := s.store.Put(ctx, email, *existing); err != nil {
		return state, err
	}

	s.logger.Debugf("%s access invitation for %s", state, email)
	return state, nil
}

func (s *Service) Redeem(ctx context.Context, email string) (*types.AccessInvitations, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Redeem")
	defer span.End()

	invitations, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if invitations == nil {
		return nil, nil
	}

	if err := s.store.Remove(ctx, email); err != nil {
		return nil, err
	}
	return invitations, nil
}

func NewService(store StoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)
	s.store = store
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
