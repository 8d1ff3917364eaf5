// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

type Config struct {
	URL string
	// ConnectTimeout bounds dialing the gateway.
	ConnectTimeout time.Duration
	// ReadTimeout bounds the whole request. Provisioning on the gateway
	// side can legitimately take minutes.
	ReadTimeout time.Duration
}

// Client drives user synchronization on the downstream authorization
// gateway. Every failure path runs the caller supplied rollback before
// the error is returned, so cross-system writes stay consistent.
type Client struct {
	baseURL    string
	httpClient *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(config *Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	dialer := &net.Dialer{Timeout: config.ConnectTimeout}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ResponseHeaderTimeout: config.ReadTimeout,
	}

	return &Client{
		baseURL: config.URL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   config.ReadTimeout,
		},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) CreateUser(ctx context.Context, orgID, userID string, rollback RollbackFunc) (*types.UserState, error) {
	ctx, span := c.tracer.Start(ctx, "authgateway.Client.CreateUser")
	defer span.End()

	state, err := c.syncUser(ctx, http.MethodPut, orgID, userID)
	if err != nil {
		c.compensate(ctx, rollback, err)
		return nil, fmt.Errorf("unable to add user %s to organization %s: %w", userID, orgID, err)
	}
	return state, nil
}

func (c *Client) DeleteUser(ctx context.Context, orgID, userID string, rollback RollbackFunc) (*types.UserState, error) {
	ctx, span := c.tracer.Start(ctx, "authgateway.Client.DeleteUser")
	defer span.End()

	state, err := c.syncUser(ctx, http.MethodDelete, orgID, userID)
	if err != nil {
		c.compensate(ctx, rollback, err)
		return nil, fmt.Errorf("unable to delete user %s from organization %s: %w", userID, orgID, err)
	}
	return state, nil
}

func (c *Client) compensate(ctx context.Context, rollback RollbackFunc, cause error) {
	if rollback == nil {
		return
	}
	// best effort: a failed compensation is logged, not compensated again
	if err := rollback(ctx, cause); err != nil {
		c.logger.Errorf("rollback after gateway failure did not complete: %v", err)
	}
}

func (c *Client) reportAvailability(up float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"dependency": "auth-gateway"}, up); err != nil {
		c.logger.Warnf("failed to set availability metric: %v", err)
	}
}

func (c *Client) syncUser(ctx context.Context, method, orgID, userID string) (*types.UserState, error) {
	url := fmt.Sprintf("%s/organizations/%s/users/%s", c.baseURL, orgID, userID)
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	// correlates our provisioning attempt with the gateway's audit trail
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.reportAvailability(0)
		return nil, err
	}
	defer resp.Body.Close()
	c.reportAvailability(1)

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(data))
	}

	var state types.UserState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return &state, nil
}
