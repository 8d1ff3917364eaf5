// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package uaa

import (
	"context"
	"fmt"
	"net/http"

	gouaa "github.com/cloudfoundry-community/go-uaa"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

// ScimUser is the subset of the SCIM user resource this service needs.
type ScimUser struct {
	ID       string      `json:"id"`
	Username string      `json:"userName"`
	Emails   []ScimEmail `json:"emails,omitempty"`
}

type ScimEmail struct {
	Value string `json:"value"`
}

// Client talks to the UAA admin API with a privileged OAuth2
// client-credentials token, through the go-uaa SDK. The SDK owns the
// token lifecycle and the SCIM wire format; spans wrap each call here
// since its methods do not take a context.
type Client struct {
	api *gouaa.API

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type Config struct {
	URL          string
	ClientID     string
	ClientSecret string
}

// availabilityTransport reports a 0/1 dependency gauge per request
// outcome underneath the SDK, token fetches included.
type availabilityTransport struct {
	next    http.RoundTripper
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (t *availabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)

	up := float64(1)
	if err != nil {
		up = 0
	}
	if merr := t.monitor.SetDependencyAvailability(map[string]string{"dependency": "uaa"}, up); merr != nil {
		t.logger.Warnf("failed to set availability metric: %v", merr)
	}

	return resp, err
}

func NewClient(config *Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	httpClient := &http.Client{
		Transport: &availabilityTransport{
			next:    otelhttp.NewTransport(http.DefaultTransport),
			monitor: monitor,
			logger:  logger,
		},
	}

	api, err := gouaa.New(
		config.URL,
		gouaa.WithClientCredentials(config.ClientID, config.ClientSecret, gouaa.JSONWebToken),
		gouaa.WithClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to configure the uaa client for %s: %w", config.URL, err)
	}

	return &Client{
		api:     api,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (c *Client) FindUserIDByName(ctx context.Context, email string) (string, error) {
	_, span := c.tracer.Start(ctx, "uaa.Client.FindUserIDByName")
	defer span.End()

	users, _, err := c.api.ListUsers(fmt.Sprintf("userName eq %q", email), "", "", gouaa.SortAscending, 1, 1)
	if err != nil {
		return "", fmt.Errorf("failed to look up user %s: %w", email, err)
	}
	if len(users) == 0 {
		return "", nil
	}

	// usernames are unique in UAA
	return users[0].ID, nil
}

func (c *Client) CreateUser(ctx context.Context, email, password string) (*ScimUser, error) {
	_, span := c.tracer.Start(ctx, "uaa.Client.CreateUser")
	defer span.End()

	primary := true
	user, err := c.api.CreateUser(gouaa.User{
		Username: email,
		Password: password,
		Emails:   []gouaa.Email{{Value: email, Primary: &primary}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", email, err)
	}

	return scimUser(user), nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	_, span := c.tracer.Start(ctx, "uaa.Client.DeleteUser")
	defer span.End()

	if _, err := c.api.DeleteUser(userID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*ScimUser, error) {
	_, span := c.tracer.Start(ctx, "uaa.Client.GetUser")
	defer span.End()

	user, err := c.api.GetUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return scimUser(user), nil
}

func scimUser(user *gouaa.User) *ScimUser {
	su := &ScimUser{
		ID:       user.ID,
		Username: user.Username,
	}
	for _, email := range user.Emails {
		su.Emails = append(su.Emails, ScimEmail{Value: email.Value})
	}
	return su
}
