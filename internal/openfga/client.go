// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

type Client struct {
	c           *client.OpenFgaClient
	authModelID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(config *Config) *Client {
	fgaClient, err := client.NewSdkClient(&client.ClientConfiguration{
		ApiUrl:  fmt.Sprintf("%s://%s", config.ApiScheme, config.ApiHost),
		StoreId: config.StoreID,
		Credentials: &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: config.ApiToken,
			},
		},
		AuthorizationModelId: config.AuthModelID,
	})
	if err != nil {
		config.Logger.Fatalf("failed to initialize openfga client: %v", err)
	}

	return &Client{
		c:           fgaClient,
		authModelID: config.AuthModelID,
		tracer:      config.Tracer,
		monitor:     config.Monitor,
		logger:      config.Logger,
	}
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}
	for _, t := range contextualTuples {
		body.ContextualTuples = append(body.ContextualTuples, fga.TupleKey{
			User:     t.User,
			Relation: t.Relation,
			Object:   t.Object,
		})
	}

	resp, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		return false, fmt.Errorf("failed openfga check: %w", err)
	}
	return resp.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	body := client.ClientWriteRequest{
		Writes: []client.ClientTupleKey{
			{User: user, Relation: relation, Object: object},
		},
	}

	if _, err := c.c.Write(ctx).Body(body).Execute(); err != nil {
		return fmt.Errorf("failed openfga tuple write: %w", err)
	}
	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	body := client.ClientWriteRequest{
		Deletes: []client.ClientTupleKeyWithoutCondition{
			{User: user, Relation: relation, Object: object},
		},
	}

	if _, err := c.c.Write(ctx).Body(body).Execute(); err != nil {
		return fmt.Errorf("failed openfga tuple delete: %w", err)
	}
	return nil
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	body := client.ClientListObjectsRequest{
		User:     user,
		Relation: relation,
		Type:     objectType,
	}

	resp, err := c.c.ListObjects(ctx).Body(body).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed openfga list objects: %w", err)
	}
	return resp.GetObjects(), nil
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	resp, err := c.c.Read(ctx).
		Body(body).
		Options(client.ClientReadOptions{ContinuationToken: &continuationToken}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed openfga tuple read: %w", err)
	}
	return resp, nil
}

func (c *Client) ListUsers(ctx context.Context, relation, objectType, objectID string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListUsers")
	defer span.End()

	body := client.ClientListUsersRequest{
		Object:   fga.FgaObject{Type: objectType, Id: objectID},
		Relation: relation,
		UserFilters: []fga.UserTypeFilter{
			{Type: "user"},
		},
	}

	resp, err := c.c.ListUsers(ctx).Body(body).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed openfga list users: %w", err)
	}

	var users []string
	for _, u := range resp.GetUsers() {
		if obj, ok := u.GetObjectOk(); ok {
			users = append(users, obj.GetId())
		}
	}
	return users, nil
}
