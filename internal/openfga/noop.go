// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	"github.com/openfga/go-sdk/client"
)

// NoopClient is used when authorization is disabled, it approves every
// check and swallows tuple mutations.
type NoopClient struct{}

func (c *NoopClient) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	return true, nil
}

func (c *NoopClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (c *NoopClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (c *NoopClient) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	return &client.ClientReadResponse{}, nil
}

func (c *NoopClient) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	return []string{}, nil
}

func (c *NoopClient) ListUsers(ctx context.Context, relation, objectType, objectID string) ([]string, error) {
	return []string{}, nil
}

func NewNoopClient() *NoopClient {
	return new(NoopClient)
}
