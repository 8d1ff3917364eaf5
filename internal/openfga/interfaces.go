// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	"github.com/openfga/go-sdk/client"
)

// Tuple is a (user, relation, object) authorization triple.
type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) *Tuple {
	return &Tuple{
		User:     user,
		Relation: relation,
		Object:   object,
	}
}

type OpenFGAClientInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error)
	ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error)
	ListUsers(ctx context.Context, relation, objectType, objectID string) ([]string, error)
}
