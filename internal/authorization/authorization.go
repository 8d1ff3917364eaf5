// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"strings"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/openfga"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ListObjects(ctx context.Context, user string, relation string, objectType string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListObjects")
	defer span.End()

	return a.client.ListObjects(ctx, user, relation, objectType)
}

func (a *Authorizer) AssignOrgRole(ctx context.Context, orgId, userId string, role types.UserRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignOrgRole")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), RoleRelation(role), OrgTuple(orgId))
}

func (a *Authorizer) RemoveOrgRole(ctx context.Context, orgId, userId string, role types.UserRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveOrgRole")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), RoleRelation(role), OrgTuple(orgId))
}

func (a *Authorizer) RemoveOrgAccess(ctx context.Context, orgId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveOrgAccess")
	defer span.End()

	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, UserTuple(userId), "", OrgTuple(orgId), cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples for user %s in org %s: %s", userId, orgId, err)
			return err
		}
		for _, t := range r.Tuples {
			if err := a.client.DeleteTuple(ctx, t.Key.User, t.Key.Relation, t.Key.Object); err != nil {
				a.logger.Errorf("error when deleting tuple %v: %s", t.Key, err)
				return err
			}
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func (a *Authorizer) ListUserOrgs(ctx context.Context, userId string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListUserOrgs")
	defer span.End()

	objs, err := a.client.ListObjects(ctx, UserTuple(userId), MEMBER_RELATION, ORG_TYPE)
	if err != nil {
		return nil, err
	}

	orgs := make([]string, 0, len(objs))
	for _, obj := range objs {
		orgs = append(orgs, strings.TrimPrefix(obj, ORG_TYPE+":"))
	}
	return orgs, nil
}

// ListOrgUsers returns every user holding a grant in the organization,
// mapped to the roles they hold. Admins are implicitly members in the
// authorization model, so the member listing is the superset.
func (a *Authorizer) ListOrgUsers(ctx context.Context, orgId string) (map[string][]types.UserRole, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListOrgUsers")
	defer span.End()

	members, err := a.client.ListUsers(ctx, MEMBER_RELATION, ORG_TYPE, orgId)
	if err != nil {
		return nil, err
	}
	admins, err := a.client.ListUsers(ctx, ADMIN_RELATION, ORG_TYPE, orgId)
	if err != nil {
		return nil, err
	}

	users := make(map[string][]types.UserRole, len(members))
	for _, m := range members {
		users[m] = []types.UserRole{types.RoleUser}
	}
	for _, adm := range admins {
		users[adm] = append(users[adm], types.RoleAdmin)
	}
	return users, nil
}

func (a *Authorizer) UserOrgRoles(ctx context.Context, orgId, userId string) ([]types.UserRole, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.UserOrgRoles")
	defer span.End()

	var roles []types.UserRole
	for _, relation := range []string{MEMBER_RELATION, ADMIN_RELATION} {
		ok, err := a.client.Check(ctx, UserTuple(userId), relation, OrgTuple(orgId))
		if err != nil {
			return nil, err
		}
		if ok {
			roles = append(roles, RelationRole(relation))
		}
	}
	return roles, nil
}

func (a *Authorizer) CheckOrgAccess(ctx context.Context, orgId, userId, relation string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckOrgAccess")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), relation, OrgTuple(orgId))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
