// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "github.com/canonical/onboarding-service/internal/types"

const (
	MEMBER_RELATION = "member"
	ADMIN_RELATION  = "admin"

	ORG_TYPE  = "organization"
	USER_TYPE = "user"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func OrgTuple(orgId string) string {
	return "organization:" + orgId
}

// RoleRelation maps an account role to the relation stored in the
// authorization model. Unknown roles degrade to plain membership.
func RoleRelation(role types.UserRole) string {
	if role == types.RoleAdmin {
		return ADMIN_RELATION
	}
	return MEMBER_RELATION
}

func RelationRole(relation string) types.UserRole {
	if relation == ADMIN_RELATION {
		return types.RoleAdmin
	}
	return types.RoleUser
}
