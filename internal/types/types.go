// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"slices"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// SecurityCode is a one-time registration token bound to the invited
// email address. Once generated it is immutable.
type SecurityCode struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// AccessInvitations aggregates the organization role grants a pending
// email is entitled to on registration. The record is keyed externally
// by email, which is why the address is not a field here.
type AccessInvitations struct {
	OrgAccessInvitations map[string][]UserRole `json:"org_access_invitations"`
}

func NewAccessInvitations() *AccessInvitations {
	return &AccessInvitations{
		OrgAccessInvitations: make(map[string][]UserRole),
	}
}

// AddOrgAccessInvitation merges the given roles into the grant set for
// the organization, keeping each role at most once.
func (a *AccessInvitations) AddOrgAccessInvitation(orgID string, roles ...UserRole) {
	if a.OrgAccessInvitations == nil {
		a.OrgAccessInvitations = make(map[string][]UserRole)
	}
	for _, role := range roles {
		if !slices.Contains(a.OrgAccessInvitations[orgID], role) {
			a.OrgAccessInvitations[orgID] = append(a.OrgAccessInvitations[orgID], role)
		}
	}
}

type Org struct {
	ID   string `json:"guid"`
	Name string `json:"name"`
}

// UserState is the authorization gateway's view of a user within an
// organization.
type UserState struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	Synchronized bool   `json:"synchronized"`
}

// User is an identity store account projected into an organization
// context.
type User struct {
	ID       string     `json:"guid"`
	Username string     `json:"username"`
	Roles    []UserRole `json:"roles"`
}
