// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/orgs"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations and their members",
}

var listOrgsCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out []types.Org
		if err := newAPIClient().do(context.Background(), http.MethodGet, "/rest/orgs", nil, &out); err != nil {
			return fmt.Errorf("failed to list orgs: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, org := range out {
			fmt.Fprintf(w, "%s\t%s\n", org.ID, org.Name)
		}
		w.Flush()
		return nil
	},
}

var listOrgUsersCmd = &cobra.Command{
	Use:   "users [org-id]",
	Short: "List the members of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("/rest/orgs/%s/users", url.PathEscape(args[0]))

		var out []types.User
		if err := newAPIClient().do(context.Background(), http.MethodGet, path, nil, &out); err != nil {
			return fmt.Errorf("failed to list org users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tROLES")
		for _, user := range out {
			roles := make([]string, 0, len(user.Roles))
			for _, role := range user.Roles {
				roles = append(roles, string(role))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", user.ID, user.Username, strings.Join(roles, ","))
		}
		w.Flush()
		return nil
	},
}

var memberRoles []string

var setRolesCmd = &cobra.Command{
	Use:   "set-roles [org-id] [user-id]",
	Short: "Replace a member's roles in an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		roles := make([]types.UserRole, 0, len(memberRoles))
		for _, role := range memberRoles {
			roles = append(roles, types.UserRole(role))
		}

		path := fmt.Sprintf("/rest/orgs/%s/users/%s", url.PathEscape(args[0]), url.PathEscape(args[1]))

		var out orgs.RolesRequest
		if err := newAPIClient().do(context.Background(), http.MethodPost, path, orgs.RolesRequest{Roles: roles}, &out); err != nil {
			return fmt.Errorf("failed to update roles: %w", err)
		}

		fmt.Printf("Roles updated for %s\n", args[1])
		return nil
	},
}

var removeOrgUserCmd = &cobra.Command{
	Use:   "remove-user [org-id] [user-id]",
	Short: "Remove a member from an organization and delete the account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("/rest/orgs/%s/users/%s", url.PathEscape(args[0]), url.PathEscape(args[1]))
		if err := newAPIClient().do(context.Background(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to remove user: %w", err)
		}

		fmt.Printf("User removed: %s\n", args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orgsCmd)
	orgsCmd.AddCommand(listOrgsCmd)
	orgsCmd.AddCommand(listOrgUsersCmd)
	orgsCmd.AddCommand(setRolesCmd)
	orgsCmd.AddCommand(removeOrgUserCmd)

	setRolesCmd.Flags().StringSliceVar(&memberRoles, "roles", []string{}, "Comma-separated list of roles")
}
