// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/invitations"
)

var invitationsCmd = &cobra.Command{
	Use:   "invitations",
	Short: "Manage pending invitations",
}

var (
	inviteOrgID string
	inviteRoles []string
)

var createInvitationCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Invite a user by email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roles := make([]types.UserRole, 0, len(inviteRoles))
		for _, role := range inviteRoles {
			roles = append(roles, types.UserRole(role))
		}

		in := invitations.InvitationRequest{
			Email: args[0],
			OrgID: inviteOrgID,
			Roles: roles,
		}

		var out invitations.InvitationResponse
		if err := newAPIClient().do(context.Background(), http.MethodPost, "/rest/invitations", in, &out); err != nil {
			return fmt.Errorf("failed to create invitation: %w", err)
		}

		switch out.State {
		case "UPDATED":
			fmt.Printf("Updated pending invitation for %s\n", args[0])
		default:
			fmt.Printf("Invitation sent to %s\nLink: %s\n", args[0], out.Link)
		}
		return nil
	},
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List emails with a pending invitation",
	RunE: func(cmd *cobra.Command, args []string) error {
		var emails []string
		if err := newAPIClient().do(context.Background(), http.MethodGet, "/rest/invitations", nil, &emails); err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "EMAIL")
		for _, email := range emails {
			fmt.Fprintln(w, email)
		}
		w.Flush()
		return nil
	},
}

var resendInvitationCmd = &cobra.Command{
	Use:   "resend [email]",
	Short: "Resend a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("/rest/invitations/%s/resend", url.PathEscape(args[0]))
		if err := newAPIClient().do(context.Background(), http.MethodPost, path, nil, nil); err != nil {
			return fmt.Errorf("failed to resend invitation: %w", err)
		}

		fmt.Printf("Invitation resent to %s\n", args[0])
		return nil
	},
}

var deleteInvitationCmd = &cobra.Command{
	Use:   "delete [email]",
	Short: "Revoke a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("/rest/invitations/%s", url.PathEscape(args[0]))
		if err := newAPIClient().do(context.Background(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to delete invitation: %w", err)
		}

		fmt.Printf("Invitation revoked for %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invitationsCmd)
	invitationsCmd.AddCommand(createInvitationCmd)
	invitationsCmd.AddCommand(listInvitationsCmd)
	invitationsCmd.AddCommand(resendInvitationCmd)
	invitationsCmd.AddCommand(deleteInvitationCmd)

	createInvitationCmd.Flags().StringVar(&inviteOrgID, "org", "", "Organization to grant access to (defaults to the service's default org)")
	createInvitationCmd.Flags().StringSliceVar(&inviteRoles, "roles", []string{}, "Comma-separated list of roles to grant")
}
