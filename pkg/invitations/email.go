// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
)

const inviteSubject = "Invitation to join the platform"

var inviteTemplate = template.Must(template.New("invite").Parse(`<html>
<body>
<p>Hello,</p>
<p>{{.InvitedBy}} has invited you to create an account.</p>
<p><a href="{{.Link}}">Click here to complete your registration.</a></p>
<p>If the link does not work, copy this address into your browser: {{.Link}}</p>
</body>
</html>
`))

type inviteData struct {
	InvitedBy string
	Link      string
}

// invitationLink points the invitee at the registration form carrying
// the one-time code.
func invitationLink(consoleURL, code string) string {
	return fmt.Sprintf("%s/new-account?code=%s", consoleURL, url.QueryEscape(code))
}

func renderInviteBody(invitedBy, link string) (string, error) {
	var buf bytes.Buffer
	if err := inviteTemplate.Execute(&buf, inviteData{InvitedBy: invitedBy, Link: link}); err != nil {
		return "", fmt.Errorf("unable to render invitation body: %w", err)
	}
	return buf.String(), nil
}
