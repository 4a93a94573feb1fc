// Package mail renders and delivers transactional email.
package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"teamhub/internal/models"
)

// Message kinds, used for routing and metrics.
const (
	KindTeamInvitation = "team_invitation"
	KindPasswordReset  = "password_reset"
)

// Message is a transactional email: a greeting, intro lines, an optional
// call-to-action button and closing lines.
type Message struct {
	Kind       string   `json:"kind"`
	To         string   `json:"to"`
	Subject    string   `json:"subject"`
	Intro      []string `json:"intro"`
	ActionText string   `json:"actionText,omitempty"`
	ActionURL  string   `json:"actionUrl,omitempty"`
	Outro      []string `json:"outro"`
}

//go:generate mockgen -destination=mocks/mock_sender.go -package=mocks teamhub/internal/mail Sender

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// InvitationAcceptURL is the link a guest follows to open an invitation.
func InvitationAcceptURL(appURL string, teamID, invitationUUID string) string {
	return fmt.Sprintf("%s/teams/%s/invitations/%s/accept",
		strings.TrimRight(appURL, "/"), url.PathEscape(teamID), url.PathEscape(invitationUUID))
}

// InvitationMessage builds the email sent to an invited address.
func InvitationMessage(appURL string, team *models.Team, invitation *models.TeamInvitation) Message {
	return Message{
		Kind:    KindTeamInvitation,
		To:      invitation.Email,
		Subject: fmt.Sprintf("You've been invited to join %s", team.Name),
		Intro: []string{
			fmt.Sprintf("You have been invited to join the team %s.", team.Name),
		},
		ActionText: "Accept Invitation",
		ActionURL:  InvitationAcceptURL(appURL, team.ID.Hex(), invitation.UUID),
		Outro: []string{
			"If you did not expect to receive this invitation, you can ignore this email.",
		},
	}
}

// PasswordResetMessage builds the email carrying a password reset link.
func PasswordResetMessage(appURL, email, token string, expiresIn time.Duration) Message {
	link := fmt.Sprintf("%s/reset-password/%s?email=%s",
		strings.TrimRight(appURL, "/"), url.PathEscape(token), url.QueryEscape(email))

	return Message{
		Kind:    KindPasswordReset,
		To:      email,
		Subject: "Reset Password Notification",
		Intro: []string{
			"You are receiving this email because we received a password reset request for your account.",
		},
		ActionText: "Reset Password",
		ActionURL:  link,
		Outro: []string{
			fmt.Sprintf("This password reset link will expire in %d minutes.", int(expiresIn.Minutes())),
			"If you did not request a password reset, no further action is required.",
		},
	}
}
