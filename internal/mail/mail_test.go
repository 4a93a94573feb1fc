package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"teamhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestInvitationMessage(t *testing.T) {
	team := &models.Team{ID: primitive.NewObjectID(), Name: "Acme"}
	inv := &models.TeamInvitation{Email: "new@example.com", UUID: "9b2f3c1e-6f0a-4c77-9a53-3f0b7b2c9d10"}

	msg := InvitationMessage("https://app.example.com/", team, inv)

	assert.Equal(t, KindTeamInvitation, msg.Kind)
	assert.Equal(t, "new@example.com", msg.To)
	assert.Equal(t, "You've been invited to join Acme", msg.Subject)
	assert.Equal(t, []string{"You have been invited to join the team Acme."}, msg.Intro)
	assert.Equal(t, "Accept Invitation", msg.ActionText)
	assert.Equal(t, "https://app.example.com/teams/"+team.ID.Hex()+"/invitations/"+inv.UUID+"/accept", msg.ActionURL)
	assert.Equal(t, []string{"If you did not expect to receive this invitation, you can ignore this email."}, msg.Outro)
}

func TestPasswordResetMessage(t *testing.T) {
	msg := PasswordResetMessage("http://localhost:8080", "a+b@example.com", "tok123", time.Hour)

	assert.Equal(t, KindPasswordReset, msg.Kind)
	assert.Equal(t, "http://localhost:8080/reset-password/tok123?email=a%2Bb%40example.com", msg.ActionURL)
	assert.Contains(t, msg.Outro[0], "60 minutes")
}

func TestRender(t *testing.T) {
	msg := Message{
		Subject:    "s",
		Intro:      []string{"Line <one>"},
		ActionText: "Go",
		ActionURL:  "https://example.com/x",
		Outro:      []string{"Bye"},
	}

	html, err := RenderHTML(msg)
	require.NoError(t, err)
	assert.Contains(t, html, "Line &lt;one&gt;")
	assert.Contains(t, html, `href="https://example.com/x"`)
	assert.Contains(t, html, ">Go</a>")

	text := RenderText(msg)
	assert.Equal(t, "Hello!\n\nLine <one>\n\nGo: https://example.com/x\n\nBye\n", text)
}

func TestSMTPSender_Send(t *testing.T) {
	msg := Message{Kind: KindTeamInvitation, To: "to@example.com", Subject: "Hi", Intro: []string{"x"}}
	cfg := SMTPConfig{Host: "smtp.example.com", Port: 2525, User: "u", Password: "p", FromAddress: "noreply@example.com", FromName: "Team Hub"}

	t.Run("delivers composed message", func(t *testing.T) {
		sender := NewSMTPSender(cfg, zap.NewNop())

		var gotAddr, gotFrom string
		var gotTo []string
		var gotBody []byte
		var gotAuth smtp.Auth
		sender.sendMail = func(addr string, a smtp.Auth, from string, to []string, body []byte) error {
			gotAddr, gotAuth, gotFrom, gotTo, gotBody = addr, a, from, to, body
			return nil
		}

		require.NoError(t, sender.Send(context.Background(), msg))

		assert.Equal(t, "smtp.example.com:2525", gotAddr)
		assert.NotNil(t, gotAuth)
		assert.Equal(t, "noreply@example.com", gotFrom)
		assert.Equal(t, []string{"to@example.com"}, gotTo)
		body := string(gotBody)
		assert.Contains(t, body, "To: to@example.com\r\n")
		assert.Contains(t, body, "Subject: Hi\r\n")
		assert.Contains(t, body, "multipart/alternative")
		assert.Contains(t, body, "text/html")
	})

	t.Run("omits auth without credentials", func(t *testing.T) {
		noAuth := cfg
		noAuth.User, noAuth.Password = "", ""
		sender := NewSMTPSender(noAuth, zap.NewNop())

		var gotAuth smtp.Auth = smtp.PlainAuth("", "x", "y", "z")
		sender.sendMail = func(_ string, a smtp.Auth, _ string, _ []string, _ []byte) error {
			gotAuth = a
			return nil
		}

		require.NoError(t, sender.Send(context.Background(), msg))
		assert.Nil(t, gotAuth)
	})

	t.Run("opens the breaker after repeated failures", func(t *testing.T) {
		sender := NewSMTPSender(cfg, zap.NewNop())
		calls := 0
		relayDown := errors.New("connection refused")
		sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			calls++
			return relayDown
		}

		for i := 0; i < 5; i++ {
			err := sender.Send(context.Background(), msg)
			assert.ErrorIs(t, err, relayDown)
		}

		err := sender.Send(context.Background(), msg)
		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "circuit breaker is open"))
		assert.Equal(t, 5, calls)
	})

	t.Run("cancelled context is not sent", func(t *testing.T) {
		sender := NewSMTPSender(cfg, zap.NewNop())
		sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("should not send")
			return nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, sender.Send(ctx, msg), context.Canceled)
	})
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, NewLogSender(zap.NewNop()).Send(context.Background(), Message{To: "x@example.com"}))
}
