//go:build api

package testserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strings"
	"testing"

	"teamhub/internal/mail"
	"teamhub/internal/models"
	"teamhub/test/testutil"

	"github.com/stretchr/testify/require"
)

// DefaultPassword is the password every helper-registered user gets.
const DefaultPassword = "password123"

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the response data ({token, user}).
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email string) map[string]interface{} {
	t.Helper()

	req := models.RegisterRequest{
		Name:                 name,
		Email:                email,
		Password:             DefaultPassword,
		PasswordConfirmation: DefaultPassword,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "register response should be successful")
	return resp.Data
}

// Login logs in a user and returns the response data.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{Email: email, Password: password}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "login response should be successful")
	return resp.Data
}

// CreateAuthenticatedUser registers a user and returns its id and access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email string) (userID, token string) {
	t.Helper()

	data := ah.RegisterUser(t, name, email)
	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	return GetIDFromResponse(t, data), token
}

// TeamHelper provides team-related helpers for API tests.
type TeamHelper struct {
	server *TestServer
}

// NewTeamHelper creates a new team helper.
func NewTeamHelper(server *TestServer) *TeamHelper {
	return &TeamHelper{server: server}
}

// CreateTeam creates a new team and returns the team data.
func (th *TeamHelper) CreateTeam(t *testing.T, token, name string) map[string]interface{} {
	t.Helper()

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams", token, models.CreateTeamRequest{Name: name})
	require.Equal(t, http.StatusCreated, w.Code, "create team should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create team response should be successful")
	return resp.Data
}

// Settings fetches the team settings as token's user.
func (th *TeamHelper) Settings(t *testing.T, token, teamID string) models.TeamSettingsResponse {
	t.Helper()

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodGet, "/api/v1/teams/"+teamID+"/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "settings should return 200, got: %s", w.Body.String())

	return ParseResponseData[models.TeamSettingsResponse](t, testutil.ParseAPIResponse(t, w).Data)
}

// RoleID returns the id of the team role called name.
func (th *TeamHelper) RoleID(t *testing.T, token, teamID, name string) string {
	t.Helper()

	for _, role := range th.Settings(t, token, teamID).Roles {
		if role.Name == name {
			return role.ID.Hex()
		}
	}
	t.Fatalf("team %s has no role %q", teamID, name)
	return ""
}

// InvitationHelper provides invitation-related helpers for API tests.
type InvitationHelper struct {
	server *TestServer
}

// NewInvitationHelper creates a new invitation helper.
func NewInvitationHelper(server *TestServer) *InvitationHelper {
	return &InvitationHelper{server: server}
}

// CreateInvitation creates an invitation via API and returns the response data.
func (ih *InvitationHelper) CreateInvitation(t *testing.T, token, teamID, email, role string) map[string]interface{} {
	t.Helper()

	req := models.CreateInvitationRequest{Email: email, Role: role}

	w := testutil.MakeAuthRequest(t, ih.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invitations", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create invitation should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create invitation response should be successful")
	return resp.Data
}

// AcceptPath returns the invitation link path recorded in the last
// invitation email sent to email.
func (ih *InvitationHelper) AcceptPath(t *testing.T, email string) string {
	t.Helper()

	msg := LastMessage(t, ih.server.Outbox, mail.KindTeamInvitation, email)
	u, err := url.Parse(msg.ActionURL)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(u.Path, "/accept"), "unexpected invitation link %s", msg.ActionURL)

	return "/api/v1" + u.Path
}

// Join invites email to teamID with role and accepts as the already
// registered user holding memberToken.
func (ih *InvitationHelper) Join(t *testing.T, ownerToken, teamID, email, role, memberToken string) {
	t.Helper()

	ih.CreateInvitation(t, ownerToken, teamID, email, role)

	w := testutil.MakeAuthRequest(t, ih.server.Router, http.MethodPut, ih.AcceptPath(t, email)+"/auth", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, "accept invitation should return 200, got: %s", w.Body.String())
}

// LastMessage returns the most recent message of kind sent to to.
func LastMessage(t *testing.T, outbox *Outbox, kind, to string) mail.Message {
	t.Helper()

	msgs := outbox.Messages(kind, to)
	require.NotEmpty(t, msgs, "no %s email sent to %s", kind, to)
	return msgs[len(msgs)-1]
}

// ResetToken extracts the token from the last password reset email sent to email.
func ResetToken(t *testing.T, outbox *Outbox, email string) string {
	t.Helper()

	u, err := url.Parse(LastMessage(t, outbox, mail.KindPasswordReset, email).ActionURL)
	require.NoError(t, err)
	require.Equal(t, email, u.Query().Get("email"))

	return path.Base(u.Path)
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct ID fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}
