//go:build api

package api

import (
	"net/http"
	"testing"

	"teamhub/internal/models"
	"teamhub/test/api/testserver"
	"teamhub/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestCreateTeam tests the POST /api/v1/teams endpoint.
func TestCreateTeam(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)

	t.Run("success - owner gets default roles and no membership row", func(t *testing.T) {
		userID, token := authHelper.CreateAuthenticatedUser(t, "Team Owner", "teamowner@example.com")

		data := teamHelper.CreateTeam(t, token, "  Test Team  ")

		assert.Equal(t, "Test Team", data["name"])
		assert.Equal(t, userID, data["ownerId"])
		teamID := testserver.GetIDFromResponse(t, data)

		settings := teamHelper.Settings(t, token, teamID)
		assert.Equal(t, models.RoleOwner, settings.CurrentUserRole)
		assert.Equal(t, []string{"*"}, settings.Permissions)
		assert.Empty(t, settings.Members)
		assert.Equal(t, userID, settings.Owner.ID.Hex())

		names := make([]string, 0, len(settings.Roles))
		for _, r := range settings.Roles {
			names = append(names, r.Name)
		}
		assert.ElementsMatch(t, []string{models.RoleAdmin, models.RoleMember}, names)
	})

	t.Run("new team becomes the current team", func(t *testing.T) {
		_, token := authHelper.CreateAuthenticatedUser(t, "Switcher", "switcher@example.com")
		teamID := testserver.GetIDFromResponse(t, teamHelper.CreateTeam(t, token, "Current"))

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		session := testserver.ParseResponseData[models.SessionResponse](t, testutil.ParseAPIResponse(t, w).Data)
		require.NotNil(t, session.CurrentTeam)
		assert.Equal(t, teamID, session.CurrentTeam.ID.Hex())
		assert.Equal(t, []string{"*"}, session.Permissions)
	})

	t.Run("error - name required", func(t *testing.T) {
		_, token := authHelper.CreateAuthenticatedUser(t, "No Name", "noname@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", token, models.CreateTeamRequest{})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, testutil.ParseAPIResponse(t, w).Fields, "name")
	})

	t.Run("error - unauthenticated", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", models.CreateTeamRequest{Name: "x"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestListTeams tests the GET /api/v1/teams endpoint.
func TestListTeams(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)
	invitationHelper := testserver.NewInvitationHelper(testServer)

	_, ownerToken := authHelper.CreateAuthenticatedUser(t, "Owner", "owner@example.com")
	_, memberToken := authHelper.CreateAuthenticatedUser(t, "Member", "member@example.com")

	zeta := testserver.GetIDFromResponse(t, teamHelper.CreateTeam(t, ownerToken, "zeta"))
	teamHelper.CreateTeam(t, memberToken, "Alpha")
	invitationHelper.Join(t, ownerToken, zeta, "member@example.com", models.RoleMember, memberToken)

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := testserver.ParseResponseData[models.TeamListResponse](t, testutil.ParseAPIResponse(t, w).Data)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Alpha", list.Items[0].Name)
	assert.Equal(t, "zeta", list.Items[1].Name)
}

// TestTeamSettings tests the GET /api/v1/teams/:teamId/settings endpoint.
func TestTeamSettings(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)
	invitationHelper := testserver.NewInvitationHelper(testServer)

	_, ownerToken := authHelper.CreateAuthenticatedUser(t, "Owner", "owner@example.com")
	memberID, memberToken := authHelper.CreateAuthenticatedUser(t, "Member", "member@example.com")
	_, outsiderToken := authHelper.CreateAuthenticatedUser(t, "Outsider", "outsider@example.com")

	teamID := testserver.GetIDFromResponse(t, teamHelper.CreateTeam(t, ownerToken, "Settings Team"))
	invitationHelper.Join(t, ownerToken, teamID, "member@example.com", models.RoleMember, memberToken)
	invitationHelper.CreateInvitation(t, ownerToken, teamID, "pending@example.com", models.RoleAdmin)

	t.Run("member sees members and role permissions", func(t *testing.T) {
		settings := teamHelper.Settings(t, memberToken, teamID)

		require.Len(t, settings.Members, 1)
		assert.Equal(t, memberID, settings.Members[0].ID.Hex())
		assert.Equal(t, models.RoleMember, settings.Members[0].RoleName)
		assert.Equal(t, models.RoleMember, settings.CurrentUserRole)
		assert.Equal(t, []string{models.PermissionViewTeam}, settings.Permissions)

		require.Len(t, settings.Invitations, 1)
		assert.Equal(t, "pending@example.com", settings.Invitations[0].Email)
	})

	t.Run("error - outsider", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+teamID+"/settings", outsiderToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - unknown team", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+primitive.NewObjectID().Hex()+"/settings", ownerToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - malformed team id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/not-an-id/settings", ownerToken, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestUpdateTeam tests the PUT /api/v1/teams/:teamId endpoint.
func TestUpdateTeam(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)
	invitationHelper := testserver.NewInvitationHelper(testServer)

	_, ownerToken := authHelper.CreateAuthenticatedUser(t, "Owner", "owner@example.com")
	_, adminToken := authHelper.CreateAuthenticatedUser(t, "Admin", "admin@example.com")
	_, memberToken := authHelper.CreateAuthenticatedUser(t, "Member", "member@example.com")

	teamID := testserver.GetIDFromResponse(t, teamHelper.CreateTeam(t, ownerToken, "Before"))
	invitationHelper.Join(t, ownerToken, teamID, "admin@example.com", models.RoleAdmin, adminToken)
	invitationHelper.Join(t, ownerToken, teamID, "member@example.com", models.RoleMember, memberToken)

	tests := []struct {
		name       string
		token      string
		teamName   string
		wantStatus int
	}{
		{name: "owner renames", token: ownerToken, teamName: "After", wantStatus: http.StatusOK},
		{name: "admin renames", token: adminToken, teamName: "After Admin", wantStatus: http.StatusOK},
		{name: "member is forbidden", token: memberToken, teamName: "Nope", wantStatus: http.StatusForbidden},
		{name: "empty name", token: ownerToken, teamName: "", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+teamID, tt.token,
				models.UpdateTeamRequest{Name: tt.teamName})

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.teamName, testutil.ParseAPIResponse(t, w).Data["name"])
			}
		})
	}
}

// TestSwitchTeam tests the PUT /api/v1/teams/:teamId/switch endpoint.
func TestSwitchTeam(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)

	_, token := authHelper.CreateAuthenticatedUser(t, "Owner", "owner@example.com")
	_, otherToken := authHelper.CreateAuthenticatedUser(t, "Other", "other@example.com")

	first := testserver.GetIDFromResponse(t, teamHelper.CreateTeam(t, token, "First"))
	teamHelper.CreateTeam(t, token, "Second")
	foreign := testserver.GetIDFromResponse(t, teamHelper.CreateTeam(t, otherToken, "Foreign"))

	t.Run("switch to own team", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+first+"/switch", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/me", token, nil)
		session := testserver.ParseResponseData[models.SessionResponse](t, testutil.ParseAPIResponse(t, w).Data)
		require.NotNil(t, session.CurrentTeam)
		assert.Equal(t, first, session.CurrentTeam.ID.Hex())
		assert.Len(t, session.AllTeams, 2)
	})

	t.Run("refused for a team the user does not belong to", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+foreign+"/switch", token, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "You do not have access to this team.", testutil.ParseAPIResponse(t, w).Error)
	})
}
