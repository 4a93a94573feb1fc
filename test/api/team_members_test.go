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
)

type memberFixture struct {
	teamID      string
	ownerID     string
	ownerToken  string
	adminToken  string
	memberID    string
	memberToken string
}

func setupMembers(t *testing.T) memberFixture {
	t.Helper()
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)
	invitationHelper := testserver.NewInvitationHelper(testServer)

	var f memberFixture
	f.ownerID, f.ownerToken = authHelper.CreateAuthenticatedUser(t, "Owner", "owner@example.com")
	_, f.adminToken = authHelper.CreateAuthenticatedUser(t, "Admin", "admin@example.com")
	f.memberID, f.memberToken = authHelper.CreateAuthenticatedUser(t, "Member", "member@example.com")

	f.teamID = testserver.GetIDFromResponse(t, teamHelper.CreateTeam(t, f.ownerToken, "Members Team"))
	invitationHelper.Join(t, f.ownerToken, f.teamID, "admin@example.com", models.RoleAdmin, f.adminToken)
	invitationHelper.Join(t, f.ownerToken, f.teamID, "member@example.com", models.RoleMember, f.memberToken)

	return f
}

// TestRemoveMember tests the DELETE /api/v1/teams/:teamId/members/:userId endpoint.
func TestRemoveMember(t *testing.T) {
	t.Run("admin removes member and clears their current team", func(t *testing.T) {
		f := setupMembers(t)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/teams/"+f.teamID+"/members/"+f.memberID, f.adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Team member removed successfully.", testutil.ParseAPIResponse(t, w).Data["message"])

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/me", f.memberToken, nil)
		session := testserver.ParseResponseData[models.SessionResponse](t, testutil.ParseAPIResponse(t, w).Data)
		assert.Nil(t, session.User.CurrentTeamID)
		assert.Nil(t, session.CurrentTeam)
		assert.Empty(t, session.AllTeams)

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+f.teamID+"/settings", f.memberToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner cannot be removed", func(t *testing.T) {
		f := setupMembers(t)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/teams/"+f.teamID+"/members/"+f.ownerID, f.adminToken, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Team owner cannot be removed.", testutil.ParseAPIResponse(t, w).Error)
	})

	t.Run("member without edit-team is forbidden", func(t *testing.T) {
		f := setupMembers(t)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/teams/"+f.teamID+"/members/"+f.memberID, f.memberToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("malformed user id", func(t *testing.T) {
		f := setupMembers(t)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/teams/"+f.teamID+"/members/nope", f.ownerToken, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestUpdateMember tests the PUT /api/v1/teams/:teamId/members/:userId endpoint.
func TestUpdateMember(t *testing.T) {
	f := setupMembers(t)
	teamHelper := testserver.NewTeamHelper(testServer)
	adminRoleID := teamHelper.RoleID(t, f.ownerToken, f.teamID, models.RoleAdmin)

	t.Run("owner promotes member to admin", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+f.teamID+"/members/"+f.memberID, f.ownerToken,
			models.UpdateMemberRequest{RoleID: adminRoleID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		settings := teamHelper.Settings(t, f.memberToken, f.teamID)
		assert.Equal(t, models.RoleAdmin, settings.CurrentUserRole)
		assert.Contains(t, settings.Permissions, models.PermissionEditTeam)
	})

	t.Run("role from another team is rejected", func(t *testing.T) {
		_, strangerToken := testserver.NewAuthHelper(testServer).CreateAuthenticatedUser(t, "Stranger", "stranger@example.com")
		otherTeam := testserver.GetIDFromResponse(t, teamHelper.CreateTeam(t, strangerToken, "Other"))
		foreignRole := teamHelper.RoleID(t, strangerToken, otherTeam, models.RoleAdmin)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+f.teamID+"/members/"+f.memberID, f.ownerToken,
			models.UpdateMemberRequest{RoleID: foreignRole})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, testutil.ParseAPIResponse(t, w).Fields, "role_id")
	})

	t.Run("malformed role id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+f.teamID+"/members/"+f.memberID, f.ownerToken,
			models.UpdateMemberRequest{RoleID: "admin"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, testutil.ParseAPIResponse(t, w).Fields, "role_id")
	})
}
