package handler

import (
	"teamhub/internal/middleware"
	"teamhub/internal/models"
	"teamhub/internal/service"
	"teamhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMemberHandler handles HTTP requests for team member operations.
type TeamMemberHandler struct {
	service service.TeamMemberServicer
}

// NewTeamMemberHandler creates a new TeamMemberHandler.
func NewTeamMemberHandler(service service.TeamMemberServicer) *TeamMemberHandler {
	return &TeamMemberHandler{service: service}
}

// RemoveMember godoc
// @Summary      Remove a team member
// @Description  Requires the edit-team permission. The owner cannot be removed.
// @Tags         team-members
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        userId  path      string  true  "User ID of the member"
// @Success      200     {object}  response.Response{data=models.MessageResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members/{userId} [delete]
func (h *TeamMemberHandler) RemoveMember(c *gin.Context) {
	actor, team, targetID, ok := memberRequest(c)
	if !ok {
		return
	}

	result, err := h.service.RemoveMember(c.Request.Context(), team, targetID, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	respondResult(c, result)
}

// UpdateMember godoc
// @Summary      Change a member's role
// @Description  Requires the edit-team permission. The role must belong to the team.
// @Tags         team-members
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                      true  "Team ID"
// @Param        userId  path      string                      true  "User ID of the member"
// @Param        body    body      models.UpdateMemberRequest  true  "New role"
// @Success      200     {object}  response.Response{data=models.MessageResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members/{userId} [put]
func (h *TeamMemberHandler) UpdateMember(c *gin.Context) {
	actor, team, targetID, ok := memberRequest(c)
	if !ok {
		return
	}

	var req models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.UpdateMember(c.Request.Context(), team, targetID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondResult(c, result)
}

// SwitchTeam godoc
// @Summary      Switch current team
// @Description  Makes the team the caller's current team when they own or belong to it
// @Tags         team-members
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.MessageResponse}
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/switch [put]
func (h *TeamMemberHandler) SwitchTeam(c *gin.Context) {
	user := middleware.GetUser(c)
	team := middleware.GetTeam(c)
	if user == nil || team == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	result, err := h.service.SwitchCurrentTeam(c.Request.Context(), team, user)
	if err != nil {
		respondError(c, err)
		return
	}

	respondResult(c, result)
}

func memberRequest(c *gin.Context) (*models.User, *models.Team, primitive.ObjectID, bool) {
	actor := middleware.GetUser(c)
	team := middleware.GetTeam(c)
	if actor == nil || team == nil {
		response.Unauthorized(c, "user not authenticated")
		return nil, nil, primitive.NilObjectID, false
	}

	targetID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id format")
		return nil, nil, primitive.NilObjectID, false
	}

	return actor, team, targetID, true
}
