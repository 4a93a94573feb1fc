package handler

import (
	"teamhub/internal/middleware"
	"teamhub/internal/models"
	"teamhub/internal/service"
	"teamhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service service.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam godoc
// @Summary      Create a new team
// @Description  Create a team with the default admin and member roles. The authenticated user becomes the owner and the team becomes their current team.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTeamRequest  true  "Team details"
// @Success      201   {object}  response.Response{data=models.Team}
// @Failure      401   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, team)
}

// ListTeams godoc
// @Summary      List user's teams
// @Description  Teams the authenticated user owns or belongs to, sorted by name
// @Tags         teams
// @Produce      json
// @Success      200  {object}  response.Response{data=models.TeamListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	teams, err := h.service.AllTeams(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.TeamListResponse{Items: teams})
}

// Settings godoc
// @Summary      Team settings
// @Description  Team, owner, members with roles, pending invitations and the caller's role and permissions
// @Tags         teams
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.TeamSettingsResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/settings [get]
func (h *TeamHandler) Settings(c *gin.Context) {
	user := middleware.GetUser(c)
	team := middleware.GetTeam(c)
	if user == nil || team == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	settings, err := h.service.Settings(c.Request.Context(), team, user)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, settings)
}

// UpdateTeam godoc
// @Summary      Rename team
// @Description  Requires the edit-team permission
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                    true  "Team ID"
// @Param        body    body      models.UpdateTeamRequest  true  "New name"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	team := middleware.GetTeam(c)
	if team == nil {
		response.BadRequest(c, "team not found in context")
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	updated, err := h.service.UpdateTeam(c.Request.Context(), team, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, updated)
}
