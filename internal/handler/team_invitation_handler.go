package handler

import (
	"teamhub/internal/middleware"
	"teamhub/internal/models"
	"teamhub/internal/service"
	"teamhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamInvitationHandler handles HTTP requests for invitation operations.
type TeamInvitationHandler struct {
	service service.TeamInvitationServicer
}

// NewTeamInvitationHandler creates a new TeamInvitationHandler.
func NewTeamInvitationHandler(service service.TeamInvitationServicer) *TeamInvitationHandler {
	return &TeamInvitationHandler{service: service}
}

// CreateInvitation godoc
// @Summary      Invite someone to a team
// @Description  Requires the edit-team permission. The role is given by name and must exist in the team. An email with an accept link is sent.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                          true  "Team ID"
// @Param        body    body      models.CreateInvitationRequest  true  "Email and role name"
// @Success      201     {object}  response.Response{data=models.TeamInvitation}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations [post]
func (h *TeamInvitationHandler) CreateInvitation(c *gin.Context) {
	team := middleware.GetTeam(c)
	if team == nil {
		response.BadRequest(c, "team not found in context")
		return
	}

	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	invitation, err := h.service.StoreTeamInvitation(c.Request.Context(), team, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, invitation)
}

// DeleteInvitation godoc
// @Summary      Cancel an invitation
// @Description  Requires the edit-team permission
// @Tags         invitations
// @Produce      json
// @Param        teamId      path      string  true  "Team ID"
// @Param        invitation  path      string  true  "Invitation ID"
// @Success      200         {object}  response.Response{data=models.MessageResponse}
// @Failure      400         {object}  response.Response
// @Failure      401         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations/{invitation} [delete]
func (h *TeamInvitationHandler) DeleteInvitation(c *gin.Context) {
	user := middleware.GetUser(c)
	team := middleware.GetTeam(c)
	if user == nil || team == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	invitationID, err := primitive.ObjectIDFromHex(c.Param("invitation"))
	if err != nil {
		response.BadRequest(c, "invalid invitation id format")
		return
	}

	if err := h.service.DeleteTeamInvitation(c.Request.Context(), team, invitationID, user); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.MessageResponse{Message: service.MsgInvitationCancelled})
}

// ShowInvitation godoc
// @Summary      Show an invitation
// @Description  Public. A signed-in visitor must be the invited address.
// @Tags         invitations
// @Produce      json
// @Param        teamId      path      string  true  "Team ID"
// @Param        invitation  path      string  true  "Invitation UUID"
// @Success      200         {object}  response.Response{data=models.InvitationDetailsResponse}
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /teams/{teamId}/invitations/{invitation}/accept [get]
func (h *TeamInvitationHandler) ShowInvitation(c *gin.Context) {
	team := middleware.GetTeam(c)
	if team == nil {
		response.BadRequest(c, "team not found in context")
		return
	}

	details, err := h.service.ShowInvitation(c.Request.Context(), team, c.Param("invitation"), middleware.GetUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, details)
}

// AcceptInvitation godoc
// @Summary      Accept an invitation
// @Description  Joins the signed-in user to the team with the invited role
// @Tags         invitations
// @Produce      json
// @Param        teamId      path      string  true  "Team ID"
// @Param        invitation  path      string  true  "Invitation UUID"
// @Success      200         {object}  response.Response{data=models.AcceptInvitationResponse}
// @Failure      401         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      409         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations/{invitation}/accept/auth [put]
func (h *TeamInvitationHandler) AcceptInvitation(c *gin.Context) {
	user := middleware.GetUser(c)
	team := middleware.GetTeam(c)
	if user == nil || team == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	result, err := h.service.AcceptInvitation(c.Request.Context(), team, c.Param("invitation"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// RegisterAndAccept godoc
// @Summary      Register and accept an invitation
// @Description  Creates an account for the invited address, joins the team and returns an access token
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        teamId      path      string                  true  "Team ID"
// @Param        invitation  path      string                  true  "Invitation UUID"
// @Param        body        body      models.RegisterRequest  true  "Account details"
// @Success      201         {object}  response.Response{data=models.AcceptInvitationResponse}
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      409         {object}  response.Response
// @Failure      422         {object}  response.Response
// @Failure      429         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /teams/{teamId}/invitations/{invitation}/accept [post]
func (h *TeamInvitationHandler) RegisterAndAccept(c *gin.Context) {
	team := middleware.GetTeam(c)
	if team == nil {
		response.BadRequest(c, "team not found in context")
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.RegisterAndAccept(c.Request.Context(), team, c.Param("invitation"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, result)
}
