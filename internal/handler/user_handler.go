package handler

import (
	"errors"
	"net/http"

	"teamhub/internal/middleware"
	"teamhub/internal/models"
	"teamhub/internal/service"
	"teamhub/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 2 << 20

// UserHandler handles HTTP requests for the authenticated user's own account.
type UserHandler struct {
	users service.UserServicer
	teams service.TeamServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserServicer, teams service.TeamServicer) *UserHandler {
	return &UserHandler{users: users, teams: teams}
}

// GetSession godoc
// @Summary      Current session
// @Description  The authenticated user, all of their teams, the current team and their permissions on it
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=models.SessionResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /me [get]
func (h *UserHandler) GetSession(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	session, err := h.teams.Session(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	session.User = *h.users.WithAvatarURL(c.Request.Context(), &session.User)
	response.Success(c, session)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Change name and email and optionally upload a new avatar (jpeg, png, gif or webp, max 2MB)
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        name    formData  string  true   "Display name"
// @Param        email   formData  string  true   "Email address"
// @Param        avatar  formData  file    false  "Avatar image"
// @Success      200     {object}  response.Response{data=models.User}
// @Failure      401     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /me/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	var avatar *service.AvatarUpload
	file, err := c.FormFile("avatar")
	switch {
	case err == nil:
		if file.Size > maxAvatarSize {
			response.UnprocessableEntity(c, "The avatar may not be greater than 2048 kilobytes.",
				map[string]string{"avatar": "The avatar may not be greater than 2048 kilobytes."})
			return
		}
		f, err := file.Open()
		if err != nil {
			response.BadRequest(c, "could not read avatar")
			return
		}
		defer f.Close()
		avatar = &service.AvatarUpload{Body: f, ContentType: file.Header.Get("Content-Type")}
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		response.BadRequest(c, "invalid avatar upload")
		return
	}

	updated, err := h.users.UpdateProfile(c.Request.Context(), user, &req, avatar)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, updated)
}
