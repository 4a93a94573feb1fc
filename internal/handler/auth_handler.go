// Package handler contains HTTP handlers for the API.
package handler

import (
	"net/http"

	"teamhub/internal/models"
	"teamhub/internal/service"
	"teamhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new user account with name, email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "User registration details"
// @Success      201      {object}  response.Response{data=models.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password and receive an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "Login credentials"
// @Success      200      {object}  response.Response{data=models.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// ForgotPassword godoc
// @Summary      Request a password reset link
// @Description  Emails a reset link when the address belongs to an account. The response is the same either way.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  response.Response{data=models.MessageResponse}
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.MessageResponse{Message: "We have emailed your password reset link."})
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Consumes a reset token and sets a new password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ResetPasswordRequest  true  "Token, email and new password"
// @Success      200      {object}  response.Response{data=models.MessageResponse}
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.MessageResponse{Message: "Your password has been reset."})
}

// GoogleRedirect godoc
// @Summary      Start Google sign-in
// @Description  Redirects to the Google consent screen
// @Tags         auth
// @Success      302
// @Failure      503  {object}  response.Response
// @Router       /auth/google/redirect [get]
func (h *AuthHandler) GoogleRedirect(c *gin.Context) {
	url, err := h.service.GoogleRedirectURL(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, url)
}

// GoogleCallback godoc
// @Summary      Complete Google sign-in
// @Description  Exchanges the authorization code, finds or creates the user and returns an access token
// @Tags         auth
// @Produce      json
// @Param        state  query     string  true  "OAuth state"
// @Param        code   query     string  true  "Authorization code"
// @Success      200    {object}  response.Response{data=models.LoginResponse}
// @Failure      400    {object}  response.Response
// @Failure      503    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	result, err := h.service.GoogleCallback(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}
