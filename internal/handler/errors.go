package handler

import (
	"errors"
	"net/http"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/logger"
	"teamhub/internal/models"
	"teamhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInvitationNotYours = "You are not allowed to accept this invitation."

// respondError maps a service error to its HTTP response.
func respondError(c *gin.Context, err error) {
	var invalid *apperrors.InvalidArgumentError
	if errors.As(err, &invalid) {
		response.UnprocessableEntity(c, invalid.Message, map[string]string{invalid.Field: invalid.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrInvitationNotFound),
		errors.Is(err, apperrors.ErrNotTeamMember):
		response.NotFound(c, err.Error())

	case errors.Is(err, apperrors.ErrForbidden):
		response.Forbidden(c, err.Error())

	case errors.Is(err, apperrors.ErrInvitationEmailMismatch):
		response.Forbidden(c, msgInvitationNotYours)

	case errors.Is(err, apperrors.ErrUserAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyMember),
		errors.Is(err, apperrors.ErrPendingInvitation):
		response.Conflict(c, err.Error())

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired):
		response.Unauthorized(c, err.Error())

	case errors.Is(err, apperrors.ErrRoleNotFound):
		response.UnprocessableEntity(c, "Invalid role selected.", map[string]string{"role_id": "Invalid role selected."})

	case errors.Is(err, apperrors.ErrInvalidResetToken):
		response.UnprocessableEntity(c, err.Error(), map[string]string{"email": err.Error()})

	case errors.Is(err, apperrors.ErrUnsupportedAvatar):
		response.UnprocessableEntity(c, err.Error(), map[string]string{"avatar": err.Error()})

	case errors.Is(err, apperrors.ErrInvalidOAuthState),
		errors.Is(err, apperrors.ErrOAuthEmailMissing):
		response.BadRequest(c, err.Error())

	case errors.Is(err, apperrors.ErrOAuthNotConfigured),
		errors.Is(err, apperrors.ErrStorageUnavailable):
		response.Error(c, http.StatusServiceUnavailable, err.Error())

	default:
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		response.InternalError(c)
	}
}

// respondResult reports a soft outcome: refusals are 422 with the message.
func respondResult(c *gin.Context, result models.ActionResult) {
	if !result.OK {
		response.UnprocessableEntity(c, result.Message, nil)
		return
	}
	response.Success(c, models.MessageResponse{Message: result.Message})
}
