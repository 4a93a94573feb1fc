package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedFields map[string]string
	}{
		{"invalid argument", apperrors.NewInvalidArgument("name", "The name field is required."), http.StatusUnprocessableEntity, map[string]string{"name": "The name field is required."}},
		{"wrapped not found", fmt.Errorf("load: %w", apperrors.ErrTeamNotFound), http.StatusNotFound, nil},
		{"not a member", apperrors.ErrNotTeamMember, http.StatusNotFound, nil},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, nil},
		{"email mismatch", apperrors.ErrInvitationEmailMismatch, http.StatusForbidden, nil},
		{"already member", apperrors.ErrAlreadyMember, http.StatusConflict, nil},
		{"pending invitation", apperrors.ErrPendingInvitation, http.StatusConflict, nil},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, nil},
		{"unknown role", apperrors.ErrRoleNotFound, http.StatusUnprocessableEntity, map[string]string{"role_id": "Invalid role selected."}},
		{"bad reset token", apperrors.ErrInvalidResetToken, http.StatusUnprocessableEntity, map[string]string{"email": apperrors.ErrInvalidResetToken.Error()}},
		{"bad oauth state", apperrors.ErrInvalidOAuthState, http.StatusBadRequest, nil},
		{"storage missing", apperrors.ErrStorageUnavailable, http.StatusServiceUnavailable, nil},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { respondError(c, tt.err) })

			w := serve(router, http.MethodGet, "/", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			env := decode(t, w)
			assert.False(t, env.Success)
			if tt.expectedFields != nil {
				assert.Equal(t, tt.expectedFields, env.Fields)
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "boom")
			}
		})
	}
}

func TestRespondResult(t *testing.T) {
	t.Run("success carries the message", func(t *testing.T) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) { respondResult(c, models.Succeeded("done")) })

		w := serve(router, http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "done", decode(t, w).Data["message"])
	})

	t.Run("refusal is unprocessable", func(t *testing.T) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) { respondResult(c, models.Refused("no")) })

		w := serve(router, http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "no", decode(t, w).Error)
	})
}
