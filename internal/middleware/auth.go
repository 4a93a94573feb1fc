// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"errors"
	"strings"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/logger"
	"teamhub/internal/models"
	"teamhub/pkg/auth"
	"teamhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Context keys for storing user data
const (
	UserIDKey = "userID"
	UserKey   = "user"
)

// UserLoader resolves the user named by a validated token.
type UserLoader interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Auth returns a middleware that validates JWT tokens and loads the user.
func Auth(tokens auth.TokenManager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "missing or malformed authorization header")
			c.Abort()
			return
		}

		user, err := authenticate(c, tokens, users, raw)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				response.Unauthorized(c, "invalid or expired token")
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		setUser(c, user)
		c.Next()
	}
}

// OptionalAuth loads the user when a valid token is presented and lets guests
// through otherwise.
func OptionalAuth(tokens auth.TokenManager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			if user, err := authenticate(c, tokens, users, raw); err == nil {
				setUser(c, user)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func authenticate(c *gin.Context, tokens auth.TokenManager, users UserLoader, raw string) (*models.User, error) {
	claims, err := tokens.ValidateToken(raw)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := users.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func setUser(c *gin.Context, user *models.User) {
	c.Set(UserIDKey, user.ID.Hex())
	c.Set(UserKey, user)

	ctx := c.Request.Context()
	l := logger.FromContext(ctx).With(zap.String("user_id", user.ID.Hex()))
	c.Request = c.Request.WithContext(logger.ContextWithLogger(ctx, l))
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetUser retrieves the authenticated user, or nil for guests.
func GetUser(c *gin.Context) *models.User {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
