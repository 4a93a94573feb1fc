package middleware

import (
	"context"
	"errors"

	"teamhub/internal/authz"
	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"
	"teamhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing team data
const (
	TeamKey = "team"
)

// TeamLoader resolves the team named in the route.
type TeamLoader interface {
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
}

// LoadTeam resolves the :teamId path parameter and stores the team.
func LoadTeam(teams TeamLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		teamID, err := primitive.ObjectIDFromHex(c.Param("teamId"))
		if err != nil {
			response.BadRequest(c, "invalid team id format")
			c.Abort()
			return
		}

		team, err := teams.GetTeam(c.Request.Context(), teamID)
		if err != nil {
			if errors.Is(err, apperrors.ErrTeamNotFound) {
				response.NotFound(c, err.Error())
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(TeamKey, team)
		c.Next()
	}
}

// RequireTeamPermission allows the request when the user holds any of perms in
// the loaded team. Owners always pass.
func RequireTeamPermission(authorizer authz.Authorizer, perms ...string) gin.HandlerFunc {
	return teamGate(func(c *gin.Context, user *models.User, team *models.Team) (bool, error) {
		return authorizer.HasTeamPermission(c.Request.Context(), user, team, perms, false, authz.ScopeRole)
	})
}

// RequireTeamMembership allows the request when the user owns or belongs to
// the loaded team.
func RequireTeamMembership(authorizer authz.Authorizer) gin.HandlerFunc {
	return teamGate(func(c *gin.Context, user *models.User, team *models.Team) (bool, error) {
		return authorizer.BelongsToTeam(c.Request.Context(), user, team)
	})
}

func teamGate(check func(*gin.Context, *models.User, *models.Team) (bool, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		team := GetTeam(c)
		if team == nil {
			response.BadRequest(c, "team not found in context")
			c.Abort()
			return
		}

		allowed, err := check(c, user, team)
		if err != nil {
			response.InternalError(c)
			c.Abort()
			return
		}
		if !allowed {
			response.Forbidden(c, apperrors.ErrForbidden.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetTeam retrieves the team loaded by LoadTeam.
func GetTeam(c *gin.Context) *models.Team {
	v, exists := c.Get(TeamKey)
	if !exists {
		return nil
	}
	team, _ := v.(*models.Team)
	return team
}
