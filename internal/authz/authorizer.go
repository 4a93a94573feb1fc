// Package authz answers team-scoped authorization questions: ownership,
// membership, the acting user's role and whether that role grants a permission.
package authz

import (
	"context"

	"teamhub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission scopes accepted by TeamPermissions. The empty scope and "0" are
// legacy spellings of ScopeRole.
const (
	ScopeRole       = "role"
	scopeLegacyRole = "0"
)

// OwnerWildcard is the permission set reported for a team owner.
const OwnerWildcard = "*"

// TeamOwnable is anything that has a team identity and an owning user.
type TeamOwnable interface {
	TeamKey() primitive.ObjectID
	OwnerKey() primitive.ObjectID
}

// TeamMember is anything with a user identity that can belong to teams.
type TeamMember interface {
	UserKey() primitive.ObjectID
}

//go:generate mockgen -destination=mocks/mock_authorizer.go -package=mocks teamhub/internal/authz Authorizer

// Authorizer defines the interface for team authorization checks.
type Authorizer interface {
	// OwnsTeam reports whether user is the team's owner.
	OwnsTeam(user TeamMember, team TeamOwnable) bool

	// BelongsToTeam reports whether user owns team or holds a membership in it.
	BelongsToTeam(ctx context.Context, user TeamMember, team TeamOwnable) (bool, error)

	// TeamRole returns the user's role in team, or nil for owners and outsiders.
	TeamRole(ctx context.Context, user TeamMember, team TeamOwnable) (*models.Role, error)

	// TeamPermissions lists the permission names the user holds in team.
	TeamPermissions(ctx context.Context, user TeamMember, team TeamOwnable, scope string) ([]string, error)

	// HasTeamPermission checks perms with ANY (require=false) or ALL (require=true) semantics.
	HasTeamPermission(ctx context.Context, user TeamMember, team TeamOwnable, perms []string, require bool, scope string) (bool, error)

	// HasTeamRole checks role names with ANY (require=false) or ALL (require=true) semantics.
	HasTeamRole(ctx context.Context, user TeamMember, team TeamOwnable, roles []string, require bool) (bool, error)

	// SetCurrentTeam persists team as the user's current team if they belong to it.
	SetCurrentTeam(ctx context.Context, user TeamMember, team TeamOwnable) (bool, error)
}
