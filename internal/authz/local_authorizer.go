package authz

import (
	"context"
	"errors"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipFinder looks up a user's membership row in a team.
// Implementations return apperrors.ErrNotTeamMember when none exists.
type MembershipFinder interface {
	FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error)
}

// RoleFinder resolves a role id within a team.
// Implementations return apperrors.ErrRoleNotFound for roles of other teams.
type RoleFinder interface {
	FindByTeamAndID(ctx context.Context, teamID, roleID primitive.ObjectID) (*models.Role, error)
}

// PermissionFinder resolves permission ids to permissions.
type PermissionFinder interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Permission, error)
}

// CurrentTeamSetter persists a user's current team.
type CurrentTeamSetter interface {
	SetCurrentTeam(ctx context.Context, userID, teamID primitive.ObjectID) error
}

// CheckObserver is notified of every permission or role check outcome.
type CheckObserver func(check string, allowed bool)

// Option configures a LocalAuthorizer.
type Option func(*LocalAuthorizer)

// WithObserver registers a CheckObserver.
func WithObserver(observer CheckObserver) Option {
	return func(a *LocalAuthorizer) {
		a.observe = observer
	}
}

// LocalAuthorizer implements Authorizer using database lookups.
type LocalAuthorizer struct {
	members     MembershipFinder
	roles       RoleFinder
	permissions PermissionFinder
	users       CurrentTeamSetter
	observe     CheckObserver
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(members MembershipFinder, roles RoleFinder, permissions PermissionFinder, users CurrentTeamSetter, opts ...Option) *LocalAuthorizer {
	a := &LocalAuthorizer{
		members:     members,
		roles:       roles,
		permissions: permissions,
		users:       users,
		observe:     func(string, bool) {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var _ Authorizer = (*LocalAuthorizer)(nil)

// OwnsTeam reports whether user is the team's owner. It never queries storage.
func (a *LocalAuthorizer) OwnsTeam(user TeamMember, team TeamOwnable) bool {
	return user.UserKey() == team.OwnerKey()
}

// BelongsToTeam reports whether user owns team or holds a membership in it.
func (a *LocalAuthorizer) BelongsToTeam(ctx context.Context, user TeamMember, team TeamOwnable) (bool, error) {
	if a.OwnsTeam(user, team) {
		return true, nil
	}

	member, err := a.membership(ctx, user, team)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// TeamRole returns the role attached to the user's membership. Owners get nil:
// ownership is not a role and owners hold no membership row.
func (a *LocalAuthorizer) TeamRole(ctx context.Context, user TeamMember, team TeamOwnable) (*models.Role, error) {
	if a.OwnsTeam(user, team) {
		return nil, nil
	}

	member, err := a.membership(ctx, user, team)
	if err != nil || member == nil {
		return nil, err
	}

	role, err := a.roles.FindByTeamAndID(ctx, team.TeamKey(), member.RoleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoleNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

// TeamPermissions lists the unique permission names the user holds in team.
// Owners hold ["*"]. Unknown scopes contribute nothing.
func (a *LocalAuthorizer) TeamPermissions(ctx context.Context, user TeamMember, team TeamOwnable, scope string) ([]string, error) {
	if a.OwnsTeam(user, team) {
		return []string{OwnerWildcard}, nil
	}

	if !isRoleScope(scope) {
		return []string{}, nil
	}

	role, err := a.TeamRole(ctx, user, team)
	if err != nil {
		return nil, err
	}
	if role == nil || len(role.PermissionIDs) == 0 {
		return []string{}, nil
	}

	perms, err := a.permissions.FindByIDs(ctx, role.PermissionIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(perms))
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	return names, nil
}

// HasTeamPermission checks the requested permissions against the user's grants.
// With require=false any single match suffices; with require=true all must match.
// Owners always pass and an empty request never does.
func (a *LocalAuthorizer) HasTeamPermission(ctx context.Context, user TeamMember, team TeamOwnable, perms []string, require bool, scope string) (bool, error) {
	if a.OwnsTeam(user, team) {
		a.observe("permission", true)
		return true, nil
	}
	if len(perms) == 0 {
		a.observe("permission", false)
		return false, nil
	}

	granted, err := a.TeamPermissions(ctx, user, team, scope)
	if err != nil {
		return false, err
	}

	for _, perm := range perms {
		matched := MatchPermission(granted, perm)
		if matched && !require {
			a.observe("permission", true)
			return true, nil
		}
		if !matched && require {
			a.observe("permission", false)
			return false, nil
		}
	}

	a.observe("permission", require)
	return require, nil
}

// HasTeamRole checks role names against the user's single team role.
// Owners always pass. Under require=true every requested name must equal the
// user's role, so an empty request is vacuously satisfied.
func (a *LocalAuthorizer) HasTeamRole(ctx context.Context, user TeamMember, team TeamOwnable, roles []string, require bool) (bool, error) {
	if a.OwnsTeam(user, team) {
		a.observe("role", true)
		return true, nil
	}

	role, err := a.TeamRole(ctx, user, team)
	if err != nil {
		return false, err
	}

	var name string
	hasRole := role != nil
	if hasRole {
		name = role.Name
	}

	if require {
		for _, r := range roles {
			if !hasRole || r != name {
				a.observe("role", false)
				return false, nil
			}
		}
		a.observe("role", true)
		return true, nil
	}

	for _, r := range roles {
		if hasRole && r == name {
			a.observe("role", true)
			return true, nil
		}
	}
	a.observe("role", false)
	return false, nil
}

// SetCurrentTeam persists team as the user's current team. It is a no-op
// returning false when the user does not belong to the team.
func (a *LocalAuthorizer) SetCurrentTeam(ctx context.Context, user TeamMember, team TeamOwnable) (bool, error) {
	belongs, err := a.BelongsToTeam(ctx, user, team)
	if err != nil || !belongs {
		return false, err
	}

	if err := a.users.SetCurrentTeam(ctx, user.UserKey(), team.TeamKey()); err != nil {
		return false, err
	}
	return true, nil
}

func (a *LocalAuthorizer) membership(ctx context.Context, user TeamMember, team TeamOwnable) (*models.TeamMember, error) {
	member, err := a.members.FindByTeamAndUser(ctx, team.TeamKey(), user.UserKey())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotTeamMember) {
			return nil, nil // Expected: not a member
		}
		return nil, err
	}
	return member, nil
}

func isRoleScope(scope string) bool {
	return scope == "" || scope == scopeLegacyRole || scope == ScopeRole
}
