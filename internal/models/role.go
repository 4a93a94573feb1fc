package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team permission names.
const (
	PermissionViewTeam   = "view-team"
	PermissionEditTeam   = "edit-team"
	PermissionDeleteTeam = "delete-team"
)

// Default team role names.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// DefaultTeamRoles lists the roles every new team starts with and their permissions.
var DefaultTeamRoles = []struct {
	Name        string
	Permissions []string
}{
	{Name: RoleAdmin, Permissions: []string{PermissionViewTeam, PermissionEditTeam, PermissionDeleteTeam}},
	{Name: RoleMember, Permissions: []string{PermissionViewTeam}},
}

// GlobalPermissions is the permission catalogue seeded at install time.
var GlobalPermissions = []string{
	"view-team", "edit-team", "delete-team",
	"view-user", "edit-user", "delete-user",
	"view-role", "edit-role", "delete-role",
	"view-permission", "edit-permission", "delete-permission",
}

// Role is a named, team-scoped bundle of permissions.
type Role struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID        primitive.ObjectID   `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	Name          string               `json:"name" bson:"name" example:"admin"`
	PermissionIDs []primitive.ObjectID `json:"-" bson:"permissionIds"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// Permission is a named capability. Names may be dot-segmented ("edit.posts")
// and grants may end in a wildcard segment ("edit.*").
type Permission struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name      string             `json:"name" bson:"name" example:"edit-team"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}
