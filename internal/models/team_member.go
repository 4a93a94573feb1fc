package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is a user's membership in a team, carrying exactly one team role.
type TeamMember struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID    primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	RoleID    primitive.ObjectID `json:"roleId" bson:"roleId" example:"507f1f77bcf86cd799439014"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// MemberView is a team member as shown on the team settings page.
type MemberView struct {
	ID       primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Name     string             `json:"name" example:"John Doe"`
	Email    string             `json:"email" example:"user@example.com"`
	RoleID   primitive.ObjectID `json:"roleId" example:"507f1f77bcf86cd799439014"`
	RoleName string             `json:"roleName" example:"member"`
	JoinedAt time.Time          `json:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// UpdateMemberRequest is the payload for changing a member's role.
type UpdateMemberRequest struct {
	RoleID string `json:"role_id" binding:"required,objectid" example:"507f1f77bcf86cd799439014"`
}

// ActionResult is the soft outcome of a lifecycle action. A false OK is a
// business refusal reported to the caller, not an error.
type ActionResult struct {
	OK      bool   `json:"ok" example:"true"`
	Message string `json:"message" example:"Team member removed successfully."`
}

// Succeeded builds a successful ActionResult.
func Succeeded(message string) ActionResult {
	return ActionResult{OK: true, Message: message}
}

// Refused builds a refused ActionResult.
func Refused(message string) ActionResult {
	return ActionResult{OK: false, Message: message}
}
