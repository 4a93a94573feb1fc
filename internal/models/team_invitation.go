package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamInvitation is a pending offer to join a team with a given role.
type TeamInvitation struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID    primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	Email     string             `json:"email" bson:"email" example:"newuser@example.com"`
	RoleID    primitive.ObjectID `json:"roleId" bson:"roleId" example:"507f1f77bcf86cd799439014"`
	UUID      string             `json:"uuid" bson:"uuid" example:"9b2f3c1e-6f0a-4c77-9a53-3f0b7b2c9d10"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// InvitationView is a pending invitation as listed on the team settings page.
type InvitationView struct {
	ID        primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" example:"newuser@example.com"`
	RoleID    primitive.ObjectID `json:"roleId" example:"507f1f77bcf86cd799439014"`
	CreatedAt time.Time          `json:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// TeamSummary is a minimal team representation for embedding.
type TeamSummary struct {
	ID   primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439012"`
	Name string             `json:"name" example:"Engineering Team"`
}

// CreateInvitationRequest is the payload for inviting someone by email.
type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email,max=255" example:"newuser@example.com"`
	Role  string `json:"role" binding:"required,rolename" example:"member"`
}

// InvitationDetailsResponse is shown to someone opening an invitation link.
type InvitationDetailsResponse struct {
	Invitation TeamInvitation `json:"invitation"`
	Team       TeamSummary    `json:"team"`
	RoleName   string         `json:"roleName" example:"member"`
	UserExists bool           `json:"userExists" example:"false"`
}

// AcceptInvitationResponse is the response for accepting an invitation.
type AcceptInvitationResponse struct {
	Message string `json:"message" example:"invitation accepted"`
	TeamID  string `json:"teamId" example:"507f1f77bcf86cd799439012"`
	Token   string `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIs..."`
}
