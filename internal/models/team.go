package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team represents a team in the system.
type Team struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name      string             `json:"name" bson:"name" example:"Engineering Team"`
	OwnerID   primitive.ObjectID `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439012"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// TeamKey returns the team identity.
func (t *Team) TeamKey() primitive.ObjectID {
	return t.ID
}

// OwnerKey returns the identity of the owning user.
func (t *Team) OwnerKey() primitive.ObjectID {
	return t.OwnerID
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Engineering Team"`
}

// UpdateTeamRequest is the payload for renaming a team.
type UpdateTeamRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Platform Team"`
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items []Team `json:"items"`
}

// TeamSettingsResponse is everything the team settings page needs.
type TeamSettingsResponse struct {
	Team            Team             `json:"team"`
	Owner           UserSummary      `json:"owner"`
	Members         []MemberView     `json:"members"`
	Invitations     []InvitationView `json:"invitations"`
	Roles           []Role           `json:"roles"`
	CurrentUserRole string           `json:"currentUserRole" example:"admin"`
	Permissions     []string         `json:"permissions" example:"view-team,edit-team"`
}
