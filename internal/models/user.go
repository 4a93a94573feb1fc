// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the system.
type User struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name            string              `json:"name" bson:"name" example:"John Doe"`
	Email           string              `json:"email" bson:"email" example:"user@example.com"`
	Password        string              `json:"-" bson:"password"` // "-" = never include in JSON response
	GoogleID        string              `json:"-" bson:"googleId,omitempty"`
	Avatar          string              `json:"avatar,omitempty" bson:"avatar,omitempty" example:"avatars/avatar_user_507f1f77bcf86cd799439011_3f2a9c1d7e8b4a60.png"`
	AvatarURL       string              `json:"avatarUrl,omitempty" bson:"-"`
	EmailVerifiedAt *time.Time          `json:"emailVerifiedAt" bson:"emailVerifiedAt"`
	CurrentTeamID   *primitive.ObjectID `json:"currentTeamId" bson:"currentTeamId"`
	CreatedAt       time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt       time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// UserKey returns the identity compared against team owners and memberships.
func (u *User) UserKey() primitive.ObjectID {
	return u.ID
}

// Summary returns the embeddable representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserSummary is a minimal user representation for embedding.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Name  string             `json:"name" example:"John Doe"`
	Email string             `json:"email" example:"user@example.com"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name                 string `json:"name" form:"name" binding:"required,min=2,max=255" example:"John Doe"`
	Email                string `json:"email" form:"email" binding:"required,email,max=255" example:"user@example.com"`
	Password             string `json:"password" form:"password" binding:"required,min=8" example:"secret123"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation" binding:"required,eqfield=Password" example:"secret123"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login or registration.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}

// UpdateProfileRequest carries the text fields of a profile update.
// The avatar arrives as a multipart file and is passed separately.
type UpdateProfileRequest struct {
	Name  string `form:"name" json:"name" binding:"required,max=255" example:"Jane Doe"`
	Email string `form:"email" json:"email" binding:"required,email,max=255" example:"jane@example.com"`
}

// ForgotPasswordRequest starts the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	Token                string `json:"token" binding:"required" example:"6f1c2b..."`
	Email                string `json:"email" binding:"required,email" example:"user@example.com"`
	Password             string `json:"password" binding:"required,min=8" example:"newsecret123"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password" example:"newsecret123"`
}

// SessionResponse is the authenticated user's context shared with every page.
type SessionResponse struct {
	User        User     `json:"user"`
	AllTeams    []Team   `json:"allTeams"`
	CurrentTeam *Team    `json:"currentTeam"`
	Permissions []string `json:"permissions" example:"view-team,edit-team"`
}

// MessageResponse wraps a human readable outcome.
type MessageResponse struct {
	Message string `json:"message" example:"Team switched successfully"`
}
