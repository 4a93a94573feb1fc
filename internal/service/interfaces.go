// Package service contains business logic for the application.
package service

import (
	"context"

	"teamhub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks teamhub/internal/service AuthServicer,UserServicer,TeamServicer,TeamMemberServicer,TeamInvitationServicer

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	GoogleRedirectURL(ctx context.Context) (string, error)
	GoogleCallback(ctx context.Context, state, code string) (*models.LoginResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User, req *models.UpdateProfileRequest, avatar *AvatarUpload) (*models.User, error)
	WithAvatarURL(ctx context.Context, user *models.User) *models.User
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	CreateTeam(ctx context.Context, user *models.User, req *models.CreateTeamRequest) (*models.Team, error)
	UpdateTeam(ctx context.Context, team *models.Team, req *models.UpdateTeamRequest) (*models.Team, error)
	Settings(ctx context.Context, team *models.Team, user *models.User) (*models.TeamSettingsResponse, error)
	AllTeams(ctx context.Context, user *models.User) ([]models.Team, error)
	Session(ctx context.Context, user *models.User) (*models.SessionResponse, error)
}

// TeamMemberServicer defines the interface for team member operations.
type TeamMemberServicer interface {
	RemoveMember(ctx context.Context, team *models.Team, targetUserID primitive.ObjectID, actor *models.User) (models.ActionResult, error)
	UpdateMember(ctx context.Context, team *models.Team, targetUserID primitive.ObjectID, actor *models.User, req *models.UpdateMemberRequest) (models.ActionResult, error)
	SwitchCurrentTeam(ctx context.Context, team *models.Team, user *models.User) (models.ActionResult, error)
}

// TeamInvitationServicer defines the interface for invitation operations.
type TeamInvitationServicer interface {
	StoreTeamInvitation(ctx context.Context, team *models.Team, req *models.CreateInvitationRequest) (*models.TeamInvitation, error)
	DeleteTeamInvitation(ctx context.Context, team *models.Team, invitationID primitive.ObjectID, actor *models.User) error
	ShowInvitation(ctx context.Context, team *models.Team, uuid string, viewer *models.User) (*models.InvitationDetailsResponse, error)
	AcceptInvitation(ctx context.Context, team *models.Team, uuid string, user *models.User) (*models.AcceptInvitationResponse, error)
	RegisterAndAccept(ctx context.Context, team *models.Team, uuid string, req *models.RegisterRequest) (*models.AcceptInvitationResponse, error)
	AddMemberToTeam(ctx context.Context, team *models.Team, invitation *models.TeamInvitation, user *models.User) (bool, error)
	RegisterUserToTeam(ctx context.Context, req *models.RegisterRequest, team *models.Team, invitation *models.TeamInvitation) (*models.User, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer           = (*AuthService)(nil)
	_ UserServicer           = (*UserService)(nil)
	_ TeamServicer           = (*TeamService)(nil)
	_ TeamMemberServicer     = (*TeamMemberService)(nil)
	_ TeamInvitationServicer = (*TeamInvitationService)(nil)
)
