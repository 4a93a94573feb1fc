package service

import (
	"context"
	"errors"
	"strings"

	"teamhub/internal/authz"
	"teamhub/internal/cache"
	apperrors "teamhub/internal/errors"
	"teamhub/internal/mail"
	"teamhub/internal/metrics"
	"teamhub/internal/models"
	"teamhub/internal/queue"
	"teamhub/internal/repository"
	"teamhub/pkg/auth"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Messages returned for invitation outcomes.
const (
	MsgInvitationSent      = "Invitation sent successfully."
	MsgInvitationCancelled = "Invitation cancelled successfully."
	MsgInvalidRole         = "Invalid role selected."
)

// TeamInvitationService handles business logic for invitation operations.
type TeamInvitationService struct {
	tx          repository.Transactor
	roles       repository.RoleRepository
	members     repository.TeamMemberRepository
	invitations repository.TeamInvitationRepository
	users       repository.UserRepository
	authorizer  authz.Authorizer
	dispatcher  queue.Dispatcher
	tokens      auth.TokenManager
	cache       cache.Cache
	recorder    Recorder
	appURL      string
	logger      *zap.Logger
}

// NewTeamInvitationService creates a new TeamInvitationService.
func NewTeamInvitationService(
	tx repository.Transactor,
	repos TeamRepositories,
	authorizer authz.Authorizer,
	dispatcher queue.Dispatcher,
	tokens auth.TokenManager,
	userCache cache.Cache,
	recorder Recorder,
	appURL string,
	logger *zap.Logger,
) *TeamInvitationService {
	return &TeamInvitationService{
		tx:          tx,
		roles:       repos.Roles,
		members:     repos.Members,
		invitations: repos.Invitations,
		users:       repos.Users,
		authorizer:  authorizer,
		dispatcher:  dispatcher,
		tokens:      tokens,
		cache:       userCache,
		recorder:    recorderOrNoop(recorder),
		appURL:      appURL,
		logger:      logger,
	}
}

// StoreTeamInvitation invites an email address to team with the named role
// and emails the invitation link once the invitation is stored.
func (s *TeamInvitationService) StoreTeamInvitation(ctx context.Context, team *models.Team, req *models.CreateInvitationRequest) (*models.TeamInvitation, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.invitations.FindByTeamAndEmail(ctx, team.ID, email); err == nil {
		return nil, apperrors.ErrPendingInvitation
	} else if !errors.Is(err, apperrors.ErrInvitationNotFound) {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		belongs, err := s.authorizer.BelongsToTeam(ctx, existing, team)
		if err != nil {
			return nil, err
		}
		if belongs {
			return nil, apperrors.ErrAlreadyMember
		}
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return nil, err
	}

	invitation := &models.TeamInvitation{
		TeamID: team.ID,
		Email:  email,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		role, err := s.roles.FindByTeamAndName(ctx, team.ID, strings.TrimSpace(req.Role))
		if err != nil {
			if errors.Is(err, apperrors.ErrRoleNotFound) {
				return apperrors.NewInvalidArgument("role", MsgInvalidRole)
			}
			return err
		}

		invitation.RoleID = role.ID
		invitation.UUID = uuid.NewString()
		return s.invitations.Create(ctx, invitation)
	})
	if err != nil {
		return nil, err
	}

	// Delivery is best effort; the invitation stands even if the email does not go out.
	if err := s.dispatcher.Dispatch(ctx, mail.InvitationMessage(s.appURL, team, invitation)); err != nil {
		s.logger.Warn("failed to dispatch invitation email",
			zap.String("invitation_id", invitation.ID.Hex()),
			zap.Error(err),
		)
	}

	s.recorder.RecordTeamEvent(metrics.EventInvitationSent)
	s.logger.Info("invitation created",
		zap.String("team_id", team.ID.Hex()),
		zap.String("invitation_id", invitation.ID.Hex()),
	)

	return invitation, nil
}

// DeleteTeamInvitation cancels a pending invitation. actor needs edit-team.
func (s *TeamInvitationService) DeleteTeamInvitation(ctx context.Context, team *models.Team, invitationID primitive.ObjectID, actor *models.User) error {
	allowed, err := s.authorizer.HasTeamPermission(ctx, actor, team, []string{models.PermissionEditTeam}, false, authz.ScopeRole)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	invitation, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.TeamID != team.ID {
		return apperrors.ErrInvitationNotFound
	}

	if err := s.invitations.Delete(ctx, invitation.ID); err != nil {
		return err
	}

	s.recorder.RecordTeamEvent(metrics.EventInvitationDeleted)
	return nil
}

// ShowInvitation returns what a visitor needs to act on an invitation link.
// viewer is nil for guests.
func (s *TeamInvitationService) ShowInvitation(ctx context.Context, team *models.Team, uuid string, viewer *models.User) (*models.InvitationDetailsResponse, error) {
	invitation, err := s.teamInvitation(ctx, team, uuid)
	if err != nil {
		return nil, err
	}

	if viewer != nil && !strings.EqualFold(viewer.Email, invitation.Email) {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	resp := &models.InvitationDetailsResponse{
		Invitation: *invitation,
		Team:       models.TeamSummary{ID: team.ID, Name: team.Name},
	}

	role, err := s.roles.FindByTeamAndID(ctx, team.ID, invitation.RoleID)
	switch {
	case err == nil:
		resp.RoleName = role.Name
	case !errors.Is(err, apperrors.ErrRoleNotFound):
		return nil, err
	}

	_, err = s.users.FindByEmail(ctx, invitation.Email)
	switch {
	case err == nil:
		resp.UserExists = true
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return nil, err
	}

	return resp, nil
}

// AcceptInvitation joins an existing user to team through the invitation.
func (s *TeamInvitationService) AcceptInvitation(ctx context.Context, team *models.Team, uuid string, user *models.User) (*models.AcceptInvitationResponse, error) {
	invitation, err := s.teamInvitation(ctx, team, uuid)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(user.Email, invitation.Email) {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	if _, err := s.AddMemberToTeam(ctx, team, invitation, user); err != nil {
		return nil, err
	}

	return &models.AcceptInvitationResponse{
		Message: "You have been added to " + team.Name,
		TeamID:  team.ID.Hex(),
	}, nil
}

// RegisterAndAccept creates an account for the invited email, joins it to team
// and returns an access token for it.
func (s *TeamInvitationService) RegisterAndAccept(ctx context.Context, team *models.Team, uuid string, req *models.RegisterRequest) (*models.AcceptInvitationResponse, error) {
	invitation, err := s.teamInvitation(ctx, team, uuid)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(normalizeEmail(req.Email), invitation.Email) {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	user, err := s.RegisterUserToTeam(ctx, req, team, invitation)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.AcceptInvitationResponse{
		Message: "You have been added to " + team.Name,
		TeamID:  team.ID.Hex(),
		Token:   token,
	}, nil
}

// AddMemberToTeam attaches user to team with the invitation's role, makes team
// the user's current team and consumes the invitation in one transaction.
func (s *TeamInvitationService) AddMemberToTeam(ctx context.Context, team *models.Team, invitation *models.TeamInvitation, user *models.User) (bool, error) {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.addMember(ctx, team, invitation, user)
	})
	if err != nil {
		return false, err
	}

	s.joined(ctx, team, user)
	return true, nil
}

// RegisterUserToTeam creates the user and adds them to team in one transaction.
func (s *TeamInvitationService) RegisterUserToTeam(ctx context.Context, req *models.RegisterRequest, team *models.Team, invitation *models.TeamInvitation) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: hash,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		return s.addMember(ctx, team, invitation, user)
	})
	if err != nil {
		return nil, err
	}

	s.recorder.RecordAuthEvent(metrics.EventRegistered, metrics.ProviderInvitation)
	s.joined(ctx, team, user)
	return user, nil
}

func (s *TeamInvitationService) addMember(ctx context.Context, team *models.Team, invitation *models.TeamInvitation, user *models.User) error {
	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: user.ID,
		RoleID: invitation.RoleID,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return err
	}

	if err := s.users.SetCurrentTeam(ctx, user.ID, team.ID); err != nil {
		return err
	}

	return s.invitations.Delete(ctx, invitation.ID)
}

func (s *TeamInvitationService) joined(ctx context.Context, team *models.Team, user *models.User) {
	teamID := team.ID
	user.CurrentTeamID = &teamID
	forgetUsers(ctx, s.cache, user.ID)

	s.recorder.RecordTeamEvent(metrics.EventMemberAdded)
	s.logger.Info("member added",
		zap.String("team_id", team.ID.Hex()),
		zap.String("user_id", user.ID.Hex()),
	)
}

// teamInvitation loads an invitation by token and hides invitations of other teams.
func (s *TeamInvitationService) teamInvitation(ctx context.Context, team *models.Team, uuid string) (*models.TeamInvitation, error) {
	invitation, err := s.invitations.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if invitation.TeamID != team.ID {
		return nil, apperrors.ErrInvitationNotFound
	}
	return invitation, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
