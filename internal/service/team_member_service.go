package service

import (
	"context"

	"teamhub/internal/authz"
	"teamhub/internal/cache"
	apperrors "teamhub/internal/errors"
	"teamhub/internal/metrics"
	"teamhub/internal/models"
	"teamhub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Messages returned for member outcomes.
const (
	MsgOwnerCannotBeRemoved = "Team owner cannot be removed."
	MsgMemberRemoved        = "Team member removed successfully."
	MsgMemberUpdated        = "Team member updated successfully."
	MsgNoTeamAccess         = "You do not have access to this team."
	MsgTeamSwitched         = "Team switched successfully"
)

// TeamMemberService handles business logic for team member operations.
type TeamMemberService struct {
	tx         repository.Transactor
	roles      repository.RoleRepository
	members    repository.TeamMemberRepository
	users      repository.UserRepository
	authorizer authz.Authorizer
	cache      cache.Cache
	recorder   Recorder
	logger     *zap.Logger
}

// NewTeamMemberService creates a new TeamMemberService.
func NewTeamMemberService(
	tx repository.Transactor,
	repos TeamRepositories,
	authorizer authz.Authorizer,
	userCache cache.Cache,
	recorder Recorder,
	logger *zap.Logger,
) *TeamMemberService {
	return &TeamMemberService{
		tx:         tx,
		roles:      repos.Roles,
		members:    repos.Members,
		users:      repos.Users,
		authorizer: authorizer,
		cache:      userCache,
		recorder:   recorderOrNoop(recorder),
		logger:     logger,
	}
}

// RemoveMember detaches targetUserID from team. The owner cannot be removed.
// A removed member whose current team was team is left without one.
func (s *TeamMemberService) RemoveMember(ctx context.Context, team *models.Team, targetUserID primitive.ObjectID, actor *models.User) (models.ActionResult, error) {
	if err := s.requireEditTeam(ctx, team, actor); err != nil {
		return models.ActionResult{}, err
	}

	if targetUserID == team.OwnerID {
		s.logger.Info("refused to remove team owner", zap.String("team_id", team.ID.Hex()))
		return models.Refused(MsgOwnerCannotBeRemoved), nil
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.members.Delete(ctx, team.ID, targetUserID); err != nil {
			return err
		}
		return s.users.ClearCurrentTeam(ctx, targetUserID, team.ID)
	})
	if err != nil {
		return models.ActionResult{}, err
	}

	forgetUsers(ctx, s.cache, targetUserID)
	s.recorder.RecordTeamEvent(metrics.EventMemberRemoved)
	s.logger.Info("member removed",
		zap.String("team_id", team.ID.Hex()),
		zap.String("user_id", targetUserID.Hex()),
		zap.String("actor_id", actor.ID.Hex()),
	)

	return models.Succeeded(MsgMemberRemoved), nil
}

// UpdateMember assigns one of team's roles to the member targetUserID.
func (s *TeamMemberService) UpdateMember(ctx context.Context, team *models.Team, targetUserID primitive.ObjectID, actor *models.User, req *models.UpdateMemberRequest) (models.ActionResult, error) {
	if err := s.requireEditTeam(ctx, team, actor); err != nil {
		return models.ActionResult{}, err
	}

	roleID, err := primitive.ObjectIDFromHex(req.RoleID)
	if err != nil {
		return models.ActionResult{}, apperrors.NewInvalidArgument("role_id", MsgInvalidRole)
	}

	role, err := s.roles.FindByTeamAndID(ctx, team.ID, roleID)
	if err != nil {
		return models.ActionResult{}, err
	}

	if err := s.members.UpdateRole(ctx, team.ID, targetUserID, role.ID); err != nil {
		return models.ActionResult{}, err
	}

	s.recorder.RecordTeamEvent(metrics.EventMemberUpdated)
	return models.Succeeded(MsgMemberUpdated), nil
}

// SwitchCurrentTeam makes team the user's current team when they belong to it.
func (s *TeamMemberService) SwitchCurrentTeam(ctx context.Context, team *models.Team, user *models.User) (models.ActionResult, error) {
	switched, err := s.authorizer.SetCurrentTeam(ctx, user, team)
	if err != nil {
		return models.ActionResult{}, err
	}
	if !switched {
		return models.Refused(MsgNoTeamAccess), nil
	}

	teamID := team.ID
	user.CurrentTeamID = &teamID
	forgetUsers(ctx, s.cache, user.ID)
	s.recorder.RecordTeamEvent(metrics.EventTeamSwitched)

	return models.Succeeded(MsgTeamSwitched), nil
}

func (s *TeamMemberService) requireEditTeam(ctx context.Context, team *models.Team, actor *models.User) error {
	allowed, err := s.authorizer.HasTeamPermission(ctx, actor, team, []string{models.PermissionEditTeam}, false, authz.ScopeRole)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}
	return nil
}
