package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"teamhub/internal/authz"
	"teamhub/internal/cache"
	apperrors "teamhub/internal/errors"
	"teamhub/internal/metrics"
	"teamhub/internal/models"
	"teamhub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TeamService handles business logic for team operations.
type TeamService struct {
	tx          repository.Transactor
	teams       repository.TeamRepository
	roles       repository.RoleRepository
	permissions repository.PermissionRepository
	members     repository.TeamMemberRepository
	invitations repository.TeamInvitationRepository
	users       repository.UserRepository
	authorizer  authz.Authorizer
	cache       cache.Cache
	recorder    Recorder
	logger      *zap.Logger
}

// TeamRepositories groups the repositories team services depend on.
type TeamRepositories struct {
	Teams       repository.TeamRepository
	Roles       repository.RoleRepository
	Permissions repository.PermissionRepository
	Members     repository.TeamMemberRepository
	Invitations repository.TeamInvitationRepository
	Users       repository.UserRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	tx repository.Transactor,
	repos TeamRepositories,
	authorizer authz.Authorizer,
	userCache cache.Cache,
	recorder Recorder,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{
		tx:          tx,
		teams:       repos.Teams,
		roles:       repos.Roles,
		permissions: repos.Permissions,
		members:     repos.Members,
		invitations: repos.Invitations,
		users:       repos.Users,
		authorizer:  authorizer,
		cache:       userCache,
		recorder:    recorderOrNoop(recorder),
		logger:      logger,
	}
}

// GetTeam loads a team by id.
func (s *TeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	return s.teams.FindByID(ctx, teamID)
}

// CreateTeam creates a team owned by user together with its default roles and
// makes it the user's current team. The owner gets no membership row.
func (s *TeamService) CreateTeam(ctx context.Context, user *models.User, req *models.CreateTeamRequest) (*models.Team, error) {
	team := &models.Team{
		Name:    strings.TrimSpace(req.Name),
		OwnerID: user.ID,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.teams.Create(ctx, team); err != nil {
			return err
		}

		for _, def := range models.DefaultTeamRoles {
			role := &models.Role{TeamID: team.ID, Name: def.Name}
			if err := s.roles.Create(ctx, role); err != nil {
				return err
			}

			perms, err := s.permissions.EnsureExists(ctx, def.Permissions)
			if err != nil {
				return err
			}
			ids := make([]primitive.ObjectID, 0, len(perms))
			for _, p := range perms {
				ids = append(ids, p.ID)
			}
			if err := s.roles.AttachPermissions(ctx, role.ID, ids); err != nil {
				return err
			}
		}

		return s.users.SetCurrentTeam(ctx, user.ID, team.ID)
	})
	if err != nil {
		return nil, err
	}

	teamID := team.ID
	user.CurrentTeamID = &teamID
	forgetUsers(ctx, s.cache, user.ID)
	s.recorder.RecordTeamEvent(metrics.EventTeamCreated)
	s.logger.Info("team created",
		zap.String("team_id", team.ID.Hex()),
		zap.String("owner_id", user.ID.Hex()),
	)

	return team, nil
}

// UpdateTeam renames a team.
func (s *TeamService) UpdateTeam(ctx context.Context, team *models.Team, req *models.UpdateTeamRequest) (*models.Team, error) {
	updated := *team
	updated.Name = strings.TrimSpace(req.Name)
	updated.UpdatedAt = time.Now()

	if err := s.teams.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recorder.RecordTeamEvent(metrics.EventTeamUpdated)
	return &updated, nil
}

// Settings assembles the team settings view for user.
func (s *TeamService) Settings(ctx context.Context, team *models.Team, user *models.User) (*models.TeamSettingsResponse, error) {
	resp := &models.TeamSettingsResponse{
		Team:        *team,
		Members:     []models.MemberView{},
		Invitations: []models.InvitationView{},
		Roles:       []models.Role{},
	}

	var (
		memberships []models.TeamMember
		roleByID    = map[primitive.ObjectID]models.Role{}
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		owner, err := s.users.FindByID(gctx, team.OwnerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return nil
			}
			return err
		}
		resp.Owner = owner.Summary()
		return nil
	})

	g.Go(func() error {
		var err error
		memberships, err = s.members.FindByTeamID(gctx, team.ID)
		return err
	})

	g.Go(func() error {
		roles, err := s.roles.FindByTeamID(gctx, team.ID)
		if err != nil {
			return err
		}
		resp.Roles = roles
		for _, r := range roles {
			roleByID[r.ID] = r
		}
		return nil
	})

	g.Go(func() error {
		invitations, err := s.invitations.FindByTeamID(gctx, team.ID)
		if err != nil {
			return err
		}
		for _, inv := range invitations {
			resp.Invitations = append(resp.Invitations, models.InvitationView{
				ID:        inv.ID,
				Email:     inv.Email,
				RoleID:    inv.RoleID,
				CreatedAt: inv.CreatedAt,
			})
		}
		return nil
	})

	g.Go(func() error {
		perms, err := s.authorizer.TeamPermissions(gctx, user, team, authz.ScopeRole)
		if err != nil {
			return err
		}
		resp.Permissions = perms
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(memberships) > 0 {
		ids := make([]primitive.ObjectID, 0, len(memberships))
		for _, m := range memberships {
			ids = append(ids, m.UserID)
		}
		users, err := s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		userByID := make(map[primitive.ObjectID]models.User, len(users))
		for _, u := range users {
			userByID[u.ID] = u
		}

		for _, m := range memberships {
			u, ok := userByID[m.UserID]
			if !ok {
				continue
			}
			resp.Members = append(resp.Members, models.MemberView{
				ID:       u.ID,
				Name:     u.Name,
				Email:    u.Email,
				RoleID:   m.RoleID,
				RoleName: roleByID[m.RoleID].Name,
				JoinedAt: m.CreatedAt,
			})
			if u.ID == user.ID {
				resp.CurrentUserRole = roleByID[m.RoleID].Name
			}
		}
	}

	if s.authorizer.OwnsTeam(user, team) {
		resp.CurrentUserRole = models.RoleOwner
	}

	return resp, nil
}

// AllTeams returns every team user owns or belongs to, sorted by name.
func (s *TeamService) AllTeams(ctx context.Context, user *models.User) ([]models.Team, error) {
	owned, err := s.teams.FindByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.members.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[primitive.ObjectID]struct{}, len(owned)+len(memberships))
	teams := make([]models.Team, 0, len(owned)+len(memberships))
	for _, t := range owned {
		seen[t.ID] = struct{}{}
		teams = append(teams, t)
	}

	var memberTeamIDs []primitive.ObjectID
	for _, m := range memberships {
		if _, dup := seen[m.TeamID]; dup {
			continue
		}
		seen[m.TeamID] = struct{}{}
		memberTeamIDs = append(memberTeamIDs, m.TeamID)
	}

	if len(memberTeamIDs) > 0 {
		memberTeams, err := s.teams.FindByIDs(ctx, memberTeamIDs)
		if err != nil {
			return nil, err
		}
		teams = append(teams, memberTeams...)
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return strings.ToLower(teams[i].Name) < strings.ToLower(teams[j].Name)
	})

	return teams, nil
}

// Session returns the user, their teams, the current team and the user's
// permissions on it.
func (s *TeamService) Session(ctx context.Context, user *models.User) (*models.SessionResponse, error) {
	teams, err := s.AllTeams(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := &models.SessionResponse{
		User:        *user,
		AllTeams:    teams,
		Permissions: []string{},
	}

	if user.CurrentTeamID == nil {
		return resp, nil
	}

	for i := range teams {
		if teams[i].ID != *user.CurrentTeamID {
			continue
		}
		current := teams[i]
		resp.CurrentTeam = &current

		perms, err := s.authorizer.TeamPermissions(ctx, user, &current, authz.ScopeRole)
		if err != nil {
			return nil, err
		}
		resp.Permissions = perms
		break
	}

	return resp, nil
}
