package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"teamhub/internal/authz"
	"teamhub/internal/config"
	"teamhub/internal/database"
	apperrors "teamhub/internal/errors"
	"teamhub/internal/logger"
	"teamhub/internal/models"
	"teamhub/internal/repository"
	"teamhub/internal/service"
	"teamhub/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// seedPassword is the password of every demo account.
const seedPassword = "password123"

type seedUser struct {
	Name  string
	Email string
	Role  string // role in the demo team, empty for the owner
}

var seedUsers = []seedUser{
	{Name: "Olivia Owner", Email: "owner@example.com"},
	{Name: "Adam Admin", Email: "admin@example.com", Role: models.RoleAdmin},
	{Name: "Mia Member", Email: "member@example.com", Role: models.RoleMember},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel})
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		log.Fatal("connect", zap.Error(err))
	}
	defer mongoDB.Close()

	if err := seed(ctx, mongoDB, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed completed", zap.String("password", seedPassword))
}

func seed(ctx context.Context, mongoDB *database.MongoDB, log *zap.Logger) error {
	tx := repository.NewTransactor(mongoDB.Client)
	repos := service.TeamRepositories{
		Teams:       repository.NewTeamRepository(mongoDB.Database),
		Roles:       repository.NewRoleRepository(mongoDB.Database),
		Permissions: repository.NewPermissionRepository(mongoDB.Database),
		Members:     repository.NewTeamMemberRepository(mongoDB.Database),
		Invitations: repository.NewTeamInvitationRepository(mongoDB.Database),
		Users:       repository.NewUserRepository(mongoDB.Database),
	}

	perms, err := repos.Permissions.EnsureExists(ctx, models.GlobalPermissions)
	if err != nil {
		return fmt.Errorf("seed permissions: %w", err)
	}
	log.Info("permissions seeded", zap.Int("count", len(perms)))

	users := make([]*models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		user, err := ensureUser(ctx, repos.Users, su)
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	owner := users[0]
	if owner.CurrentTeamID != nil {
		log.Info("demo team already present, skipping")
		return nil
	}

	authorizer := authz.NewLocalAuthorizer(repos.Members, repos.Roles, repos.Permissions, repos.Users)
	teams := service.NewTeamService(tx, repos, authorizer, nil, nil, log)
	invitations := service.NewTeamInvitationService(tx, repos, authorizer, nil, nil, nil, nil, "", log)

	team, err := teams.CreateTeam(ctx, owner, &models.CreateTeamRequest{Name: "Demo Team"})
	if err != nil {
		return fmt.Errorf("create demo team: %w", err)
	}

	for i, su := range seedUsers[1:] {
		role, err := repos.Roles.FindByTeamAndName(ctx, team.ID, su.Role)
		if err != nil {
			return fmt.Errorf("find role %s: %w", su.Role, err)
		}
		invitation := &models.TeamInvitation{TeamID: team.ID, Email: su.Email, RoleID: role.ID, UUID: uuid.NewString()}
		if err := repos.Invitations.Create(ctx, invitation); err != nil {
			return fmt.Errorf("invite %s: %w", su.Email, err)
		}
		if _, err := invitations.AddMemberToTeam(ctx, team, invitation, users[i+1]); err != nil {
			return fmt.Errorf("add %s: %w", su.Email, err)
		}
	}

	log.Info("demo team created", zap.String("team_id", team.ID.Hex()), zap.Int("members", len(seedUsers)-1))
	return nil
}

func ensureUser(ctx context.Context, repo repository.UserRepository, su seedUser) (*models.User, error) {
	existing, err := repo.FindByEmail(ctx, su.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &models.User{Name: su.Name, Email: su.Email, Password: hash, EmailVerifiedAt: &now}
	if err := repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create %s: %w", su.Email, err)
	}
	return user, nil
}
