//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"sync"
	"time"

	"teamhub/internal/authz"
	"teamhub/internal/cache"
	"teamhub/internal/handler"
	"teamhub/internal/mail"
	"teamhub/internal/metrics"
	"teamhub/internal/repository"
	"teamhub/internal/router"
	"teamhub/internal/service"
	"teamhub/internal/storage"
	"teamhub/pkg/auth"
	"teamhub/test/api/testdb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestAppURL prefixes links in outgoing mail.
	TestAppURL = "http://teamhub.test"
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// Outbox records dispatched mail instead of delivering it.
type Outbox struct {
	mu       sync.Mutex
	messages []mail.Message
}

// Dispatch records msg.
func (o *Outbox) Dispatch(_ context.Context, msg mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, msg)
	return nil
}

// Messages returns the recorded messages of kind sent to to.
func (o *Outbox) Messages(kind, to string) []mail.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []mail.Message
	for _, m := range o.messages {
		if m.Kind == kind && m.To == to {
			out = append(out, m)
		}
	}
	return out
}

// Reset forgets every recorded message.
func (o *Outbox) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = nil
}

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	Repos service.TeamRepositories

	Authorizer authz.Authorizer
	JWTManager *auth.JWTManager
	Outbox     *Outbox
	Metrics    *metrics.Metrics
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
		Endpoint:  minioContainer.Endpoint,
		AccessKey: testdb.MinIOAccessKey,
		SecretKey: testdb.MinIOSecretKey,
		Bucket:    minioContainer.Bucket,
	})
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}

	log := zap.NewNop()
	m := metrics.New()
	outbox := &Outbox{}
	redisCache := redisContainer.Cache
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	// Repository layer
	tx := repository.NewTransactor(mongoDB.Client)
	repos := service.TeamRepositories{
		Teams:       repository.NewTeamRepository(mongoDB.Database),
		Roles:       repository.NewRoleRepository(mongoDB.Database),
		Permissions: repository.NewPermissionRepository(mongoDB.Database),
		Members:     repository.NewTeamMemberRepository(mongoDB.Database),
		Invitations: repository.NewTeamInvitationRepository(mongoDB.Database),
		Users:       repository.NewUserRepository(mongoDB.Database),
	}

	// Authorization
	authorizer := authz.NewLocalAuthorizer(repos.Members, repos.Roles, repos.Permissions, repos.Users,
		authz.WithObserver(m.ObserveAuthzCheck))

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   repos.Users,
		Cache:      redisCache,
		TokenStore: cache.NewTokenStore(redisCache),
		JWTManager: jwtManager,
		Dispatcher: outbox,
		Recorder:   m,
		AppURL:     TestAppURL,
		Logger:     log,
	})
	userService := service.NewUserService(tx, repos.Users, s3Client, redisCache, log)
	teamService := service.NewTeamService(tx, repos, authorizer, redisCache, m, log)
	teamMemberService := service.NewTeamMemberService(tx, repos, authorizer, redisCache, m, log)
	teamInvitationService := service.NewTeamInvitationService(tx, repos, authorizer, outbox, jwtManager, redisCache, m, TestAppURL, log)

	// Router, without rate limiting so tests can hammer the auth endpoints
	r := router.Setup(&router.Config{
		AuthHandler:       handler.NewAuthHandler(authService),
		UserHandler:       handler.NewUserHandler(userService, teamService),
		TeamHandler:       handler.NewTeamHandler(teamService),
		TeamMemberHandler: handler.NewTeamMemberHandler(teamMemberService),
		InvitationHandler: handler.NewTeamInvitationHandler(teamInvitationService),
		Tokens:            jwtManager,
		Users:             userService,
		Teams:             teamService,
		Authorizer:        authorizer,
		Metrics:           m,
		Logger:            log,
	})

	return &TestServer{
		Router:     r,
		MongoDB:    mongoDB,
		Redis:      redisContainer,
		MinIO:      minioContainer,
		Repos:      repos,
		Authorizer: authorizer,
		JWTManager: jwtManager,
		Outbox:     outbox,
		Metrics:    m,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
