package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamhub/internal/authz"
	"teamhub/internal/cache"
	"teamhub/internal/config"
	"teamhub/internal/database"
	"teamhub/internal/handler"
	"teamhub/internal/logger"
	"teamhub/internal/mail"
	"teamhub/internal/metrics"
	"teamhub/internal/middleware"
	"teamhub/internal/oauth"
	"teamhub/internal/queue"
	"teamhub/internal/repository"
	"teamhub/internal/router"
	"teamhub/internal/service"
	"teamhub/internal/storage"
	"teamhub/internal/validator"
	"teamhub/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Team Hub API
// @version         1.0
// @description     Multi-tenant teams with roles, permissions and invitations, built with Gin, MongoDB and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel})
	defer func() { _ = log.Sync() }()
	log.Info("configuration loaded", zap.String("env", cfg.AppEnv), zap.String("queue", cfg.QueueDriver))

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		return err
	}
	defer mongoDB.Close()

	// Redis Cache
	redisCache, err := cache.NewRedis(cfg.RedisURI)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisCache.Close()

	// S3 Storage, avatars are disabled without it
	var objects storage.Storage
	if cfg.StorageEnabled() {
		s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			return err
		}
		objects = s3Client
	} else {
		log.Warn("S3_ENDPOINT not set, avatar uploads are disabled")
	}

	m := metrics.New()

	// Mail delivery
	sender := newSender(cfg, log)
	dispatcher, stopQueue, err := newDispatcher(ctx, cfg, sender, m, log)
	if err != nil {
		return err
	}
	defer stopQueue()

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

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

	var google oauth.Provider
	if cfg.GoogleEnabled() {
		google = oauth.NewGoogleProvider(oauth.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
		})
	}

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         repos.Users,
		Cache:            redisCache,
		TokenStore:       cache.NewTokenStore(redisCache),
		JWTManager:       jwtManager,
		Dispatcher:       dispatcher,
		Google:           google,
		Recorder:         m,
		AppURL:           cfg.AppURL,
		PasswordResetTTL: cfg.PasswordResetExpiry,
		Logger:           log,
	})
	userService := service.NewUserService(tx, repos.Users, objects, redisCache, log)
	teamService := service.NewTeamService(tx, repos, authorizer, redisCache, m, log)
	teamMemberService := service.NewTeamMemberService(tx, repos, authorizer, redisCache, m, log)
	teamInvitationService := service.NewTeamInvitationService(tx, repos, authorizer, dispatcher, jwtManager, redisCache, m, cfg.AppURL, log)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rateLimiter.Run(ctx)

	// Router
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
		RateLimiter:       rateLimiter,
		Metrics:           m,
		Logger:            log,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http server shutdown error", zap.Error(err))
	}

	// Cancel context to stop the rate limiter sweep and mail workers
	cancel()

	log.Info("server shutdown complete")
	return nil
}

func newSender(cfg *config.Config, log *zap.Logger) mail.Sender {
	if !cfg.SMTPEnabled() {
		log.Warn("SMTP_HOST not set, mail is written to the log")
		return mail.NewLogSender(log)
	}
	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		User:        cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
	}, log)
}

// newDispatcher picks the mail queue. The memory driver delivers in-process;
// the asynq driver hands off to cmd/worker through Redis.
func newDispatcher(ctx context.Context, cfg *config.Config, sender mail.Sender, m *metrics.Metrics, log *zap.Logger) (queue.Dispatcher, func(), error) {
	if cfg.QueueDriver == config.QueueDriverAsynq {
		d, err := queue.NewAsynqDispatcher(cfg.RedisURI)
		if err != nil {
			return nil, nil, err
		}
		return d, closer(d, log), nil
	}

	q := queue.NewMemoryQueue(cfg.QueueCapacity)
	processor := queue.NewProcessor(q, sender, log, cfg.QueueWorkers, queue.WithDeliveryObserver(m.ObserveMailDelivery))
	processor.Start(ctx)

	return q, func() {
		log.Info("stopping mail processor")
		processor.Stop()
	}, nil
}

func closer(c io.Closer, log *zap.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Warn("close failed", zap.Error(err))
		}
	}
}
