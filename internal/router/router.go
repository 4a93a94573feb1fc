// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "teamhub/swagger" // Import generated swagger docs

	"teamhub/internal/authz"
	"teamhub/internal/handler"
	"teamhub/internal/metrics"
	"teamhub/internal/middleware"
	"teamhub/internal/models"
	"teamhub/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	TeamHandler       *handler.TeamHandler
	TeamMemberHandler *handler.TeamMemberHandler
	InvitationHandler *handler.TeamInvitationHandler

	Tokens     auth.TokenManager
	Users      middleware.UserLoader
	Teams      middleware.TeamLoader
	Authorizer authz.Authorizer

	// RateLimiter guards the unauthenticated credential endpoints. Nil disables it.
	RateLimiter    *middleware.RateLimiter
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	throttle := func(c *gin.Context) { c.Next() }
	if cfg.RateLimiter != nil {
		throttle = cfg.RateLimiter.Middleware()
	}

	requireAuth := middleware.Auth(cfg.Tokens, cfg.Users)
	editTeam := middleware.RequireTeamPermission(cfg.Authorizer, models.PermissionEditTeam)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", throttle, cfg.AuthHandler.Register)
			authRoutes.POST("/login", throttle, cfg.AuthHandler.Login)
			authRoutes.POST("/forgot-password", throttle, cfg.AuthHandler.ForgotPassword)
			authRoutes.POST("/reset-password", throttle, cfg.AuthHandler.ResetPassword)
			authRoutes.GET("/google/redirect", cfg.AuthHandler.GoogleRedirect)
			authRoutes.GET("/google/callback", cfg.AuthHandler.GoogleCallback)
		}

		// Current user (protected)
		me := v1.Group("/me")
		me.Use(requireAuth)
		{
			me.GET("", cfg.UserHandler.GetSession)
			me.PUT("/profile", cfg.UserHandler.UpdateProfile)
		}

		// Invitation links (public, a signed-in visitor is recognised)
		accept := v1.Group("/teams/:teamId/invitations/:invitation/accept")
		accept.Use(middleware.LoadTeam(cfg.Teams))
		{
			accept.GET("", middleware.OptionalAuth(cfg.Tokens, cfg.Users), cfg.InvitationHandler.ShowInvitation)
			accept.POST("", throttle, cfg.InvitationHandler.RegisterAndAccept)
		}

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(requireAuth)
		{
			teams.POST("", cfg.TeamHandler.CreateTeam)
			teams.GET("", cfg.TeamHandler.ListTeams)

			teamWithID := teams.Group("/:teamId")
			teamWithID.Use(middleware.LoadTeam(cfg.Teams))
			{
				teamWithID.GET("/settings", middleware.RequireTeamMembership(cfg.Authorizer), cfg.TeamHandler.Settings)
				teamWithID.PUT("", editTeam, cfg.TeamHandler.UpdateTeam)
				teamWithID.PUT("/switch", cfg.TeamMemberHandler.SwitchTeam)

				// Team members, the service checks edit-team so a refusal reads the same everywhere
				members := teamWithID.Group("/members")
				{
					members.DELETE("/:userId", cfg.TeamMemberHandler.RemoveMember)
					members.PUT("/:userId", cfg.TeamMemberHandler.UpdateMember)
				}

				// Team invitations
				invitations := teamWithID.Group("/invitations")
				{
					invitations.POST("", editTeam, cfg.InvitationHandler.CreateInvitation)
					invitations.DELETE("/:invitation", cfg.InvitationHandler.DeleteInvitation)
					invitations.PUT("/:invitation/accept/auth", cfg.InvitationHandler.AcceptInvitation)
				}
			}
		}
	}

	return r
}
