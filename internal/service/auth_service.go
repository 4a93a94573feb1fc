package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"teamhub/internal/cache"
	apperrors "teamhub/internal/errors"
	"teamhub/internal/mail"
	"teamhub/internal/metrics"
	"teamhub/internal/models"
	"teamhub/internal/oauth"
	"teamhub/internal/queue"
	"teamhub/internal/repository"
	"teamhub/pkg/auth"

	"go.uber.org/zap"
)

const (
	defaultPasswordResetTTL = 60 * time.Minute
	oauthStateTTL           = 10 * time.Minute
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo         repository.UserRepository
	cache            cache.Cache
	tokenStore       cache.TokenStore
	jwtManager       auth.TokenManager
	dispatcher       queue.Dispatcher
	google           oauth.Provider
	recorder         Recorder
	appURL           string
	passwordResetTTL time.Duration
	logger           *zap.Logger
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo   repository.UserRepository
	Cache      cache.Cache
	TokenStore cache.TokenStore
	JWTManager auth.TokenManager
	Dispatcher queue.Dispatcher
	// Google is nil when Google sign-in is not configured.
	Google           oauth.Provider
	Recorder         Recorder
	AppURL           string
	PasswordResetTTL time.Duration
	Logger           *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	ttl := cfg.PasswordResetTTL
	if ttl <= 0 {
		ttl = defaultPasswordResetTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AuthService{
		userRepo:         cfg.UserRepo,
		cache:            cfg.Cache,
		tokenStore:       cfg.TokenStore,
		jwtManager:       cfg.JWTManager,
		dispatcher:       cfg.Dispatcher,
		google:           cfg.Google,
		recorder:         recorderOrNoop(cfg.Recorder),
		appURL:           cfg.AppURL,
		passwordResetTTL: ttl,
		logger:           logger,
	}
}

// Register creates a new user account and returns an access token.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.recorder.RecordAuthEvent(metrics.EventRegistered, metrics.ProviderPassword)
	return s.loginResponse(user)
}

// Login authenticates a user and returns an access token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.recorder.RecordAuthEvent(metrics.EventLoginFailed, metrics.ProviderPassword)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		s.recorder.RecordAuthEvent(metrics.EventLoginFailed, metrics.ProviderPassword)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.recorder.RecordAuthEvent(metrics.EventLoginSuccess, metrics.ProviderPassword)
	return s.loginResponse(user)
}

// ForgotPassword emails a password reset link. Unknown addresses are
// answered the same way as known ones.
func (s *AuthService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	email := normalizeEmail(req.Email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := auth.RandomToken(32)
	if err != nil {
		return err
	}

	data := &cache.TokenData{
		Subject:   email,
		TokenHash: cache.HashToken(token),
		CreatedAt: time.Now(),
	}
	if err := s.tokenStore.Put(ctx, cache.PasswordResetKey(email), data, s.passwordResetTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := s.dispatcher.Dispatch(ctx, mail.PasswordResetMessage(s.appURL, email, token, s.passwordResetTTL)); err != nil {
		s.logger.Warn("failed to dispatch password reset email", zap.Error(err))
	}

	s.recorder.RecordAuthEvent(metrics.EventResetRequested, metrics.ProviderPassword)
	return nil
}

// ResetPassword consumes a reset token and sets a new password.
func (s *AuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	email := normalizeEmail(req.Email)

	ok, err := s.tokenStore.Consume(ctx, cache.PasswordResetKey(email), cache.HashToken(req.Token))
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrInvalidResetToken
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	forgetUsers(ctx, s.cache, user.ID)
	s.recorder.RecordAuthEvent(metrics.EventPasswordReset, metrics.ProviderPassword)
	return nil
}

// GoogleRedirectURL issues an OAuth state value and returns the consent URL.
func (s *AuthService) GoogleRedirectURL(ctx context.Context) (string, error) {
	if s.google == nil {
		return "", apperrors.ErrOAuthNotConfigured
	}

	state, err := auth.RandomToken(16)
	if err != nil {
		return "", err
	}

	data := &cache.TokenData{
		Subject:   s.google.Name(),
		TokenHash: cache.HashToken(state),
		CreatedAt: time.Now(),
	}
	if err := s.tokenStore.Put(ctx, cache.OAuthStateKey(state), data, oauthStateTTL); err != nil {
		return "", fmt.Errorf("store oauth state: %w", err)
	}

	return s.google.GetAuthURL(state), nil
}

// GoogleCallback completes Google sign-in. The user is matched by email and
// created when unknown.
func (s *AuthService) GoogleCallback(ctx context.Context, state, code string) (*models.LoginResponse, error) {
	if s.google == nil {
		return nil, apperrors.ErrOAuthNotConfigured
	}
	if state == "" || code == "" {
		return nil, apperrors.ErrInvalidOAuthState
	}

	ok, err := s.tokenStore.Consume(ctx, cache.OAuthStateKey(state), cache.HashToken(state))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidOAuthState
	}

	token, err := s.google.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	info, err := s.google.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(info.Email))
	switch {
	case err == nil:
		if user.GoogleID != info.ID {
			if err := s.userRepo.LinkGoogleAccount(ctx, user.ID, info.ID); err != nil {
				return nil, err
			}
			user.GoogleID = info.ID
			forgetUsers(ctx, s.cache, user.ID)
		}
	case errors.Is(err, apperrors.ErrUserNotFound):
		user, err = s.createGoogleUser(ctx, info)
		if err != nil {
			return nil, err
		}
		s.recorder.RecordAuthEvent(metrics.EventRegistered, metrics.ProviderGoogle)
	default:
		return nil, err
	}

	s.recorder.RecordAuthEvent(metrics.EventLoginSuccess, metrics.ProviderGoogle)
	return s.loginResponse(user)
}

func (s *AuthService) createGoogleUser(ctx context.Context, info *oauth.UserInfo) (*models.User, error) {
	hash, err := auth.HashRandomPassword()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = info.Email
	}

	verifiedAt := time.Now()
	user := &models.User{
		Name:            name,
		Email:           normalizeEmail(info.Email),
		Password:        hash,
		GoogleID:        info.ID,
		EmailVerifiedAt: &verifiedAt,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) loginResponse(user *models.User) (*models.LoginResponse, error) {
	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}
