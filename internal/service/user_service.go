package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"teamhub/internal/cache"
	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"
	"teamhub/internal/repository"
	"teamhub/internal/storage"
	"teamhub/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	userCacheTTL    = 15 * time.Minute
	avatarURLExpiry = time.Hour
)

var avatarExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// AvatarUpload is an image submitted with a profile update.
type AvatarUpload struct {
	Body        io.Reader
	ContentType string
}

// UserService handles business logic for user operations.
type UserService struct {
	tx      repository.Transactor
	repo    repository.UserRepository
	storage storage.Storage
	cache   cache.Cache
	logger  *zap.Logger
}

// NewUserService creates a new UserService. objects may be nil when no
// object storage is configured; avatar uploads are then rejected.
func NewUserService(tx repository.Transactor, repo repository.UserRepository, objects storage.Storage, userCache cache.Cache, logger *zap.Logger) *UserService {
	return &UserService{
		tx:      tx,
		repo:    repo,
		storage: objects,
		cache:   userCache,
		logger:  logger,
	}
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	cacheKey := cache.UserCacheKey(id.Hex())

	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil
	}

	dbUser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cache is best effort
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}

// UpdateProfile changes the user's name and email and optionally replaces the
// avatar. Changing the email clears its verification.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, req *models.UpdateProfileRequest, avatar *AvatarUpload) (*models.User, error) {
	updated := *user
	updated.Name = strings.TrimSpace(req.Name)
	updated.Email = normalizeEmail(req.Email)

	if updated.Email != normalizeEmail(user.Email) {
		updated.EmailVerifiedAt = nil
	}

	var uploaded string
	if avatar != nil {
		key, err := s.uploadAvatar(ctx, user, avatar)
		if err != nil {
			return nil, err
		}
		uploaded = key
		updated.Avatar = key
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpdateProfile(ctx, &updated)
	})
	if err != nil {
		if uploaded != "" {
			s.removeAvatar(ctx, user.ID, uploaded)
		}
		return nil, err
	}

	if uploaded != "" && user.Avatar != "" {
		s.removeAvatar(ctx, user.ID, user.Avatar)
	}

	forgetUsers(ctx, s.cache, user.ID)

	return s.WithAvatarURL(ctx, &updated), nil
}

// WithAvatarURL fills AvatarURL with a pre-signed link to the stored avatar.
func (s *UserService) WithAvatarURL(ctx context.Context, user *models.User) *models.User {
	if user.Avatar == "" || s.storage == nil {
		return user
	}

	url, err := s.storage.GetPresignedURL(ctx, user.Avatar, avatarURLExpiry)
	if err != nil {
		s.logger.Warn("failed to presign avatar", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		return user
	}

	user.AvatarURL = url
	return user
}

// uploadAvatar stores the new avatar under a fresh key. The previous object is
// left in place until the profile update commits.
func (s *UserService) uploadAvatar(ctx context.Context, user *models.User, avatar *AvatarUpload) (string, error) {
	ext, ok := avatarExtensions[strings.ToLower(avatar.ContentType)]
	if !ok {
		return "", apperrors.ErrUnsupportedAvatar
	}
	if s.storage == nil {
		return "", apperrors.ErrStorageUnavailable
	}

	suffix, err := auth.RandomToken(8)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/avatar_user_%s_%s.%s", user.ID.Hex(), suffix, ext)
	if err := s.storage.PutObject(ctx, key, avatar.Body, avatar.ContentType); err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	return key, nil
}

// removeAvatar deletes key if it is still stored. Failures are logged only.
func (s *UserService) removeAvatar(ctx context.Context, userID primitive.ObjectID, key string) {
	log := s.logger.With(zap.String("user_id", userID.Hex()), zap.String("key", key))

	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		log.Warn("failed to stat avatar", zap.Error(err))
		return
	}
	if !exists {
		return
	}

	if err := s.storage.DeleteObject(ctx, key); err != nil {
		log.Warn("failed to delete avatar", zap.Error(err))
	}
}
