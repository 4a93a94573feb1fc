// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks teamhub/internal/repository PermissionRepository,RoleRepository,TeamInvitationRepository,TeamMemberRepository,TeamRepository,UserRepository

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	LinkGoogleAccount(ctx context.Context, id primitive.ObjectID, googleID string) error
	SetCurrentTeam(ctx context.Context, userID, teamID primitive.ObjectID) error
	ClearCurrentTeam(ctx context.Context, userID, teamID primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByIDs returns the users with the given ids, ordered by name.
func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// UpdateProfile writes name, email, avatar and verification state.
func (r *userRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	existing, err := r.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		if existing.ID != user.ID {
			return apperrors.ErrUserAlreadyExists
		}
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return err
	}

	user.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":            user.Name,
			"email":           user.Email,
			"avatar":          user.Avatar,
			"emailVerifiedAt": user.EmailVerifiedAt,
			"updatedAt":       user.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return r.set(ctx, id, bson.M{"password": passwordHash})
}

// LinkGoogleAccount stores the Google subject id for the user.
func (r *userRepository) LinkGoogleAccount(ctx context.Context, id primitive.ObjectID, googleID string) error {
	return r.set(ctx, id, bson.M{"googleId": googleID})
}

// SetCurrentTeam records teamID as the user's current team.
func (r *userRepository) SetCurrentTeam(ctx context.Context, userID, teamID primitive.ObjectID) error {
	return r.set(ctx, userID, bson.M{"currentTeamId": teamID})
}

// ClearCurrentTeam unsets the user's current team only when it points at teamID.
func (r *userRepository) ClearCurrentTeam(ctx context.Context, userID, teamID primitive.ObjectID) error {
	filter := bson.M{"_id": userID, "currentTeamId": teamID}
	update := bson.M{"$set": bson.M{"currentTeamId": nil, "updatedAt": time.Now()}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

func (r *userRepository) set(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
