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

// RoleRepository defines the interface for team role data operations.
// Every lookup is scoped to a team so a role id from another team never resolves.
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	FindByTeamAndID(ctx context.Context, teamID, roleID primitive.ObjectID) (*models.Role, error)
	FindByTeamAndName(ctx context.Context, teamID primitive.ObjectID, name string) (*models.Role, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Role, error)
	AttachPermissions(ctx context.Context, roleID primitive.ObjectID, permissionIDs []primitive.ObjectID) error
}

// roleRepository implements RoleRepository using MongoDB.
type roleRepository struct {
	collection *mongo.Collection
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *mongo.Database) RoleRepository {
	return &roleRepository{
		collection: db.Collection("roles"),
	}
}

// Create inserts a new role into the database.
func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	now := time.Now()
	role.ID = primitive.NewObjectID()
	role.CreatedAt = now
	role.UpdatedAt = now

	if role.PermissionIDs == nil {
		role.PermissionIDs = []primitive.ObjectID{}
	}

	_, err := r.collection.InsertOne(ctx, role)
	return err
}

// FindByTeamAndID resolves a role id within a team.
func (r *roleRepository) FindByTeamAndID(ctx context.Context, teamID, roleID primitive.ObjectID) (*models.Role, error) {
	return r.findOne(ctx, bson.M{"_id": roleID, "teamId": teamID})
}

// FindByTeamAndName resolves a role name within a team.
func (r *roleRepository) FindByTeamAndName(ctx context.Context, teamID primitive.ObjectID, name string) (*models.Role, error) {
	return r.findOne(ctx, bson.M{"teamId": teamID, "name": name})
}

// FindByTeamID returns every role of a team, ordered by name.
func (r *roleRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Role, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roles []models.Role
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}

	if roles == nil {
		roles = []models.Role{}
	}

	return roles, nil
}

// AttachPermissions adds permissions to a role, ignoring ones it already has.
func (r *roleRepository) AttachPermissions(ctx context.Context, roleID primitive.ObjectID, permissionIDs []primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"permissionIds": bson.M{"$each": permissionIDs}},
		"$set":      bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": roleID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrRoleNotFound
	}

	return nil
}

func (r *roleRepository) findOne(ctx context.Context, filter bson.M) (*models.Role, error) {
	var role models.Role
	err := r.collection.FindOne(ctx, filter).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}

	return &role, nil
}
