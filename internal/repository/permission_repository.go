package repository

import (
	"context"
	"time"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PermissionRepository defines the interface for the global permission catalogue.
type PermissionRepository interface {
	EnsureExists(ctx context.Context, names []string) ([]models.Permission, error)
	FindByNames(ctx context.Context, names []string) ([]models.Permission, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Permission, error)
}

// permissionRepository implements PermissionRepository using MongoDB.
type permissionRepository struct {
	collection *mongo.Collection
}

// NewPermissionRepository creates a new PermissionRepository.
func NewPermissionRepository(db *mongo.Database) PermissionRepository {
	return &permissionRepository{
		collection: db.Collection("permissions"),
	}
}

// EnsureExists upserts every name into the catalogue and returns the
// corresponding permissions. Inside a transaction any write error, a
// duplicate key from a racing first insert included, aborts the transaction;
// cmd/seed fills the catalogue up front so runtime calls only match.
func (r *permissionRepository) EnsureExists(ctx context.Context, names []string) ([]models.Permission, error) {
	now := time.Now()
	for _, name := range names {
		_, err := r.collection.UpdateOne(ctx,
			bson.M{"name": name},
			bson.M{"$setOnInsert": bson.M{"name": name, "createdAt": now}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, err
		}
	}

	perms, err := r.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	if len(perms) != len(uniqueStrings(names)) {
		return nil, apperrors.ErrPermissionMissing
	}
	return perms, nil
}

// FindByNames returns the permissions whose names are listed.
func (r *permissionRepository) FindByNames(ctx context.Context, names []string) ([]models.Permission, error) {
	if len(names) == 0 {
		return []models.Permission{}, nil
	}
	return r.find(ctx, bson.M{"name": bson.M{"$in": names}})
}

// FindByIDs returns the permissions whose ids are listed.
func (r *permissionRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Permission, error) {
	if len(ids) == 0 {
		return []models.Permission{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *permissionRepository) find(ctx context.Context, filter bson.M) ([]models.Permission, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var perms []models.Permission
	if err := cursor.All(ctx, &perms); err != nil {
		return nil, err
	}

	if perms == nil {
		perms = []models.Permission{}
	}

	return perms, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
