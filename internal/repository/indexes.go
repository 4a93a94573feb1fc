package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec describes one index on one collection.
type IndexSpec struct {
	Collection string
	Keys       bson.D
	Unique     bool
}

// Indexes lists every index the repositories rely on. The unique ones back the
// one-membership-per-user, one-invitation-per-email and name uniqueness rules.
var Indexes = []IndexSpec{
	{Collection: "users", Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},
	{Collection: "teams", Keys: bson.D{{Key: "ownerId", Value: 1}}},
	{Collection: "roles", Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "name", Value: 1}}, Unique: true},
	{Collection: "permissions", Keys: bson.D{{Key: "name", Value: 1}}, Unique: true},
	{Collection: "team_members", Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "userId", Value: 1}}, Unique: true},
	{Collection: "team_members", Keys: bson.D{{Key: "userId", Value: 1}}},
	{Collection: "team_invitations", Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "email", Value: 1}}, Unique: true},
	{Collection: "team_invitations", Keys: bson.D{{Key: "uuid", Value: 1}}, Unique: true},
}

// EnsureIndexes creates every index in Indexes. It returns the created index
// names; existing identical indexes are not an error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	names := make([]string, 0, len(Indexes))
	for _, spec := range Indexes {
		model := mongo.IndexModel{Keys: spec.Keys}
		if spec.Unique {
			model.Options = options.Index().SetUnique(true)
		}

		name, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			return names, fmt.Errorf("create index on %s: %w", spec.Collection, err)
		}
		names = append(names, spec.Collection+"."+name)
	}
	return names, nil
}
