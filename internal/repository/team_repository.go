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

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Team, error)
	FindByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a new team into the database.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	now := time.Now()
	team.ID = primitive.NewObjectID()
	team.CreatedAt = now
	team.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, team)
	return err
}

// FindByID retrieves a team by ID.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindByIDs returns the teams with the given ids, ordered by name.
func (r *teamRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Team, error) {
	if len(ids) == 0 {
		return []models.Team{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindByOwnerID returns every team owned by a user, ordered by name.
func (r *teamRepository) FindByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]models.Team, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID})
}

// Update renames an existing team.
func (r *teamRepository) Update(ctx context.Context, team *models.Team) error {
	team.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":      team.Name,
			"updatedAt": team.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": team.ID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}

func (r *teamRepository) find(ctx context.Context, filter bson.M) ([]models.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, nil
}
