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

// TeamMemberRepository defines the interface for team membership data operations.
type TeamMemberRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMember, error)
	FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.TeamMember, error)
	UpdateRole(ctx context.Context, teamID, userID, roleID primitive.ObjectID) error
	Delete(ctx context.Context, teamID, userID primitive.ObjectID) error
}

// teamMemberRepository implements TeamMemberRepository using MongoDB.
type teamMemberRepository struct {
	collection *mongo.Collection
}

// NewTeamMemberRepository creates a new TeamMemberRepository.
func NewTeamMemberRepository(db *mongo.Database) TeamMemberRepository {
	return &teamMemberRepository{
		collection: db.Collection("team_members"),
	}
}

// Create inserts a new membership. A second membership for the same
// (team, user) pair is rejected with ErrAlreadyMember.
func (r *teamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	now := time.Now()
	member.ID = primitive.NewObjectID()
	member.CreatedAt = now
	member.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, member); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAlreadyMember
		}
		return err
	}
	return nil
}

// FindByTeamID returns all members of a team in join order.
func (r *teamMemberRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMember, error) {
	return r.find(ctx, bson.M{"teamId": teamID})
}

// FindByTeamAndUser returns a team member by team and user ID.
func (r *teamMemberRepository) FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error) {
	filter := bson.M{
		"teamId": teamID,
		"userId": userID,
	}

	var member models.TeamMember
	err := r.collection.FindOne(ctx, filter).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, err
	}

	return &member, nil
}

// FindByUserID returns all team memberships for a user.
func (r *teamMemberRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.TeamMember, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// UpdateRole points a membership at another role.
func (r *teamMemberRepository) UpdateRole(ctx context.Context, teamID, userID, roleID primitive.ObjectID) error {
	filter := bson.M{
		"teamId": teamID,
		"userId": userID,
	}

	update := bson.M{
		"$set": bson.M{"roleId": roleID, "updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotTeamMember
	}

	return nil
}

// Delete removes a team member.
func (r *teamMemberRepository) Delete(ctx context.Context, teamID, userID primitive.ObjectID) error {
	filter := bson.M{
		"teamId": teamID,
		"userId": userID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotTeamMember
	}

	return nil
}

func (r *teamMemberRepository) find(ctx context.Context, filter bson.M) ([]models.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	if members == nil {
		members = []models.TeamMember{}
	}

	return members, nil
}
