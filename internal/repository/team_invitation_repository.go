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

// TeamInvitationRepository defines the interface for team invitation data operations.
type TeamInvitationRepository interface {
	Create(ctx context.Context, invitation *models.TeamInvitation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvitation, error)
	FindByUUID(ctx context.Context, uuid string) (*models.TeamInvitation, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamInvitation, error)
	FindByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string) (*models.TeamInvitation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// teamInvitationRepository implements TeamInvitationRepository using MongoDB.
type teamInvitationRepository struct {
	collection *mongo.Collection
}

// NewTeamInvitationRepository creates a new TeamInvitationRepository.
func NewTeamInvitationRepository(db *mongo.Database) TeamInvitationRepository {
	return &teamInvitationRepository{
		collection: db.Collection("team_invitations"),
	}
}

// Create inserts a new invitation into the database.
func (r *teamInvitationRepository) Create(ctx context.Context, invitation *models.TeamInvitation) error {
	invitation.ID = primitive.NewObjectID()
	invitation.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, invitation); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrPendingInvitation
		}
		return err
	}
	return nil
}

// FindByID retrieves an invitation by ID.
func (r *teamInvitationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvitation, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByUUID retrieves an invitation by its public token.
func (r *teamInvitationRepository) FindByUUID(ctx context.Context, uuid string) (*models.TeamInvitation, error) {
	return r.findOne(ctx, bson.M{"uuid": uuid})
}

// FindByTeamID returns the pending invitations of a team, newest first.
func (r *teamInvitationRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamInvitation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []models.TeamInvitation
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}

	if invitations == nil {
		invitations = []models.TeamInvitation{}
	}

	return invitations, nil
}

// FindByTeamAndEmail retrieves the pending invitation for an email in a team.
func (r *teamInvitationRepository) FindByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string) (*models.TeamInvitation, error) {
	return r.findOne(ctx, bson.M{"teamId": teamID, "email": email})
}

// Delete removes an invitation.
func (r *teamInvitationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrInvitationNotFound
	}

	return nil
}

func (r *teamInvitationRepository) findOne(ctx context.Context, filter bson.M) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.collection.FindOne(ctx, filter).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}
