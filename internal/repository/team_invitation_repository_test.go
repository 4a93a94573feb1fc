package repository

import (
	"context"
	"testing"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTeamInvitationRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamInvitationRepository(tdb.Database)
	ctx := context.Background()

	newInvitation := func(teamID primitive.ObjectID, email string) *models.TeamInvitation {
		return &models.TeamInvitation{
			TeamID: teamID,
			Email:  email,
			RoleID: primitive.NewObjectID(),
			UUID:   uuid.NewString(),
		}
	}

	t.Run("Create and lookups", func(t *testing.T) {
		tdb.ClearCollection(t, "team_invitations")

		teamID := primitive.NewObjectID()
		inv := newInvitation(teamID, "new@example.com")
		require.NoError(t, repo.Create(ctx, inv))
		assert.False(t, inv.ID.IsZero())
		assert.NotZero(t, inv.CreatedAt)

		byID, err := repo.FindByID(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, inv.UUID, byID.UUID)

		byUUID, err := repo.FindByUUID(ctx, inv.UUID)
		require.NoError(t, err)
		assert.Equal(t, inv.ID, byUUID.ID)

		byEmail, err := repo.FindByTeamAndEmail(ctx, teamID, "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, inv.ID, byEmail.ID)

		_, err = repo.FindByTeamAndEmail(ctx, primitive.NewObjectID(), "new@example.com")
		assert.ErrorIs(t, err, apperrors.ErrInvitationNotFound)

		_, err = repo.FindByUUID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, apperrors.ErrInvitationNotFound)
	})

	t.Run("one pending invitation per team and email", func(t *testing.T) {
		tdb.ClearCollection(t, "team_invitations")

		teamID := primitive.NewObjectID()
		require.NoError(t, repo.Create(ctx, newInvitation(teamID, "dup@example.com")))

		err := repo.Create(ctx, newInvitation(teamID, "dup@example.com"))
		assert.ErrorIs(t, err, apperrors.ErrPendingInvitation)

		require.NoError(t, repo.Create(ctx, newInvitation(primitive.NewObjectID(), "dup@example.com")))
	})

	t.Run("FindByTeamID and Delete", func(t *testing.T) {
		tdb.ClearCollection(t, "team_invitations")

		teamID := primitive.NewObjectID()
		first := newInvitation(teamID, "a@example.com")
		second := newInvitation(teamID, "b@example.com")
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		list, err := repo.FindByTeamID(ctx, teamID)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		require.NoError(t, repo.Delete(ctx, first.ID))
		assert.ErrorIs(t, repo.Delete(ctx, first.ID), apperrors.ErrInvitationNotFound)

		list, err = repo.FindByTeamID(ctx, teamID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, second.ID, list[0].ID)
	})
}
