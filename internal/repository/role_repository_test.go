package repository

import (
	"context"
	"testing"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRoleAndPermissionRepositories(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	roles := NewRoleRepository(tdb.Database)
	perms := NewPermissionRepository(tdb.Database)
	ctx := context.Background()

	t.Run("EnsureExists is idempotent", func(t *testing.T) {
		tdb.ClearCollection(t, "permissions")

		first, err := perms.EnsureExists(ctx, models.GlobalPermissions)
		require.NoError(t, err)
		assert.Len(t, first, 12)

		second, err := perms.EnsureExists(ctx, []string{"view-team", "view-team"})
		require.NoError(t, err)
		require.Len(t, second, 1)

		count, err := tdb.Database.Collection("permissions").CountDocuments(ctx, map[string]interface{}{})
		require.NoError(t, err)
		assert.EqualValues(t, 12, count)
	})

	t.Run("EnsureExists inside a transaction matches the seeded catalogue", func(t *testing.T) {
		tdb.ClearCollection(t, "permissions")
		_, err := perms.EnsureExists(ctx, models.GlobalPermissions)
		require.NoError(t, err)

		var got []models.Permission
		err = NewTransactor(tdb.Client).WithTransaction(ctx, func(ctx context.Context) error {
			var err error
			got, err = perms.EnsureExists(ctx, []string{"view-team", "edit-team"})
			return err
		})

		require.NoError(t, err)
		assert.Len(t, got, 2)
		count, err := tdb.Database.Collection("permissions").CountDocuments(ctx, map[string]interface{}{})
		require.NoError(t, err)
		assert.EqualValues(t, 12, count)
	})

	t.Run("FindByNames and FindByIDs", func(t *testing.T) {
		tdb.ClearCollection(t, "permissions")

		created, err := perms.EnsureExists(ctx, []string{"view-team", "edit-team"})
		require.NoError(t, err)

		byName, err := perms.FindByNames(ctx, []string{"edit-team", "unknown"})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "edit-team", byName[0].Name)

		ids := []primitive.ObjectID{created[0].ID, created[1].ID}
		byID, err := perms.FindByIDs(ctx, ids)
		require.NoError(t, err)
		assert.Len(t, byID, 2)

		empty, err := perms.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("roles are scoped to their team", func(t *testing.T) {
		tdb.ClearCollection(t, "roles")

		teamA := primitive.NewObjectID()
		teamB := primitive.NewObjectID()
		admin := &models.Role{TeamID: teamA, Name: models.RoleAdmin}
		require.NoError(t, roles.Create(ctx, admin))

		found, err := roles.FindByTeamAndID(ctx, teamA, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, found.Name)
		assert.NotNil(t, found.PermissionIDs)

		_, err = roles.FindByTeamAndID(ctx, teamB, admin.ID)
		assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)

		byName, err := roles.FindByTeamAndName(ctx, teamA, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, byName.ID)

		_, err = roles.FindByTeamAndName(ctx, teamB, models.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)
	})

	t.Run("role names are unique per team", func(t *testing.T) {
		tdb.ClearCollection(t, "roles")

		teamID := primitive.NewObjectID()
		require.NoError(t, roles.Create(ctx, &models.Role{TeamID: teamID, Name: "member"}))

		err := roles.Create(ctx, &models.Role{TeamID: teamID, Name: "member"})
		assert.True(t, mongo.IsDuplicateKeyError(err))

		require.NoError(t, roles.Create(ctx, &models.Role{TeamID: primitive.NewObjectID(), Name: "member"}))
	})

	t.Run("AttachPermissions adds each id once", func(t *testing.T) {
		tdb.ClearCollection(t, "roles")

		role := &models.Role{TeamID: primitive.NewObjectID(), Name: "editor"}
		require.NoError(t, roles.Create(ctx, role))
		p1, p2 := primitive.NewObjectID(), primitive.NewObjectID()

		require.NoError(t, roles.AttachPermissions(ctx, role.ID, []primitive.ObjectID{p1, p2}))
		require.NoError(t, roles.AttachPermissions(ctx, role.ID, []primitive.ObjectID{p1}))

		found, err := roles.FindByTeamAndID(ctx, role.TeamID, role.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []primitive.ObjectID{p1, p2}, found.PermissionIDs)

		err = roles.AttachPermissions(ctx, primitive.NewObjectID(), []primitive.ObjectID{p1})
		assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)
	})

	t.Run("FindByTeamID lists roles by name", func(t *testing.T) {
		tdb.ClearCollection(t, "roles")

		teamID := primitive.NewObjectID()
		require.NoError(t, roles.Create(ctx, &models.Role{TeamID: teamID, Name: "member"}))
		require.NoError(t, roles.Create(ctx, &models.Role{TeamID: teamID, Name: "admin"}))

		list, err := roles.FindByTeamID(ctx, teamID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "admin", list[0].Name)
	})
}
