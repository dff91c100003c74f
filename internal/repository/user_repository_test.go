package repository

import (
	"context"
	"testing"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureUserEmailIndex creates the unique email index used in production.
func ensureUserEmailIndex(t *testing.T, tdb *TestDB) {
	t.Helper()

	_, err := tdb.Database.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	require.NoError(t, err)
}

func newTestUser(email, name string) *models.User {
	return &models.User{
		Email:    email,
		Password: "bcrypt-hash",
		Name:     name,
		Role:     "player",
	}
}

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)
	ensureUserEmailIndex(t, tdb)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("creates user with timestamps", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := newTestUser("sam@discmail.org", "Sam Torres")

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.NotZero(t, user.CreatedAt)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		require.NoError(t, repo.Create(ctx, newTestUser("sam@discmail.org", "Sam Torres")))

		err := repo.Create(ctx, newTestUser("sam@discmail.org", "Sam Impostor"))

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds user by email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := newTestUser("dana@discmail.org", "Dana Okafor")
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.FindByEmail(ctx, "dana@discmail.org")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "Dana Okafor", found.Name)
	})

	t.Run("returns error for unknown email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		found, err := repo.FindByEmail(ctx, "nobody@discmail.org")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns all users", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		require.NoError(t, repo.Create(ctx, newTestUser("a@discmail.org", "A")))
		require.NoError(t, repo.Create(ctx, newTestUser("b@discmail.org", "B")))

		users, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("returns empty slice when no users exist", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		users, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}

func TestUserRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)
	ensureUserEmailIndex(t, tdb)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates profile fields", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := newTestUser("sam@discmail.org", "Sam Torres")
		require.NoError(t, repo.Create(ctx, user))

		user.Name = "Sam T."
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sam T.", found.Name)
	})

	t.Run("rejects update to a taken email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		first := newTestUser("first@discmail.org", "First")
		second := newTestUser("second@discmail.org", "Second")
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		second.Email = "first@discmail.org"
		err := repo.Update(ctx, second)

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		missing := newTestUser("ghost@discmail.org", "Ghost")
		missing.ID = primitive.NewObjectID()

		err := repo.Update(ctx, missing)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := newTestUser("sam@discmail.org", "Sam Torres")
		require.NoError(t, repo.Create(ctx, user))

		require.NoError(t, repo.Delete(ctx, user.ID))

		found, err := repo.FindByID(ctx, user.ID)
		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
