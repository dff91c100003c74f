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

// ensureProgrammeSlugIndex creates the unique slug index used in production.
func ensureProgrammeSlugIndex(t *testing.T, tdb *TestDB) {
	t.Helper()

	_, err := tdb.Database.Collection("programmes").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	require.NoError(t, err)
}

func TestProgrammeRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)
	ensureProgrammeSlugIndex(t, tdb)

	repo := NewProgrammeRepository(tdb.Database)
	ctx := context.Background()

	t.Run("creates programme with timestamps", func(t *testing.T) {
		tdb.ClearCollection(t, "programmes")

		programme := &models.Programme{
			Name:       "Spring Juniors 2026",
			Slug:       "spring-juniors-2026",
			Season:     "2026-spring",
			DirectorID: primitive.NewObjectID(),
		}

		err := repo.Create(ctx, programme)

		require.NoError(t, err)
		assert.False(t, programme.ID.IsZero())
		assert.NotZero(t, programme.CreatedAt)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		tdb.ClearCollection(t, "programmes")

		first := &models.Programme{Name: "Spring Juniors 2026", Slug: "spring-juniors-2026", Season: "2026-spring", DirectorID: primitive.NewObjectID()}
		require.NoError(t, repo.Create(ctx, first))

		dup := &models.Programme{Name: "Spring Juniors 2026", Slug: "spring-juniors-2026", Season: "2026-spring", DirectorID: primitive.NewObjectID()}
		err := repo.Create(ctx, dup)

		assert.Equal(t, apperrors.ErrProgrammeSlugTaken, err)
	})
}

func TestProgrammeRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewProgrammeRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing programme", func(t *testing.T) {
		tdb.ClearCollection(t, "programmes")

		programme := &models.Programme{Name: "Summer Camp 2026", Slug: "summer-camp-2026", Season: "2026-summer", DirectorID: primitive.NewObjectID()}
		require.NoError(t, repo.Create(ctx, programme))

		found, err := repo.FindByID(ctx, programme.ID)

		require.NoError(t, err)
		assert.Equal(t, programme.Name, found.Name)
	})

	t.Run("returns error for non-existent programme", func(t *testing.T) {
		tdb.ClearCollection(t, "programmes")

		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrProgrammeNotFound, err)
	})
}

func TestProgrammeRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewProgrammeRepository(tdb.Database)
	ctx := context.Background()

	t.Run("orders by season descending then name", func(t *testing.T) {
		tdb.ClearCollection(t, "programmes")

		spring := &models.Programme{Name: "Spring Juniors 2026", Slug: "spring-juniors-2026", Season: "2026-spring", DirectorID: primitive.NewObjectID()}
		autumn := &models.Programme{Name: "Autumn Squad 2026", Slug: "autumn-squad-2026", Season: "2026-autumn", DirectorID: primitive.NewObjectID()}
		require.NoError(t, repo.Create(ctx, spring))
		require.NoError(t, repo.Create(ctx, autumn))

		programmes, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, programmes, 2)
		assert.Equal(t, spring.ID, programmes[0].ID)
	})

	t.Run("returns empty slice when no programmes exist", func(t *testing.T) {
		tdb.ClearCollection(t, "programmes")

		programmes, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, programmes)
		assert.Empty(t, programmes)
	})
}

func TestProgrammeRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewProgrammeRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates name and season", func(t *testing.T) {
		tdb.ClearCollection(t, "programmes")

		programme := &models.Programme{Name: "Spring Juniors 2026", Slug: "spring-juniors-2026", Season: "2026-spring", DirectorID: primitive.NewObjectID()}
		require.NoError(t, repo.Create(ctx, programme))

		programme.Name = "Spring Juniors & Seniors 2026"
		require.NoError(t, repo.Update(ctx, programme))

		found, err := repo.FindByID(ctx, programme.ID)
		require.NoError(t, err)
		assert.Equal(t, "Spring Juniors & Seniors 2026", found.Name)
		assert.Equal(t, "spring-juniors-2026", found.Slug)
	})

	t.Run("returns error for non-existent programme", func(t *testing.T) {
		tdb.ClearCollection(t, "programmes")

		missing := &models.Programme{ID: primitive.NewObjectID(), Name: "Ghost"}

		err := repo.Update(ctx, missing)

		assert.Equal(t, apperrors.ErrProgrammeNotFound, err)
	})
}
