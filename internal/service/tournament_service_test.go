package service

import (
	"context"
	"testing"
	"time"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	repomocks "ultihub/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTournamentService(ctrl *gomock.Controller) (*TournamentService, *repomocks.MockTournamentRepository) {
	repo := repomocks.NewMockTournamentRepository(ctrl)
	return NewTournamentService(repo), repo
}

func TestTournamentService_CreateTournament(t *testing.T) {
	directorID := primitive.NewObjectID()

	req := &models.CreateTournamentRequest{
		Name:      "Sandsplash Open 2026",
		Location:  "Riverside Fields, Portland",
		StartDate: time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 14, 18, 0, 0, 0, time.UTC),
	}

	t.Run("creates tournament with slug and director", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo := newTournamentService(ctrl)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tournament *models.Tournament) error {
				tournament.ID = primitive.NewObjectID()
				assert.Equal(t, "Sandsplash Open 2026", tournament.Name)
				assert.Equal(t, "sandsplash-open-2026", tournament.Slug)
				assert.Equal(t, directorID, tournament.DirectorID)
				return nil
			})

		tournament, err := service.CreateTournament(context.Background(), directorID, req)

		require.NoError(t, err)
		assert.Equal(t, "sandsplash-open-2026", tournament.Slug)
	})

	t.Run("surfaces duplicate slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo := newTournamentService(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrTournamentSlugTaken)

		tournament, err := service.CreateTournament(context.Background(), directorID, req)

		assert.Nil(t, tournament)
		assert.Equal(t, apperrors.ErrTournamentSlugTaken, err)
	})
}

func TestTournamentService_ListTournaments(t *testing.T) {
	t.Run("paginates results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo := newTournamentService(ctrl)

		repo.EXPECT().
			FindAll(gomock.Any(), 2, 10).
			Return([]models.Tournament{{Name: "Harbour Hat 2026"}}, 21, nil)

		resp, err := service.ListTournaments(context.Background(), 2, 10)

		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, 2, resp.Pagination.Page)
		assert.Equal(t, 21, resp.Pagination.TotalItems)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo := newTournamentService(ctrl)

		repo.EXPECT().FindAll(gomock.Any(), 1, 20).Return(nil, 0, assert.AnError)

		resp, err := service.ListTournaments(context.Background(), 1, 20)

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestTournamentService_GetTournamentBySlug(t *testing.T) {
	t.Run("finds tournament", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo := newTournamentService(ctrl)

		repo.EXPECT().
			FindBySlug(gomock.Any(), "sandsplash-open-2026").
			Return(&models.Tournament{Slug: "sandsplash-open-2026"}, nil)

		tournament, err := service.GetTournamentBySlug(context.Background(), "sandsplash-open-2026")

		require.NoError(t, err)
		assert.Equal(t, "sandsplash-open-2026", tournament.Slug)
	})

	t.Run("returns error for unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo := newTournamentService(ctrl)

		repo.EXPECT().FindBySlug(gomock.Any(), "nope").Return(nil, apperrors.ErrTournamentNotFound)

		tournament, err := service.GetTournamentBySlug(context.Background(), "nope")

		assert.Nil(t, tournament)
		assert.Equal(t, apperrors.ErrTournamentNotFound, err)
	})
}

func TestTournamentService_UpdateTournament(t *testing.T) {
	tournamentID := primitive.NewObjectID()

	t.Run("applies partial update and keeps slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo := newTournamentService(ctrl)

		existing := &models.Tournament{
			ID:       tournamentID,
			Name:     "Sandsplash Open 2026",
			Slug:     "sandsplash-open-2026",
			Location: "Riverside Fields",
		}

		newName := "Sandsplash Invitational 2026"

		repo.EXPECT().FindByID(gomock.Any(), tournamentID).Return(existing, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tournament *models.Tournament) error {
				assert.Equal(t, newName, tournament.Name)
				assert.Equal(t, "sandsplash-open-2026", tournament.Slug)
				assert.Equal(t, "Riverside Fields", tournament.Location)
				return nil
			})

		tournament, err := service.UpdateTournament(context.Background(), tournamentID, &models.UpdateTournamentRequest{
			Name: &newName,
		})

		require.NoError(t, err)
		assert.Equal(t, newName, tournament.Name)
	})

	t.Run("returns error for unknown tournament", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo := newTournamentService(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), tournamentID).Return(nil, apperrors.ErrTournamentNotFound)

		tournament, err := service.UpdateTournament(context.Background(), tournamentID, &models.UpdateTournamentRequest{})

		assert.Nil(t, tournament)
		assert.Equal(t, apperrors.ErrTournamentNotFound, err)
	})
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
	}{
		{"exact fit", 1, 10, 30, 3},
		{"partial last page", 1, 10, 21, 3},
		{"empty", 1, 10, 0, 0},
		{"zero limit", 1, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.total, p.TotalItems)
		})
	}
}
