package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ultihub/internal/eligibility"
	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/queue"
	repomocks "ultihub/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type matchServiceMocks struct {
	matchRepo  *repomocks.MockMatchRepository
	teamRepo   *repomocks.MockTeamRepository
	spiritRepo *repomocks.MockSpiritScoreRepository
	eventQueue *queue.MemoryQueue
}

func newMatchService(ctrl *gomock.Controller) (*MatchService, *matchServiceMocks) {
	m := &matchServiceMocks{
		matchRepo:  repomocks.NewMockMatchRepository(ctrl),
		teamRepo:   repomocks.NewMockTeamRepository(ctrl),
		spiritRepo: repomocks.NewMockSpiritScoreRepository(ctrl),
		eventQueue: queue.NewMemoryQueue(16),
	}
	gate := eligibility.NewGate(m.matchRepo, m.spiritRepo)
	return NewMatchService(m.matchRepo, m.teamRepo, gate, m.eventQueue), m
}

func approvedTeam(tournamentID primitive.ObjectID, name string) *models.Team {
	return &models.Team{
		ID:           primitive.NewObjectID(),
		Name:         name,
		TournamentID: tournamentID,
		ManagerID:    primitive.NewObjectID(),
		Status:       models.TeamApproved,
	}
}

func TestMatchService_ScheduleMatch(t *testing.T) {
	tournamentID := primitive.NewObjectID()

	t.Run("schedules match between eligible teams", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		teamA := approvedTeam(tournamentID, "Bristol Breezers")
		teamB := approvedTeam(tournamentID, "Leeds Lasers")

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamA.ID).Return(teamA, nil)
		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamB.ID).Return(teamB, nil)

		m.matchRepo.EXPECT().FindCompletedByTeam(gomock.Any(), teamA.ID).Return([]models.Match{}, nil)
		m.matchRepo.EXPECT().FindCompletedByTeam(gomock.Any(), teamB.ID).Return([]models.Match{}, nil)
		m.spiritRepo.EXPECT().FindByScoringTeam(gomock.Any(), teamA.ID).Return([]models.SpiritScore{}, nil)
		m.spiritRepo.EXPECT().FindByScoringTeam(gomock.Any(), teamB.ID).Return([]models.SpiritScore{}, nil)

		m.matchRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, match *models.Match) error {
				match.ID = primitive.NewObjectID()
				assert.Equal(t, tournamentID, match.TournamentID)
				assert.Equal(t, teamA.ID, match.TeamA.ID)
				assert.Equal(t, teamB.ID, match.TeamB.ID)
				return nil
			})

		match, err := service.ScheduleMatch(context.Background(), tournamentID, &models.CreateMatchRequest{
			TeamAID:       teamA.ID.Hex(),
			TeamBID:       teamB.ID.Hex(),
			Field:         "Field 3",
			ScheduledTime: time.Now().Add(24 * time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, "Bristol Breezers", match.TeamA.Name)
		assert.Equal(t, 1, m.eventQueue.Len())
	})

	t.Run("blocks team with pending spirit scores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		teamA := approvedTeam(tournamentID, "Bristol Breezers")
		teamB := approvedTeam(tournamentID, "Leeds Lasers")

		completed := models.Match{
			ID:            primitive.NewObjectID(),
			TournamentID:  tournamentID,
			TeamA:         models.MatchSide{ID: teamA.ID, Name: teamA.Name},
			TeamB:         models.MatchSide{ID: primitive.NewObjectID(), Name: "Old Opponent"},
			Status:        models.MatchCompleted,
			ScheduledTime: time.Now().Add(-48 * time.Hour),
		}

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamA.ID).Return(teamA, nil)
		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamB.ID).Return(teamB, nil)

		m.matchRepo.EXPECT().FindCompletedByTeam(gomock.Any(), teamA.ID).Return([]models.Match{completed}, nil)
		m.spiritRepo.EXPECT().FindByScoringTeam(gomock.Any(), teamA.ID).Return([]models.SpiritScore{}, nil)

		match, err := service.ScheduleMatch(context.Background(), tournamentID, &models.CreateMatchRequest{
			TeamAID:       teamA.ID.Hex(),
			TeamBID:       teamB.ID.Hex(),
			ScheduledTime: time.Now().Add(24 * time.Hour),
		})

		assert.Nil(t, match)
		require.ErrorIs(t, err, apperrors.ErrTeamNotEligible)

		var eligErr *EligibilityError
		require.True(t, errors.As(err, &eligErr))
		assert.Equal(t, 1, eligErr.Result.PendingCount)
		assert.Equal(t, completed.ID, eligErr.Result.PendingScores[0].MatchID)
		assert.Equal(t, 0, m.eventQueue.Len())
	})

	t.Run("propagates gate lookup failure instead of defaulting to eligible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		teamA := approvedTeam(tournamentID, "Bristol Breezers")
		teamB := approvedTeam(tournamentID, "Leeds Lasers")

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamA.ID).Return(teamA, nil)
		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamB.ID).Return(teamB, nil)

		m.matchRepo.EXPECT().FindCompletedByTeam(gomock.Any(), teamA.ID).Return(nil, assert.AnError)

		match, err := service.ScheduleMatch(context.Background(), tournamentID, &models.CreateMatchRequest{
			TeamAID:       teamA.ID.Hex(),
			TeamBID:       teamB.ID.Hex(),
			ScheduledTime: time.Now().Add(24 * time.Hour),
		})

		assert.Nil(t, match)
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("rejects unapproved team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		teamA := approvedTeam(tournamentID, "Bristol Breezers")
		teamA.Status = models.TeamPending
		teamB := approvedTeam(tournamentID, "Leeds Lasers")

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamA.ID).Return(teamA, nil)

		match, err := service.ScheduleMatch(context.Background(), tournamentID, &models.CreateMatchRequest{
			TeamAID:       teamA.ID.Hex(),
			TeamBID:       teamB.ID.Hex(),
			ScheduledTime: time.Now().Add(24 * time.Hour),
		})

		assert.Nil(t, match)
		assert.Equal(t, apperrors.ErrTeamNotApproved, err)
	})

	t.Run("rejects team from another tournament", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		teamA := approvedTeam(primitive.NewObjectID(), "Bristol Breezers")
		teamB := approvedTeam(tournamentID, "Leeds Lasers")

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamA.ID).Return(teamA, nil)

		match, err := service.ScheduleMatch(context.Background(), tournamentID, &models.CreateMatchRequest{
			TeamAID:       teamA.ID.Hex(),
			TeamBID:       teamB.ID.Hex(),
			ScheduledTime: time.Now().Add(24 * time.Hour),
		})

		assert.Nil(t, match)
		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})

	t.Run("rejects malformed team ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newMatchService(ctrl)

		match, err := service.ScheduleMatch(context.Background(), tournamentID, &models.CreateMatchRequest{
			TeamAID:       "not-an-object-id",
			TeamBID:       primitive.NewObjectID().Hex(),
			ScheduledTime: time.Now().Add(24 * time.Hour),
		})

		assert.Nil(t, match)
		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})
}

func TestMatchService_UpdateScore(t *testing.T) {
	matchID := primitive.NewObjectID()
	tournamentID := primitive.NewObjectID()

	t.Run("updates score of live match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		m.matchRepo.EXPECT().
			FindByID(gomock.Any(), matchID).
			Return(&models.Match{ID: matchID, TournamentID: tournamentID, Status: models.MatchLive}, nil)
		m.matchRepo.EXPECT().UpdateScore(gomock.Any(), matchID, 13, 11).Return(nil)

		match, err := service.UpdateScore(context.Background(), matchID, &models.UpdateScoreRequest{ScoreA: 13, ScoreB: 11})

		require.NoError(t, err)
		assert.Equal(t, 13, match.ScoreA)
		assert.Equal(t, 11, match.ScoreB)
		assert.Equal(t, 1, m.eventQueue.Len())
	})

	t.Run("rejects score update on completed match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		m.matchRepo.EXPECT().
			FindByID(gomock.Any(), matchID).
			Return(&models.Match{ID: matchID, Status: models.MatchCompleted}, nil)

		match, err := service.UpdateScore(context.Background(), matchID, &models.UpdateScoreRequest{ScoreA: 13, ScoreB: 11})

		assert.Nil(t, match)
		assert.Equal(t, apperrors.ErrMatchCompleted, err)
	})

	t.Run("rejects score update on scheduled match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		m.matchRepo.EXPECT().
			FindByID(gomock.Any(), matchID).
			Return(&models.Match{ID: matchID, Status: models.MatchScheduled}, nil)

		match, err := service.UpdateScore(context.Background(), matchID, &models.UpdateScoreRequest{ScoreA: 1, ScoreB: 0})

		assert.Nil(t, match)
		assert.Equal(t, apperrors.ErrMatchCompleted, err)
	})
}

func TestMatchService_UpdateStatus(t *testing.T) {
	matchID := primitive.NewObjectID()
	tournamentID := primitive.NewObjectID()

	tests := []struct {
		name    string
		from    models.MatchStatus
		to      models.MatchStatus
		allowed bool
	}{
		{"scheduled to live", models.MatchScheduled, models.MatchLive, true},
		{"scheduled to cancelled", models.MatchScheduled, models.MatchCancelled, true},
		{"scheduled to completed", models.MatchScheduled, models.MatchCompleted, false},
		{"live to completed", models.MatchLive, models.MatchCompleted, true},
		{"live to cancelled", models.MatchLive, models.MatchCancelled, true},
		{"live to scheduled", models.MatchLive, models.MatchScheduled, false},
		{"completed to live", models.MatchCompleted, models.MatchLive, false},
		{"cancelled to scheduled", models.MatchCancelled, models.MatchScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newMatchService(ctrl)

			m.matchRepo.EXPECT().
				FindByID(gomock.Any(), matchID).
				Return(&models.Match{ID: matchID, TournamentID: tournamentID, Status: tt.from}, nil)

			if tt.allowed {
				m.matchRepo.EXPECT().UpdateStatus(gomock.Any(), matchID, tt.to).Return(nil)
			}

			match, err := service.UpdateStatus(context.Background(), matchID, &models.UpdateMatchStatusRequest{Status: tt.to})

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, match.Status)
				assert.Equal(t, 1, m.eventQueue.Len())
			} else {
				assert.Nil(t, match)
				assert.Equal(t, apperrors.ErrInvalidMatchTransition, err)
			}
		})
	}
}

func TestMatchService_CorrectMatch(t *testing.T) {
	matchID := primitive.NewObjectID()
	tournamentID := primitive.NewObjectID()
	newScoreA := 14

	t.Run("corrects completed match score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		m.matchRepo.EXPECT().
			FindByID(gomock.Any(), matchID).
			Return(&models.Match{ID: matchID, TournamentID: tournamentID, Status: models.MatchCompleted, ScoreA: 13, ScoreB: 11}, nil)
		m.matchRepo.EXPECT().UpdateScore(gomock.Any(), matchID, 14, 11).Return(nil)

		match, err := service.CorrectMatch(context.Background(), matchID, &models.CorrectMatchRequest{ScoreA: &newScoreA})

		require.NoError(t, err)
		assert.Equal(t, 14, match.ScoreA)
		assert.Equal(t, 11, match.ScoreB) // untouched side keeps its value
	})

	t.Run("rejects correction of non-completed match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		m.matchRepo.EXPECT().
			FindByID(gomock.Any(), matchID).
			Return(&models.Match{ID: matchID, Status: models.MatchLive}, nil)

		match, err := service.CorrectMatch(context.Background(), matchID, &models.CorrectMatchRequest{ScoreA: &newScoreA})

		assert.Nil(t, match)
		assert.Equal(t, apperrors.ErrMatchNotCompleted, err)
	})
}

func TestMatchService_CheckEligibility(t *testing.T) {
	teamID := primitive.NewObjectID()

	t.Run("reports pending obligations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		opponentID := primitive.NewObjectID()
		completed := models.Match{
			ID:            primitive.NewObjectID(),
			TeamA:         models.MatchSide{ID: teamID, Name: "Bristol Breezers"},
			TeamB:         models.MatchSide{ID: opponentID, Name: "Leeds Lasers"},
			Status:        models.MatchCompleted,
			ScheduledTime: time.Now().Add(-24 * time.Hour),
		}

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID}, nil)
		m.matchRepo.EXPECT().FindCompletedByTeam(gomock.Any(), teamID).Return([]models.Match{completed}, nil)
		m.spiritRepo.EXPECT().FindByScoringTeam(gomock.Any(), teamID).Return([]models.SpiritScore{}, nil)

		result, err := service.CheckEligibility(context.Background(), teamID)

		require.NoError(t, err)
		assert.False(t, result.CanPlay)
		assert.Equal(t, 1, result.PendingCount)
		assert.Equal(t, opponentID, result.PendingScores[0].OpponentID)
	})

	t.Run("returns error for unknown team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newMatchService(ctrl)

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(nil, apperrors.ErrTeamNotFound)

		result, err := service.CheckEligibility(context.Background(), teamID)

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})
}
