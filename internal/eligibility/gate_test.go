package eligibility

import (
	"context"
	"errors"
	"testing"
	"time"

	"ultihub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockMatchFinder is a test double for MatchFinder.
type mockMatchFinder struct {
	matches []models.Match
	err     error
}

func (m *mockMatchFinder) FindCompletedByTeam(_ context.Context, _ primitive.ObjectID) ([]models.Match, error) {
	return m.matches, m.err
}

// mockScoreFinder is a test double for SpiritScoreFinder.
type mockScoreFinder struct {
	scores []models.SpiritScore
	err    error
}

func (m *mockScoreFinder) FindByScoringTeam(_ context.Context, _ primitive.ObjectID) ([]models.SpiritScore, error) {
	return m.scores, m.err
}

func completedMatch(team, opponent primitive.ObjectID, opponentName string, at time.Time) models.Match {
	return models.Match{
		ID:            primitive.NewObjectID(),
		TeamA:         models.MatchSide{ID: team, Name: "Us"},
		TeamB:         models.MatchSide{ID: opponent, Name: opponentName},
		Status:        models.MatchCompleted,
		ScheduledTime: at,
	}
}

func TestGate_CheckEligibility_NoCompletedMatches(t *testing.T) {
	teamID := primitive.NewObjectID()
	gate := NewGate(&mockMatchFinder{}, &mockScoreFinder{})

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	assert.True(t, result.CanPlay)
	assert.Equal(t, 0, result.PendingCount)
	assert.Empty(t, result.PendingScores)
	assert.Equal(t, teamID, result.TeamID)
}

func TestGate_CheckEligibility_OneUncoveredMatch(t *testing.T) {
	teamID := primitive.NewObjectID()
	opponentID := primitive.NewObjectID()
	kickoff := time.Date(2026, 6, 12, 10, 30, 0, 0, time.UTC)
	match := completedMatch(teamID, opponentID, "Bristol Breezers", kickoff)

	gate := NewGate(&mockMatchFinder{matches: []models.Match{match}}, &mockScoreFinder{})

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	assert.False(t, result.CanPlay)
	assert.Equal(t, 1, result.PendingCount)
	require.Len(t, result.PendingScores, 1)
	assert.Equal(t, match.ID, result.PendingScores[0].MatchID)
	assert.Equal(t, opponentID, result.PendingScores[0].OpponentID)
	assert.Equal(t, "Bristol Breezers", result.PendingScores[0].OpponentName)
	assert.Equal(t, kickoff, result.PendingScores[0].ScheduledTime)
}

func TestGate_CheckEligibility_CoveredMatch(t *testing.T) {
	teamID := primitive.NewObjectID()
	match := completedMatch(teamID, primitive.NewObjectID(), "Bristol Breezers", time.Now())

	scores := &mockScoreFinder{scores: []models.SpiritScore{
		{MatchID: match.ID, ScoringTeamID: teamID},
	}}
	gate := NewGate(&mockMatchFinder{matches: []models.Match{match}}, scores)

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	assert.True(t, result.CanPlay)
	assert.Equal(t, 0, result.PendingCount)
	assert.Empty(t, result.PendingScores)
}

func TestGate_CheckEligibility_PartialCoverageOrdered(t *testing.T) {
	teamID := primitive.NewObjectID()
	base := time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC)

	oldest := completedMatch(teamID, primitive.NewObjectID(), "Oldest Opponents", base)
	middle := completedMatch(teamID, primitive.NewObjectID(), "Middle Opponents", base.Add(3*time.Hour))
	newest := completedMatch(teamID, primitive.NewObjectID(), "Newest Opponents", base.Add(6*time.Hour))

	// Middle already covered; listed out of order on purpose.
	matches := &mockMatchFinder{matches: []models.Match{newest, middle, oldest}}
	scores := &mockScoreFinder{scores: []models.SpiritScore{
		{MatchID: middle.ID, ScoringTeamID: teamID},
	}}
	gate := NewGate(matches, scores)

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	assert.False(t, result.CanPlay)
	assert.Equal(t, 2, result.PendingCount)
	require.Len(t, result.PendingScores, 2)
	assert.Equal(t, oldest.ID, result.PendingScores[0].MatchID, "oldest unresolved obligation first")
	assert.Equal(t, newest.ID, result.PendingScores[1].MatchID)
}

func TestGate_CheckEligibility_SingleUncoveredAmongCovered(t *testing.T) {
	teamID := primitive.NewObjectID()
	base := time.Now().UTC().Truncate(time.Second)

	m1 := completedMatch(teamID, primitive.NewObjectID(), "First", base)
	m2 := completedMatch(teamID, primitive.NewObjectID(), "Second", base.Add(time.Hour))
	m3 := completedMatch(teamID, primitive.NewObjectID(), "Third", base.Add(2*time.Hour))

	scores := &mockScoreFinder{scores: []models.SpiritScore{
		{MatchID: m1.ID, ScoringTeamID: teamID},
		{MatchID: m3.ID, ScoringTeamID: teamID},
	}}
	gate := NewGate(&mockMatchFinder{matches: []models.Match{m1, m2, m3}}, scores)

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.PendingCount)
	require.Len(t, result.PendingScores, 1)
	assert.Equal(t, m2.ID, result.PendingScores[0].MatchID)
}

func TestGate_CheckEligibility_StrayScoreDoesNotCover(t *testing.T) {
	teamID := primitive.NewObjectID()
	match := completedMatch(teamID, primitive.NewObjectID(), "Bristol Breezers", time.Now())

	// A score referencing some unrelated match must not cover the real one.
	scores := &mockScoreFinder{scores: []models.SpiritScore{
		{MatchID: primitive.NewObjectID(), ScoringTeamID: teamID},
	}}
	gate := NewGate(&mockMatchFinder{matches: []models.Match{match}}, scores)

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	assert.False(t, result.CanPlay)
	assert.Equal(t, 1, result.PendingCount)
}

func TestGate_CheckEligibility_DuplicateScoresTolerated(t *testing.T) {
	teamID := primitive.NewObjectID()
	match := completedMatch(teamID, primitive.NewObjectID(), "Bristol Breezers", time.Now())

	scores := &mockScoreFinder{scores: []models.SpiritScore{
		{MatchID: match.ID, ScoringTeamID: teamID},
		{MatchID: match.ID, ScoringTeamID: teamID},
	}}
	gate := NewGate(&mockMatchFinder{matches: []models.Match{match}}, scores)

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	assert.True(t, result.CanPlay)
	assert.Equal(t, 0, result.PendingCount)
}

func TestGate_CheckEligibility_CancelledMatchNeverBlocks(t *testing.T) {
	teamID := primitive.NewObjectID()
	cancelled := completedMatch(teamID, primitive.NewObjectID(), "Bristol Breezers", time.Now())
	cancelled.Status = models.MatchCancelled

	gate := NewGate(&mockMatchFinder{matches: []models.Match{cancelled}}, &mockScoreFinder{})

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	assert.True(t, result.CanPlay)
	assert.Empty(t, result.PendingScores)
}

func TestGate_CheckEligibility_TeamOnEitherSide(t *testing.T) {
	teamID := primitive.NewObjectID()
	opponentID := primitive.NewObjectID()

	// Team played as teamB this time.
	match := models.Match{
		ID:            primitive.NewObjectID(),
		TeamA:         models.MatchSide{ID: opponentID, Name: "Hosts"},
		TeamB:         models.MatchSide{ID: teamID, Name: "Us"},
		Status:        models.MatchCompleted,
		ScheduledTime: time.Now(),
	}
	gate := NewGate(&mockMatchFinder{matches: []models.Match{match}}, &mockScoreFinder{})

	result, err := gate.CheckEligibility(context.Background(), teamID)

	require.NoError(t, err)
	require.Len(t, result.PendingScores, 1)
	assert.Equal(t, opponentID, result.PendingScores[0].OpponentID)
	assert.Equal(t, "Hosts", result.PendingScores[0].OpponentName)
}

func TestGate_CheckEligibility_RepositoryErrorsPropagate(t *testing.T) {
	teamID := primitive.NewObjectID()
	dbError := errors.New("storage unavailable")

	t.Run("match lookup failure", func(t *testing.T) {
		gate := NewGate(&mockMatchFinder{err: dbError}, &mockScoreFinder{})

		result, err := gate.CheckEligibility(context.Background(), teamID)

		assert.Nil(t, result, "an unavailable dependency must never read as eligible")
		assert.Equal(t, dbError, err)
	})

	t.Run("score lookup failure", func(t *testing.T) {
		match := completedMatch(teamID, primitive.NewObjectID(), "Bristol Breezers", time.Now())
		gate := NewGate(&mockMatchFinder{matches: []models.Match{match}}, &mockScoreFinder{err: dbError})

		result, err := gate.CheckEligibility(context.Background(), teamID)

		assert.Nil(t, result)
		assert.Equal(t, dbError, err)
	})
}
