package service

import (
	"context"
	"fmt"
	"log"

	"ultihub/internal/eligibility"
	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/queue"
	"ultihub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EligibilityError reports a team blocked from match entry by outstanding
// spirit-score obligations. It unwraps to ErrTeamNotEligible so callers can
// match with errors.Is, and carries the obligations for the response payload.
type EligibilityError struct {
	Result *models.EligibilityResult
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("team %s has %d pending spirit scores", e.Result.TeamID.Hex(), e.Result.PendingCount)
}

func (e *EligibilityError) Unwrap() error {
	return apperrors.ErrTeamNotEligible
}

// MatchService handles match scheduling and scoring business logic.
type MatchService struct {
	matchRepo  repository.MatchRepository
	teamRepo   repository.TeamRepository
	gate       *eligibility.Gate
	eventQueue queue.Queue
}

// NewMatchService creates a new MatchService.
func NewMatchService(matchRepo repository.MatchRepository, teamRepo repository.TeamRepository, gate *eligibility.Gate, eventQueue queue.Queue) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		gate:       gate,
		eventQueue: eventQueue,
	}
}

// validTransitions is the match lifecycle. Completed and cancelled are
// terminal; completed matches change only through CorrectMatch.
var validTransitions = map[models.MatchStatus][]models.MatchStatus{
	models.MatchScheduled: {models.MatchLive, models.MatchCancelled},
	models.MatchLive:      {models.MatchCompleted, models.MatchCancelled},
}

func transitionAllowed(from, to models.MatchStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ScheduleMatch creates a match between two approved teams of a tournament.
// Both teams must pass the spirit-score eligibility gate.
func (s *MatchService) ScheduleMatch(ctx context.Context, tournamentID primitive.ObjectID, req *models.CreateMatchRequest) (*models.Match, error) {
	teamA, err := s.resolveTeam(ctx, tournamentID, req.TeamAID)
	if err != nil {
		return nil, err
	}
	teamB, err := s.resolveTeam(ctx, tournamentID, req.TeamBID)
	if err != nil {
		return nil, err
	}

	for _, team := range []*models.Team{teamA, teamB} {
		result, err := s.gate.CheckEligibility(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		if !result.CanPlay {
			return nil, &EligibilityError{Result: result}
		}
	}

	match := &models.Match{
		TournamentID:  tournamentID,
		TeamA:         models.MatchSide{ID: teamA.ID, Name: teamA.Name},
		TeamB:         models.MatchSide{ID: teamB.ID, Name: teamB.Name},
		Field:         req.Field,
		ScheduledTime: req.ScheduledTime,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}

	s.emit(models.NewMatchEvent(models.EventMatchScheduled, tournamentID, match.ID, match))
	return match, nil
}

// GetMatch retrieves a match by ID.
func (s *MatchService) GetMatch(ctx context.Context, matchID primitive.ObjectID) (*models.Match, error) {
	return s.matchRepo.FindByID(ctx, matchID)
}

// ListMatches returns paginated matches of a tournament.
func (s *MatchService) ListMatches(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) (*models.MatchListResponse, error) {
	matches, total, err := s.matchRepo.FindByTournament(ctx, tournamentID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.MatchListResponse{
		Items:      matches,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// UpdateScore records the current score of a live match. Completed and
// cancelled matches reject score updates.
func (s *MatchService) UpdateScore(ctx context.Context, matchID primitive.ObjectID, req *models.UpdateScoreRequest) (*models.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.Status != models.MatchLive {
		return nil, apperrors.ErrMatchCompleted
	}

	if err := s.matchRepo.UpdateScore(ctx, matchID, req.ScoreA, req.ScoreB); err != nil {
		return nil, err
	}

	match.ScoreA = req.ScoreA
	match.ScoreB = req.ScoreB

	s.emit(models.NewMatchEvent(models.EventMatchScore, match.TournamentID, match.ID, map[string]int{
		"scoreA": match.ScoreA,
		"scoreB": match.ScoreB,
	}))
	return match, nil
}

// UpdateStatus applies a lifecycle transition.
func (s *MatchService) UpdateStatus(ctx context.Context, matchID primitive.ObjectID, req *models.UpdateMatchStatusRequest) (*models.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(match.Status, req.Status) {
		return nil, apperrors.ErrInvalidMatchTransition
	}

	if err := s.matchRepo.UpdateStatus(ctx, matchID, req.Status); err != nil {
		return nil, err
	}

	match.Status = req.Status

	s.emit(models.NewMatchEvent(models.EventMatchStatus, match.TournamentID, match.ID, map[string]string{
		"status": string(match.Status),
	}))
	return match, nil
}

// CorrectMatch adjusts the final score of a completed match.
func (s *MatchService) CorrectMatch(ctx context.Context, matchID primitive.ObjectID, req *models.CorrectMatchRequest) (*models.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.Status != models.MatchCompleted {
		return nil, apperrors.ErrMatchNotCompleted
	}

	scoreA := match.ScoreA
	scoreB := match.ScoreB
	if req.ScoreA != nil {
		scoreA = *req.ScoreA
	}
	if req.ScoreB != nil {
		scoreB = *req.ScoreB
	}

	if err := s.matchRepo.UpdateScore(ctx, matchID, scoreA, scoreB); err != nil {
		return nil, err
	}

	match.ScoreA = scoreA
	match.ScoreB = scoreB

	s.emit(models.NewMatchEvent(models.EventMatchScore, match.TournamentID, match.ID, map[string]int{
		"scoreA": match.ScoreA,
		"scoreB": match.ScoreB,
	}))
	return match, nil
}

// CheckEligibility reports a team's outstanding spirit-score obligations.
func (s *MatchService) CheckEligibility(ctx context.Context, teamID primitive.ObjectID) (*models.EligibilityResult, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.gate.CheckEligibility(ctx, teamID)
}

// resolveTeam loads a team and verifies it may be scheduled in the tournament.
func (s *MatchService) resolveTeam(ctx context.Context, tournamentID primitive.ObjectID, id string) (*models.Team, error) {
	teamID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.TournamentID != tournamentID {
		return nil, apperrors.ErrTeamNotFound
	}
	if team.Status != models.TeamApproved {
		return nil, apperrors.ErrTeamNotApproved
	}
	return team, nil
}

// emit queues an event for broadcast. Queue pressure is logged, not surfaced.
func (s *MatchService) emit(event models.MatchEvent) {
	if s.eventQueue == nil {
		return
	}
	if err := s.eventQueue.Enqueue(queue.EventJob{Event: event}); err != nil {
		log.Printf("Failed to enqueue event %s: %v", event.ID, err)
	}
}
