package service

import (
	"context"
	"errors"
	"log"
	"time"

	"ultihub/internal/cache"
	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/queue"
	"ultihub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaderboardCacheTTL is how long a computed leaderboard is served from cache.
// New submissions invalidate it immediately, so the TTL only bounds staleness
// after a cache delete failure.
const LeaderboardCacheTTL = 5 * time.Minute

// SpiritScoreService handles spirit score submission and reporting.
type SpiritScoreService struct {
	spiritRepo repository.SpiritScoreRepository
	matchRepo  repository.MatchRepository
	teamRepo   repository.TeamRepository
	rosterRepo repository.RosterRepository
	cache      cache.Cache
	eventQueue queue.Queue
}

// NewSpiritScoreService creates a new SpiritScoreService.
func NewSpiritScoreService(
	spiritRepo repository.SpiritScoreRepository,
	matchRepo repository.MatchRepository,
	teamRepo repository.TeamRepository,
	rosterRepo repository.RosterRepository,
	cacheClient cache.Cache,
	eventQueue queue.Queue,
) *SpiritScoreService {
	return &SpiritScoreService{
		spiritRepo: spiritRepo,
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		rosterRepo: rosterRepo,
		cache:      cacheClient,
		eventQueue: eventQueue,
	}
}

// SubmitScore records teamID's evaluation of its opponent in a completed
// match. The actor must manage the team or be on its roster.
func (s *SpiritScoreService) SubmitScore(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateSpiritScoreRequest) (*models.SpiritScore, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeSubmitter(ctx, team, actorID); err != nil {
		return nil, err
	}

	matchID, err := primitive.ObjectIDFromHex(req.MatchID)
	if err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	opponent, played := match.Opponent(teamID)
	if !played {
		return nil, apperrors.ErrTeamNotInMatch
	}
	if match.Status != models.MatchCompleted {
		return nil, apperrors.ErrMatchNotCompleted
	}

	score := &models.SpiritScore{
		MatchID:          matchID,
		ScoredTeamID:     opponent.ID,
		ScoringTeamID:    teamID,
		RulesKnowledge:   req.RulesKnowledge,
		FoulsAndContact:  req.FoulsAndContact,
		FairMindedness:   req.FairMindedness,
		PositiveAttitude: req.PositiveAttitude,
		Communication:    req.Communication,
		Comment:          req.Comment,
	}

	total := 0
	for _, sub := range score.SubScores() {
		if sub < models.SpiritSubScoreMin || sub > models.SpiritSubScoreMax {
			return nil, apperrors.ErrInvalidSubScore
		}
		total += sub
	}
	score.TotalScore = total

	// Write-time duplicate check; the unique (matchId, scoringTeamId) index
	// still backs this against concurrent submissions.
	if _, err := s.spiritRepo.FindByMatchAndScoringTeam(ctx, matchID, teamID); err == nil {
		return nil, apperrors.ErrDuplicateSpiritScore
	} else if !errors.Is(err, apperrors.ErrSpiritScoreNotFound) {
		return nil, err
	}

	if err := s.spiritRepo.Create(ctx, score); err != nil {
		return nil, err
	}

	s.invalidateLeaderboard(ctx, match.TournamentID)
	s.emit(models.NewMatchEvent(models.EventSpiritSubmitted, match.TournamentID, matchID, map[string]string{
		"scoringTeamId": teamID.Hex(),
		"scoredTeamId":  opponent.ID.Hex(),
	}))
	return score, nil
}

// ListByMatch returns all spirit scores submitted for a match.
func (s *SpiritScoreService) ListByMatch(ctx context.Context, matchID primitive.ObjectID) (*models.SpiritScoreListResponse, error) {
	if _, err := s.matchRepo.FindByID(ctx, matchID); err != nil {
		return nil, err
	}

	scores, err := s.spiritRepo.FindByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	return &models.SpiritScoreListResponse{Items: scores}, nil
}

// ListReceived returns the spirit scores a team has received, newest first.
func (s *SpiritScoreService) ListReceived(ctx context.Context, teamID primitive.ObjectID) (*models.SpiritScoreListResponse, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	scores, err := s.spiritRepo.FindByScoredTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &models.SpiritScoreListResponse{Items: scores}, nil
}

// Leaderboard returns a tournament's spirit leaderboard, served from cache
// when a fresh copy exists.
func (s *SpiritScoreService) Leaderboard(ctx context.Context, tournamentID primitive.ObjectID) (*models.SpiritLeaderboardResponse, error) {
	cacheKey := cache.LeaderboardCacheKey(tournamentID.Hex())

	var cached models.SpiritLeaderboardResponse
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Printf("Failed to read leaderboard cache for tournament %s: %v", tournamentID.Hex(), err)
	}
	if found {
		return &cached, nil
	}

	entries, err := s.spiritRepo.Leaderboard(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	response := &models.SpiritLeaderboardResponse{
		TournamentID: tournamentID,
		Entries:      entries,
	}

	if err := s.cache.Set(ctx, cacheKey, response, LeaderboardCacheTTL); err != nil {
		log.Printf("Failed to cache leaderboard for tournament %s: %v", tournamentID.Hex(), err)
	}
	return response, nil
}

// authorizeSubmitter checks that actorID manages the team or is rostered on it.
func (s *SpiritScoreService) authorizeSubmitter(ctx context.Context, team *models.Team, actorID primitive.ObjectID) error {
	if team.ManagerID == actorID {
		return nil
	}

	roster, err := s.rosterRepo.FindByTeam(ctx, team.ID)
	if err != nil {
		return err
	}
	for _, entry := range roster {
		if entry.UserID == actorID {
			return nil
		}
	}
	return apperrors.ErrNotTeamManager
}

func (s *SpiritScoreService) invalidateLeaderboard(ctx context.Context, tournamentID primitive.ObjectID) {
	key := cache.LeaderboardCacheKey(tournamentID.Hex())
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Printf("Failed to invalidate leaderboard cache %s: %v", key, err)
	}
}

func (s *SpiritScoreService) emit(event models.MatchEvent) {
	if s.eventQueue == nil {
		return
	}
	if err := s.eventQueue.Enqueue(queue.EventJob{Event: event}); err != nil {
		log.Printf("Failed to enqueue event %s: %v", event.ID, err)
	}
}
