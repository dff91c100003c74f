// Package eligibility decides whether a team may be entered into a new match.
// A team that has completed matches without submitting the required spirit
// score for each opponent is blocked until the obligations are resolved.
package eligibility

import (
	"context"
	"sort"

	"ultihub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchFinder is the interface the gate needs to look up a team's completed
// matches. This keeps the gate decoupled from the full repository.
type MatchFinder interface {
	FindCompletedByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.Match, error)
}

// SpiritScoreFinder looks up the spirit scores a team has submitted.
type SpiritScoreFinder interface {
	FindByScoringTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.SpiritScore, error)
}

// Gate computes spirit-score eligibility from repository query results. It has
// no state of its own; both lookups are read-only and the combination is pure.
type Gate struct {
	matches MatchFinder
	scores  SpiritScoreFinder
}

// NewGate creates a new Gate.
func NewGate(matches MatchFinder, scores SpiritScoreFinder) *Gate {
	return &Gate{matches: matches, scores: scores}
}

// CheckEligibility returns the team's outstanding spirit-score obligations.
// A repository failure propagates as an error; an unavailable lookup is never
// interpreted as "no obligations".
//
// Only completed matches generate obligations, so cancelled matches never
// block a team. A submitted score whose matchId is not among the team's
// completed matches is ignored; it cannot cover an unrelated obligation.
// Duplicate scores for one match are tolerated by coverage.
func (g *Gate) CheckEligibility(ctx context.Context, teamID primitive.ObjectID) (*models.EligibilityResult, error) {
	completed, err := g.matches.FindCompletedByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	submitted, err := g.scores.FindByScoringTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	covered := make(map[primitive.ObjectID]struct{}, len(submitted))
	for _, s := range submitted {
		covered[s.MatchID] = struct{}{}
	}

	var pending []models.PendingScore
	for _, m := range completed {
		if m.Status != models.MatchCompleted {
			continue
		}
		if _, ok := covered[m.ID]; ok {
			continue
		}
		opponent, ok := m.Opponent(teamID)
		if !ok {
			// Stale query result that does not involve the team at all.
			continue
		}
		pending = append(pending, models.PendingScore{
			MatchID:       m.ID,
			OpponentID:    opponent.ID,
			OpponentName:  opponent.Name,
			ScheduledTime: m.ScheduledTime,
		})
	}

	// Oldest unresolved obligation first.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ScheduledTime.Before(pending[j].ScheduledTime)
	})

	if pending == nil {
		pending = []models.PendingScore{}
	}

	return &models.EligibilityResult{
		TeamID:        teamID,
		CanPlay:       len(pending) == 0,
		PendingCount:  len(pending),
		PendingScores: pending,
	}, nil
}
