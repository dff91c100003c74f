package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Spirit sub-scores are each graded on the WFDF 0-4 scale.
const (
	SpiritSubScoreMin = 0
	SpiritSubScoreMax = 4
)

// SpiritScore is one team's sportsmanship evaluation of its opponent after a
// completed match. At most one exists per (matchId, scoringTeamId); it is never
// mutated after creation.
type SpiritScore struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	MatchID          primitive.ObjectID `json:"matchId" bson:"matchId" example:"507f1f77bcf86cd799439012"`
	ScoredTeamID     primitive.ObjectID `json:"scoredTeamId" bson:"scoredTeamId" example:"507f1f77bcf86cd799439013"`
	ScoringTeamID    primitive.ObjectID `json:"scoringTeamId" bson:"scoringTeamId" example:"507f1f77bcf86cd799439014"`
	RulesKnowledge   int                `json:"rulesKnowledge" bson:"rulesKnowledge" example:"2"`
	FoulsAndContact  int                `json:"foulsAndContact" bson:"foulsAndContact" example:"2"`
	FairMindedness   int                `json:"fairMindedness" bson:"fairMindedness" example:"3"`
	PositiveAttitude int                `json:"positiveAttitude" bson:"positiveAttitude" example:"2"`
	Communication    int                `json:"communication" bson:"communication" example:"2"`
	TotalScore       int                `json:"totalScore" bson:"totalScore" example:"11"`
	Comment          string             `json:"comment,omitempty" bson:"comment,omitempty" example:"Great spirit circle after the game"`
	SubmittedAt      time.Time          `json:"submittedAt" bson:"submittedAt" example:"2026-06-12T13:00:00Z"`
}

// SubScores returns the five category scores in a fixed order.
func (s *SpiritScore) SubScores() [5]int {
	return [5]int{s.RulesKnowledge, s.FoulsAndContact, s.FairMindedness, s.PositiveAttitude, s.Communication}
}

// CreateSpiritScoreRequest is the payload for submitting a spirit score.
// Sub-scores outside [0,4] are rejected by binding, never clamped.
type CreateSpiritScoreRequest struct {
	MatchID          string `json:"matchId" binding:"required" example:"507f1f77bcf86cd799439012"`
	RulesKnowledge   int    `json:"rulesKnowledge" binding:"gte=0,lte=4" example:"2"`
	FoulsAndContact  int    `json:"foulsAndContact" binding:"gte=0,lte=4" example:"2"`
	FairMindedness   int    `json:"fairMindedness" binding:"gte=0,lte=4" example:"3"`
	PositiveAttitude int    `json:"positiveAttitude" binding:"gte=0,lte=4" example:"2"`
	Communication    int    `json:"communication" binding:"gte=0,lte=4" example:"2"`
	Comment          string `json:"comment" binding:"omitempty,max=1000" example:"Great spirit circle after the game"`
}

// PendingScore describes one outstanding spirit-score obligation.
type PendingScore struct {
	MatchID       primitive.ObjectID `json:"matchId" example:"507f1f77bcf86cd799439012"`
	OpponentID    primitive.ObjectID `json:"opponentId" example:"507f1f77bcf86cd799439013"`
	OpponentName  string             `json:"opponentName" example:"Bristol Breezers"`
	ScheduledTime time.Time          `json:"scheduledTime" example:"2026-06-12T10:30:00Z"`
}

// EligibilityResult is the outcome of a team eligibility check. A team with
// pending obligations may not be entered into a new match.
type EligibilityResult struct {
	TeamID        primitive.ObjectID `json:"teamId" example:"507f1f77bcf86cd799439014"`
	CanPlay       bool               `json:"canPlay" example:"false"`
	PendingCount  int                `json:"pendingCount" example:"1"`
	PendingScores []PendingScore     `json:"pendingScores"`
}

// SpiritScoreListResponse is the response for listing spirit scores.
type SpiritScoreListResponse struct {
	Items []SpiritScore `json:"items"`
}

// SpiritLeaderboardEntry is one row of a tournament spirit leaderboard.
type SpiritLeaderboardEntry struct {
	TeamID          primitive.ObjectID `json:"teamId" bson:"_id" example:"507f1f77bcf86cd799439014"`
	TeamName        string             `json:"teamName" bson:"teamName" example:"Bristol Breezers"`
	ScoresReceived  int                `json:"scoresReceived" bson:"scoresReceived" example:"5"`
	AverageTotal    float64            `json:"averageTotal" bson:"averageTotal" example:"11.4"`
	AvgRules        float64            `json:"avgRulesKnowledge" bson:"avgRules" example:"2.2"`
	AvgFouls        float64            `json:"avgFoulsAndContact" bson:"avgFouls" example:"2.4"`
	AvgFairness     float64            `json:"avgFairMindedness" bson:"avgFairness" example:"2.0"`
	AvgAttitude     float64            `json:"avgPositiveAttitude" bson:"avgAttitude" example:"2.6"`
	AvgComms        float64            `json:"avgCommunication" bson:"avgComms" example:"2.2"`
}

// SpiritLeaderboardResponse is the response for a tournament spirit leaderboard.
type SpiritLeaderboardResponse struct {
	TournamentID primitive.ObjectID       `json:"tournamentId" example:"507f1f77bcf86cd799439012"`
	Entries      []SpiritLeaderboardEntry `json:"entries"`
}
