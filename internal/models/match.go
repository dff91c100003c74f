package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchStatus represents the lifecycle state of a match.
type MatchStatus string

const (
	// MatchScheduled indicates the match has a slot but has not started.
	MatchScheduled MatchStatus = "scheduled"
	// MatchLive indicates the match is in progress.
	MatchLive MatchStatus = "live"
	// MatchCompleted indicates the match finished. Completed matches are
	// immutable except for director corrections.
	MatchCompleted MatchStatus = "completed"
	// MatchCancelled indicates the match will not be played.
	MatchCancelled MatchStatus = "cancelled"
)

// MatchSide is a denormalized team reference embedded in a match document.
type MatchSide struct {
	ID   primitive.ObjectID `json:"id" bson:"id" example:"507f1f77bcf86cd799439012"`
	Name string             `json:"name" bson:"name" example:"Bristol Breezers"`
}

// Match represents a single game between two teams.
type Match struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TournamentID  primitive.ObjectID `json:"tournamentId" bson:"tournamentId" example:"507f1f77bcf86cd799439012"`
	TeamA         MatchSide          `json:"teamA" bson:"teamA"`
	TeamB         MatchSide          `json:"teamB" bson:"teamB"`
	Status        MatchStatus        `json:"status" bson:"status" example:"scheduled"`
	ScoreA        int                `json:"scoreA" bson:"scoreA" example:"13"`
	ScoreB        int                `json:"scoreB" bson:"scoreB" example:"11"`
	Field         string             `json:"field" bson:"field" example:"Field 3"`
	ScheduledTime time.Time          `json:"scheduledTime" bson:"scheduledTime" example:"2026-06-12T10:30:00Z"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt" example:"2026-06-01T09:30:00Z"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt" example:"2026-06-12T12:05:00Z"`
}

// Opponent returns the side of the match that is not teamID. The second return
// value is false when teamID played neither side.
func (m *Match) Opponent(teamID primitive.ObjectID) (MatchSide, bool) {
	switch teamID {
	case m.TeamA.ID:
		return m.TeamB, true
	case m.TeamB.ID:
		return m.TeamA, true
	}
	return MatchSide{}, false
}

// CreateMatchRequest is the payload for scheduling a match.
type CreateMatchRequest struct {
	TeamAID       string    `json:"teamAId" binding:"required" example:"507f1f77bcf86cd799439012"`
	TeamBID       string    `json:"teamBId" binding:"required,nefield=TeamAID" example:"507f1f77bcf86cd799439013"`
	Field         string    `json:"field" binding:"omitempty,max=60" example:"Field 3"`
	ScheduledTime time.Time `json:"scheduledTime" binding:"required" example:"2026-06-12T10:30:00Z"`
}

// UpdateScoreRequest is the payload for reporting a score.
type UpdateScoreRequest struct {
	ScoreA int `json:"scoreA" binding:"gte=0,lte=100" example:"13"`
	ScoreB int `json:"scoreB" binding:"gte=0,lte=100" example:"11"`
}

// UpdateMatchStatusRequest is the payload for a status transition.
type UpdateMatchStatusRequest struct {
	Status MatchStatus `json:"status" binding:"required,oneof=scheduled live completed cancelled" example:"live"`
}

// CorrectMatchRequest is the payload for a director correction of a completed
// match.
type CorrectMatchRequest struct {
	ScoreA *int `json:"scoreA" binding:"omitempty,gte=0,lte=100" example:"14"`
	ScoreB *int `json:"scoreB" binding:"omitempty,gte=0,lte=100" example:"12"`
}

// MatchListResponse is the response for listing matches.
type MatchListResponse struct {
	Items      []Match    `json:"items"`
	Pagination Pagination `json:"pagination"`
}
