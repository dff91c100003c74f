package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchEventType classifies a realtime match event.
type MatchEventType string

const (
	// EventMatchScheduled is emitted when a match is created.
	EventMatchScheduled MatchEventType = "match.scheduled"
	// EventMatchStatus is emitted on a status transition.
	EventMatchStatus MatchEventType = "match.status"
	// EventMatchScore is emitted on a score update.
	EventMatchScore MatchEventType = "match.score"
	// EventSpiritSubmitted is emitted when a spirit score is recorded.
	EventSpiritSubmitted MatchEventType = "spirit.submitted"
)

// MatchEvent is the envelope broadcast to tournament subscribers. Payload is
// the event-specific body and must be JSON-serializable.
type MatchEvent struct {
	ID           string             `json:"id"`
	Type         MatchEventType     `json:"type"`
	TournamentID primitive.ObjectID `json:"tournamentId"`
	MatchID      primitive.ObjectID `json:"matchId"`
	Payload      interface{}        `json:"payload,omitempty"`
	OccurredAt   time.Time          `json:"occurredAt"`
}

// NewMatchEvent builds an event envelope with a fresh ID and timestamp.
func NewMatchEvent(eventType MatchEventType, tournamentID, matchID primitive.ObjectID, payload interface{}) MatchEvent {
	return MatchEvent{
		ID:           uuid.NewString(),
		Type:         eventType,
		TournamentID: tournamentID,
		MatchID:      matchID,
		Payload:      payload,
		OccurredAt:   time.Now(),
	}
}
