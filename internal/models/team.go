package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamStatus represents the registration state of a team within a tournament.
type TeamStatus string

const (
	// TeamPending indicates the team registered and awaits director review.
	TeamPending TeamStatus = "pending"
	// TeamApproved indicates the team may be scheduled into matches.
	TeamApproved TeamStatus = "approved"
	// TeamRejected indicates the registration was declined.
	TeamRejected TeamStatus = "rejected"
)

// Team represents a team registered for a tournament. Status is mutated only
// by a tournament director.
type Team struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name         string             `json:"name" bson:"name" example:"Bristol Breezers"`
	Slug         string             `json:"slug" bson:"slug" example:"bristol-breezers"`
	TournamentID primitive.ObjectID `json:"tournamentId" bson:"tournamentId" example:"507f1f77bcf86cd799439012"`
	ManagerID    primitive.ObjectID `json:"managerId" bson:"managerId" example:"507f1f77bcf86cd799439013"`
	Status       TeamStatus         `json:"status" bson:"status" example:"approved"`
	LogoKey      string             `json:"-" bson:"logoKey"` // S3 key, not exposed in JSON
	LogoURL      string             `json:"logoUrl,omitempty" bson:"-" example:"https://bucket.s3.amazonaws.com/logos/breezers.png?X-Amz-Signature=..."`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt" example:"2026-03-15T09:30:00Z"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt" example:"2026-03-15T09:30:00Z"`
}

// RosterPlayer represents a player's membership on a team roster.
type RosterPlayer struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID       primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	JerseyNumber int                `json:"jerseyNumber" bson:"jerseyNumber" example:"23"`
	JoinedAt     time.Time          `json:"joinedAt" bson:"joinedAt" example:"2026-03-15T09:30:00Z"`
}

// RosterPlayerWithUser is a roster entry with expanded user information.
type RosterPlayerWithUser struct {
	ID           primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	TeamID       primitive.ObjectID `json:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID       primitive.ObjectID `json:"userId" example:"507f1f77bcf86cd799439013"`
	User         *UserSummary       `json:"user,omitempty"`
	JerseyNumber int                `json:"jerseyNumber" example:"23"`
	JoinedAt     time.Time          `json:"joinedAt" example:"2026-03-15T09:30:00Z"`
}

// RegisterTeamRequest is the payload for registering a team for a tournament.
type RegisterTeamRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"Bristol Breezers"`
}

// ReviewTeamRequest is the payload for approving or rejecting a registration.
type ReviewTeamRequest struct {
	Status TeamStatus `json:"status" binding:"required,oneof=approved rejected" example:"approved"`
}

// AddRosterPlayerRequest is the payload for adding a player to a roster.
type AddRosterPlayerRequest struct {
	UserID       string `json:"userId" binding:"required" example:"507f1f77bcf86cd799439013"`
	JerseyNumber int    `json:"jerseyNumber" binding:"gte=0,lte=99" example:"23"`
}

// TeamLogoUploadRequest is the payload for requesting a logo upload URL.
type TeamLogoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=image/png image/jpeg image/svg+xml" example:"image/png"`
}

// TeamLogoUploadResponse carries the pre-signed upload URL for a team logo.
type TeamLogoUploadResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://s3.amazonaws.com/bucket/logos/...?X-Amz-Algorithm=..."`
	LogoKey   string `json:"logoKey" example:"logos/507f1f77bcf86cd799439011.png"`
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items      []Team     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// RosterListResponse is the response for listing a team roster.
type RosterListResponse struct {
	Items []RosterPlayerWithUser `json:"items"`
}
