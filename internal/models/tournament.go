package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tournament represents a tournament in the system.
type Tournament struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name       string             `json:"name" bson:"name" example:"Sandsplash Open 2026"`
	Slug       string             `json:"slug" bson:"slug" example:"sandsplash-open-2026"`
	Location   string             `json:"location" bson:"location" example:"Riverside Fields, Portland"`
	StartDate  time.Time          `json:"startDate" bson:"startDate" example:"2026-06-12T09:00:00Z"`
	EndDate    time.Time          `json:"endDate" bson:"endDate" example:"2026-06-14T18:00:00Z"`
	DirectorID primitive.ObjectID `json:"directorId" bson:"directorId" example:"507f1f77bcf86cd799439012"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt" example:"2026-03-15T09:30:00Z"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt" example:"2026-03-15T09:30:00Z"`
}

// CreateTournamentRequest is the payload for creating a tournament.
type CreateTournamentRequest struct {
	Name      string    `json:"name" binding:"required,min=3,max=120" example:"Sandsplash Open 2026"`
	Location  string    `json:"location" binding:"required,min=2,max=200" example:"Riverside Fields, Portland"`
	StartDate time.Time `json:"startDate" binding:"required" example:"2026-06-12T09:00:00Z"`
	EndDate   time.Time `json:"endDate" binding:"required,gtefield=StartDate" example:"2026-06-14T18:00:00Z"`
}

// UpdateTournamentRequest is the payload for updating a tournament.
type UpdateTournamentRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=3,max=120" example:"Sandsplash Open 2026"`
	Location  *string    `json:"location" binding:"omitempty,min=2,max=200" example:"Riverside Fields"`
	StartDate *time.Time `json:"startDate" binding:"omitempty" example:"2026-06-12T09:00:00Z"`
	EndDate   *time.Time `json:"endDate" binding:"omitempty" example:"2026-06-14T18:00:00Z"`
}

// TournamentListResponse is the response for listing tournaments.
type TournamentListResponse struct {
	Items      []Tournament `json:"items"`
	Pagination Pagination   `json:"pagination"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}
