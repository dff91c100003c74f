package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Programme represents a youth coaching programme.
type Programme struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name       string             `json:"name" bson:"name" example:"Spring Juniors 2026"`
	Slug       string             `json:"slug" bson:"slug" example:"spring-juniors-2026"`
	Season     string             `json:"season" bson:"season" example:"2026-spring"`
	DirectorID primitive.ObjectID `json:"directorId" bson:"directorId" example:"507f1f77bcf86cd799439012"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt" example:"2026-01-10T09:30:00Z"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt" example:"2026-01-10T09:30:00Z"`
}

// CreateProgrammeRequest is the payload for creating a programme.
type CreateProgrammeRequest struct {
	Name   string `json:"name" binding:"required,min=3,max=120" example:"Spring Juniors 2026"`
	Season string `json:"season" binding:"required,min=4,max=40" example:"2026-spring"`
}

// UpdateProgrammeRequest is the payload for updating a programme.
type UpdateProgrammeRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=3,max=120" example:"Spring Juniors 2026"`
	Season *string `json:"season" binding:"omitempty,min=4,max=40" example:"2026-spring"`
}

// ProgrammeListResponse is the response for listing programmes.
type ProgrammeListResponse struct {
	Items []Programme `json:"items"`
}
