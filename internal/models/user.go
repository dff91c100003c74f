// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system. Role is one of the authz role
// tokens and is immutable through the normal API surface.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" bson:"email" example:"captain@discmail.org"`
	Password  string             `json:"-" bson:"password"` // "-" = never include in JSON response
	Name      string             `json:"name" bson:"name" example:"Sam Torres"`
	Role      string             `json:"role" bson:"role" example:"team_manager"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2026-03-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2026-03-15T09:30:00Z"`
}

// UserSummary is a minimal user representation for embedding.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Email string             `json:"email" example:"captain@discmail.org"`
	Name  string             `json:"name" example:"Sam Torres"`
	Role  string             `json:"role" example:"player"`
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"captain@discmail.org"`
	Password string `json:"password" binding:"required,min=8" example:"hucktodeep1"`
	Name     string `json:"name" binding:"required,min=2" example:"Sam Torres"`
	Role     string `json:"role" binding:"required,role" example:"team_manager"`
}

// UpdateUserRequest is the payload for updating a user profile.
type UpdateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email" example:"new@discmail.org"`
	Name  *string `json:"name" binding:"omitempty,min=2" example:"Sam T."`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"captain@discmail.org"`
	Password string `json:"password" binding:"required" example:"hucktodeep1"`
}

// RefreshRequest is the payload for refreshing an access token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required" example:"rt_8a7b3c9d..."`
}

// LogoutRequest is the payload for logging out.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required" example:"rt_8a7b3c9d..."`
}

// AuthResponse is the response after successful login or registration.
type AuthResponse struct {
	AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	RefreshToken string `json:"refreshToken" example:"rt_8a7b3c9d..."`
	ExpiresIn    int    `json:"expiresIn" example:"900"`
	User         User   `json:"user"`
}

// RefreshResponse is the response after successful token refresh.
type RefreshResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresIn   int    `json:"expiresIn" example:"900"`
}
