// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrUnknownRole         = errors.New("unknown role")
	ErrForbidden           = errors.New("insufficient permissions")
)

// Tournament errors
var (
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrTournamentSlugTaken = errors.New("tournament slug is already taken")
)

// Team errors
var (
	ErrTeamNotFound        = errors.New("team not found")
	ErrTeamSlugTaken       = errors.New("team name is already taken in this tournament")
	ErrTeamNotApproved     = errors.New("team is not approved for this tournament")
	ErrTeamAlreadyReviewed = errors.New("team registration has already been reviewed")
	ErrNotTeamManager      = errors.New("you do not manage this team")
	ErrPlayerAlreadyOnRoster = errors.New("player is already on the roster")
	ErrRosterPlayerNotFound  = errors.New("player is not on the roster")
)

// Match errors
var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrInvalidMatchTransition = errors.New("invalid match status transition")
	ErrMatchNotCompleted      = errors.New("match is not completed")
	ErrMatchCompleted         = errors.New("completed match can only be changed by a director correction")
	ErrTeamNotInMatch         = errors.New("team did not play this match")
	ErrTeamNotEligible        = errors.New("team has pending spirit scores")
)

// Spirit score errors
var (
	ErrSpiritScoreNotFound  = errors.New("spirit score not found")
	ErrDuplicateSpiritScore = errors.New("spirit score already submitted for this match")
	ErrInvalidSubScore      = errors.New("spirit sub-scores must be between 0 and 4")
)

// Programme errors
var (
	ErrProgrammeNotFound       = errors.New("programme not found")
	ErrProgrammeSlugTaken      = errors.New("programme slug is already taken")
	ErrAttendanceAlreadyTaken  = errors.New("attendance already recorded for this player and session")
	ErrAttendanceNotFound      = errors.New("attendance record not found")
)
