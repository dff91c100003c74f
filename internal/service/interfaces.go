// Package service contains business logic for the application.
package service

import (
	"context"

	"ultihub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// TournamentServicer defines the interface for tournament operations.
type TournamentServicer interface {
	CreateTournament(ctx context.Context, directorID primitive.ObjectID, req *models.CreateTournamentRequest) (*models.Tournament, error)
	ListTournaments(ctx context.Context, page, limit int) (*models.TournamentListResponse, error)
	GetTournament(ctx context.Context, id primitive.ObjectID) (*models.Tournament, error)
	GetTournamentBySlug(ctx context.Context, slug string) (*models.Tournament, error)
	UpdateTournament(ctx context.Context, id primitive.ObjectID, req *models.UpdateTournamentRequest) (*models.Tournament, error)
}

// TeamServicer defines the interface for team and roster operations.
type TeamServicer interface {
	RegisterTeam(ctx context.Context, tournamentID, managerID primitive.ObjectID, req *models.RegisterTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	ListTeams(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	ListManagedTeams(ctx context.Context, managerID primitive.ObjectID) ([]models.Team, error)
	ReviewTeam(ctx context.Context, teamID primitive.ObjectID, req *models.ReviewTeamRequest) (*models.Team, error)
	RequestLogoUpload(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.TeamLogoUploadRequest) (*models.TeamLogoUploadResponse, error)
	AddRosterPlayer(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.AddRosterPlayerRequest) (*models.RosterPlayer, error)
	ListRoster(ctx context.Context, teamID primitive.ObjectID) (*models.RosterListResponse, error)
	RemoveRosterPlayer(ctx context.Context, teamID, actorID, userID primitive.ObjectID) error
}

// MatchServicer defines the interface for match scheduling and scoring.
type MatchServicer interface {
	ScheduleMatch(ctx context.Context, tournamentID primitive.ObjectID, req *models.CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, matchID primitive.ObjectID) (*models.Match, error)
	ListMatches(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) (*models.MatchListResponse, error)
	UpdateScore(ctx context.Context, matchID primitive.ObjectID, req *models.UpdateScoreRequest) (*models.Match, error)
	UpdateStatus(ctx context.Context, matchID primitive.ObjectID, req *models.UpdateMatchStatusRequest) (*models.Match, error)
	CorrectMatch(ctx context.Context, matchID primitive.ObjectID, req *models.CorrectMatchRequest) (*models.Match, error)
	CheckEligibility(ctx context.Context, teamID primitive.ObjectID) (*models.EligibilityResult, error)
}

// SpiritScoreServicer defines the interface for spirit score operations.
type SpiritScoreServicer interface {
	SubmitScore(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateSpiritScoreRequest) (*models.SpiritScore, error)
	ListByMatch(ctx context.Context, matchID primitive.ObjectID) (*models.SpiritScoreListResponse, error)
	ListReceived(ctx context.Context, teamID primitive.ObjectID) (*models.SpiritScoreListResponse, error)
	Leaderboard(ctx context.Context, tournamentID primitive.ObjectID) (*models.SpiritLeaderboardResponse, error)
}

// ProgrammeServicer defines the interface for coaching programme operations.
type ProgrammeServicer interface {
	CreateProgramme(ctx context.Context, directorID primitive.ObjectID, req *models.CreateProgrammeRequest) (*models.Programme, error)
	ListProgrammes(ctx context.Context) (*models.ProgrammeListResponse, error)
	GetProgramme(ctx context.Context, id primitive.ObjectID) (*models.Programme, error)
	UpdateProgramme(ctx context.Context, id primitive.ObjectID, req *models.UpdateProgrammeRequest) (*models.Programme, error)
}

// AttendanceServicer defines the interface for attendance operations.
type AttendanceServicer interface {
	RecordAttendance(ctx context.Context, programmeID, recordedBy primitive.ObjectID, req *models.RecordAttendanceRequest) (*models.AttendanceRecord, error)
	ListAttendance(ctx context.Context, programmeID primitive.ObjectID) (*models.AttendanceListResponse, error)
	PlayerAttendance(ctx context.Context, programmeID, playerID primitive.ObjectID) (*models.AttendanceListResponse, error)
	Summary(ctx context.Context, programmeID primitive.ObjectID) (*models.AttendanceSummaryResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer        = (*AuthService)(nil)
	_ UserServicer        = (*UserService)(nil)
	_ TournamentServicer  = (*TournamentService)(nil)
	_ TeamServicer        = (*TeamService)(nil)
	_ MatchServicer       = (*MatchService)(nil)
	_ SpiritScoreServicer = (*SpiritScoreService)(nil)
	_ ProgrammeServicer   = (*ProgrammeService)(nil)
	_ AttendanceServicer  = (*AttendanceService)(nil)
)
