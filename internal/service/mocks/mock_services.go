// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"ultihub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc  func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc   func(ctx context.Context, req *models.LogoutRequest) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc     func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsersFunc func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc  func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockTournamentService is a mock implementation of TournamentServicer.
type MockTournamentService struct {
	CreateTournamentFunc    func(ctx context.Context, directorID primitive.ObjectID, req *models.CreateTournamentRequest) (*models.Tournament, error)
	ListTournamentsFunc     func(ctx context.Context, page, limit int) (*models.TournamentListResponse, error)
	GetTournamentFunc       func(ctx context.Context, id primitive.ObjectID) (*models.Tournament, error)
	GetTournamentBySlugFunc func(ctx context.Context, slug string) (*models.Tournament, error)
	UpdateTournamentFunc    func(ctx context.Context, id primitive.ObjectID, req *models.UpdateTournamentRequest) (*models.Tournament, error)
}

func (m *MockTournamentService) CreateTournament(ctx context.Context, directorID primitive.ObjectID, req *models.CreateTournamentRequest) (*models.Tournament, error) {
	if m.CreateTournamentFunc != nil {
		return m.CreateTournamentFunc(ctx, directorID, req)
	}
	return nil, nil
}

func (m *MockTournamentService) ListTournaments(ctx context.Context, page, limit int) (*models.TournamentListResponse, error) {
	if m.ListTournamentsFunc != nil {
		return m.ListTournamentsFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *MockTournamentService) GetTournament(ctx context.Context, id primitive.ObjectID) (*models.Tournament, error) {
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTournamentService) GetTournamentBySlug(ctx context.Context, slug string) (*models.Tournament, error) {
	if m.GetTournamentBySlugFunc != nil {
		return m.GetTournamentBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockTournamentService) UpdateTournament(ctx context.Context, id primitive.ObjectID, req *models.UpdateTournamentRequest) (*models.Tournament, error) {
	if m.UpdateTournamentFunc != nil {
		return m.UpdateTournamentFunc(ctx, id, req)
	}
	return nil, nil
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	RegisterTeamFunc       func(ctx context.Context, tournamentID, managerID primitive.ObjectID, req *models.RegisterTeamRequest) (*models.Team, error)
	GetTeamFunc            func(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	ListTeamsFunc          func(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	ListManagedTeamsFunc   func(ctx context.Context, managerID primitive.ObjectID) ([]models.Team, error)
	ReviewTeamFunc         func(ctx context.Context, teamID primitive.ObjectID, req *models.ReviewTeamRequest) (*models.Team, error)
	RequestLogoUploadFunc  func(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.TeamLogoUploadRequest) (*models.TeamLogoUploadResponse, error)
	AddRosterPlayerFunc    func(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.AddRosterPlayerRequest) (*models.RosterPlayer, error)
	ListRosterFunc         func(ctx context.Context, teamID primitive.ObjectID) (*models.RosterListResponse, error)
	RemoveRosterPlayerFunc func(ctx context.Context, teamID, actorID, userID primitive.ObjectID) error
}

func (m *MockTeamService) RegisterTeam(ctx context.Context, tournamentID, managerID primitive.ObjectID, req *models.RegisterTeamRequest) (*models.Team, error) {
	if m.RegisterTeamFunc != nil {
		return m.RegisterTeamFunc(ctx, tournamentID, managerID, req)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) ListTeams(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, tournamentID, page, limit)
	}
	return nil, nil
}

func (m *MockTeamService) ListManagedTeams(ctx context.Context, managerID primitive.ObjectID) ([]models.Team, error) {
	if m.ListManagedTeamsFunc != nil {
		return m.ListManagedTeamsFunc(ctx, managerID)
	}
	return nil, nil
}

func (m *MockTeamService) ReviewTeam(ctx context.Context, teamID primitive.ObjectID, req *models.ReviewTeamRequest) (*models.Team, error) {
	if m.ReviewTeamFunc != nil {
		return m.ReviewTeamFunc(ctx, teamID, req)
	}
	return nil, nil
}

func (m *MockTeamService) RequestLogoUpload(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.TeamLogoUploadRequest) (*models.TeamLogoUploadResponse, error) {
	if m.RequestLogoUploadFunc != nil {
		return m.RequestLogoUploadFunc(ctx, teamID, actorID, req)
	}
	return nil, nil
}

func (m *MockTeamService) AddRosterPlayer(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.AddRosterPlayerRequest) (*models.RosterPlayer, error) {
	if m.AddRosterPlayerFunc != nil {
		return m.AddRosterPlayerFunc(ctx, teamID, actorID, req)
	}
	return nil, nil
}

func (m *MockTeamService) ListRoster(ctx context.Context, teamID primitive.ObjectID) (*models.RosterListResponse, error) {
	if m.ListRosterFunc != nil {
		return m.ListRosterFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) RemoveRosterPlayer(ctx context.Context, teamID, actorID, userID primitive.ObjectID) error {
	if m.RemoveRosterPlayerFunc != nil {
		return m.RemoveRosterPlayerFunc(ctx, teamID, actorID, userID)
	}
	return nil
}

// MockMatchService is a mock implementation of MatchServicer.
type MockMatchService struct {
	ScheduleMatchFunc    func(ctx context.Context, tournamentID primitive.ObjectID, req *models.CreateMatchRequest) (*models.Match, error)
	GetMatchFunc         func(ctx context.Context, matchID primitive.ObjectID) (*models.Match, error)
	ListMatchesFunc      func(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) (*models.MatchListResponse, error)
	UpdateScoreFunc      func(ctx context.Context, matchID primitive.ObjectID, req *models.UpdateScoreRequest) (*models.Match, error)
	UpdateStatusFunc     func(ctx context.Context, matchID primitive.ObjectID, req *models.UpdateMatchStatusRequest) (*models.Match, error)
	CorrectMatchFunc     func(ctx context.Context, matchID primitive.ObjectID, req *models.CorrectMatchRequest) (*models.Match, error)
	CheckEligibilityFunc func(ctx context.Context, teamID primitive.ObjectID) (*models.EligibilityResult, error)
}

func (m *MockMatchService) ScheduleMatch(ctx context.Context, tournamentID primitive.ObjectID, req *models.CreateMatchRequest) (*models.Match, error) {
	if m.ScheduleMatchFunc != nil {
		return m.ScheduleMatchFunc(ctx, tournamentID, req)
	}
	return nil, nil
}

func (m *MockMatchService) GetMatch(ctx context.Context, matchID primitive.ObjectID) (*models.Match, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, matchID)
	}
	return nil, nil
}

func (m *MockMatchService) ListMatches(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) (*models.MatchListResponse, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx, tournamentID, page, limit)
	}
	return nil, nil
}

func (m *MockMatchService) UpdateScore(ctx context.Context, matchID primitive.ObjectID, req *models.UpdateScoreRequest) (*models.Match, error) {
	if m.UpdateScoreFunc != nil {
		return m.UpdateScoreFunc(ctx, matchID, req)
	}
	return nil, nil
}

func (m *MockMatchService) UpdateStatus(ctx context.Context, matchID primitive.ObjectID, req *models.UpdateMatchStatusRequest) (*models.Match, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, matchID, req)
	}
	return nil, nil
}

func (m *MockMatchService) CorrectMatch(ctx context.Context, matchID primitive.ObjectID, req *models.CorrectMatchRequest) (*models.Match, error) {
	if m.CorrectMatchFunc != nil {
		return m.CorrectMatchFunc(ctx, matchID, req)
	}
	return nil, nil
}

func (m *MockMatchService) CheckEligibility(ctx context.Context, teamID primitive.ObjectID) (*models.EligibilityResult, error) {
	if m.CheckEligibilityFunc != nil {
		return m.CheckEligibilityFunc(ctx, teamID)
	}
	return nil, nil
}

// MockSpiritScoreService is a mock implementation of SpiritScoreServicer.
type MockSpiritScoreService struct {
	SubmitScoreFunc  func(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateSpiritScoreRequest) (*models.SpiritScore, error)
	ListByMatchFunc  func(ctx context.Context, matchID primitive.ObjectID) (*models.SpiritScoreListResponse, error)
	ListReceivedFunc func(ctx context.Context, teamID primitive.ObjectID) (*models.SpiritScoreListResponse, error)
	LeaderboardFunc  func(ctx context.Context, tournamentID primitive.ObjectID) (*models.SpiritLeaderboardResponse, error)
}

func (m *MockSpiritScoreService) SubmitScore(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateSpiritScoreRequest) (*models.SpiritScore, error) {
	if m.SubmitScoreFunc != nil {
		return m.SubmitScoreFunc(ctx, teamID, actorID, req)
	}
	return nil, nil
}

func (m *MockSpiritScoreService) ListByMatch(ctx context.Context, matchID primitive.ObjectID) (*models.SpiritScoreListResponse, error) {
	if m.ListByMatchFunc != nil {
		return m.ListByMatchFunc(ctx, matchID)
	}
	return nil, nil
}

func (m *MockSpiritScoreService) ListReceived(ctx context.Context, teamID primitive.ObjectID) (*models.SpiritScoreListResponse, error) {
	if m.ListReceivedFunc != nil {
		return m.ListReceivedFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockSpiritScoreService) Leaderboard(ctx context.Context, tournamentID primitive.ObjectID) (*models.SpiritLeaderboardResponse, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, tournamentID)
	}
	return nil, nil
}

// MockProgrammeService is a mock implementation of ProgrammeServicer.
type MockProgrammeService struct {
	CreateProgrammeFunc func(ctx context.Context, directorID primitive.ObjectID, req *models.CreateProgrammeRequest) (*models.Programme, error)
	ListProgrammesFunc  func(ctx context.Context) (*models.ProgrammeListResponse, error)
	GetProgrammeFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Programme, error)
	UpdateProgrammeFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateProgrammeRequest) (*models.Programme, error)
}

func (m *MockProgrammeService) CreateProgramme(ctx context.Context, directorID primitive.ObjectID, req *models.CreateProgrammeRequest) (*models.Programme, error) {
	if m.CreateProgrammeFunc != nil {
		return m.CreateProgrammeFunc(ctx, directorID, req)
	}
	return nil, nil
}

func (m *MockProgrammeService) ListProgrammes(ctx context.Context) (*models.ProgrammeListResponse, error) {
	if m.ListProgrammesFunc != nil {
		return m.ListProgrammesFunc(ctx)
	}
	return nil, nil
}

func (m *MockProgrammeService) GetProgramme(ctx context.Context, id primitive.ObjectID) (*models.Programme, error) {
	if m.GetProgrammeFunc != nil {
		return m.GetProgrammeFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProgrammeService) UpdateProgramme(ctx context.Context, id primitive.ObjectID, req *models.UpdateProgrammeRequest) (*models.Programme, error) {
	if m.UpdateProgrammeFunc != nil {
		return m.UpdateProgrammeFunc(ctx, id, req)
	}
	return nil, nil
}

// MockAttendanceService is a mock implementation of AttendanceServicer.
type MockAttendanceService struct {
	RecordAttendanceFunc func(ctx context.Context, programmeID, recordedBy primitive.ObjectID, req *models.RecordAttendanceRequest) (*models.AttendanceRecord, error)
	ListAttendanceFunc   func(ctx context.Context, programmeID primitive.ObjectID) (*models.AttendanceListResponse, error)
	PlayerAttendanceFunc func(ctx context.Context, programmeID, playerID primitive.ObjectID) (*models.AttendanceListResponse, error)
	SummaryFunc          func(ctx context.Context, programmeID primitive.ObjectID) (*models.AttendanceSummaryResponse, error)
}

func (m *MockAttendanceService) RecordAttendance(ctx context.Context, programmeID, recordedBy primitive.ObjectID, req *models.RecordAttendanceRequest) (*models.AttendanceRecord, error) {
	if m.RecordAttendanceFunc != nil {
		return m.RecordAttendanceFunc(ctx, programmeID, recordedBy, req)
	}
	return nil, nil
}

func (m *MockAttendanceService) ListAttendance(ctx context.Context, programmeID primitive.ObjectID) (*models.AttendanceListResponse, error) {
	if m.ListAttendanceFunc != nil {
		return m.ListAttendanceFunc(ctx, programmeID)
	}
	return nil, nil
}

func (m *MockAttendanceService) PlayerAttendance(ctx context.Context, programmeID, playerID primitive.ObjectID) (*models.AttendanceListResponse, error) {
	if m.PlayerAttendanceFunc != nil {
		return m.PlayerAttendanceFunc(ctx, programmeID, playerID)
	}
	return nil, nil
}

func (m *MockAttendanceService) Summary(ctx context.Context, programmeID primitive.ObjectID) (*models.AttendanceSummaryResponse, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, programmeID)
	}
	return nil, nil
}
