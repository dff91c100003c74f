//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"ultihub/internal/models"
	"ultihub/pkg/response"
	"ultihub/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user with the given role and returns the
// response data (tokens plus embedded user).
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password, role string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// CreateUserWithRole registers a user with the role, logs in, and returns the
// user's ID and access token.
func (ah *AuthHelper) CreateUserWithRole(t *testing.T, name, email, role string) (userID string, accessToken string) {
	t.Helper()

	ah.RegisterUser(t, name, email, "password123", role)
	data := ah.Login(t, email, "password123")

	accessToken, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok, "user should be an object")
	userID, ok = user["id"].(string)
	require.True(t, ok, "user id should be a string")

	return userID, accessToken
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// TournamentHelper provides tournament-related helpers for API tests.
type TournamentHelper struct {
	server *TestServer
}

// NewTournamentHelper creates a new tournament helper.
func NewTournamentHelper(server *TestServer) *TournamentHelper {
	return &TournamentHelper{server: server}
}

// CreateTournament creates a tournament via the API using a director token.
func (th *TournamentHelper) CreateTournament(t *testing.T, directorToken, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateTournamentRequest{
		Name:      name,
		Location:  "Riverside Fields",
		StartDate: futureDate(30),
		EndDate:   futureDate(32),
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/tournaments", directorToken, req)
	require.Equal(t, http.StatusCreated, w.Code, "create tournament should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create tournament response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedTournament directly inserts a tournament into the database.
func (th *TournamentHelper) SeedTournament(t *testing.T, tournament *models.Tournament) *models.Tournament {
	t.Helper()
	ctx := context.Background()

	err := th.server.TournamentRepo.Create(ctx, tournament)
	require.NoError(t, err, "failed to seed tournament")

	return tournament
}

// TeamHelper provides team-related helpers for API tests.
type TeamHelper struct {
	server *TestServer
}

// NewTeamHelper creates a new team helper.
func NewTeamHelper(server *TestServer) *TeamHelper {
	return &TeamHelper{server: server}
}

// RegisterTeam registers a team via the API and returns the team data. The
// team starts pending.
func (th *TeamHelper) RegisterTeam(t *testing.T, managerToken, tournamentID, name string) map[string]interface{} {
	t.Helper()

	req := models.RegisterTeamRequest{Name: name}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/tournaments/"+tournamentID+"/teams", managerToken, req)
	require.Equal(t, http.StatusCreated, w.Code, "register team should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register team response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// RegisterApprovedTeam registers a team and approves it through the review
// endpoint with the director token.
func (th *TeamHelper) RegisterApprovedTeam(t *testing.T, managerToken, directorToken, tournamentID, name string) map[string]interface{} {
	t.Helper()

	data := th.RegisterTeam(t, managerToken, tournamentID, name)
	teamID := GetIDFromResponse(t, data)

	review := models.ReviewTeamRequest{Status: models.TeamApproved}
	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/review", directorToken, review)
	require.Equal(t, http.StatusOK, w.Code, "review team should return 200, got: %s", w.Body.String())

	return data
}

// SeedTeam directly inserts a team into the database (bypasses API).
func (th *TeamHelper) SeedTeam(t *testing.T, team *models.Team) *models.Team {
	t.Helper()
	ctx := context.Background()

	err := th.server.TeamRepo.Create(ctx, team)
	require.NoError(t, err, "failed to seed team")

	return team
}

// SeedRosterPlayer directly inserts a roster entry into the database.
func (th *TeamHelper) SeedRosterPlayer(t *testing.T, entry *models.RosterPlayer) *models.RosterPlayer {
	t.Helper()
	ctx := context.Background()

	err := th.server.RosterRepo.Add(ctx, entry)
	require.NoError(t, err, "failed to seed roster entry")

	return entry
}

// MatchHelper provides match-related helpers for API tests.
type MatchHelper struct {
	server *TestServer
}

// NewMatchHelper creates a new match helper.
func NewMatchHelper(server *TestServer) *MatchHelper {
	return &MatchHelper{server: server}
}

// ScheduleMatch schedules a match via the API and returns the match data.
func (mh *MatchHelper) ScheduleMatch(t *testing.T, token, tournamentID, teamAID, teamBID string) map[string]interface{} {
	t.Helper()

	req := models.CreateMatchRequest{
		TeamAID:       teamAID,
		TeamBID:       teamBID,
		Field:         "Field 1",
		ScheduledTime: futureDate(31),
	}

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPost, "/api/v1/tournaments/"+tournamentID+"/matches", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "schedule match should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "schedule match response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// CompleteMatch drives a scheduled match through live to completed with a
// final score, using a token holding the field-write permission.
func (mh *MatchHelper) CompleteMatch(t *testing.T, token, matchID string, scoreA, scoreB int) {
	t.Helper()

	statusReq := models.UpdateMatchStatusRequest{Status: models.MatchLive}
	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPut, "/api/v1/matches/"+matchID+"/status", token, statusReq)
	require.Equal(t, http.StatusOK, w.Code, "transition to live should return 200, got: %s", w.Body.String())

	scoreReq := models.UpdateScoreRequest{ScoreA: scoreA, ScoreB: scoreB}
	w = testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPut, "/api/v1/matches/"+matchID+"/score", token, scoreReq)
	require.Equal(t, http.StatusOK, w.Code, "score update should return 200, got: %s", w.Body.String())

	statusReq = models.UpdateMatchStatusRequest{Status: models.MatchCompleted}
	w = testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPut, "/api/v1/matches/"+matchID+"/status", token, statusReq)
	require.Equal(t, http.StatusOK, w.Code, "transition to completed should return 200, got: %s", w.Body.String())
}

// SubmitSpiritScore submits a spirit score for the match on behalf of the
// scoring team. The token must belong to the team's manager or a roster player.
func (mh *MatchHelper) SubmitSpiritScore(t *testing.T, token, teamID, matchID string) map[string]interface{} {
	t.Helper()

	req := models.CreateSpiritScoreRequest{
		MatchID:          matchID,
		RulesKnowledge:   2,
		FoulsAndContact:  2,
		FairMindedness:   3,
		PositiveAttitude: 2,
		Communication:    2,
	}

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/spirit-scores", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "submit spirit score should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "submit spirit score response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// futureDate returns a timestamp the given number of days ahead, truncated so
// it round-trips cleanly through JSON.
func futureDate(days int) time.Time {
	return time.Now().Add(time.Duration(days) * 24 * time.Hour).UTC().Truncate(time.Second)
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data. It handles both
// direct ID fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	oid, err := primitive.ObjectIDFromHex(GetIDFromResponse(t, data))
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
