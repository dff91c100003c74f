// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"ultihub/internal/authz"
	"ultihub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Sam Torres",
			Email:     fmt.Sprintf("test-%s@discmail.org", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			Role:      authz.RolePlayer,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.user.Role = role
	return b
}

func (b *UserBuilder) AsTournamentDirector() *UserBuilder {
	b.user.Role = authz.RoleTournamentDirector
	return b
}

func (b *UserBuilder) AsTeamManager() *UserBuilder {
	b.user.Role = authz.RoleTeamManager
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Tournament Fixtures =====

// TournamentBuilder provides fluent API for building test tournaments.
type TournamentBuilder struct {
	tournament models.Tournament
}

// NewTournament creates a new TournamentBuilder with sensible defaults.
func NewTournament() *TournamentBuilder {
	start := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)
	return &TournamentBuilder{
		tournament: models.Tournament{
			ID:         primitive.NewObjectID(),
			Name:       "Test Open",
			Slug:       fmt.Sprintf("test-open-%s", primitive.NewObjectID().Hex()[:8]),
			Location:   "Riverside Fields",
			StartDate:  start,
			EndDate:    start.Add(48 * time.Hour),
			DirectorID: primitive.NewObjectID(),
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	}
}

func (b *TournamentBuilder) WithID(id primitive.ObjectID) *TournamentBuilder {
	b.tournament.ID = id
	return b
}

func (b *TournamentBuilder) WithName(name string) *TournamentBuilder {
	b.tournament.Name = name
	return b
}

func (b *TournamentBuilder) WithSlug(slug string) *TournamentBuilder {
	b.tournament.Slug = slug
	return b
}

func (b *TournamentBuilder) WithDirectorID(directorID primitive.ObjectID) *TournamentBuilder {
	b.tournament.DirectorID = directorID
	return b
}

func (b *TournamentBuilder) WithDates(start, end time.Time) *TournamentBuilder {
	b.tournament.StartDate = start
	b.tournament.EndDate = end
	return b
}

func (b *TournamentBuilder) Build() models.Tournament {
	return b.tournament
}

func (b *TournamentBuilder) BuildPtr() *models.Tournament {
	return &b.tournament
}

// ===== Team Fixtures =====

// TeamBuilder provides fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a new TeamBuilder with sensible defaults. Teams default to
// approved so match fixtures can use them directly.
func NewTeam() *TeamBuilder {
	return &TeamBuilder{
		team: models.Team{
			ID:           primitive.NewObjectID(),
			Name:         "Test Team",
			Slug:         fmt.Sprintf("test-team-%s", primitive.NewObjectID().Hex()[:8]),
			TournamentID: primitive.NewObjectID(),
			ManagerID:    primitive.NewObjectID(),
			Status:       models.TeamApproved,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (b *TeamBuilder) WithID(id primitive.ObjectID) *TeamBuilder {
	b.team.ID = id
	return b
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

func (b *TeamBuilder) WithSlug(slug string) *TeamBuilder {
	b.team.Slug = slug
	return b
}

func (b *TeamBuilder) WithTournamentID(tournamentID primitive.ObjectID) *TeamBuilder {
	b.team.TournamentID = tournamentID
	return b
}

func (b *TeamBuilder) WithManagerID(managerID primitive.ObjectID) *TeamBuilder {
	b.team.ManagerID = managerID
	return b
}

func (b *TeamBuilder) Pending() *TeamBuilder {
	b.team.Status = models.TeamPending
	return b
}

func (b *TeamBuilder) Rejected() *TeamBuilder {
	b.team.Status = models.TeamRejected
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	return &b.team
}

// ===== Roster Fixtures =====

// RosterPlayerBuilder provides fluent API for building test roster entries.
type RosterPlayerBuilder struct {
	entry models.RosterPlayer
}

// NewRosterPlayer creates a new RosterPlayerBuilder with sensible defaults.
func NewRosterPlayer() *RosterPlayerBuilder {
	return &RosterPlayerBuilder{
		entry: models.RosterPlayer{
			ID:           primitive.NewObjectID(),
			TeamID:       primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
			JerseyNumber: 7,
			JoinedAt:     time.Now(),
		},
	}
}

func (b *RosterPlayerBuilder) WithTeamID(teamID primitive.ObjectID) *RosterPlayerBuilder {
	b.entry.TeamID = teamID
	return b
}

func (b *RosterPlayerBuilder) WithUserID(userID primitive.ObjectID) *RosterPlayerBuilder {
	b.entry.UserID = userID
	return b
}

func (b *RosterPlayerBuilder) WithJerseyNumber(number int) *RosterPlayerBuilder {
	b.entry.JerseyNumber = number
	return b
}

func (b *RosterPlayerBuilder) Build() models.RosterPlayer {
	return b.entry
}

func (b *RosterPlayerBuilder) BuildPtr() *models.RosterPlayer {
	return &b.entry
}

// ===== Match Fixtures =====

// MatchBuilder provides fluent API for building test matches.
type MatchBuilder struct {
	match models.Match
}

// NewMatch creates a new MatchBuilder with sensible defaults.
func NewMatch() *MatchBuilder {
	return &MatchBuilder{
		match: models.Match{
			ID:            primitive.NewObjectID(),
			TournamentID:  primitive.NewObjectID(),
			TeamA:         models.MatchSide{ID: primitive.NewObjectID(), Name: "Team A"},
			TeamB:         models.MatchSide{ID: primitive.NewObjectID(), Name: "Team B"},
			Status:        models.MatchScheduled,
			Field:         "Field 1",
			ScheduledTime: time.Now().Add(24 * time.Hour).Truncate(time.Second),
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		},
	}
}

func (b *MatchBuilder) WithID(id primitive.ObjectID) *MatchBuilder {
	b.match.ID = id
	return b
}

func (b *MatchBuilder) WithTournamentID(tournamentID primitive.ObjectID) *MatchBuilder {
	b.match.TournamentID = tournamentID
	return b
}

func (b *MatchBuilder) WithTeamA(team models.Team) *MatchBuilder {
	b.match.TeamA = models.MatchSide{ID: team.ID, Name: team.Name}
	return b
}

func (b *MatchBuilder) WithTeamB(team models.Team) *MatchBuilder {
	b.match.TeamB = models.MatchSide{ID: team.ID, Name: team.Name}
	return b
}

func (b *MatchBuilder) WithScore(scoreA, scoreB int) *MatchBuilder {
	b.match.ScoreA = scoreA
	b.match.ScoreB = scoreB
	return b
}

func (b *MatchBuilder) Live() *MatchBuilder {
	b.match.Status = models.MatchLive
	return b
}

func (b *MatchBuilder) Completed() *MatchBuilder {
	b.match.Status = models.MatchCompleted
	return b
}

func (b *MatchBuilder) Cancelled() *MatchBuilder {
	b.match.Status = models.MatchCancelled
	return b
}

func (b *MatchBuilder) Build() models.Match {
	return b.match
}

func (b *MatchBuilder) BuildPtr() *models.Match {
	return &b.match
}

// ===== SpiritScore Fixtures =====

// SpiritScoreBuilder provides fluent API for building test spirit scores.
type SpiritScoreBuilder struct {
	score models.SpiritScore
}

// NewSpiritScore creates a new SpiritScoreBuilder with sensible defaults.
func NewSpiritScore() *SpiritScoreBuilder {
	return &SpiritScoreBuilder{
		score: models.SpiritScore{
			ID:               primitive.NewObjectID(),
			MatchID:          primitive.NewObjectID(),
			ScoredTeamID:     primitive.NewObjectID(),
			ScoringTeamID:    primitive.NewObjectID(),
			RulesKnowledge:   2,
			FoulsAndContact:  2,
			FairMindedness:   3,
			PositiveAttitude: 2,
			Communication:    2,
			TotalScore:       11,
			SubmittedAt:      time.Now(),
		},
	}
}

func (b *SpiritScoreBuilder) WithMatchID(matchID primitive.ObjectID) *SpiritScoreBuilder {
	b.score.MatchID = matchID
	return b
}

func (b *SpiritScoreBuilder) WithScoredTeamID(teamID primitive.ObjectID) *SpiritScoreBuilder {
	b.score.ScoredTeamID = teamID
	return b
}

func (b *SpiritScoreBuilder) WithScoringTeamID(teamID primitive.ObjectID) *SpiritScoreBuilder {
	b.score.ScoringTeamID = teamID
	return b
}

// WithSubScores sets the five category scores in table order and recomputes
// the total.
func (b *SpiritScoreBuilder) WithSubScores(rules, fouls, fairness, attitude, comms int) *SpiritScoreBuilder {
	b.score.RulesKnowledge = rules
	b.score.FoulsAndContact = fouls
	b.score.FairMindedness = fairness
	b.score.PositiveAttitude = attitude
	b.score.Communication = comms
	b.score.TotalScore = rules + fouls + fairness + attitude + comms
	return b
}

func (b *SpiritScoreBuilder) WithComment(comment string) *SpiritScoreBuilder {
	b.score.Comment = comment
	return b
}

func (b *SpiritScoreBuilder) Build() models.SpiritScore {
	return b.score
}

func (b *SpiritScoreBuilder) BuildPtr() *models.SpiritScore {
	return &b.score
}

// ===== Programme Fixtures =====

// ProgrammeBuilder provides fluent API for building test programmes.
type ProgrammeBuilder struct {
	programme models.Programme
}

// NewProgramme creates a new ProgrammeBuilder with sensible defaults.
func NewProgramme() *ProgrammeBuilder {
	return &ProgrammeBuilder{
		programme: models.Programme{
			ID:         primitive.NewObjectID(),
			Name:       "Test Juniors",
			Slug:       fmt.Sprintf("test-juniors-%s", primitive.NewObjectID().Hex()[:8]),
			Season:     "2026-spring",
			DirectorID: primitive.NewObjectID(),
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	}
}

func (b *ProgrammeBuilder) WithName(name string) *ProgrammeBuilder {
	b.programme.Name = name
	return b
}

func (b *ProgrammeBuilder) WithSeason(season string) *ProgrammeBuilder {
	b.programme.Season = season
	return b
}

func (b *ProgrammeBuilder) WithDirectorID(directorID primitive.ObjectID) *ProgrammeBuilder {
	b.programme.DirectorID = directorID
	return b
}

func (b *ProgrammeBuilder) Build() models.Programme {
	return b.programme
}

func (b *ProgrammeBuilder) BuildPtr() *models.Programme {
	return &b.programme
}

// ===== Attendance Fixtures =====

// AttendanceBuilder provides fluent API for building test attendance records.
type AttendanceBuilder struct {
	record models.AttendanceRecord
}

// NewAttendanceRecord creates a new AttendanceBuilder with sensible defaults.
func NewAttendanceRecord() *AttendanceBuilder {
	return &AttendanceBuilder{
		record: models.AttendanceRecord{
			ID:          primitive.NewObjectID(),
			ProgrammeID: primitive.NewObjectID(),
			PlayerID:    primitive.NewObjectID(),
			SessionDate: time.Now().Truncate(24 * time.Hour),
			Status:      models.AttendancePresent,
			RecordedBy:  primitive.NewObjectID(),
			CreatedAt:   time.Now(),
		},
	}
}

func (b *AttendanceBuilder) WithProgrammeID(programmeID primitive.ObjectID) *AttendanceBuilder {
	b.record.ProgrammeID = programmeID
	return b
}

func (b *AttendanceBuilder) WithPlayerID(playerID primitive.ObjectID) *AttendanceBuilder {
	b.record.PlayerID = playerID
	return b
}

func (b *AttendanceBuilder) WithSessionDate(date time.Time) *AttendanceBuilder {
	b.record.SessionDate = date
	return b
}

func (b *AttendanceBuilder) Absent() *AttendanceBuilder {
	b.record.Status = models.AttendanceAbsent
	return b
}

func (b *AttendanceBuilder) Late() *AttendanceBuilder {
	b.record.Status = models.AttendanceLate
	return b
}

func (b *AttendanceBuilder) Build() models.AttendanceRecord {
	return b.record
}

func (b *AttendanceBuilder) BuildPtr() *models.AttendanceRecord {
	return &b.record
}
