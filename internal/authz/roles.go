// Package authz provides the role and permission model and pure authorization
// checks over a static, immutable role table.
package authz

// Tournament-side role constants.
const (
	RoleTournamentDirector = "tournament_director"
	RoleTeamManager        = "team_manager"
	RolePlayer             = "player"
	RoleVolunteer          = "volunteer"
	RoleScoringTeam        = "scoring_team"
	RoleSponsor            = "sponsor"
	RoleSpectator          = "spectator"
)

// Coaching-side role constants.
const (
	RoleProgrammeDirector = "programme_director"
	RoleProgrammeManager  = "programme_manager"
	RoleCoach             = "coach"
	RoleCoordinator       = "coordinator"
	RoleDataTeam          = "data_team"
)

// roleAliases maps legacy role spellings to their canonical token.
var roleAliases = map[string]string{
	"reporting_team": RoleDataTeam,
}

// NormalizeRole resolves legacy aliases to canonical role tokens. Unknown
// values are returned unchanged; every check fails closed on them anyway.
func NormalizeRole(role string) string {
	if canonical, ok := roleAliases[role]; ok {
		return canonical
	}
	return role
}

// Permission token constants. Tokens are capability labels granted to roles;
// PermAdmin is a universal override for permission checks (but not for
// access-level checks).
const (
	PermRead       = "read"
	PermWrite      = "write"
	PermAdmin      = "admin"
	PermWriteTeam  = "write_team"
	PermWriteField = "write_field"
	PermValidate   = "validate"
	PermReadPublic = "read_public"
	PermEngage     = "engage"
	PermReadLimited = "read_limited"
)

// AccessLevel is one rung of the ordered privilege hierarchy. Comparison is by
// integer rank; an unknown role ranks below every defined rung.
type AccessLevel int

const (
	LevelPublicAccess AccessLevel = iota + 1
	LevelReadPublic
	LevelReadLimited
	LevelFieldAccess
	LevelTeamAccess
	LevelSubAdmin
	LevelFullAdmin
)

// String returns the wire token for the access level.
func (l AccessLevel) String() string {
	switch l {
	case LevelPublicAccess:
		return "public_access"
	case LevelReadPublic:
		return "read_public"
	case LevelReadLimited:
		return "read_limited"
	case LevelFieldAccess:
		return "field_access"
	case LevelTeamAccess:
		return "team_access"
	case LevelSubAdmin:
		return "sub_admin"
	case LevelFullAdmin:
		return "full_admin"
	}
	return "unknown"
}

// Entry describes one role's privileges: a single access level and a set of
// permission tokens.
type Entry struct {
	Level       AccessLevel
	Description string
	Permissions []string
}

// Table maps role tokens to their privilege entries. A Table is built once at
// startup and never mutated; concurrent reads need no synchronization.
type Table map[string]Entry
