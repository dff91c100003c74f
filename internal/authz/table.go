package authz

// DefaultTable returns the production role table. Callers must treat the
// result as read-only; the engine never mutates it.
func DefaultTable() Table {
	return Table{
		RoleTournamentDirector: {
			Level:       LevelFullAdmin,
			Description: "Runs a tournament: approves teams, schedules and corrects matches.",
			Permissions: []string{PermAdmin},
		},
		RoleProgrammeDirector: {
			Level:       LevelFullAdmin,
			Description: "Runs the coaching programmes.",
			Permissions: []string{PermAdmin},
		},
		RoleProgrammeManager: {
			Level:       LevelSubAdmin,
			Description: "Manages day-to-day programme operations and validates reports.",
			Permissions: []string{PermRead, PermWrite, PermValidate},
		},
		RoleTeamManager: {
			Level:       LevelTeamAccess,
			Description: "Registers and manages a team and its roster.",
			Permissions: []string{PermRead, PermWriteTeam},
		},
		RoleCoach: {
			Level:       LevelTeamAccess,
			Description: "Coaches programme sessions and works with team rosters.",
			Permissions: []string{PermRead, PermWriteTeam, PermEngage},
		},
		RoleCoordinator: {
			Level:       LevelFieldAccess,
			Description: "Coordinates fields and session logistics.",
			Permissions: []string{PermRead, PermWriteField},
		},
		RoleVolunteer: {
			Level:       LevelFieldAccess,
			Description: "Helps at fields, reports scores.",
			Permissions: []string{PermRead, PermWriteField},
		},
		RoleScoringTeam: {
			Level:       LevelFieldAccess,
			Description: "Scoring crew validating reported results.",
			Permissions: []string{PermRead, PermValidate},
		},
		RolePlayer: {
			Level:       LevelReadLimited,
			Description: "Plays on a team; submits spirit scores with the manager.",
			Permissions: []string{PermRead, PermEngage},
		},
		RoleDataTeam: {
			Level:       LevelReadLimited,
			Description: "Pulls attendance and spirit reports.",
			Permissions: []string{PermReadLimited, PermValidate},
		},
		RoleSponsor: {
			Level:       LevelReadPublic,
			Description: "Sponsor with access to public content and engagement stats.",
			Permissions: []string{PermReadPublic, PermEngage},
		},
		RoleSpectator: {
			Level:       LevelPublicAccess,
			Description: "Follows public schedules and results.",
			Permissions: []string{PermReadPublic},
		},
	}
}
