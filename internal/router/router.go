// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "ultihub/swagger" // Import generated swagger docs

	"ultihub/internal/authz"
	"ultihub/internal/handler"
	"ultihub/internal/middleware"
	"ultihub/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	TournamentHandler  *handler.TournamentHandler
	TeamHandler        *handler.TeamHandler
	MatchHandler       *handler.MatchHandler
	SpiritScoreHandler *handler.SpiritScoreHandler
	ProgrammeHandler   *handler.ProgrammeHandler
	AttendanceHandler  *handler.AttendanceHandler
	EventHandler       *handler.EventHandler
	JWTManager         auth.TokenManager
	Engine             *authz.Engine
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.JWTManager))
		{
			users.GET("", middleware.RequireAccessLevel(cfg.Engine, authz.LevelSubAdmin), cfg.UserHandler.GetAllUsers)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.PUT("/:id", cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireAccessLevel(cfg.Engine, authz.LevelFullAdmin), cfg.UserHandler.DeleteUser)
		}

		// Public tournament reads. Anonymous visitors pass; authenticated
		// callers still need a public-read role or the admin permission.
		publicRead := v1.Group("")
		publicRead.Use(middleware.OptionalAuth(cfg.JWTManager), middleware.PublicRead(cfg.Engine))
		{
			publicRead.GET("/tournaments", cfg.TournamentHandler.ListTournaments)
			publicRead.GET("/tournaments/slug/:slug", cfg.TournamentHandler.GetTournamentBySlug)
			publicRead.GET("/tournaments/:tournamentId", cfg.TournamentHandler.GetTournament)
			publicRead.GET("/tournaments/:tournamentId/teams", cfg.TeamHandler.ListTeams)
			publicRead.GET("/tournaments/:tournamentId/matches", cfg.MatchHandler.ListMatches)
			publicRead.GET("/tournaments/:tournamentId/spirit-leaderboard", cfg.SpiritScoreHandler.Leaderboard)
			publicRead.GET("/tournaments/:tournamentId/events", cfg.EventHandler.Stream)
			publicRead.GET("/teams/:teamId", cfg.TeamHandler.GetTeam)
			publicRead.GET("/matches/:matchId", cfg.MatchHandler.GetMatch)
			publicRead.GET("/matches/:matchId/spirit-scores", cfg.SpiritScoreHandler.ListByMatch)
		}

		// Tournament management (directors only)
		tournaments := v1.Group("/tournaments")
		tournaments.Use(middleware.Auth(cfg.JWTManager))
		{
			tournaments.POST("", middleware.RequireRoles(cfg.Engine, authz.RoleTournamentDirector), cfg.TournamentHandler.CreateTournament)
			tournaments.PUT("/:tournamentId", middleware.RequireRoles(cfg.Engine, authz.RoleTournamentDirector), cfg.TournamentHandler.UpdateTournament)

			// Only team managers register teams; directors approve, they
			// do not enter teams themselves.
			tournaments.POST("/:tournamentId/teams", middleware.RequireRoles(cfg.Engine, authz.RoleTeamManager), cfg.TeamHandler.RegisterTeam)

			tournaments.POST("/:tournamentId/matches", middleware.RequireRoles(cfg.Engine, authz.RoleTournamentDirector), cfg.MatchHandler.ScheduleMatch)
		}

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(middleware.Auth(cfg.JWTManager))
		{
			teams.GET("/mine", cfg.TeamHandler.ListManagedTeams)
			teams.POST("/:teamId/review", middleware.RequireRoles(cfg.Engine, authz.RoleTournamentDirector), cfg.TeamHandler.ReviewTeam)
			teams.POST("/:teamId/logo", cfg.TeamHandler.RequestLogoUpload)
			teams.GET("/:teamId/eligibility", cfg.MatchHandler.CheckEligibility)
			teams.GET("/:teamId/spirit-scores", cfg.SpiritScoreHandler.ListReceived)
			// Spirit scores come from the playing side only. The service
			// additionally checks the actor belongs to the scoring team.
			teams.POST("/:teamId/spirit-scores", middleware.RequireRoles(cfg.Engine, authz.RoleTeamManager, authz.RolePlayer), cfg.SpiritScoreHandler.SubmitScore)

			roster := teams.Group("/:teamId/roster")
			{
				roster.GET("", cfg.TeamHandler.ListRoster)
				roster.POST("", cfg.TeamHandler.AddRosterPlayer)
				roster.DELETE("/:userId", cfg.TeamHandler.RemoveRosterPlayer)
			}
		}

		// Live match updates need field-level write access
		matches := v1.Group("/matches")
		matches.Use(middleware.Auth(cfg.JWTManager))
		{
			matches.PUT("/:matchId/score", middleware.RequirePermission(cfg.Engine, authz.PermWriteField), cfg.MatchHandler.UpdateScore)
			matches.PUT("/:matchId/status", middleware.RequirePermission(cfg.Engine, authz.PermWriteField), cfg.MatchHandler.UpdateStatus)
			matches.PUT("/:matchId/correct", middleware.RequireRoles(cfg.Engine, authz.RoleTournamentDirector), cfg.MatchHandler.CorrectMatch)
		}

		// Coaching programme routes (protected)
		programmes := v1.Group("/programmes")
		programmes.Use(middleware.Auth(cfg.JWTManager))
		{
			programmes.GET("", cfg.ProgrammeHandler.ListProgrammes)
			programmes.POST("", middleware.RequireRoles(cfg.Engine, authz.RoleProgrammeDirector, authz.RoleProgrammeManager), cfg.ProgrammeHandler.CreateProgramme)
			programmes.GET("/:programmeId", cfg.ProgrammeHandler.GetProgramme)
			programmes.PUT("/:programmeId", middleware.RequireRoles(cfg.Engine, authz.RoleProgrammeDirector, authz.RoleProgrammeManager), cfg.ProgrammeHandler.UpdateProgramme)

			attendance := programmes.Group("/:programmeId")
			{
				attendance.POST("/attendance", middleware.RequireRoles(cfg.Engine, authz.RoleCoach, authz.RoleCoordinator, authz.RoleProgrammeManager, authz.RoleProgrammeDirector), cfg.AttendanceHandler.RecordAttendance)
				attendance.GET("/attendance", middleware.RequireAccessLevel(cfg.Engine, authz.LevelReadLimited), cfg.AttendanceHandler.ListAttendance)
				attendance.GET("/attendance/:playerId", middleware.RequireAccessLevel(cfg.Engine, authz.LevelReadLimited), cfg.AttendanceHandler.PlayerAttendance)
				attendance.GET("/attendance-summary", middleware.RequirePermission(cfg.Engine, authz.PermValidate), cfg.AttendanceHandler.Summary)
			}
		}
	}

	return r
}
