//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"ultihub/internal/authz"
	"ultihub/internal/cache"
	"ultihub/internal/database"
	"ultihub/internal/eligibility"
	"ultihub/internal/handler"
	"ultihub/internal/queue"
	"ultihub/internal/realtime"
	"ultihub/internal/repository"
	"ultihub/internal/router"
	"ultihub/internal/service"
	"ultihub/internal/storage"
	"ultihub/pkg/auth"
	"ultihub/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestEventQueueSize bounds the in-memory event queue during tests.
	TestEventQueueSize = 256
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo       repository.UserRepository
	TournamentRepo repository.TournamentRepository
	TeamRepo       repository.TeamRepository
	RosterRepo     repository.RosterRepository
	MatchRepo      repository.MatchRepository
	SpiritRepo     repository.SpiritScoreRepository
	ProgrammeRepo  repository.ProgrammeRepository
	AttendanceRepo repository.AttendanceRepository

	// Services (for direct service access in tests)
	AuthService       *service.AuthService
	MatchService      *service.MatchService
	SpiritService     *service.SpiritScoreService
	TeamService       *service.TeamService
	AttendanceService *service.AttendanceService

	// Auth and authorization
	JWTManager *auth.JWTManager
	Engine     *authz.Engine

	// Eligibility gate and event pipeline
	Gate           *eligibility.Gate
	EventQueue     *queue.MemoryQueue
	Broadcaster    *realtime.RedisBroadcaster
	eventProcessor *queue.Processor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	// The unique indexes back every duplicate check, so create them before
	// any requests run.
	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Cache (real Redis) and storage (real MinIO)
	redisCache := cache.NewRedis(redisContainer.URI)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT manager and refresh tokens
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)
	refreshTokens := auth.NewRefreshTokenGenerator()

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	tournamentRepo := repository.NewTournamentRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	rosterRepo := repository.NewRosterRepository(mongoDB.Database)
	matchRepo := repository.NewMatchRepository(mongoDB.Database)
	spiritRepo := repository.NewSpiritScoreRepository(mongoDB.Database)
	programmeRepo := repository.NewProgrammeRepository(mongoDB.Database)
	attendanceRepo := repository.NewAttendanceRepository(mongoDB.Database)

	// Authorization and eligibility
	engine := authz.NewEngine(authz.DefaultTable())
	gate := eligibility.NewGate(matchRepo, spiritRepo)

	// Event pipeline
	eventQueue := queue.NewMemoryQueue(TestEventQueueSize)
	broadcaster := realtime.NewRedisBroadcaster(redisCache.Client())
	eventProcessor := queue.NewProcessor(eventQueue, broadcaster, 2)

	// Service layer
	authService := service.NewAuthService(userRepo, redisCache, jwtManager, refreshTokens, TestAccessTokenExpiry, TestRefreshTokenExpiry)
	userService := service.NewUserService(userRepo)
	tournamentService := service.NewTournamentService(tournamentRepo)
	teamService := service.NewTeamService(teamRepo, rosterRepo, tournamentRepo, userRepo, s3Client)
	matchService := service.NewMatchService(matchRepo, teamRepo, gate, eventQueue)
	spiritService := service.NewSpiritScoreService(spiritRepo, matchRepo, teamRepo, rosterRepo, redisCache, eventQueue)
	programmeService := service.NewProgrammeService(programmeRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, programmeRepo, userRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tournamentHandler := handler.NewTournamentHandler(tournamentService)
	teamHandler := handler.NewTeamHandler(teamService)
	matchHandler := handler.NewMatchHandler(matchService)
	spiritHandler := handler.NewSpiritScoreHandler(spiritService)
	programmeHandler := handler.NewProgrammeHandler(programmeService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	eventHandler := handler.NewEventHandler(broadcaster)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		TournamentHandler:  tournamentHandler,
		TeamHandler:        teamHandler,
		MatchHandler:       matchHandler,
		SpiritScoreHandler: spiritHandler,
		ProgrammeHandler:   programmeHandler,
		AttendanceHandler:  attendanceHandler,
		EventHandler:       eventHandler,
		JWTManager:         jwtManager,
		Engine:             engine,
	})

	return &TestServer{
		Router:            r,
		MongoDB:           mongoDB,
		Redis:             redisContainer,
		MinIO:             minioContainer,
		UserRepo:          userRepo,
		TournamentRepo:    tournamentRepo,
		TeamRepo:          teamRepo,
		RosterRepo:        rosterRepo,
		MatchRepo:         matchRepo,
		SpiritRepo:        spiritRepo,
		ProgrammeRepo:     programmeRepo,
		AttendanceRepo:    attendanceRepo,
		AuthService:       authService,
		MatchService:      matchService,
		SpiritService:     spiritService,
		TeamService:       teamService,
		AttendanceService: attendanceService,
		JWTManager:        jwtManager,
		Engine:            engine,
		Gate:              gate,
		EventQueue:        eventQueue,
		Broadcaster:       broadcaster,
		eventProcessor:    eventProcessor,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartEventProcessor starts the event fan-out processor.
func (ts *TestServer) StartEventProcessor(ctx context.Context) {
	ts.eventProcessor.Start(ctx)
}

// StopEventProcessor stops the processor and resets the queue so subsequent
// tests can enqueue again.
func (ts *TestServer) StopEventProcessor() {
	ts.eventProcessor.Stop()
	ts.EventQueue.Reset()
	ts.eventProcessor = queue.NewProcessor(ts.EventQueue, ts.Broadcaster, 2)
}
