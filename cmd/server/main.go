package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ultihub/internal/authz"
	"ultihub/internal/cache"
	"ultihub/internal/config"
	"ultihub/internal/database"
	"ultihub/internal/eligibility"
	"ultihub/internal/handler"
	"ultihub/internal/queue"
	"ultihub/internal/realtime"
	"ultihub/internal/repository"
	"ultihub/internal/router"
	"ultihub/internal/service"
	"ultihub/internal/storage"
	"ultihub/internal/validator"
	"ultihub/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           UltiHub API
// @version         1.0
// @description     A REST API for Ultimate Frisbee tournaments, spirit scoring and coaching programmes, built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@ultihub.example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)
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

	// Authorization
	engine := authz.NewEngine(authz.DefaultTable())

	// Spirit-score eligibility gate
	gate := eligibility.NewGate(matchRepo, spiritRepo)

	// Event queue, processor and fan-out
	eventQueue := queue.NewMemoryQueue(cfg.EventQueueSize)
	broadcaster := realtime.NewRedisBroadcaster(redisCache.Client())
	eventProcessor := queue.NewProcessor(eventQueue, broadcaster, cfg.EventWorkerCount)

	// Service layer
	authService := service.NewAuthService(userRepo, redisCache, jwtManager, refreshTokens, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
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

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start event processor
	eventProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Stop event processor (drains queued events)
	eventProcessor.Stop()

	log.Println("Server stopped")
}
