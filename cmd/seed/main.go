package main

import (
	"context"
	"log"
	"time"

	"ultihub/internal/config"
	"ultihub/internal/database"
	"ultihub/internal/models"
	"ultihub/pkg/auth"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedUser represents a user document for seeding.
type SeedUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	userIDs := seedUsers(ctx, mongoDB.Database)
	tournamentID := seedTournament(ctx, mongoDB.Database, userIDs["director"])
	teamIDs := seedTeams(ctx, mongoDB.Database, tournamentID, userIDs)
	seedMatches(ctx, mongoDB.Database, tournamentID, teamIDs)
	seedProgramme(ctx, mongoDB.Database, userIDs["programme_director"])

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) map[string]primitive.ObjectID {
	collection := db.Collection("users")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password, _ := auth.HashPassword("password123")
	now := time.Now()

	seeds := []SeedUser{
		{Email: "director@ultihub.example.com", Name: "Dana Okafor", Role: "tournament_director"},
		{Email: "manager.breezers@ultihub.example.com", Name: "Sam Torres", Role: "team_manager"},
		{Email: "manager.current@ultihub.example.com", Name: "Priya Nair", Role: "team_manager"},
		{Email: "scorer@ultihub.example.com", Name: "Lee Fontaine", Role: "scoring_team"},
		{Email: "coach@ultihub.example.com", Name: "Robin Akele", Role: "coach"},
		{Email: "progdirector@ultihub.example.com", Name: "Mei Watanabe", Role: "programme_director"},
	}

	ids := make(map[string]primitive.ObjectID, len(seeds))
	for _, s := range seeds {
		s.Password = password
		s.CreatedAt = now
		s.UpdatedAt = now

		result, err := collection.InsertOne(ctx, s)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", s.Email, err)
		}
		key := s.Role
		if _, taken := ids[key]; taken {
			key = key + "_2"
		}
		ids[key] = result.InsertedID.(primitive.ObjectID)
	}

	ids["director"] = ids["tournament_director"]
	log.Printf("Seeded %d users", len(seeds))
	return ids
}

func seedTournament(ctx context.Context, db *mongo.Database, directorID primitive.ObjectID) primitive.ObjectID {
	collection := db.Collection("tournaments")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear tournaments: %v", err)
	}

	now := time.Now()
	tournament := models.Tournament{
		Name:       "Sandsplash Open 2026",
		Slug:       slug.Make("Sandsplash Open 2026"),
		Location:   "Riverside Fields, Portland",
		StartDate:  now.AddDate(0, 1, 0),
		EndDate:    now.AddDate(0, 1, 2),
		DirectorID: directorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result, err := collection.InsertOne(ctx, tournament)
	if err != nil {
		log.Fatalf("Failed to seed tournament: %v", err)
	}

	log.Println("Seeded 1 tournament")
	return result.InsertedID.(primitive.ObjectID)
}

func seedTeams(ctx context.Context, db *mongo.Database, tournamentID primitive.ObjectID, userIDs map[string]primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("teams")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear teams: %v", err)
	}

	now := time.Now()
	teams := []interface{}{
		models.Team{
			Name:         "Bristol Breezers",
			Slug:         slug.Make("Bristol Breezers"),
			TournamentID: tournamentID,
			ManagerID:    userIDs["team_manager"],
			Status:       models.TeamApproved,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		models.Team{
			Name:         "Cardiff Current",
			Slug:         slug.Make("Cardiff Current"),
			TournamentID: tournamentID,
			ManagerID:    userIDs["team_manager_2"],
			Status:       models.TeamApproved,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	result, err := collection.InsertMany(ctx, teams)
	if err != nil {
		log.Fatalf("Failed to seed teams: %v", err)
	}

	log.Printf("Seeded %d teams", len(result.InsertedIDs))

	var teamIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		teamIDs = append(teamIDs, id.(primitive.ObjectID))
	}
	return teamIDs
}

func seedMatches(ctx context.Context, db *mongo.Database, tournamentID primitive.ObjectID, teamIDs []primitive.ObjectID) {
	collection := db.Collection("matches")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear matches: %v", err)
	}

	now := time.Now()
	match := models.Match{
		TournamentID:  tournamentID,
		TeamA:         models.MatchSide{ID: teamIDs[0], Name: "Bristol Breezers"},
		TeamB:         models.MatchSide{ID: teamIDs[1], Name: "Cardiff Current"},
		Status:        models.MatchScheduled,
		Field:         "Field 1",
		ScheduledTime: now.AddDate(0, 1, 0).Add(10 * time.Hour),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := collection.InsertOne(ctx, match); err != nil {
		log.Fatalf("Failed to seed matches: %v", err)
	}

	log.Println("Seeded 1 match")
}

func seedProgramme(ctx context.Context, db *mongo.Database, directorID primitive.ObjectID) {
	collection := db.Collection("programmes")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear programmes: %v", err)
	}

	now := time.Now()
	programme := models.Programme{
		Name:       "Spring Juniors 2026",
		Slug:       slug.Make("Spring Juniors 2026"),
		Season:     "2026-spring",
		DirectorID: directorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := collection.InsertOne(ctx, programme); err != nil {
		log.Fatalf("Failed to seed programme: %v", err)
	}

	log.Println("Seeded 1 programme")
}
