package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. Unique indexes
// back the duplicate checks in the repositories, so they must exist before the
// server takes traffic. Creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		keys       bson.D
		unique     bool
	}{
		{"users", bson.D{{Key: "email", Value: 1}}, true},

		{"tournaments", bson.D{{Key: "slug", Value: 1}}, true},
		{"tournaments", bson.D{{Key: "directorId", Value: 1}}, false},

		// Team slugs are unique within a tournament, not globally.
		{"teams", bson.D{{Key: "tournamentId", Value: 1}, {Key: "slug", Value: 1}}, true},
		{"teams", bson.D{{Key: "managerId", Value: 1}}, false},

		{"rosters", bson.D{{Key: "teamId", Value: 1}, {Key: "userId", Value: 1}}, true},
		{"rosters", bson.D{{Key: "userId", Value: 1}}, false},

		{"matches", bson.D{{Key: "tournamentId", Value: 1}, {Key: "scheduledTime", Value: 1}}, false},
		{"matches", bson.D{{Key: "teamA.id", Value: 1}}, false},
		{"matches", bson.D{{Key: "teamB.id", Value: 1}}, false},
		{"matches", bson.D{{Key: "status", Value: 1}}, false},

		// One spirit score per match per scoring team.
		{"spirit_scores", bson.D{{Key: "matchId", Value: 1}, {Key: "scoringTeamId", Value: 1}}, true},
		{"spirit_scores", bson.D{{Key: "scoredTeamId", Value: 1}}, false},

		{"programmes", bson.D{{Key: "slug", Value: 1}}, true},

		// One attendance record per player per session.
		{"attendance", bson.D{{Key: "programmeId", Value: 1}, {Key: "playerId", Value: 1}, {Key: "sessionDate", Value: 1}}, true},
		{"attendance", bson.D{{Key: "programmeId", Value: 1}}, false},
	}

	for _, idx := range indexes {
		model := mongo.IndexModel{Keys: idx.keys}
		if idx.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}
