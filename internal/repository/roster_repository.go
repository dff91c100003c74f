package repository

import (
	"context"
	"time"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RosterRepository defines the interface for team roster data operations.
type RosterRepository interface {
	Add(ctx context.Context, entry *models.RosterPlayer) error
	FindByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.RosterPlayer, error)
	FindByTeamWithUsers(ctx context.Context, teamID primitive.ObjectID) ([]models.RosterPlayerWithUser, error)
	Remove(ctx context.Context, teamID, userID primitive.ObjectID) error
}

// rosterRepository implements RosterRepository using MongoDB.
type rosterRepository struct {
	collection *mongo.Collection
}

// NewRosterRepository creates a new RosterRepository.
func NewRosterRepository(db *mongo.Database) RosterRepository {
	return &rosterRepository{
		collection: db.Collection("rosters"),
	}
}

// Add inserts a roster entry. The (teamId, userId) unique index rejects
// duplicate entries.
func (r *rosterRepository) Add(ctx context.Context, entry *models.RosterPlayer) error {
	entry.ID = primitive.NewObjectID()
	entry.JoinedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, entry)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrPlayerAlreadyOnRoster
	}
	return err
}

// FindByTeam returns all roster entries for a team.
func (r *rosterRepository) FindByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.RosterPlayer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.RosterPlayer
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.RosterPlayer{}
	}
	return entries, nil
}

// FindByTeamWithUsers returns roster entries joined with user details.
func (r *rosterRepository) FindByTeamWithUsers(ctx context.Context, teamID primitive.ObjectID) ([]models.RosterPlayerWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"teamId": teamID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$sort", Value: bson.D{{Key: "jerseyNumber", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []struct {
		ID           primitive.ObjectID `bson:"_id"`
		TeamID       primitive.ObjectID `bson:"teamId"`
		UserID       primitive.ObjectID `bson:"userId"`
		JerseyNumber int                `bson:"jerseyNumber"`
		JoinedAt     time.Time          `bson:"joinedAt"`
		User         *models.User       `bson:"user"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	entries := make([]models.RosterPlayerWithUser, 0, len(raw))
	for _, e := range raw {
		entry := models.RosterPlayerWithUser{
			ID:           e.ID,
			TeamID:       e.TeamID,
			UserID:       e.UserID,
			JerseyNumber: e.JerseyNumber,
			JoinedAt:     e.JoinedAt,
		}
		if e.User != nil {
			entry.User = &models.UserSummary{
				ID:    e.User.ID,
				Email: e.User.Email,
				Name:  e.User.Name,
				Role:  e.User.Role,
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Remove deletes a roster entry.
func (r *rosterRepository) Remove(ctx context.Context, teamID, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"teamId": teamID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrRosterPlayerNotFound
	}
	return nil
}
