package repository

import (
	"context"
	"errors"
	"time"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MatchRepository defines the interface for match data operations. Its
// FindCompletedByTeam query feeds the eligibility gate.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error)
	FindByTournament(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) ([]models.Match, int, error)
	FindCompletedByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.Match, error)
	UpdateScore(ctx context.Context, id primitive.ObjectID, scoreA, scoreB int) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.MatchStatus) error
}

// matchRepository implements MatchRepository using MongoDB.
type matchRepository struct {
	collection *mongo.Collection
}

// NewMatchRepository creates a new MatchRepository.
func NewMatchRepository(db *mongo.Database) MatchRepository {
	return &matchRepository{
		collection: db.Collection("matches"),
	}
}

// Create inserts a new match.
func (r *matchRepository) Create(ctx context.Context, match *models.Match) error {
	match.ID = primitive.NewObjectID()
	match.CreatedAt = time.Now()
	match.UpdatedAt = time.Now()
	if match.Status == "" {
		match.Status = models.MatchScheduled
	}

	_, err := r.collection.InsertOne(ctx, match)
	return err
}

// FindByID retrieves a match by ID.
func (r *matchRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	var match models.Match
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// FindByTournament returns paginated matches of a tournament ordered by
// scheduled time.
func (r *matchRepository) FindByTournament(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) ([]models.Match, int, error) {
	skip := (page - 1) * limit
	filter := bson.M{"tournamentId": tournamentID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "scheduledTime", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var matches []models.Match
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, 0, err
	}

	if matches == nil {
		matches = []models.Match{}
	}
	return matches, int(total), nil
}

// FindCompletedByTeam returns all completed matches in which the team played
// either side, ordered by scheduled time ascending.
func (r *matchRepository) FindCompletedByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.Match, error) {
	filter := bson.M{
		"status": models.MatchCompleted,
		"$or": []bson.M{
			{"teamA.id": teamID},
			{"teamB.id": teamID},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduledTime", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var matches []models.Match
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, err
	}

	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}

// UpdateScore sets the current score pair.
func (r *matchRepository) UpdateScore(ctx context.Context, id primitive.ObjectID, scoreA, scoreB int) error {
	update := bson.M{
		"$set": bson.M{
			"scoreA":    scoreA,
			"scoreB":    scoreB,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrMatchNotFound
	}
	return nil
}

// UpdateStatus sets the match status.
func (r *matchRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.MatchStatus) error {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrMatchNotFound
	}
	return nil
}
