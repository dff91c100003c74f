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

// SpiritScoreRepository defines the interface for spirit score data
// operations. FindByScoringTeam feeds the eligibility gate.
type SpiritScoreRepository interface {
	Create(ctx context.Context, score *models.SpiritScore) error
	FindByMatch(ctx context.Context, matchID primitive.ObjectID) ([]models.SpiritScore, error)
	FindByMatchAndScoringTeam(ctx context.Context, matchID, scoringTeamID primitive.ObjectID) (*models.SpiritScore, error)
	FindByScoringTeam(ctx context.Context, scoringTeamID primitive.ObjectID) ([]models.SpiritScore, error)
	FindByScoredTeam(ctx context.Context, scoredTeamID primitive.ObjectID) ([]models.SpiritScore, error)
	Leaderboard(ctx context.Context, tournamentID primitive.ObjectID) ([]models.SpiritLeaderboardEntry, error)
}

// spiritScoreRepository implements SpiritScoreRepository using MongoDB.
type spiritScoreRepository struct {
	collection *mongo.Collection
}

// NewSpiritScoreRepository creates a new SpiritScoreRepository.
func NewSpiritScoreRepository(db *mongo.Database) SpiritScoreRepository {
	return &spiritScoreRepository{
		collection: db.Collection("spirit_scores"),
	}
}

// Create inserts a spirit score. The unique (matchId, scoringTeamId) index
// rejects a second submission for the same match by the same team.
func (r *spiritScoreRepository) Create(ctx context.Context, score *models.SpiritScore) error {
	score.ID = primitive.NewObjectID()
	score.SubmittedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, score)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrDuplicateSpiritScore
	}
	return err
}

// FindByMatch returns both teams' scores for a match (zero, one or two).
func (r *spiritScoreRepository) FindByMatch(ctx context.Context, matchID primitive.ObjectID) ([]models.SpiritScore, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"matchId": matchID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scores []models.SpiritScore
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, err
	}

	if scores == nil {
		scores = []models.SpiritScore{}
	}
	return scores, nil
}

// FindByMatchAndScoringTeam returns the score one team submitted for a match.
func (r *spiritScoreRepository) FindByMatchAndScoringTeam(ctx context.Context, matchID, scoringTeamID primitive.ObjectID) (*models.SpiritScore, error) {
	filter := bson.M{
		"matchId":       matchID,
		"scoringTeamId": scoringTeamID,
	}

	var score models.SpiritScore
	err := r.collection.FindOne(ctx, filter).Decode(&score)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSpiritScoreNotFound
		}
		return nil, err
	}
	return &score, nil
}

// FindByScoringTeam returns all scores a team has submitted.
func (r *spiritScoreRepository) FindByScoringTeam(ctx context.Context, scoringTeamID primitive.ObjectID) ([]models.SpiritScore, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"scoringTeamId": scoringTeamID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scores []models.SpiritScore
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, err
	}

	if scores == nil {
		scores = []models.SpiritScore{}
	}
	return scores, nil
}

// FindByScoredTeam returns all evaluations received by a team, newest first.
func (r *spiritScoreRepository) FindByScoredTeam(ctx context.Context, scoredTeamID primitive.ObjectID) ([]models.SpiritScore, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"scoredTeamId": scoredTeamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scores []models.SpiritScore
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, err
	}

	if scores == nil {
		scores = []models.SpiritScore{}
	}
	return scores, nil
}

// Leaderboard aggregates average spirit results per scored team across a
// tournament, best average first.
func (r *spiritScoreRepository) Leaderboard(ctx context.Context, tournamentID primitive.ObjectID) ([]models.SpiritLeaderboardEntry, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "matches",
			"localField":   "matchId",
			"foreignField": "_id",
			"as":           "match",
		}}},
		{{Key: "$unwind", Value: "$match"}},
		{{Key: "$match", Value: bson.M{"match.tournamentId": tournamentID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "teams",
			"localField":   "scoredTeamId",
			"foreignField": "_id",
			"as":           "team",
		}}},
		{{Key: "$unwind", Value: "$team"}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$scoredTeamId",
			"teamName":       bson.M{"$first": "$team.name"},
			"scoresReceived": bson.M{"$sum": 1},
			"averageTotal":   bson.M{"$avg": "$totalScore"},
			"avgRules":       bson.M{"$avg": "$rulesKnowledge"},
			"avgFouls":       bson.M{"$avg": "$foulsAndContact"},
			"avgFairness":    bson.M{"$avg": "$fairMindedness"},
			"avgAttitude":    bson.M{"$avg": "$positiveAttitude"},
			"avgComms":       bson.M{"$avg": "$communication"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "averageTotal", Value: -1}, {Key: "teamName", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.SpiritLeaderboardEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.SpiritLeaderboardEntry{}
	}
	return entries, nil
}
