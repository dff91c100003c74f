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

// TournamentRepository defines the interface for tournament data operations.
type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tournament, error)
	FindBySlug(ctx context.Context, slug string) (*models.Tournament, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Tournament, int, error)
	Update(ctx context.Context, tournament *models.Tournament) error
}

// tournamentRepository implements TournamentRepository using MongoDB.
type tournamentRepository struct {
	collection *mongo.Collection
}

// NewTournamentRepository creates a new TournamentRepository.
func NewTournamentRepository(db *mongo.Database) TournamentRepository {
	return &tournamentRepository{
		collection: db.Collection("tournaments"),
	}
}

// Create inserts a new tournament into the database.
func (r *tournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	tournament.ID = primitive.NewObjectID()
	tournament.CreatedAt = time.Now()
	tournament.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, tournament)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrTournamentSlugTaken
	}
	return err
}

// FindByID retrieves a tournament by ID.
func (r *tournamentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tournament, error) {
	var tournament models.Tournament
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tournament)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

// FindBySlug retrieves a tournament by slug.
func (r *tournamentRepository) FindBySlug(ctx context.Context, slug string) (*models.Tournament, error) {
	var tournament models.Tournament
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&tournament)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

// FindAll returns paginated tournaments ordered by start date descending.
func (r *tournamentRepository) FindAll(ctx context.Context, page, limit int) ([]models.Tournament, int, error) {
	skip := (page - 1) * limit

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "startDate", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var tournaments []models.Tournament
	if err := cursor.All(ctx, &tournaments); err != nil {
		return nil, 0, err
	}

	if tournaments == nil {
		tournaments = []models.Tournament{}
	}
	return tournaments, int(total), nil
}

// Update updates an existing tournament.
func (r *tournamentRepository) Update(ctx context.Context, tournament *models.Tournament) error {
	tournament.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":      tournament.Name,
			"location":  tournament.Location,
			"startDate": tournament.StartDate,
			"endDate":   tournament.EndDate,
			"updatedAt": tournament.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": tournament.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTournamentNotFound
	}
	return nil
}
