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

// ProgrammeRepository defines the interface for coaching programme data
// operations.
type ProgrammeRepository interface {
	Create(ctx context.Context, programme *models.Programme) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Programme, error)
	FindAll(ctx context.Context) ([]models.Programme, error)
	Update(ctx context.Context, programme *models.Programme) error
}

// programmeRepository implements ProgrammeRepository using MongoDB.
type programmeRepository struct {
	collection *mongo.Collection
}

// NewProgrammeRepository creates a new ProgrammeRepository.
func NewProgrammeRepository(db *mongo.Database) ProgrammeRepository {
	return &programmeRepository{
		collection: db.Collection("programmes"),
	}
}

// Create inserts a new programme.
func (r *programmeRepository) Create(ctx context.Context, programme *models.Programme) error {
	programme.ID = primitive.NewObjectID()
	programme.CreatedAt = time.Now()
	programme.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, programme)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrProgrammeSlugTaken
	}
	return err
}

// FindByID retrieves a programme by ID.
func (r *programmeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Programme, error) {
	var programme models.Programme
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&programme)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProgrammeNotFound
		}
		return nil, err
	}
	return &programme, nil
}

// FindAll returns all programmes ordered by season then name.
func (r *programmeRepository) FindAll(ctx context.Context) ([]models.Programme, error) {
	opts := options.Find().SetSort(bson.D{{Key: "season", Value: -1}, {Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var programmes []models.Programme
	if err := cursor.All(ctx, &programmes); err != nil {
		return nil, err
	}

	if programmes == nil {
		programmes = []models.Programme{}
	}
	return programmes, nil
}

// Update updates an existing programme.
func (r *programmeRepository) Update(ctx context.Context, programme *models.Programme) error {
	programme.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":      programme.Name,
			"season":    programme.Season,
			"updatedAt": programme.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": programme.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrProgrammeNotFound
	}
	return nil
}
