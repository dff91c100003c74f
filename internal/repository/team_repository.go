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

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindByTournament(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) ([]models.Team, int, error)
	FindByManager(ctx context.Context, managerID primitive.ObjectID) ([]models.Team, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.TeamStatus) error
	UpdateLogoKey(ctx context.Context, id primitive.ObjectID, logoKey string) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a new team registration. New teams start pending.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	team.UpdatedAt = time.Now()
	if team.Status == "" {
		team.Status = models.TeamPending
	}

	_, err := r.collection.InsertOne(ctx, team)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrTeamSlugTaken
	}
	return err
}

// FindByID retrieves a team by ID.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// FindByTournament returns paginated teams registered for a tournament.
func (r *teamRepository) FindByTournament(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) ([]models.Team, int, error) {
	skip := (page - 1) * limit
	filter := bson.M{"tournamentId": tournamentID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, 0, err
	}

	if teams == nil {
		teams = []models.Team{}
	}
	return teams, int(total), nil
}

// FindByManager returns all teams managed by a user.
func (r *teamRepository) FindByManager(ctx context.Context, managerID primitive.ObjectID) ([]models.Team, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"managerId": managerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

// UpdateStatus changes a team's registration status.
func (r *teamRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.TeamStatus) error {
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
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// UpdateLogoKey records the object key of an uploaded team logo.
func (r *teamRepository) UpdateLogoKey(ctx context.Context, id primitive.ObjectID, logoKey string) error {
	update := bson.M{
		"$set": bson.M{
			"logoKey":   logoKey,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}
