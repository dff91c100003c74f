package repository

import (
	"context"
	"time"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttendanceRepository defines the interface for session attendance data
// operations.
type AttendanceRepository interface {
	Create(ctx context.Context, record *models.AttendanceRecord) error
	FindByProgramme(ctx context.Context, programmeID primitive.ObjectID) ([]models.AttendanceRecord, error)
	FindByProgrammeAndPlayer(ctx context.Context, programmeID, playerID primitive.ObjectID) ([]models.AttendanceRecord, error)
	Summary(ctx context.Context, programmeID primitive.ObjectID) ([]models.AttendanceSummary, error)
}

// attendanceRepository implements AttendanceRepository using MongoDB.
type attendanceRepository struct {
	collection *mongo.Collection
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(db *mongo.Database) AttendanceRepository {
	return &attendanceRepository{
		collection: db.Collection("attendance"),
	}
}

// Create inserts an attendance record. The unique
// (programmeId, playerId, sessionDate) index rejects double bookkeeping.
func (r *attendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrAttendanceAlreadyTaken
	}
	return err
}

// FindByProgramme returns all attendance records of a programme, most recent
// session first.
func (r *attendanceRepository) FindByProgramme(ctx context.Context, programmeID primitive.ObjectID) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sessionDate", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"programmeId": programmeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return records, nil
}

// FindByProgrammeAndPlayer returns one player's records in a programme.
func (r *attendanceRepository) FindByProgrammeAndPlayer(ctx context.Context, programmeID, playerID primitive.ObjectID) ([]models.AttendanceRecord, error) {
	filter := bson.M{
		"programmeId": programmeID,
		"playerId":    playerID,
	}
	opts := options.Find().SetSort(bson.D{{Key: "sessionDate", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return records, nil
}

// Summary aggregates per-player attendance counts for a programme.
func (r *attendanceRepository) Summary(ctx context.Context, programmeID primitive.ObjectID) ([]models.AttendanceSummary, error) {
	statusCount := func(status models.AttendanceStatus) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{"$status", status}}, 1, 0,
		}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"programmeId": programmeID}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$playerId",
			"sessions": bson.M{"$sum": 1},
			"present":  statusCount(models.AttendancePresent),
			"absent":   statusCount(models.AttendanceAbsent),
			"late":     statusCount(models.AttendanceLate),
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "present", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []models.AttendanceSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}

	if summaries == nil {
		summaries = []models.AttendanceSummary{}
	}
	return summaries, nil
}
