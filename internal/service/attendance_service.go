package service

import (
	"context"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceService handles coaching session attendance.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	programmeRepo  repository.ProgrammeRepository
	userRepo       repository.UserRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, programmeRepo repository.ProgrammeRepository, userRepo repository.UserRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		programmeRepo:  programmeRepo,
		userRepo:       userRepo,
	}
}

// RecordAttendance marks a player's presence at one session of a programme.
func (s *AttendanceService) RecordAttendance(ctx context.Context, programmeID, recordedBy primitive.ObjectID, req *models.RecordAttendanceRequest) (*models.AttendanceRecord, error) {
	if _, err := s.programmeRepo.FindByID(ctx, programmeID); err != nil {
		return nil, err
	}

	playerID, err := primitive.ObjectIDFromHex(req.PlayerID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.userRepo.FindByID(ctx, playerID); err != nil {
		return nil, err
	}

	record := &models.AttendanceRecord{
		ProgrammeID: programmeID,
		PlayerID:    playerID,
		SessionDate: req.SessionDate,
		Status:      req.Status,
		RecordedBy:  recordedBy,
	}

	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListAttendance returns all attendance records of a programme.
func (s *AttendanceService) ListAttendance(ctx context.Context, programmeID primitive.ObjectID) (*models.AttendanceListResponse, error) {
	if _, err := s.programmeRepo.FindByID(ctx, programmeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.FindByProgramme(ctx, programmeID)
	if err != nil {
		return nil, err
	}
	return &models.AttendanceListResponse{Items: records}, nil
}

// PlayerAttendance returns one player's attendance records in a programme.
func (s *AttendanceService) PlayerAttendance(ctx context.Context, programmeID, playerID primitive.ObjectID) (*models.AttendanceListResponse, error) {
	if _, err := s.programmeRepo.FindByID(ctx, programmeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.FindByProgrammeAndPlayer(ctx, programmeID, playerID)
	if err != nil {
		return nil, err
	}
	return &models.AttendanceListResponse{Items: records}, nil
}

// Summary aggregates per-player attendance counts across a programme.
func (s *AttendanceService) Summary(ctx context.Context, programmeID primitive.ObjectID) (*models.AttendanceSummaryResponse, error) {
	if _, err := s.programmeRepo.FindByID(ctx, programmeID); err != nil {
		return nil, err
	}

	players, err := s.attendanceRepo.Summary(ctx, programmeID)
	if err != nil {
		return nil, err
	}

	return &models.AttendanceSummaryResponse{
		ProgrammeID: programmeID,
		Players:     players,
	}, nil
}
