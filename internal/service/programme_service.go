package service

import (
	"context"

	"ultihub/internal/models"
	"ultihub/internal/repository"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgrammeService handles coaching programme business logic.
type ProgrammeService struct {
	programmeRepo repository.ProgrammeRepository
}

// NewProgrammeService creates a new ProgrammeService.
func NewProgrammeService(programmeRepo repository.ProgrammeRepository) *ProgrammeService {
	return &ProgrammeService{programmeRepo: programmeRepo}
}

// CreateProgramme creates a new coaching programme owned by a director.
func (s *ProgrammeService) CreateProgramme(ctx context.Context, directorID primitive.ObjectID, req *models.CreateProgrammeRequest) (*models.Programme, error) {
	programme := &models.Programme{
		Name:       req.Name,
		Slug:       slug.Make(req.Name),
		Season:     req.Season,
		DirectorID: directorID,
	}

	if err := s.programmeRepo.Create(ctx, programme); err != nil {
		return nil, err
	}
	return programme, nil
}

// ListProgrammes returns all programmes.
func (s *ProgrammeService) ListProgrammes(ctx context.Context) (*models.ProgrammeListResponse, error) {
	programmes, err := s.programmeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ProgrammeListResponse{Items: programmes}, nil
}

// GetProgramme retrieves a programme by ID.
func (s *ProgrammeService) GetProgramme(ctx context.Context, id primitive.ObjectID) (*models.Programme, error) {
	return s.programmeRepo.FindByID(ctx, id)
}

// UpdateProgramme applies a partial update. The slug stays stable so shared
// links keep working after a rename.
func (s *ProgrammeService) UpdateProgramme(ctx context.Context, id primitive.ObjectID, req *models.UpdateProgrammeRequest) (*models.Programme, error) {
	programme, err := s.programmeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		programme.Name = *req.Name
	}
	if req.Season != nil {
		programme.Season = *req.Season
	}

	if err := s.programmeRepo.Update(ctx, programme); err != nil {
		return nil, err
	}
	return programme, nil
}
