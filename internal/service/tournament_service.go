package service

import (
	"context"

	"ultihub/internal/models"
	"ultihub/internal/repository"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TournamentService handles tournament business logic.
type TournamentService struct {
	tournamentRepo repository.TournamentRepository
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(tournamentRepo repository.TournamentRepository) *TournamentService {
	return &TournamentService{tournamentRepo: tournamentRepo}
}

// CreateTournament creates a tournament owned by the acting director.
func (s *TournamentService) CreateTournament(ctx context.Context, directorID primitive.ObjectID, req *models.CreateTournamentRequest) (*models.Tournament, error) {
	tournament := &models.Tournament{
		Name:       req.Name,
		Slug:       slug.Make(req.Name),
		Location:   req.Location,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		DirectorID: directorID,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// ListTournaments returns a paginated tournament list.
func (s *TournamentService) ListTournaments(ctx context.Context, page, limit int) (*models.TournamentListResponse, error) {
	tournaments, total, err := s.tournamentRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.TournamentListResponse{
		Items:      tournaments,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// GetTournament retrieves a tournament by ID.
func (s *TournamentService) GetTournament(ctx context.Context, id primitive.ObjectID) (*models.Tournament, error) {
	return s.tournamentRepo.FindByID(ctx, id)
}

// GetTournamentBySlug retrieves a tournament by its slug.
func (s *TournamentService) GetTournamentBySlug(ctx context.Context, slugValue string) (*models.Tournament, error) {
	return s.tournamentRepo.FindBySlug(ctx, slugValue)
}

// UpdateTournament applies a partial update. The slug is stable once created.
func (s *TournamentService) UpdateTournament(ctx context.Context, id primitive.ObjectID, req *models.UpdateTournamentRequest) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tournament.Name = *req.Name
	}
	if req.Location != nil {
		tournament.Location = *req.Location
	}
	if req.StartDate != nil {
		tournament.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		tournament.EndDate = *req.EndDate
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// buildPagination computes pagination metadata.
func buildPagination(page, limit, total int) models.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return models.Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
