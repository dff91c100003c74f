package service

import (
	"context"
	"fmt"
	"log"
	"mime"
	"time"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/repository"
	"ultihub/internal/storage"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// LogoUploadExpiry is how long a pre-signed logo upload URL stays valid.
	LogoUploadExpiry = 15 * time.Minute
	// LogoDownloadExpiry is how long a pre-signed logo download URL stays valid.
	LogoDownloadExpiry = 1 * time.Hour
)

// TeamService handles team registration and roster business logic.
type TeamService struct {
	teamRepo       repository.TeamRepository
	rosterRepo     repository.RosterRepository
	tournamentRepo repository.TournamentRepository
	userRepo       repository.UserRepository
	storage        storage.Storage
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, rosterRepo repository.RosterRepository, tournamentRepo repository.TournamentRepository, userRepo repository.UserRepository, store storage.Storage) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		rosterRepo:     rosterRepo,
		tournamentRepo: tournamentRepo,
		userRepo:       userRepo,
		storage:        store,
	}
}

// RegisterTeam registers a team for a tournament. The team starts pending
// until a director reviews it.
func (s *TeamService) RegisterTeam(ctx context.Context, tournamentID, managerID primitive.ObjectID, req *models.RegisterTeamRequest) (*models.Team, error) {
	if _, err := s.tournamentRepo.FindByID(ctx, tournamentID); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:         req.Name,
		Slug:         slug.Make(req.Name),
		TournamentID: tournamentID,
		ManagerID:    managerID,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// GetTeam retrieves a team, attaching a pre-signed logo URL when one is set.
func (s *TeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	s.attachLogoURL(ctx, team)
	return team, nil
}

// ListTeams returns paginated teams for a tournament.
func (s *TeamService) ListTeams(ctx context.Context, tournamentID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	teams, total, err := s.teamRepo.FindByTournament(ctx, tournamentID, page, limit)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		s.attachLogoURL(ctx, &teams[i])
	}

	return &models.TeamListResponse{
		Items:      teams,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// ListManagedTeams returns all teams managed by a user.
func (s *TeamService) ListManagedTeams(ctx context.Context, managerID primitive.ObjectID) ([]models.Team, error) {
	return s.teamRepo.FindByManager(ctx, managerID)
}

// ReviewTeam approves or rejects a pending registration. A team that has
// already been reviewed cannot be reviewed again.
func (s *TeamService) ReviewTeam(ctx context.Context, teamID primitive.ObjectID, req *models.ReviewTeamRequest) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.Status != models.TeamPending {
		return nil, apperrors.ErrTeamAlreadyReviewed
	}

	if err := s.teamRepo.UpdateStatus(ctx, teamID, req.Status); err != nil {
		return nil, err
	}

	team.Status = req.Status
	return team, nil
}

// RequestLogoUpload issues a pre-signed upload URL for a team logo. Only the
// team's manager may upload.
func (s *TeamService) RequestLogoUpload(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.TeamLogoUploadRequest) (*models.TeamLogoUploadResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.ManagerID != actorID {
		return nil, apperrors.ErrNotTeamManager
	}

	logoKey := fmt.Sprintf("logos/%s%s", teamID.Hex(), extensionFor(req.ContentType))
	uploadURL, err := s.storage.GetPresignedPutURL(ctx, logoKey, req.ContentType, LogoUploadExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, logoKey); err != nil {
		return nil, err
	}

	return &models.TeamLogoUploadResponse{
		UploadURL: uploadURL,
		LogoKey:   logoKey,
	}, nil
}

// AddRosterPlayer adds a player to the roster. Only the manager may change
// the roster, and the player account must exist.
func (s *TeamService) AddRosterPlayer(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.AddRosterPlayerRequest) (*models.RosterPlayer, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.ManagerID != actorID {
		return nil, apperrors.ErrNotTeamManager
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	entry := &models.RosterPlayer{
		TeamID:       teamID,
		UserID:       userID,
		JerseyNumber: req.JerseyNumber,
	}

	if err := s.rosterRepo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListRoster returns the roster with expanded user details.
func (s *TeamService) ListRoster(ctx context.Context, teamID primitive.ObjectID) (*models.RosterListResponse, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.FindByTeamWithUsers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &models.RosterListResponse{Items: entries}, nil
}

// RemoveRosterPlayer removes a player from the roster. Only the manager may
// change the roster.
func (s *TeamService) RemoveRosterPlayer(ctx context.Context, teamID, actorID, userID primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	if team.ManagerID != actorID {
		return apperrors.ErrNotTeamManager
	}

	return s.rosterRepo.Remove(ctx, teamID, userID)
}

// attachLogoURL fills in a pre-signed download URL for a stored logo. A
// presigning failure only costs the URL, never the request.
func (s *TeamService) attachLogoURL(ctx context.Context, team *models.Team) {
	if team.LogoKey == "" {
		return
	}
	url, err := s.storage.GetPresignedURL(ctx, team.LogoKey, LogoDownloadExpiry)
	if err != nil {
		log.Printf("Failed to presign logo URL for team %s: %v", team.ID.Hex(), err)
		return
	}
	team.LogoURL = url
}

// extensionFor maps an allowed logo content type to a file extension.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/svg+xml":
		return ".svg"
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
