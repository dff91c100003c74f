// Package service contains business logic for the application.
package service

import (
	"context"
	"time"

	"ultihub/internal/authz"
	"ultihub/internal/cache"
	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/repository"
	"ultihub/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo        repository.UserRepository
	cache           cache.Cache
	jwtManager      auth.TokenManager
	tokenGenerator  auth.RefreshTokenGenerator
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, c cache.Cache, jwtManager auth.TokenManager, tokenGenerator auth.RefreshTokenGenerator, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		cache:           c,
		jwtManager:      jwtManager,
		tokenGenerator:  tokenGenerator,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

// Register creates a new user account and returns auth tokens. Role aliases
// are normalized before the account is stored.
func (s *AuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     authz.NormalizeRole(req.Role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.generateAuthResponse(ctx, user)
}

// Login authenticates a user and returns auth tokens.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateAuthResponse(ctx, user)
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if err := s.tokenGenerator.Validate(req.RefreshToken); err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	userID, err := s.cache.GetRefreshToken(ctx, s.tokenGenerator.Hash(req.RefreshToken))
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	// Role is read fresh so a changed account takes effect on next refresh.
	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	return &models.RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(s.accessTokenTTL.Seconds()),
	}, nil
}

// Logout invalidates a refresh token.
func (s *AuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if err := s.tokenGenerator.Validate(req.RefreshToken); err != nil {
		return apperrors.ErrInvalidRefreshToken
	}
	return s.cache.DeleteRefreshToken(ctx, s.tokenGenerator.Hash(req.RefreshToken))
}

// generateAuthResponse issues an access/refresh token pair for a user.
func (s *AuthService) generateAuthResponse(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokenGenerator.Generate()
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetRefreshToken(ctx, s.tokenGenerator.Hash(refreshToken), user.ID.Hex(), s.refreshTokenTTL); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.accessTokenTTL.Seconds()),
		User:         *user,
	}, nil
}
