package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rmfarias/warranty-service/internal/apperr"
	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/repository"
	"github.com/rmfarias/warranty-service/internal/utils"
)

// authService implements AuthService interface
type authService struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	jwtManager *utils.JWTManager
	blacklist  TokenBlacklist
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	jwtManager *utils.JWTManager,
	blacklist TokenBlacklist,
	bcryptCost int,
	logger *zap.Logger,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtManager: jwtManager,
		blacklist:  blacklist,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Signup registers a new user and issues its first token pair
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if !utils.ValidateEmail(req.Email) {
		return nil, apperr.New(apperr.KindValidation, "invalid email format")
	}
	if !utils.ValidatePassword(req.Password) {
		return nil, apperr.New(apperr.KindValidation, "password must be at least 8 characters long and contain uppercase, lowercase, and number")
	}
	if !utils.ValidateCPF(req.CPF) {
		return nil, apperr.New(apperr.KindValidation, "invalid cpf")
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		CPF:          req.CPF,
		Email:        utils.SanitizeEmail(req.Email),
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Newf(apperr.KindUserAlreadyExists, "user %s already exists", req.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	return s.issueTokens(ctx, user)
}

// Login authenticates a user by username and password
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindInvalidCredentials, "invalid username or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, apperr.New(apperr.KindInvalidCredentials, "user account is inactive")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperr.New(apperr.KindInvalidCredentials, "invalid username or password")
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a token pair. The presented refresh token must verify, must
// not be blacklisted, and must match an unrevoked persisted row that has not
// passed its expiry. The old pair is revoked before the new one is issued.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.DecodeRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	refreshHash := utils.HashToken(refreshToken)

	blacklisted, err := s.blacklist.IsTokenBlacklisted(ctx, refreshHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if blacklisted {
		return nil, apperr.New(apperr.KindInvalidToken, "refresh token has been revoked")
	}

	dbToken, err := s.tokenRepo.GetByUserAndRefreshHash(ctx, claims.UserID, refreshHash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindTokenNotFound, "refresh token not found")
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	if time.Now().After(dbToken.ExpiresAt) {
		return nil, apperr.New(apperr.KindTokenExpired, "refresh token expired")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.KindInvalidCredentials, "user account is inactive")
	}

	if err := s.revokePair(ctx, dbToken, refreshHash); err != nil {
		s.logger.Warn("failed to revoke replaced token pair", zap.Error(err))
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token if it belongs to the user.
func (s *authService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	refreshHash := utils.HashToken(refreshToken)

	dbToken, err := s.tokenRepo.GetByUserAndRefreshHash(ctx, userID, refreshHash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get token: %w", err)
	}

	if err := s.revokePair(ctx, dbToken, refreshHash); err != nil {
		s.logger.Warn("failed to revoke token pair on logout", zap.Error(err))
	}
	return nil
}

// revokePair marks the persisted row revoked and blacklists the refresh hash
// for the remainder of its lifetime.
func (s *authService) revokePair(ctx context.Context, dbToken *domain.Token, refreshHash string) error {
	if err := s.tokenRepo.Revoke(ctx, dbToken.ID); err != nil {
		return err
	}
	remaining := time.Until(dbToken.ExpiresAt)
	if remaining <= 0 {
		return nil
	}
	return s.blacklist.AddToken(ctx, refreshHash, remaining)
}

// GetUser gets user information
func (s *authService) GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CPF:       user.CPF,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// ValidateToken validates an access token for request authentication
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.TokenClaims, error) {
	claims, err := s.jwtManager.DecodeAccess(token)
	if err != nil {
		return nil, err
	}

	blacklisted, err := s.blacklist.IsTokenBlacklisted(ctx, utils.HashToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if blacklisted {
		return nil, apperr.New(apperr.KindInvalidToken, "token has been revoked")
	}

	return claims, nil
}
