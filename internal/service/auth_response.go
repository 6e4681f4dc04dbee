package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/utils"
)

// issueTokens generates a fresh token pair, persists its hashes, and builds
// the client-facing response. One row is created per issuance; the row
// expires with the refresh token, which outlives the access token.
func (s *authService) issueTokens(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	pair, err := s.jwtManager.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	token := &domain.Token{
		UserID:           user.ID,
		TokenType:        domain.TokenTypeBearer,
		AccessTokenHash:  utils.HashToken(pair.AccessToken),
		RefreshTokenHash: utils.HashToken(pair.RefreshToken),
		ExpiresAt:        time.Now().Add(s.jwtManager.RefreshTokenExpiry()),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save token pair: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}
