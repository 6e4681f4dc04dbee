package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rmfarias/warranty-service/pkg/database"
)

// TokenBlacklistService handles token revocation marks in Redis. Keys are
// token hashes, never raw tokens.
type TokenBlacklistService struct {
	redis *database.Redis
}

// NewTokenBlacklistService creates a new token blacklist service
func NewTokenBlacklistService(redis *database.Redis) *TokenBlacklistService {
	return &TokenBlacklistService{redis: redis}
}

// AddToken adds a token hash to the blacklist until its natural expiry
func (s *TokenBlacklistService) AddToken(ctx context.Context, tokenHash string, expiry time.Duration) error {
	key := fmt.Sprintf("blacklist:token:%s", tokenHash)
	err := s.redis.Client.Set(ctx, key, "1", expiry).Err()
	if err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// IsTokenBlacklisted checks if a token hash is in the blacklist
func (s *TokenBlacklistService) IsTokenBlacklisted(ctx context.Context, tokenHash string) (bool, error) {
	key := fmt.Sprintf("blacklist:token:%s", tokenHash)
	exists, err := s.redis.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists > 0, nil
}

// RemoveToken removes a token hash from the blacklist
func (s *TokenBlacklistService) RemoveToken(ctx context.Context, tokenHash string) error {
	key := fmt.Sprintf("blacklist:token:%s", tokenHash)
	err := s.redis.Client.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to remove token from blacklist: %w", err)
	}
	return nil
}
