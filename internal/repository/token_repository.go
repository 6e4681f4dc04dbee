package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/pkg/database"
)

// tokenRepository implements TokenRepository interface
type tokenRepository struct {
	db *database.Postgres
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *database.Postgres) TokenRepository {
	return &tokenRepository{db: db}
}

// Create persists a new token-pair issuance
func (r *tokenRepository) Create(ctx context.Context, token *domain.Token) error {
	query := `
		INSERT INTO tokens (user_id, token_type, access_token_hash, refresh_token_hash, expires_at, created_at, revoked)
		VALUES ($1, $2, $3, $4, $5, $6, false)
		RETURNING id
	`

	if token.TokenType == "" {
		token.TokenType = domain.TokenTypeBearer
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	err := r.db.DB.QueryRowContext(ctx, query,
		token.UserID,
		token.TokenType,
		token.AccessTokenHash,
		token.RefreshTokenHash,
		token.ExpiresAt,
		token.CreatedAt,
	).Scan(&token.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("token already persisted: %w", ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to create token: %w", err)
	}

	return nil
}

// GetByUserAndRefreshHash retrieves the non-revoked token row matching a
// user and refresh token hash
func (r *tokenRepository) GetByUserAndRefreshHash(ctx context.Context, userID int64, refreshHash string) (*domain.Token, error) {
	query := `
		SELECT id, user_id, token_type, access_token_hash, refresh_token_hash, expires_at, created_at, revoked
		FROM tokens
		WHERE user_id = $1 AND refresh_token_hash = $2 AND revoked = false
	`

	token := &domain.Token{}

	err := r.db.DB.QueryRowContext(ctx, query, userID, refreshHash).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenType,
		&token.AccessTokenHash,
		&token.RefreshTokenHash,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.Revoked,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// Revoke marks a token row as revoked
func (r *tokenRepository) Revoke(ctx context.Context, tokenID int64) error {
	query := `UPDATE tokens SET revoked = true WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// RevokeByRefreshHash marks all token rows carrying a refresh hash as revoked
func (r *tokenRepository) RevokeByRefreshHash(ctx context.Context, refreshHash string) error {
	query := `UPDATE tokens SET revoked = true WHERE refresh_token_hash = $1`

	if _, err := r.db.DB.ExecContext(ctx, query, refreshHash); err != nil {
		return fmt.Errorf("failed to revoke token by hash: %w", err)
	}

	return nil
}

// DeleteExpired deletes all expired token rows
func (r *tokenRepository) DeleteExpired(ctx context.Context) error {
	query := `DELETE FROM tokens WHERE expires_at < $1`

	if _, err := r.db.DB.ExecContext(ctx, query, time.Now()); err != nil {
		return fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	return nil
}
