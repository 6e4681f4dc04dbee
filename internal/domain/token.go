package domain

import "time"

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// TokenClaims represents the verified claims of a signed token
type TokenClaims struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Exp     int64  `json:"exp"`
	Iat     int64  `json:"iat"`
	Refresh bool   `json:"refresh"`
}

// IsExpired checks if the token is expired
func (tc TokenClaims) IsExpired() bool {
	return time.Now().Unix() > tc.Exp
}

// TokenPair represents a pair of access and refresh tokens issued together
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// Token represents one persisted token-pair issuance. Raw token values are
// never stored, only their SHA-256 hashes. A row is marked revoked when the
// pair is superseded by a refresh or invalidated by a logout.
type Token struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	TokenType        string    `json:"token_type" db:"token_type"`
	AccessTokenHash  string    `json:"-" db:"access_token_hash"`
	RefreshTokenHash string    `json:"-" db:"refresh_token_hash"`
	ExpiresAt        time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	Revoked          bool      `json:"revoked" db:"revoked"`
}
