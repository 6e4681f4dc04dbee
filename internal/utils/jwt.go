package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rmfarias/warranty-service/internal/apperr"
	"github.com/rmfarias/warranty-service/internal/domain"
)

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// JWTManager signs and verifies the access/refresh token pairs
type JWTManager struct {
	secret             []byte
	method             jwt.SigningMethod
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

// NewJWTManager creates a new JWT manager. The algorithm must be one of
// HS256, HS384 or HS512; config validation rejects anything else before the
// manager is built.
func NewJWTManager(secret, algorithm string, accessTokenExpiry, refreshTokenExpiry time.Duration) (*JWTManager, error) {
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &JWTManager{
		secret:             []byte(secret),
		method:             method,
		accessTokenExpiry:  accessTokenExpiry,
		refreshTokenExpiry: refreshTokenExpiry,
	}, nil
}

// GenerateTokenPair issues an access and refresh token sharing the same
// issued-at instant. The refresh token carries refresh=true and a unique jti.
func (j *JWTManager) GenerateTokenPair(user *domain.User) (*domain.TokenPair, error) {
	now := time.Now()

	access, err := j.sign(user, now, now.Add(j.accessTokenExpiry), false)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := j.sign(user, now, now.Add(j.refreshTokenExpiry), true)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    domain.TokenTypeBearer,
		ExpiresIn:    int(j.accessTokenExpiry.Seconds()),
	}, nil
}

func (j *JWTManager) sign(user *domain.User, iat, exp time.Time, refresh bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     iat.Unix(),
		"exp":     exp.Unix(),
		"refresh": refresh,
		"jti":     uuid.New().String(),
	}
	return jwt.NewWithClaims(j.method, claims).SignedString(j.secret)
}

// Decode verifies the signature and expiry of a token and returns its claims.
// Expired tokens, bad signatures and tokens without a user_id each map to
// their own error kind.
func (j *JWTManager) Decode(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.New(apperr.KindTokenExpired, "token is expired")
		}
		return nil, apperr.Wrap(apperr.KindInvalidCredentials, "could not verify token", err)
	}
	if !token.Valid {
		return nil, apperr.New(apperr.KindInvalidCredentials, "could not verify token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.New(apperr.KindInvalidToken, "invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, apperr.New(apperr.KindInvalidToken, "token carries no user id")
	}

	tokenClaims := &domain.TokenClaims{UserID: int64(userID)}
	if email, ok := claims["email"].(string); ok {
		tokenClaims.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		tokenClaims.Role = role
	}
	if exp, ok := claims["exp"].(float64); ok {
		tokenClaims.Exp = int64(exp)
	}
	if iat, ok := claims["iat"].(float64); ok {
		tokenClaims.Iat = int64(iat)
	}
	if refresh, ok := claims["refresh"].(bool); ok {
		tokenClaims.Refresh = refresh
	}

	if tokenClaims.IsExpired() {
		return nil, apperr.New(apperr.KindTokenExpired, "token is expired")
	}

	return tokenClaims, nil
}

// DecodeAccess verifies a token and rejects refresh tokens presented where an
// access token is expected.
func (j *JWTManager) DecodeAccess(tokenString string) (*domain.TokenClaims, error) {
	claims, err := j.Decode(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Refresh {
		return nil, apperr.New(apperr.KindInvalidToken, "refresh token used as access token")
	}
	return claims, nil
}

// DecodeRefresh verifies a token and rejects anything that is not a refresh
// token.
func (j *JWTManager) DecodeRefresh(tokenString string) (*domain.TokenClaims, error) {
	claims, err := j.Decode(tokenString)
	if err != nil {
		return nil, err
	}
	if !claims.Refresh {
		return nil, apperr.New(apperr.KindInvalidToken, "token is not a refresh token")
	}
	return claims, nil
}

// AccessTokenExpiry returns the access token lifetime.
func (j *JWTManager) AccessTokenExpiry() time.Duration {
	return j.accessTokenExpiry
}

// RefreshTokenExpiry returns the refresh token lifetime.
func (j *JWTManager) RefreshTokenExpiry() time.Duration {
	return j.refreshTokenExpiry
}
