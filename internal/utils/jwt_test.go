package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmfarias/warranty-service/internal/apperr"
	"github.com/rmfarias/warranty-service/internal/domain"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func testUser() *domain.User {
	return &domain.User{ID: 42, Email: "driver@example.com", Role: domain.RoleUser}
}

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	manager, err := NewJWTManager(testSecret, "HS256", 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	return manager
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	manager := newTestManager(t)

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)
	assert.Equal(t, domain.TokenTypeBearer, pair.TokenType)
	assert.Equal(t, int((15 * time.Minute).Seconds()), pair.ExpiresIn)

	access, err := manager.DecodeAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), access.UserID)
	assert.Equal(t, "driver@example.com", access.Email)
	assert.Equal(t, domain.RoleUser, access.Role)
	assert.False(t, access.Refresh)

	refresh, err := manager.DecodeRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), refresh.UserID)
	assert.True(t, refresh.Refresh)
	assert.Equal(t, access.Iat, refresh.Iat)
	assert.Greater(t, refresh.Exp, access.Exp)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	manager := newTestManager(t)
	other, err := NewJWTManager("another-secret-key-at-least-32-chars", "HS256", time.Minute, time.Hour)
	require.NoError(t, err)

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = other.Decode(pair.AccessToken)
	assert.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(err))
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	manager, err := NewJWTManager(testSecret, "HS256", -time.Minute, -time.Minute)
	require.NoError(t, err)

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = manager.Decode(pair.AccessToken)
	assert.Equal(t, apperr.KindTokenExpired, apperr.KindOf(err))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.Decode("not-a-token")
	assert.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(err))
}

func TestDecodeAccessRejectsRefreshToken(t *testing.T) {
	manager := newTestManager(t)

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = manager.DecodeAccess(pair.RefreshToken)
	assert.Equal(t, apperr.KindInvalidToken, apperr.KindOf(err))
}

func TestDecodeRefreshRejectsAccessToken(t *testing.T) {
	manager := newTestManager(t)

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = manager.DecodeRefresh(pair.AccessToken)
	assert.Equal(t, apperr.KindInvalidToken, apperr.KindOf(err))
}

func TestNewJWTManagerRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewJWTManager(testSecret, "RS256", time.Minute, time.Hour)
	assert.Error(t, err)
}

func TestSigningAlgorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		manager, err := NewJWTManager(testSecret, alg, time.Minute, time.Hour)
		require.NoError(t, err)

		pair, err := manager.GenerateTokenPair(testUser())
		require.NoError(t, err)

		claims, err := manager.Decode(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestValidateCPF(t *testing.T) {
	assert.True(t, ValidateCPF("12345678901"))
	assert.True(t, ValidateCPF("123.456.789-01"))
	assert.False(t, ValidateCPF("1234567890"))
	assert.False(t, ValidateCPF("1234567890a"))
}
