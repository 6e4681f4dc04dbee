package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{KindInvalidCredentials, http.StatusUnauthorized},
		{KindInvalidToken, http.StatusUnauthorized},
		{KindTokenExpired, http.StatusUnauthorized},
		{KindTokenNotFound, http.StatusNotFound},
		{KindUserNotFound, http.StatusUnauthorized},
		{KindInsufficientPermission, http.StatusForbidden},
		{KindUserAlreadyExists, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindValidation, http.StatusBadRequest},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(New(tc.kind, "x")))
	}
}

func TestHTTPStatusPlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
	assert.Equal(t, "Internal server error", Label(errors.New("boom")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := New(KindTokenExpired, "token expired")
	wrapped := fmt.Errorf("refresh failed: %w", err)

	assert.Equal(t, KindTokenExpired, KindOf(wrapped))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(wrapped))
	assert.True(t, errors.Is(wrapped, New(KindTokenExpired, "")))
	assert.False(t, errors.Is(wrapped, New(KindInvalidToken, "")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("no rows")
	err := Wrap(KindNotFound, "vehicle not found", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "vehicle not found")
	assert.Contains(t, err.Error(), "no rows")
}
