package acceptance

import (
	"net/http"

	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/handler"
)

func (s *Suite) TestSignupIssuesUsableTokens() {
	auth := s.signupUser("alice", "alice@example.com", "user")

	s.NotEmpty(auth.AccessToken)
	s.NotEmpty(auth.RefreshToken)
	s.Equal("bearer", auth.TokenType)
	s.Equal(900, auth.ExpiresIn)
	s.Equal("alice", auth.User.Username)
	s.Equal("user", auth.User.Role)

	resp := s.request(http.MethodGet, "/api/v1/auth/me", nil, auth.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)

	var profile dto.UserResponse
	s.decode(resp, &profile)
	s.Equal(auth.User.ID, profile.ID)
	s.Equal("alice@example.com", profile.Email)
	s.True(profile.IsActive)
}

func (s *Suite) TestSignupDuplicateUsername() {
	s.signupUser("bob", "bob@example.com", "user")

	resp := s.request(http.MethodPost, "/api/v1/auth/signup", dto.SignupRequest{
		Username: "bob",
		CPF:      "12345678901",
		Email:    "other@example.com",
		Password: "Password1",
	}, "")
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestSignupRejectsWeakPassword() {
	resp := s.request(http.MethodPost, "/api/v1/auth/signup", dto.SignupRequest{
		Username: "weakling",
		CPF:      "12345678901",
		Email:    "weak@example.com",
		Password: "lowercase1",
	}, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestLogin() {
	s.signupUser("carol", "carol@example.com", "user")

	resp := s.request(http.MethodPost, "/api/v1/auth/token", dto.LoginRequest{
		Username: "carol",
		Password: "Password1",
	}, "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var auth dto.AuthResponse
	s.decode(resp, &auth)
	s.NotEmpty(auth.AccessToken)
	s.Equal("carol", auth.User.Username)
}

func (s *Suite) TestLoginWrongPassword() {
	s.signupUser("dave", "dave@example.com", "user")

	resp := s.request(http.MethodPost, "/api/v1/auth/token", dto.LoginRequest{
		Username: "dave",
		Password: "WrongPassword1",
	}, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestLoginUnknownUser() {
	resp := s.request(http.MethodPost, "/api/v1/auth/token", dto.LoginRequest{
		Username: "nobody",
		Password: "Password1",
	}, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestRefreshRotatesTokenPair() {
	auth := s.signupUser("erin", "erin@example.com", "user")

	resp := s.request(http.MethodGet, "/api/v1/auth/refresh_token", nil, "",
		handler.RefreshTokenHeader, auth.RefreshToken)
	s.Equal(http.StatusOK, resp.StatusCode)

	var rotated dto.AuthResponse
	s.decode(resp, &rotated)
	s.NotEmpty(rotated.AccessToken)
	s.NotEqual(auth.RefreshToken, rotated.RefreshToken)

	// The previous refresh token is revoked once rotated.
	resp = s.request(http.MethodGet, "/api/v1/auth/refresh_token", nil, "",
		handler.RefreshTokenHeader, auth.RefreshToken)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// The rotated pair works.
	resp = s.request(http.MethodGet, "/api/v1/auth/me", nil, rotated.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestRefreshRejectsAccessToken() {
	auth := s.signupUser("frank", "frank@example.com", "user")

	resp := s.request(http.MethodGet, "/api/v1/auth/refresh_token", nil, "",
		handler.RefreshTokenHeader, auth.AccessToken)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestRefreshWithoutHeader() {
	resp := s.request(http.MethodGet, "/api/v1/auth/refresh_token", nil, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestLogoutRevokesRefreshToken() {
	auth := s.signupUser("grace", "grace@example.com", "user")

	resp := s.request(http.MethodPost, "/api/v1/auth/logout", nil, auth.AccessToken,
		handler.RefreshTokenHeader, auth.RefreshToken)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodGet, "/api/v1/auth/refresh_token", nil, "",
		handler.RefreshTokenHeader, auth.RefreshToken)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestProtectedRoutesRequireToken() {
	resp := s.request(http.MethodGet, "/api/v1/vehicle", nil, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodGet, "/api/v1/vehicle", nil, "not-a-token")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
