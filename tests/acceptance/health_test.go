package acceptance

import (
	"io"
	"net/http"
	"strings"
)

func (s *Suite) TestHealthEndpoint() {
	resp := s.request(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var health struct {
		Status string `json:"status"`
	}
	s.decode(resp, &health)
	s.Equal("pass", health.Status)
}

func (s *Suite) TestMetricsEndpoint() {
	resp := s.request(http.MethodGet, "/metrics", nil, "")
	s.Equal(http.StatusOK, resp.StatusCode)

	contentType := resp.Header.Get("Content-Type")
	s.True(strings.HasPrefix(contentType, "text/plain"), "content type: %s", contentType)

	_, err := io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	s.Require().NoError(err)
}
