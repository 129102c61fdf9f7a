//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitplanner/internal/auth"
)

// doRequest sends body as JSON when it is not nil and returns the status
// code and the raw response body.
func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

// doJSON is doRequest that requires the expected status and decodes the
// response into out.
func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path, token string, body any, expectedStatus int, out any) {
	t := s.T()
	status, respBytes := s.doRequest(ctx, method, path, token, body)
	require.Equal(t, expectedStatus, status, "%s %s: %s", method, path, respBytes)
	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out), string(respBytes))
	}
}

func newCredentials() auth.Credentials {
	return auth.Credentials{
		Username: fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), gofakeit.Number(1000, 9999)),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
}

// registerUser creates a fresh account and returns its login response.
func (s *IntegrationTestSuite) registerUser(ctx context.Context) (auth.Credentials, auth.LoginResponse) {
	creds := newCredentials()
	var loginResp auth.LoginResponse
	s.doJSON(ctx, http.MethodPost, "/a/register", "", creds, http.StatusCreated, &loginResp)
	require.NotEmpty(s.T(), loginResp.Token)
	return creds, loginResp
}
