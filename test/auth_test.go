//go:build integration

package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitplanner/internal/auth"
)

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creds, registered := s.registerUser(ctx)

	// the same username again
	status, _ := s.doRequest(ctx, http.MethodPost, "/a/register", "", creds)
	assert.Equal(t, http.StatusConflict, status)

	var loginResp auth.LoginResponse
	s.doJSON(ctx, http.MethodPost, "/a/login", "", creds, http.StatusOK, &loginResp)
	assert.Equal(t, registered.UserID, loginResp.UserID)
	assert.NotEqual(t, registered.Token, loginResp.Token)

	status, body := s.doRequest(ctx, http.MethodGet, "/a/logout", loginResp.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "logged-out")

	// the logged out token is no longer accepted, the other one still is
	status, _ = s.doRequest(ctx, http.MethodGet, "/sessions/week", loginResp.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = s.doRequest(ctx, http.MethodGet, "/sessions/week", registered.Token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestLogin_BadCredentials() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creds, _ := s.registerUser(ctx)

	cases := map[string]struct {
		creds              auth.Credentials
		expectedStatusCode int
		expectedBody       string
	}{
		"bad password": {
			creds:              auth.Credentials{Username: creds.Username, Password: "bad-password"},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, wrong credentials",
		},
		"unknown user": {
			creds:              auth.Credentials{Username: "nobody-" + creds.Username, Password: creds.Password},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, wrong credentials",
		},
		"empty password": {
			creds:              auth.Credentials{Username: creds.Username},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, password empty",
		},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			status, body := s.doRequest(ctx, http.MethodPost, "/a/login", "", tc.creds)
			s.Equal(tc.expectedStatusCode, status)
			s.Contains(string(body), tc.expectedBody)
		})
	}
}
