//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/workoutworks/internal/auth"
	"github.com/2beens/workoutworks/internal/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSignUpSignInSignOut() {
	t := s.T()
	ctx := context.Background()

	user := s.newSignedInUser(ctx)

	// same email again
	resp, _ := s.do(ctx, http.MethodPost, "/auth/signup", "", auth.SignUpRequest{
		Email:       user.Email,
		Password:    user.Password,
		DisplayName: "dup",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// wrong password
	resp, _ = s.do(ctx, http.MethodPost, "/auth/signin", "", auth.SignInRequest{
		Email:    user.Email,
		Password: user.Password + "x",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := s.do(ctx, http.MethodGet, "/api/profile", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var profile profiles.Profile
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, user.ID, profile.UserID)
	assert.False(t, profile.IsApproved)

	resp, _ = s.do(ctx, http.MethodPost, "/auth/signout", user.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(ctx, http.MethodGet, "/api/profile", user.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// second signout of the same token
	resp, _ = s.do(ctx, http.MethodPost, "/auth/signout", user.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestProtectedRoutesWithoutToken() {
	t := s.T()
	ctx := context.Background()

	for _, path := range []string{"/api/profile", "/api/meals", "/api/exercises", "/api/metrics"} {
		resp, _ := s.do(ctx, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	// the mcp endpoint uses its own shared secret
	resp, _ := s.do(ctx, http.MethodPost, "/mcp", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
