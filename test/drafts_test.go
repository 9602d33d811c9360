//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/workoutworks/internal/drafts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestDraftsFlow() {
	t := s.T()
	ctx := context.Background()

	user := s.newSignedInUser(ctx)
	other := s.newSignedInUser(ctx)

	resp, _ := s.do(ctx, http.MethodGet, "/api/drafts/meal", user.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	fields := map[string]any{"foodName": "oats", "weight": "80"}
	resp, body := s.do(ctx, http.MethodPut, "/api/drafts/meal", user.Token, fields)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.do(ctx, http.MethodGet, "/api/drafts/meal", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var draft drafts.Draft
	require.NoError(t, json.Unmarshal(body, &draft))
	assert.Equal(t, user.ID, draft.OwnerID)
	assert.JSONEq(t, `{"foodName":"oats","weight":"80"}`, string(draft.Fields))

	// drafts are private to their owner
	resp, _ = s.do(ctx, http.MethodGet, "/api/drafts/meal", other.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(ctx, http.MethodPut, "/api/drafts/unknown", user.Token, fields)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(ctx, http.MethodDelete, "/api/drafts/meal", user.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = s.do(ctx, http.MethodGet, "/api/drafts/meal", user.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
