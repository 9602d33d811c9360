//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/workoutworks/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestWorkoutsFlow() {
	t := s.T()
	ctx := context.Background()

	user := s.newSignedInUser(ctx)
	other := s.newSignedInUser(ctx)
	today := time.Now().UTC().Format(time.DateOnly)

	var created []workouts.Exercise
	for _, volume := range []float64{1200, 800.5} {
		v := volume
		resp, body := s.do(ctx, http.MethodPost, "/api/exercises", user.Token, workouts.NewExercise{
			ExerciseName:      "bench press",
			IsFreeweight:      true,
			Content:           "3x8 @ 50kg",
			TotalVolume:       &v,
			TargetMuscleGroup: "Chest",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		var exercise workouts.Exercise
		require.NoError(t, json.Unmarshal(body, &exercise))
		created = append(created, exercise)
	}

	resp, _ := s.do(ctx, http.MethodGet, "/api/workout-volume?userId="+user.ID.String(), user.Token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	volumePath := fmt.Sprintf("/api/workout-volume?userId=%s&startDate=%s&endDate=%s", user.ID, today, today)
	resp, body := s.do(ctx, http.MethodGet, volumePath, user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var volume workouts.VolumeResponse
	require.NoError(t, json.Unmarshal(body, &volume))
	require.Len(t, volume.VolumeData, 1)
	assert.Equal(t, today, volume.VolumeData[0].Date)
	assert.InDelta(t, 2000.5, volume.VolumeData[0].Total, 0.001)

	deletePath := fmt.Sprintf("/api/exercises/%d", created[0].ID)
	resp, _ = s.do(ctx, http.MethodDelete, deletePath, other.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = s.do(ctx, http.MethodDelete, deletePath, user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, _ = s.do(ctx, http.MethodDelete, deletePath, user.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = s.do(ctx, http.MethodGet, "/api/exercises", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var list workouts.ListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Exercises, 1)
	assert.Equal(t, created[1].ID, list.Exercises[0].ID)
}
