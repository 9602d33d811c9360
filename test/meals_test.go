//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/workoutworks/internal/meals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestMealsFlow() {
	t := s.T()
	ctx := context.Background()

	user := s.newSignedInUser(ctx)
	today := time.Now().UTC().Format(time.DateOnly)

	weight, protein := 200.0, 46.5
	resp, body := s.do(ctx, http.MethodPost, "/api/meals", user.Token, meals.NewMeal{
		FoodName:        "chicken breast",
		Weight:          &weight,
		ProteinContent:  &protein,
		RecognitionDate: today,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = s.do(ctx, http.MethodPost, "/api/meals", user.Token, meals.NewMeal{
		FoodName:        "Creatine",
		RecognitionDate: today,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = s.do(ctx, http.MethodPost, "/api/meals", user.Token, meals.NewMeal{
		FoodName:        "creatine",
		RecognitionDate: today,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = s.do(ctx, http.MethodPost, "/api/meals", user.Token, meals.NewMeal{
		FoodName: "rice",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = s.do(ctx, http.MethodGet, "/api/meals?date="+today, user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var day meals.DayLog
	require.NoError(t, json.Unmarshal(body, &day))
	assert.Equal(t, today, day.Date)
	assert.Len(t, day.Meals, 2)
	assert.InDelta(t, 46.5, day.TotalProtein, 0.001)
	assert.True(t, day.CreatineTaken)
	// no body metrics yet
	assert.Equal(t, 160, day.ProteinGoal)

	resp, body = s.do(ctx, http.MethodGet, "/api/meals/weekly?date="+today, user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var week meals.WeekLog
	require.NoError(t, json.Unmarshal(body, &week))
	require.Len(t, week.Days, 7)

	var weekTotal float64
	for _, d := range week.Days {
		weekTotal += d.Total
	}
	assert.InDelta(t, 46.5, weekTotal, 0.001)
}

func (s *IntegrationTestSuite) TestMealsOfOtherUsers() {
	t := s.T()
	ctx := context.Background()

	owner := s.newSignedInUser(ctx)
	stranger := s.newSignedInUser(ctx)

	resp, _ := s.do(ctx, http.MethodGet, "/api/meals?userId="+owner.ID.String(), stranger.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	s.approve(ctx, owner.ID)
	s.approve(ctx, stranger.ID)

	resp, body := s.do(ctx, http.MethodGet, "/api/meals?userId="+owner.ID.String(), stranger.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
}
