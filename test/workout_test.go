//go:build integration

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/progress"
	"github.com/2beens/fitplanner/internal/runner"
	"github.com/2beens/fitplanner/internal/sessions"
)

func newProfileRequest(trainingDays int) profile.Request {
	return profile.Request{
		FullName:              gofakeit.Name(),
		Age:                   gofakeit.Number(18, 70),
		HeightCm:              gofakeit.Float64Range(150, 200),
		WeightKg:              gofakeit.Float64Range(50, 120),
		Goal:                  "hypertrophy",
		FitnessLevel:          "intermediate",
		TrainingDays:          trainingDays,
		PreferredMuscleGroups: []string{"chest", "back", "legs"},
	}
}

func (s *IntegrationTestSuite) TestProfile() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, user := s.registerUser(ctx)

	status, _ := s.doRequest(ctx, http.MethodGet, "/profile", user.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	invalid := newProfileRequest(9)
	invalid.FullName = " "
	status, body := s.doRequest(ctx, http.MethodPost, "/profile", user.Token, invalid)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "full name is required")

	req := newProfileRequest(3)
	var created profile.Profile
	s.doJSON(ctx, http.MethodPost, "/profile", user.Token, req, http.StatusCreated, &created)
	assert.Equal(t, user.UserID, created.UserID)
	assert.Equal(t, 3, created.Preferences.TrainingDays)

	status, _ = s.doRequest(ctx, http.MethodPost, "/profile", user.Token, req)
	assert.Equal(t, http.StatusConflict, status)

	req.TrainingDays = 5
	var updated profile.Profile
	s.doJSON(ctx, http.MethodPut, "/profile", user.Token, req, http.StatusOK, &updated)
	assert.Equal(t, 5, updated.Preferences.TrainingDays)

	var fetched profile.Profile
	s.doJSON(ctx, http.MethodGet, "/profile", user.Token, nil, http.StatusOK, &fetched)
	assert.Equal(t, updated.Preferences, fetched.Preferences)
	assert.Equal(t, req.FullName, fetched.FullName)
}

func (s *IntegrationTestSuite) TestWeekGenerateAndReload() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, user := s.registerUser(ctx)
	s.doJSON(ctx, http.MethodPost, "/profile", user.Token, newProfileRequest(4), http.StatusCreated, nil)

	var empty sessions.Week
	s.doJSON(ctx, http.MethodGet, "/sessions/week", user.Token, nil, http.StatusOK, &empty)
	assert.Empty(t, empty.Sessions)

	var generated sessions.Week
	s.doJSON(ctx, http.MethodPost, "/sessions/generate", user.Token, nil, http.StatusCreated, &generated)
	require.Len(t, generated.Sessions, 4)
	assert.True(t, generated.Created)
	assert.Equal(t, time.Monday, generated.Start.Weekday())

	for i, session := range generated.Sessions {
		expectedDate := generated.Start.AddDate(0, 0, i).Format(time.DateOnly)
		assert.Equal(t, expectedDate, session.Date.Format(time.DateOnly), "session %d", i)
		assert.Equal(t, user.UserID, session.UserID)
		assert.Equal(t, generated.Sessions[0].PlanID, session.PlanID)
		assert.NotEmpty(t, session.Exercises)
		assert.False(t, session.IsCompleted)
	}

	// reloading never creates a second plan
	for range 2 {
		var reloaded sessions.Week
		s.doJSON(ctx, http.MethodGet, "/sessions/week", user.Token, nil, http.StatusOK, &reloaded)
		require.Len(t, reloaded.Sessions, 4)
		assert.False(t, reloaded.Created)
		for i := range reloaded.Sessions {
			assert.Equal(t, generated.Sessions[i].ID, reloaded.Sessions[i].ID)
		}
	}

	// generating again returns the existing week
	var again sessions.Week
	status, body := s.doRequest(ctx, http.MethodPost, "/sessions/generate", user.Token, nil)
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, status, string(body))
	require.NoError(t, json.Unmarshal(body, &again))
	require.Len(t, again.Sessions, 4)
	assert.Equal(t, generated.Sessions[0].ID, again.Sessions[0].ID)

	var single sessions.Session
	s.doJSON(ctx, http.MethodGet, "/sessions/"+generated.Sessions[1].ID.String(), user.Token, nil, http.StatusOK, &single)
	assert.Equal(t, generated.Sessions[1].Title, single.Title)

	// sessions of other users are not visible
	_, other := s.registerUser(ctx)
	status, _ = s.doRequest(ctx, http.MethodGet, "/sessions/"+generated.Sessions[1].ID.String(), other.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestRunCompleteAndSave() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, user := s.registerUser(ctx)
	s.doJSON(ctx, http.MethodPost, "/profile", user.Token, newProfileRequest(3), http.StatusCreated, nil)

	var week sessions.Week
	s.doJSON(ctx, http.MethodPost, "/sessions/generate", user.Token, nil, http.StatusCreated, &week)
	require.NotEmpty(t, week.Sessions)
	session := week.Sessions[0]
	require.NotEmpty(t, session.Exercises)

	var run runner.View
	s.doJSON(ctx, http.MethodPost, "/runs", user.Token, runner.OpenRequest{SessionID: session.ID}, http.StatusCreated, &run)
	assert.Equal(t, session.ID, run.SessionID)
	assert.Zero(t, run.CompletedCount)
	assert.Len(t, run.Exercises, len(session.Exercises))

	// nothing done yet
	status, _ := s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/runs/%s/save", run.ID), user.Token, nil)
	assert.Equal(t, http.StatusConflict, status)

	setsPath := fmt.Sprintf("/runs/%s/exercises/0/sets", run.ID)
	var transition runner.Transition
	for i := 0; i <= session.Exercises[0].Sets; i++ {
		s.doJSON(ctx, http.MethodPost, setsPath, user.Token, nil, http.StatusOK, &transition)
		if transition.Exercise.Completed {
			break
		}
	}
	require.True(t, transition.Exercise.Completed)
	assert.Equal(t, runner.StatusDone, transition.Status)

	s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/runs/%s/exercises/0/weight", run.ID), user.Token,
		runner.WeightRequest{Weight: "20kg"}, http.StatusOK, nil)

	var saved runner.SaveResponse
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/runs/%s/save", run.ID), user.Token, nil, http.StatusOK, &saved)
	require.NotNil(t, saved.SaveResult)
	assert.Equal(t, 1, saved.Completed)
	assert.True(t, saved.Session.IsCompleted)
	assert.NotNil(t, saved.Session.CompletedAt)

	// the completion is visible through the week and the cache
	var reloaded sessions.Week
	s.doJSON(ctx, http.MethodGet, "/sessions/week", user.Token, nil, http.StatusOK, &reloaded)
	require.NotEmpty(t, reloaded.Sessions)
	assert.True(t, reloaded.Sessions[0].IsCompleted)

	var last sessions.Session
	s.doJSON(ctx, http.MethodGet, "/sessions/last-completed", user.Token, nil, http.StatusOK, &last)
	assert.Equal(t, session.ID, last.ID)

	status, _ = s.doRequest(ctx, http.MethodDelete, "/runs/"+run.ID.String(), user.Token, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = s.doRequest(ctx, http.MethodGet, "/runs/"+run.ID.String(), user.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestProgressAndDashboard() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, user := s.registerUser(ctx)
	s.doJSON(ctx, http.MethodPost, "/profile", user.Token, newProfileRequest(2), http.StatusCreated, nil)

	var week sessions.Week
	s.doJSON(ctx, http.MethodPost, "/sessions/generate", user.Token, nil, http.StatusCreated, &week)
	require.NotEmpty(t, week.Sessions)
	session := week.Sessions[0]

	weight := 42.5
	reps := 10
	bodyWeight := 80.0
	var added progress.AddResponse
	s.doJSON(ctx, http.MethodPost, "/progress", user.Token, progress.Request{
		SessionID:    session.ID,
		ExerciseName: session.Exercises[0].Name,
		WeightUsed:   &weight,
		Reps:         &reps,
		BodyWeight:   &bodyWeight,
		Notes:        gofakeit.Sentence(5),
	}, http.StatusCreated, &added)
	require.NotNil(t, added.Entry)
	assert.Equal(t, progress.DefaultDifficulty, added.Entry.Difficulty)

	badDifficulty := 9
	status, _ := s.doRequest(ctx, http.MethodPost, "/progress", user.Token, progress.Request{
		SessionID:    session.ID,
		ExerciseName: "squat",
		Difficulty:   &badDifficulty,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	var entries []progress.Entry
	s.doJSON(ctx, http.MethodGet, "/progress/session/"+session.ID.String(), user.Token, nil, http.StatusOK, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, added.Entry.ID, entries[0].ID)

	var dashboard progress.Dashboard
	s.doJSON(ctx, http.MethodGet, "/progress/dashboard", user.Token, nil, http.StatusOK, &dashboard)
	assert.Equal(t, len(week.Sessions), dashboard.SessionsThisWeek)
	assert.Zero(t, dashboard.CompletedTotal)
	require.Len(t, dashboard.BodyWeight, 1)
	assert.Equal(t, bodyWeight, dashboard.BodyWeight[0].Weight)
}

func (s *IntegrationTestSuite) TestMeasurementsAndStreak() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, user := s.registerUser(ctx)
	s.doJSON(ctx, http.MethodPost, "/profile", user.Token, newProfileRequest(2), http.StatusCreated, nil)

	var dashboard progress.Dashboard
	s.doJSON(ctx, http.MethodGet, "/progress/dashboard", user.Token, nil, http.StatusOK, &dashboard)
	assert.Nil(t, dashboard.LatestMeasurements)
	assert.Zero(t, dashboard.Streak)
	assert.Empty(t, dashboard.BodyWeight)

	status, body := s.doRequest(ctx, http.MethodPost, "/progress/measurements", user.Token, progress.MeasurementRequest{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "at least one value is required")

	arm, chest, waist := 36.5, 98.0, 84.0
	var first progress.MeasurementResponse
	s.doJSON(ctx, http.MethodPost, "/progress/measurements", user.Token, progress.MeasurementRequest{
		ArmCm:   &arm,
		ChestCm: &chest,
		WaistCm: &waist,
	}, http.StatusCreated, &first)
	require.NotNil(t, first.Measurement)
	assert.Equal(t, user.UserID, first.Measurement.UserID)

	// a later check-in only moves the waist
	newWaist := 82.5
	s.doJSON(ctx, http.MethodPost, "/progress/measurements", user.Token, progress.MeasurementRequest{
		WaistCm: &newWaist,
	}, http.StatusCreated, nil)

	s.doJSON(ctx, http.MethodPost, "/progress/body-weight", user.Token,
		progress.BodyWeightRequest{Weight: 79.4}, http.StatusCreated, nil)

	var list []progress.Measurement
	s.doJSON(ctx, http.MethodGet, "/progress/measurements?limit=2", user.Token, nil, http.StatusOK, &list)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].BodyWeight)
	assert.Equal(t, 79.4, *list[0].BodyWeight)
	assert.Equal(t, newWaist, *list[1].WaistCm)

	// complete one session today
	var week sessions.Week
	s.doJSON(ctx, http.MethodPost, "/sessions/generate", user.Token, nil, http.StatusCreated, &week)
	require.NotEmpty(t, week.Sessions)
	var run runner.View
	s.doJSON(ctx, http.MethodPost, "/runs", user.Token, runner.OpenRequest{SessionID: week.Sessions[0].ID}, http.StatusCreated, &run)
	var transition runner.Transition
	for i := 0; i <= week.Sessions[0].Exercises[0].Sets; i++ {
		s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/runs/%s/exercises/0/sets", run.ID), user.Token, nil, http.StatusOK, &transition)
		if transition.Exercise.Completed {
			break
		}
	}
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/runs/%s/save", run.ID), user.Token, nil, http.StatusOK, nil)

	s.doJSON(ctx, http.MethodGet, "/progress/dashboard", user.Token, nil, http.StatusOK, &dashboard)
	assert.Equal(t, 1, dashboard.Streak)
	assert.Equal(t, 1, dashboard.CompletedTotal)
	require.NotNil(t, dashboard.LatestMeasurements)
	assert.Equal(t, arm, *dashboard.LatestMeasurements.ArmCm)
	assert.Equal(t, chest, *dashboard.LatestMeasurements.ChestCm)
	assert.Equal(t, newWaist, *dashboard.LatestMeasurements.WaistCm)
	assert.Nil(t, dashboard.LatestMeasurements.ThighCm)
	require.Len(t, dashboard.BodyWeight, 1)
	assert.Equal(t, 79.4, dashboard.BodyWeight[0].Weight)

	// measurements are private
	_, other := s.registerUser(ctx)
	var otherList []progress.Measurement
	s.doJSON(ctx, http.MethodGet, "/progress/measurements", other.Token, nil, http.StatusOK, &otherList)
	assert.Empty(t, otherList)
}
