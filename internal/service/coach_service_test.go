package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPlan_CoachesFromEarlierSessions(t *testing.T) {
	f := newFixture(t)
	jan3 := testutil.Date(2024, time.January, 3)
	f.logSets(t, domain.DayA, "Bench", jan1, "50", []int{10, 10, 11}, 8)
	f.logSets(t, domain.DayA, "Bench", jan3, "52.5", []int{7}, 8)

	now := jan3.Add(18 * time.Hour)
	resp, err := f.coach.SessionPlan(context.Background(), app.SessionPlanRequest{Day: domain.DayA, Now: &now})
	require.NoError(t, err)
	assert.True(t, resp.Date.Equal(jan3))
	require.Len(t, resp.Exercises, 2)

	bench := resp.Exercises[0]
	assert.Equal(t, "Bench", bench.Exercise)
	assert.False(t, bench.Substituted)
	assert.Equal(t, domain.ModeAddWeight, bench.Recommendation.Mode)
	assert.Equal(t, "52.5", bench.Recommendation.SuggestedBaseWeight.String())
	require.Len(t, bench.TodaySets, 1)
	assert.Equal(t, 3, bench.Recommendation.SetsTarget)
	assert.Equal(t, 2, bench.SetsRemaining)

	curl := resp.Exercises[1]
	assert.Equal(t, domain.ModeStart, curl.Recommendation.Mode)
	assert.Equal(t, 2, curl.SetsRemaining)
}

func TestSessionPlan_SubstituteUsesPlannedSpec(t *testing.T) {
	f := newFixture(t)
	jan8 := testutil.Date(2024, time.January, 8)
	f.logSets(t, domain.DayA, "Hammer Curl", jan1, "12", []int{15, 15}, 7)

	req := app.NewSessionPlanRequest(domain.DayA)
	req.Now = &jan8
	req.Substitutions["Curl"] = "Hammer Curl"
	resp, err := f.coach.SessionPlan(context.Background(), req)
	require.NoError(t, err)

	curl := resp.Exercises[1]
	assert.True(t, curl.Substituted)
	assert.Equal(t, "Curl", curl.Planned.Name)
	assert.Equal(t, "Hammer Curl", curl.Exercise)
	assert.Equal(t, 10, curl.Recommendation.RepRangeLow)
	assert.Equal(t, 15, curl.Recommendation.RepRangeHigh)
	assert.Equal(t, domain.RuleTopOfRange, curl.Recommendation.Rule)
	assert.Equal(t, "13", curl.Recommendation.SuggestedBaseWeight.String())
}

func TestSessionPlan_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.coach.SessionPlan(ctx, app.SessionPlanRequest{Day: "C"})
	var serr *app.SessionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, app.SessionErrInvalidDay, serr.Code)

	req := app.NewSessionPlanRequest(domain.DayB)
	req.Substitutions["Bench"] = "Dips"
	_, err = f.coach.SessionPlan(ctx, req)
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, app.SessionErrUnknownExercise, serr.Code)
}

func TestSuggest_UsesWholeLog(t *testing.T) {
	f := newFixture(t)
	jan3 := testutil.Date(2024, time.January, 3)
	f.logSets(t, domain.DayA, "Bench", jan1, "50", []int{10, 10, 11}, 8)
	f.logSets(t, domain.DayA, "Bench", jan3, "50", []int{7, 6, 6}, 9.5)

	rec, err := f.coach.Suggest(context.Background(), app.SuggestRequest{Day: domain.DayA, Exercise: "Bench"})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAddRep, rec.Mode)
	assert.Equal(t, domain.RuleRPECeiling, rec.Rule)
	assert.Equal(t, "50", rec.SuggestedBaseWeight.String())
	assert.Equal(t, []int{7, 6, 6}, rec.LastReps)
}

func TestSuggest_PlannedSlot(t *testing.T) {
	f := newFixture(t)

	rec, err := f.coach.Suggest(context.Background(), app.SuggestRequest{Day: domain.DayB, Exercise: "Cable Row", Planned: "Row"})
	require.NoError(t, err)
	assert.Equal(t, 8, rec.RepRangeLow)
	assert.Equal(t, 3, rec.SetsTarget)

	_, err = f.coach.Suggest(context.Background(), app.SuggestRequest{Day: domain.DayB, Exercise: "Cable Row", Planned: "Nope"})
	var serr *app.SessionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, app.SessionErrUnknownExercise, serr.Code)
}
