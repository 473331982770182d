package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want Day
		ok   bool
	}{
		{"A", DayA, true},
		{"b", DayB, true},
		{" a ", DayA, true},
		{"C", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseDay(tc.in)
		if !tc.ok {
			assert.Error(t, err, "in=%q", tc.in)
			continue
		}
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("iso")
	require.NoError(t, err)
	assert.Equal(t, CategoryIsolation, c)

	c, err = ParseCategory("Main")
	require.NoError(t, err)
	assert.Equal(t, CategoryMain, c)

	_, err = ParseCategory("cardio")
	assert.Error(t, err)
}

func TestExerciseSpec_Validate(t *testing.T) {
	valid := ExerciseSpec{
		Name:            "Bench",
		RepRangeLow:     6,
		RepRangeHigh:    10,
		WeightIncrement: decimal.RequireFromString("2.5"),
		Category:        CategoryMain,
	}
	require.NoError(t, valid.Validate())

	single := valid
	single.RepRangeLow, single.RepRangeHigh = 15, 15
	assert.NoError(t, single.Validate())

	bad := ExerciseSpec{RepRangeLow: 10, RepRangeHigh: 6, Category: "cardio"}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "inverted")
	assert.Contains(t, err.Error(), "increment must be positive")
	assert.Contains(t, err.Error(), "invalid category")
}

func TestSetRecord_Validate(t *testing.T) {
	base := SetRecord{
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Day:       DayA,
		Exercise:  "Bench",
		SetNumber: 1,
		Weight:    decimal.RequireFromString("50"),
		Reps:      10,
	}
	require.NoError(t, base.Validate(), "unrated set is valid")

	cases := []struct {
		name   string
		mutate func(r *SetRecord)
		want   string
	}{
		{"day", func(r *SetRecord) { r.Day = "C" }, "invalid day"},
		{"exercise", func(r *SetRecord) { r.Exercise = "" }, "exercise is required"},
		{"set number", func(r *SetRecord) { r.SetNumber = 0 }, "set number"},
		{"weight", func(r *SetRecord) { r.Weight = decimal.RequireFromString("-2.5") }, "weight"},
		{"reps", func(r *SetRecord) { r.Reps = -1 }, "reps"},
		{"rpe low", func(r *SetRecord) { r.RPE = 4.5 }, "rpe"},
		{"rpe high", func(r *SetRecord) { r.RPE = 10.5 }, "rpe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := base
			tc.mutate(&r)
			assert.ErrorContains(t, r.Validate(), tc.want)
		})
	}

	edge := base
	edge.RPE = MinRPE
	assert.NoError(t, edge.Validate())
	edge.RPE = MaxRPE
	assert.NoError(t, edge.Validate())
}

func TestCalendarDate(t *testing.T) {
	late := time.Date(2024, 3, 5, 23, 59, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), CalendarDate(late))

	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", (&SetRecord{Date: d}).DateString())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestUnitAggregates(t *testing.T) {
	set := func(weight string, reps int, rpe float64) SetRecord {
		return SetRecord{Weight: decimal.RequireFromString(weight), Reps: reps, RPE: rpe}
	}
	u := Unit{Sets: []SetRecord{set("40", 12, 0), set("50", 10, 8), set("50", 9, 9)}}

	assert.Equal(t, "50", u.MaxWeight().String())
	assert.Equal(t, 31, u.TotalReps())
	assert.Equal(t, []int{12, 10, 9}, u.Reps())
	assert.Equal(t, []float64{8, 9}, u.RPEs())

	empty := Unit{}
	assert.True(t, empty.MaxWeight().IsZero())
	assert.Zero(t, empty.TotalReps())
	assert.Empty(t, empty.RPEs())
}
