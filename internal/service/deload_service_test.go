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

func TestDeloadCheck_NotTriggered(t *testing.T) {
	f := newFixture(t)
	now := testutil.Date(2024, time.January, 10)

	req := app.NewDeloadRequest(jan1)
	req.Now = &now
	resp, err := f.deload.Check(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Triggered)
	assert.Equal(t, 2, resp.Detail.WeeksSince)
	assert.Equal(t, "No deload needed (week 2, 0 slips).", resp.Reason)
	assert.Empty(t, resp.Targets)
}

func TestDeloadCheck_CalendarTriggerWithTargets(t *testing.T) {
	f := newFixture(t)
	f.logSets(t, domain.DayA, "Bench", jan1, "60", []int{8, 8, 8}, 8)
	f.logSets(t, domain.DayB, "Row", jan1, "0", []int{12}, 0)

	// Day 49 is the first day of week 8.
	now := jan1.AddDate(0, 0, 49)
	req := app.NewDeloadRequest(jan1)
	req.Now = &now
	resp, err := f.deload.Check(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Triggered)
	assert.True(t, resp.Detail.TimeTriggered)
	assert.False(t, resp.Detail.FatigueTriggered)
	assert.Equal(t, "Deload recommended (time-based: week 8 of the block).", resp.Reason)
	assert.Equal(t, 35, resp.DropPct)

	// Zero-load units get no target.
	require.Len(t, resp.Targets, 1)
	target := resp.Targets[0]
	assert.Equal(t, "Bench", target.Exercise)
	assert.Equal(t, "60", target.WorkingWeight.String())
	assert.Equal(t, "37.5", target.DeloadWeight.String())
}

func TestDeloadCheck_FatigueTrigger(t *testing.T) {
	f := newFixture(t)
	jan4 := testutil.Date(2024, time.January, 4)
	f.logSets(t, domain.DayA, "Bench", jan1, "50", []int{10, 10, 10}, 8)
	f.logSets(t, domain.DayA, "Bench", jan4, "50", []int{9, 9, 8}, 9)
	f.logSets(t, domain.DayB, "Row", jan1, "60", []int{12, 12}, 8)
	f.logSets(t, domain.DayB, "Row", jan4, "60.5", []int{11, 11}, 9)

	now := testutil.Date(2024, time.January, 5)
	resp, err := f.deload.Check(context.Background(), app.DeloadRequest{
		Now: &now, BlockStart: jan1, EveryWeeks: 8, SlipTolerance: 2, DropPct: 40,
	})
	require.NoError(t, err)
	assert.True(t, resp.Triggered)
	assert.True(t, resp.Detail.FatigueTriggered)
	assert.Equal(t, 2, resp.Detail.SlipCount)
	assert.Equal(t, "Deload recommended (fatigue-based: 2 slips at matched load).", resp.Reason)
	assert.Len(t, resp.Targets, 2)
	assert.Equal(t, "30", resp.Targets[0].DeloadWeight.String())

	ev := f.events.last()
	assert.Equal(t, "deload-check", ev.Name)
	assert.Equal(t, true, ev.Fields["triggered"])
}

func TestDeloadCheck_InvalidDropPct(t *testing.T) {
	f := newFixture(t)

	_, err := f.deload.Check(context.Background(), app.DeloadRequest{BlockStart: jan1, DropPct: 95})
	var derr *app.DeloadError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, app.DeloadErrInvalidDropPct, derr.Code)
}

func TestDeloadCheck_BlockStartDefaultsToFirstLoggedDate(t *testing.T) {
	f := newFixture(t)
	f.logSets(t, domain.DayA, "Bench", jan1, "50", []int{10}, 8)
	now := testutil.Date(2024, time.January, 22)

	resp, err := f.deload.Check(context.Background(), app.DeloadRequest{Now: &now, EveryWeeks: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Detail.WeeksSince)
	assert.True(t, resp.Detail.TimeTriggered)
	assert.Equal(t, "2024-01-01", f.events.last().Fields["block_start"])
}
