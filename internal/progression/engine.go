// Package progression is the coaching core: double-progression suggestions
// per exercise and deload trigger evaluation. Every function is pure and
// reads an immutable log snapshot supplied by the caller.
package progression

import (
	"fmt"
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/plan"
	"github.com/shopspring/decimal"
)

const (
	// RPE at or below which load may be added.
	rpeProgressCeiling = 9.0
	// RPE at or above which neither reps nor load are pushed.
	rpeHoldFloor = 9.5
	// Assumed when a unit has no rated sets.
	defaultRPE = 8.0
)

// unitStats are the observations the precedence rules are evaluated against.
type unitStats struct {
	lastWeight       decimal.Decimal
	reps             []int
	maxRPE           float64
	avgReps          float64
	allAtOrAboveHigh bool
	manyBelowLow     bool
	nearTop          bool
}

func analyzeUnit(u domain.Unit, low, high int) unitStats {
	st := unitStats{
		lastWeight: u.MaxWeight(),
		reps:       u.Reps(),
		maxRPE:     defaultRPE,
	}

	if rpes := u.RPEs(); len(rpes) > 0 {
		st.maxRPE = rpes[0]
		for _, r := range rpes[1:] {
			if r > st.maxRPE {
				st.maxRPE = r
			}
		}
	}

	if len(st.reps) == 0 {
		return st
	}

	sum, below := 0, 0
	st.allAtOrAboveHigh = true
	allAtOrAboveLow := true
	for _, r := range st.reps {
		sum += r
		if r < high {
			st.allAtOrAboveHigh = false
		}
		if r < low {
			below++
			allAtOrAboveLow = false
		}
	}
	st.avgReps = float64(sum) / float64(len(st.reps))
	st.manyBelowLow = below >= ceilHalf(len(st.reps))
	st.nearTop = allAtOrAboveLow && st.avgReps >= float64(high-1)
	return st
}

func ceilHalf(n int) int {
	return (n + 1) / 2
}

// SuggestNext computes the coaching target for the next session of exerciseName
// on day. The exercise name is a free-form key: names missing from the catalog
// are coached with specFallback, or plan.DefaultFallback when that is nil.
func SuggestNext(log []domain.SetRecord, catalog *plan.Catalog, day domain.Day, exerciseName string, specFallback *domain.ExerciseSpec) domain.Recommendation {
	spec := catalog.Resolve(day, exerciseName, specFallback)
	low, high, inc := spec.RepRangeLow, spec.RepRangeHigh, spec.WeightIncrement

	rec := domain.Recommendation{
		RepRangeLow:  low,
		RepRangeHigh: high,
		Increment:    inc,
		SetsTarget:   catalog.SetsTarget(spec.Category),
		DefaultReps:  low,
	}

	unit, ok := LastUnit(log, day, exerciseName)
	if !ok {
		rec.Mode = domain.ModeStart
		rec.Rule = domain.RuleNoHistory
		rec.SuggestedBaseWeight = decimal.Zero
		rec.Message = fmt.Sprintf("First session: pick a starting weight. Aim for %d sets of %d-%d reps.",
			rec.SetsTarget, low, high)
		return rec
	}

	st := analyzeUnit(unit, low, high)
	lastDate := unit.Date
	rec.LastDate = &lastDate
	rec.LastWeight = st.lastWeight
	rec.LastReps = st.reps
	rec.Mode = domain.ModeAddRep
	rec.SuggestedBaseWeight = st.lastWeight
	w := st.lastWeight.String()

	switch {
	case st.allAtOrAboveHigh && st.maxRPE <= rpeProgressCeiling:
		rec.Mode = domain.ModeAddWeight
		rec.Rule = domain.RuleTopOfRange
		rec.SuggestedBaseWeight = st.lastWeight.Add(inc)
		rec.Message = fmt.Sprintf("Add %s kg today (%s kg) and restart near the bottom of the range (%d-%d reps). Last time ~%s kg.",
			inc, rec.SuggestedBaseWeight, low, min(low+1, high), w)
	case st.maxRPE >= rpeHoldFloor:
		rec.Rule = domain.RuleRPECeiling
		if st.manyBelowLow {
			rec.Message = fmt.Sprintf("Effort peaked at RPE %.1f with reps short of the range: hold or slightly reduce ~%s kg and stabilize within %d-%d reps first.",
				st.maxRPE, w, low, high)
		} else {
			rec.Message = fmt.Sprintf("Effort peaked at RPE %.1f: hold ~%s kg and work toward %d reps per set.",
				st.maxRPE, w, high)
		}
	case st.manyBelowLow:
		rec.Rule = domain.RuleBelowRange
		rec.Message = fmt.Sprintf("Hold ~%s kg (or reduce slightly) and reach %d-%d reps consistently first.",
			w, low, high)
	case st.nearTop && st.maxRPE <= rpeProgressCeiling:
		rec.Rule = domain.RuleNearTop
		rec.Message = fmt.Sprintf("Add 1 rep per set at ~%s kg until every set reaches %d.", w, high)
	default:
		rec.Rule = domain.RuleKeepBuilding
		rec.Message = fmt.Sprintf("Add 1 rep per set at ~%s kg; if RPE stays at or below 9, a weight increase is coming.", w)
	}
	return rec
}

// SuggestDay coaches every planned exercise of a day, in plan order.
func SuggestDay(log []domain.SetRecord, catalog *plan.Catalog, day domain.Day) []domain.Recommendation {
	specs := catalog.Exercises(day)
	recs := make([]domain.Recommendation, 0, len(specs))
	for _, spec := range specs {
		recs = append(recs, SuggestNext(log, catalog, day, spec.Name, nil))
	}
	return recs
}

// SetsOn returns the sets already logged for (day, exercise) on date, in set order.
func SetsOn(log []domain.SetRecord, day domain.Day, exercise string, date time.Time) []domain.SetRecord {
	want := domain.CalendarDate(date)
	var sets []domain.SetRecord
	for _, u := range RecentUnits(log, day, exercise, 0) {
		if u.Date.Equal(want) {
			sets = u.Sets
			break
		}
	}
	return sets
}
