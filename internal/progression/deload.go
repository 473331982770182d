package progression

import (
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/plan"
	"github.com/shopspring/decimal"
)

// DefaultSlipTolerance is the number of slips that triggers a deload.
const DefaultSlipTolerance = 2

// matchedLoadTolerance is how far apart two units' working weights may be
// and still count as the same load.
var matchedLoadTolerance = decimal.RequireFromString("0.5")

// DeloadInput parameterizes NeedsDeload. EveryWeeks <= 0 disables the
// calendar check; SlipTolerance <= 0 falls back to DefaultSlipTolerance.
type DeloadInput struct {
	Now           time.Time
	BlockStart    time.Time
	EveryWeeks    int
	SlipTolerance int
}

// WeeksSince is the 1-based training week of now within the block.
func WeeksSince(now, blockStart time.Time) int {
	days := int(domain.CalendarDate(now).Sub(domain.CalendarDate(blockStart)).Hours() / 24)
	return max(1, floorDiv(days, 7)+1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// NeedsDeload combines the calendar cadence check and the performance slip
// check over every exercise of both training days.
func NeedsDeload(log []domain.SetRecord, catalog *plan.Catalog, in DeloadInput) (bool, domain.DeloadDetail) {
	tolerance := in.SlipTolerance
	if tolerance <= 0 {
		tolerance = DefaultSlipTolerance
	}

	detail := domain.DeloadDetail{WeeksSince: WeeksSince(in.Now, in.BlockStart)}
	if in.EveryWeeks > 0 {
		detail.TimeTriggered = detail.WeeksSince%in.EveryWeeks == 0
	}

	for _, entry := range catalog.AllEntries() {
		if slip, ok := detectSlip(log, entry.Day, entry.Spec.Name); ok {
			detail.Slips = append(detail.Slips, slip)
		}
	}
	detail.SlipCount = len(detail.Slips)
	detail.FatigueTriggered = detail.SlipCount >= tolerance

	return detail.TimeTriggered || detail.FatigueTriggered, detail
}

// detectSlip compares the two most recent units of an exercise. Units with a
// zero working weight are not compared.
func detectSlip(log []domain.SetRecord, day domain.Day, exercise string) (domain.Slip, bool) {
	units := RecentUnits(log, day, exercise, 2)
	if len(units) < 2 {
		return domain.Slip{}, false
	}
	latest, previous := units[0], units[1]

	w1, w2 := previous.MaxWeight(), latest.MaxWeight()
	if w1.IsZero() || w2.IsZero() {
		return domain.Slip{}, false
	}
	if w1.Sub(w2).Abs().GreaterThan(matchedLoadTolerance) {
		return domain.Slip{}, false
	}
	if latest.TotalReps() >= previous.TotalReps() {
		return domain.Slip{}, false
	}

	return domain.Slip{
		Day:          day,
		Exercise:     exercise,
		Weight:       w2,
		PreviousDate: previous.Date,
		LatestDate:   latest.Date,
		PreviousReps: previous.TotalReps(),
		LatestReps:   latest.TotalReps(),
	}, true
}

// DeloadPrescription reduces a working weight by dropPct percent and rounds
// down to the exercise's load step.
func DeloadPrescription(weight decimal.Decimal, dropPct int, step decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(int64(100 - dropPct)).Div(decimal.NewFromInt(100))
	reduced := weight.Mul(factor)
	if step.IsPositive() {
		reduced = reduced.Div(step).Floor().Mul(step)
	}
	if reduced.IsNegative() {
		return decimal.Zero
	}
	return reduced
}
