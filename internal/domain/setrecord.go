package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used in storage and on the command line.
const DateLayout = "2006-01-02"

const (
	MinRPE = 5.0
	MaxRPE = 10.0
)

// SetRecord is one logged working set. Records are append-only; the store
// keeps SetNumber contiguous from 1 within a (Date, Day, Exercise) unit.
type SetRecord struct {
	ID        string
	Date      time.Time
	Day       Day
	Exercise  string
	SetNumber int
	Weight    decimal.Decimal
	Reps      int
	// RPE is zero when the set was logged without an exertion rating.
	RPE       float64
	Note      string
	CreatedAt time.Time
}

func (r *SetRecord) Validate() error {
	var errs []error
	if !r.Day.Valid() {
		errs = append(errs, fmt.Errorf("invalid day %q", r.Day))
	}
	if r.Exercise == "" {
		errs = append(errs, errors.New("exercise is required"))
	}
	if r.SetNumber < 1 {
		errs = append(errs, fmt.Errorf("set number must be >= 1, got %d", r.SetNumber))
	}
	if r.Weight.IsNegative() {
		errs = append(errs, fmt.Errorf("weight must be >= 0, got %s", r.Weight))
	}
	if r.Reps < 0 {
		errs = append(errs, fmt.Errorf("reps must be >= 0, got %d", r.Reps))
	}
	if r.RPE != 0 && (r.RPE < MinRPE || r.RPE > MaxRPE) {
		errs = append(errs, fmt.Errorf("rpe must be within [%.1f, %.1f], got %.1f", MinRPE, MaxRPE, r.RPE))
	}
	return errors.Join(errs...)
}

// DateString returns the record's calendar date in DateLayout.
func (r *SetRecord) DateString() string {
	return r.Date.Format(DateLayout)
}

// CalendarDate drops the time-of-day, keeping the caller's calendar day, in UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}
