package testutil

import (
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Date returns the calendar date for y-m-d.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SetRecord options
type SetOption func(*domain.SetRecord)

func WithDate(d time.Time) SetOption {
	return func(r *domain.SetRecord) {
		r.Date = domain.CalendarDate(d)
	}
}

func WithDay(day domain.Day) SetOption {
	return func(r *domain.SetRecord) {
		r.Day = day
	}
}

func WithWeight(w string) SetOption {
	return func(r *domain.SetRecord) {
		r.Weight = decimal.RequireFromString(w)
	}
}

func WithReps(n int) SetOption {
	return func(r *domain.SetRecord) {
		r.Reps = n
	}
}

func WithRPE(rpe float64) SetOption {
	return func(r *domain.SetRecord) {
		r.RPE = rpe
	}
}

func WithNote(note string) SetOption {
	return func(r *domain.SetRecord) {
		r.Note = note
	}
}

func WithSetNumber(n int) SetOption {
	return func(r *domain.SetRecord) {
		r.SetNumber = n
	}
}

// NewTestSet returns a valid Day A set of 50 x 10 @ RPE 8 dated 2024-01-01.
// SetNumber is 1 unless overridden; repositories assign their own on append.
func NewTestSet(exercise string, opts ...SetOption) *domain.SetRecord {
	r := &domain.SetRecord{
		ID:        uuid.New().String(),
		Date:      Date(2024, time.January, 1),
		Day:       domain.DayA,
		Exercise:  exercise,
		SetNumber: 1,
		Weight:    decimal.NewFromInt(50),
		Reps:      10,
		RPE:       8,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestUnit returns one set per reps entry, numbered from 1.
func NewTestUnit(exercise string, reps []int, opts ...SetOption) []domain.SetRecord {
	out := make([]domain.SetRecord, 0, len(reps))
	for i, n := range reps {
		all := append([]SetOption{WithReps(n), WithSetNumber(i + 1)}, opts...)
		out = append(out, *NewTestSet(exercise, all...))
	}
	return out
}
