package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
)

// ErrNotFound is returned when a lookup or undo matches no record.
var ErrNotFound = errors.New("not found")

// UnitKey addresses the sets of one exercise on one training day and date.
type UnitKey struct {
	Date     time.Time
	Day      domain.Day
	Exercise string
}

func KeyOf(r *domain.SetRecord) UnitKey {
	return UnitKey{Date: domain.CalendarDate(r.Date), Day: r.Day, Exercise: r.Exercise}
}

// SetRepo is the append-only training log. Implementations keep set
// numbers contiguous from 1 within each unit.
type SetRepo interface {
	// AppendNext stores r with the next free set number of its unit and
	// writes the assigned number back into r.
	AppendNext(ctx context.Context, r *domain.SetRecord) error
	// DeleteLast removes and returns the highest-numbered set of the unit.
	DeleteLast(ctx context.Context, key UnitKey) (*domain.SetRecord, error)
	ListUnit(ctx context.Context, key UnitKey) ([]domain.SetRecord, error)
	// ListAll returns the full log ordered by date, day, exercise and set number.
	ListAll(ctx context.Context) ([]domain.SetRecord, error)
	// ListRecent returns the most recently logged sets first.
	ListRecent(ctx context.Context, limit int) ([]domain.SetRecord, error)
}

// Transactor runs fn against a SetRepo whose writes are applied all or nothing.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, sets SetRepo) error) error
}
