package app

import (
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/tabular"
	"github.com/shopspring/decimal"
)

// LogSetRequest records one working set. A nil Date logs for today.
type LogSetRequest struct {
	Date     *time.Time
	Day      domain.Day
	Exercise string
	Weight   decimal.Decimal
	Reps     int
	RPE      float64
	Note     string
}

type UndoSetRequest struct {
	Date     *time.Time
	Day      domain.Day
	Exercise string
}

type LogErrorCode string

const (
	LogErrInvalidSet    LogErrorCode = "INVALID_SET"
	LogErrNothingToUndo LogErrorCode = "NOTHING_TO_UNDO"
)

type LogError struct {
	Code    LogErrorCode
	Message string
	Err     error
}

func (e *LogError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *LogError) Unwrap() error { return e.Err }

// ImportResult summarizes a CSV import. Renumbered counts rows whose set
// number was rewritten to keep units contiguous.
type ImportResult struct {
	Imported   int
	Renumbered int
	Skipped    []*tabular.RowError
}
