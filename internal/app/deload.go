package app

import (
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultDeloadEveryWeeks = 8
	DefaultDeloadDropPct    = 35
)

type DeloadRequest struct {
	Now           *time.Time
	BlockStart    time.Time
	EveryWeeks    int
	SlipTolerance int
	DropPct       int
}

func NewDeloadRequest(blockStart time.Time) DeloadRequest {
	return DeloadRequest{
		BlockStart:    blockStart,
		EveryWeeks:    DefaultDeloadEveryWeeks,
		SlipTolerance: 2,
		DropPct:       DefaultDeloadDropPct,
	}
}

// DeloadTarget is the reduced working weight for one planned exercise.
type DeloadTarget struct {
	Day           domain.Day
	Exercise      string
	WorkingWeight decimal.Decimal
	DeloadWeight  decimal.Decimal
}

type DeloadResponse struct {
	GeneratedAt time.Time
	Triggered   bool
	Detail      domain.DeloadDetail
	Reason      string
	DropPct     int
	Targets     []DeloadTarget
}

type DeloadErrorCode string

const (
	DeloadErrInvalidDropPct DeloadErrorCode = "INVALID_DROP_PCT"
)

type DeloadError struct {
	Code    DeloadErrorCode
	Message string
}

func (e *DeloadError) Error() string {
	return string(e.Code) + ": " + e.Message
}
