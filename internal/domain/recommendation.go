package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recommendation is the coaching target for the next session of one exercise.
type Recommendation struct {
	Message string
	Mode    Mode
	Rule    Rule

	// SuggestedBaseWeight is zero in ModeStart.
	SuggestedBaseWeight decimal.Decimal
	RepRangeLow         int
	RepRangeHigh        int
	Increment           decimal.Decimal
	SetsTarget          int

	// Last session context, unset in ModeStart.
	LastWeight decimal.Decimal
	LastDate   *time.Time
	LastReps   []int

	// DefaultReps prefills the rep input of the next set.
	DefaultReps int
}

// Slip is one exercise whose rep total dropped session over session at matched load.
type Slip struct {
	Day          Day
	Exercise     string
	Weight       decimal.Decimal
	PreviousDate time.Time
	LatestDate   time.Time
	PreviousReps int
	LatestReps   int
}

// DeloadDetail explains which deload checks fired.
type DeloadDetail struct {
	TimeTriggered    bool
	FatigueTriggered bool
	SlipCount        int
	WeeksSince       int
	Slips            []Slip
}
