package app

import (
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
)

type SessionPlanRequest struct {
	Day domain.Day
	Now *time.Time
	// Substitutions maps a planned exercise name to the one actually
	// performed today. The substitute is logged and coached under its own
	// name using the planned exercise's rep range and increment.
	Substitutions map[string]string
}

func NewSessionPlanRequest(day domain.Day) SessionPlanRequest {
	return SessionPlanRequest{Day: day, Substitutions: map[string]string{}}
}

// ExerciseCoaching is one row of a training session.
type ExerciseCoaching struct {
	Planned        domain.ExerciseSpec
	Exercise       string
	Substituted    bool
	Recommendation domain.Recommendation
	TodaySets      []domain.SetRecord
	SetsRemaining  int
}

type SessionPlanResponse struct {
	GeneratedAt time.Time
	Date        time.Time
	Day         domain.Day
	Exercises   []ExerciseCoaching
}

type SuggestRequest struct {
	Day      domain.Day
	Exercise string
	// Planned names the plan slot when Exercise is a substitute.
	Planned string
}

type SessionErrorCode string

const (
	SessionErrInvalidDay      SessionErrorCode = "INVALID_DAY"
	SessionErrUnknownExercise SessionErrorCode = "UNKNOWN_EXERCISE"
)

type SessionError struct {
	Code    SessionErrorCode
	Message string
}

func (e *SessionError) Error() string {
	return string(e.Code) + ": " + e.Message
}
