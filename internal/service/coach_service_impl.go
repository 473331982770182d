package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/plan"
	"github.com/alexanderramin/repcoach/internal/progression"
	"github.com/alexanderramin/repcoach/internal/repository"
)

type coachService struct {
	sets     repository.SetRepo
	catalog  *plan.Catalog
	observer UseCaseObserver
}

func NewCoachService(sets repository.SetRepo, catalog *plan.Catalog, observers ...UseCaseObserver) CoachService {
	return &coachService{
		sets:     sets,
		catalog:  catalog,
		observer: combineObservers(observers),
	}
}

// SessionPlan coaches every planned exercise of the day. Recommendations
// come from sessions before today so they hold steady while today's sets
// are being logged.
func (s *coachService) SessionPlan(ctx context.Context, req app.SessionPlanRequest) (resp *app.SessionPlanResponse, err error) {
	fields := map[string]any{"day": string(req.Day), "substitutions": len(req.Substitutions)}
	defer track(ctx, s.observer, "session-plan", fields)(&err)

	if !req.Day.Valid() {
		return nil, &app.SessionError{Code: app.SessionErrInvalidDay, Message: fmt.Sprintf("unknown day %q", req.Day)}
	}
	planned := s.catalog.Exercises(req.Day)
	if err = checkSubstitutions(planned, req.Substitutions); err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	today := domain.CalendarDate(now)

	log, err := s.sets.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading log: %w", err)
	}
	history := make([]domain.SetRecord, 0, len(log))
	for _, r := range log {
		if r.Date.Before(today) {
			history = append(history, r)
		}
	}

	resp = &app.SessionPlanResponse{
		GeneratedAt: now.UTC(),
		Date:        today,
		Day:         req.Day,
		Exercises:   make([]app.ExerciseCoaching, 0, len(planned)),
	}
	for _, spec := range planned {
		name, substituted := spec.Name, false
		var fallback *domain.ExerciseSpec
		if sub := strings.TrimSpace(req.Substitutions[spec.Name]); sub != "" && sub != spec.Name {
			name, substituted = sub, true
			fallback = &spec
		}

		rec := progression.SuggestNext(history, s.catalog, req.Day, name, fallback)
		done := progression.SetsOn(log, req.Day, name, today)
		resp.Exercises = append(resp.Exercises, app.ExerciseCoaching{
			Planned:        spec,
			Exercise:       name,
			Substituted:    substituted,
			Recommendation: rec,
			TodaySets:      done,
			SetsRemaining:  max(0, rec.SetsTarget-len(done)),
		})
	}
	fields["exercises"] = len(resp.Exercises)
	return resp, nil
}

func checkSubstitutions(planned []domain.ExerciseSpec, subs map[string]string) error {
	for from := range subs {
		found := false
		for _, spec := range planned {
			if spec.Name == from {
				found = true
				break
			}
		}
		if !found {
			return &app.SessionError{
				Code:    app.SessionErrUnknownExercise,
				Message: fmt.Sprintf("%q is not in the plan for this day", from),
			}
		}
	}
	return nil
}

// Suggest coaches the next session of one exercise from the whole log.
func (s *coachService) Suggest(ctx context.Context, req app.SuggestRequest) (rec *domain.Recommendation, err error) {
	defer track(ctx, s.observer, "suggest", map[string]any{"day": string(req.Day), "exercise": req.Exercise})(&err)

	if !req.Day.Valid() {
		return nil, &app.SessionError{Code: app.SessionErrInvalidDay, Message: fmt.Sprintf("unknown day %q", req.Day)}
	}
	var fallback *domain.ExerciseSpec
	if req.Planned != "" {
		spec, ok := s.catalog.Lookup(req.Day, req.Planned)
		if !ok {
			return nil, &app.SessionError{
				Code:    app.SessionErrUnknownExercise,
				Message: fmt.Sprintf("%q is not in the plan for day %s", req.Planned, req.Day),
			}
		}
		fallback = &spec
	}

	log, err := s.sets.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading log: %w", err)
	}
	out := progression.SuggestNext(log, s.catalog, req.Day, strings.TrimSpace(req.Exercise), fallback)
	return &out, nil
}
