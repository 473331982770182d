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

const maxDropPct = 90

type deloadService struct {
	sets     repository.SetRepo
	catalog  *plan.Catalog
	observer UseCaseObserver
}

func NewDeloadService(sets repository.SetRepo, catalog *plan.Catalog, observers ...UseCaseObserver) DeloadService {
	return &deloadService{
		sets:     sets,
		catalog:  catalog,
		observer: combineObservers(observers),
	}
}

func (s *deloadService) Check(ctx context.Context, req app.DeloadRequest) (resp *app.DeloadResponse, err error) {
	fields := map[string]any{"every_weeks": req.EveryWeeks, "slip_tolerance": req.SlipTolerance}
	defer track(ctx, s.observer, "deload-check", fields)(&err)

	dropPct := req.DropPct
	if dropPct == 0 {
		dropPct = app.DefaultDeloadDropPct
	}
	if dropPct < 0 || dropPct > maxDropPct {
		return nil, &app.DeloadError{
			Code:    app.DeloadErrInvalidDropPct,
			Message: fmt.Sprintf("drop percentage must be between 1 and %d, got %d", maxDropPct, dropPct),
		}
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	log, err := s.sets.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading log: %w", err)
	}

	blockStart := req.BlockStart
	if blockStart.IsZero() {
		blockStart = firstLogged(log, now)
	}

	triggered, detail := progression.NeedsDeload(log, s.catalog, progression.DeloadInput{
		Now:           now,
		BlockStart:    blockStart,
		EveryWeeks:    req.EveryWeeks,
		SlipTolerance: req.SlipTolerance,
	})
	fields["triggered"] = triggered
	fields["slips"] = detail.SlipCount
	fields["week"] = detail.WeeksSince
	fields["block_start"] = blockStart.Format(domain.DateLayout)

	resp = &app.DeloadResponse{
		GeneratedAt: now.UTC(),
		Triggered:   triggered,
		Detail:      detail,
		DropPct:     dropPct,
		Reason:      deloadReason(triggered, detail.TimeTriggered, detail.FatigueTriggered, detail.WeeksSince, detail.SlipCount),
	}
	if !triggered {
		return resp, nil
	}

	for _, entry := range s.catalog.AllEntries() {
		unit, ok := progression.LastUnit(log, entry.Day, entry.Spec.Name)
		if !ok {
			continue
		}
		working := unit.MaxWeight()
		if working.IsZero() {
			continue
		}
		resp.Targets = append(resp.Targets, app.DeloadTarget{
			Day:           entry.Day,
			Exercise:      entry.Spec.Name,
			WorkingWeight: working,
			DeloadWeight:  progression.DeloadPrescription(working, dropPct, entry.Spec.WeightIncrement),
		})
	}
	return resp, nil
}

// firstLogged is the earliest date in the log, or now for an empty log.
func firstLogged(log []domain.SetRecord, now time.Time) time.Time {
	first := domain.CalendarDate(now)
	for _, r := range log {
		if r.Date.Before(first) {
			first = r.Date
		}
	}
	return first
}

func deloadReason(triggered, byTime, byFatigue bool, week, slips int) string {
	if !triggered {
		return fmt.Sprintf("No deload needed (week %d, %s).", week, plural(slips, "slip"))
	}
	var why []string
	if byTime {
		why = append(why, fmt.Sprintf("time-based: week %d of the block", week))
	}
	if byFatigue {
		why = append(why, fmt.Sprintf("fatigue-based: %s at matched load", plural(slips, "slip")))
	}
	return "Deload recommended (" + strings.Join(why, "; ") + ")."
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
