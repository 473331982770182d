package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/repository"
	"github.com/alexanderramin/repcoach/internal/tabular"
	"github.com/google/uuid"
)

type logService struct {
	sets     repository.SetRepo
	tx       repository.Transactor
	observer UseCaseObserver
}

func NewLogService(sets repository.SetRepo, tx repository.Transactor, observers ...UseCaseObserver) LogService {
	return &logService{
		sets:     sets,
		tx:       tx,
		observer: combineObservers(observers),
	}
}

func resolveDate(d *time.Time) time.Time {
	if d != nil {
		return domain.CalendarDate(*d)
	}
	return domain.CalendarDate(time.Now())
}

func (s *logService) LogSet(ctx context.Context, req app.LogSetRequest) (rec *domain.SetRecord, err error) {
	fields := map[string]any{"day": string(req.Day), "exercise": req.Exercise}
	defer track(ctx, s.observer, "log-set", fields)(&err)

	// SetNumber 1 only satisfies validation; AppendNext assigns the real one.
	rec = &domain.SetRecord{
		ID:        uuid.New().String(),
		Date:      resolveDate(req.Date),
		Day:       req.Day,
		Exercise:  strings.TrimSpace(req.Exercise),
		SetNumber: 1,
		Weight:    req.Weight,
		Reps:      req.Reps,
		RPE:       req.RPE,
		Note:      strings.TrimSpace(req.Note),
		CreatedAt: time.Now().UTC(),
	}
	if verr := rec.Validate(); verr != nil {
		return nil, &app.LogError{Code: app.LogErrInvalidSet, Message: verr.Error(), Err: verr}
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, sets repository.SetRepo) error {
		return sets.AppendNext(ctx, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("logging set: %w", err)
	}
	fields["set_number"] = rec.SetNumber
	return rec, nil
}

func (s *logService) UndoLast(ctx context.Context, req app.UndoSetRequest) (removed *domain.SetRecord, err error) {
	defer track(ctx, s.observer, "undo-set", map[string]any{"day": string(req.Day), "exercise": req.Exercise})(&err)

	key := repository.UnitKey{Date: resolveDate(req.Date), Day: req.Day, Exercise: strings.TrimSpace(req.Exercise)}
	removed, err = s.sets.DeleteLast(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.LogError{
			Code:    app.LogErrNothingToUndo,
			Message: fmt.Sprintf("no sets logged for %s on day %s, %s", key.Exercise, key.Day, key.Date.Format(domain.DateLayout)),
			Err:     err,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("undoing set: %w", err)
	}
	return removed, nil
}

func (s *logService) ListRecent(ctx context.Context, limit int) ([]domain.SetRecord, error) {
	return s.sets.ListRecent(ctx, limit)
}

func (s *logService) ListAll(ctx context.Context) ([]domain.SetRecord, error) {
	return s.sets.ListAll(ctx)
}

// Import appends every readable row of a CSV log. Within each unit rows are
// taken in their original set order and appended after any sets already
// stored, so numbering stays contiguous whatever the file says.
func (s *logService) Import(ctx context.Context, r io.Reader) (result *app.ImportResult, err error) {
	fields := map[string]any{}
	defer track(ctx, s.observer, "import-log", fields)(&err)

	parsed, err := tabular.ReadLog(r)
	if err != nil {
		return nil, fmt.Errorf("reading import: %w", err)
	}
	result = &app.ImportResult{Skipped: parsed.Skipped}

	type pending struct {
		rec *domain.SetRecord
		row int
	}
	var order []repository.UnitKey
	units := make(map[repository.UnitKey][]pending)
	now := time.Now().UTC()
	for i := range parsed.Records {
		rec := parsed.Records[i]
		rec.ID = uuid.New().String()
		rec.Date = domain.CalendarDate(rec.Date)
		rec.CreatedAt = now
		original := rec.SetNumber
		if rec.SetNumber < 1 {
			rec.SetNumber = 1
		}
		if verr := rec.Validate(); verr != nil {
			result.Skipped = append(result.Skipped, &tabular.RowError{Row: parsed.Rows[i], Err: verr})
			continue
		}
		rec.SetNumber = original
		key := repository.KeyOf(&rec)
		if _, seen := units[key]; !seen {
			order = append(order, key)
		}
		units[key] = append(units[key], pending{rec: &rec, row: parsed.Rows[i]})
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, sets repository.SetRepo) error {
		for _, key := range order {
			rows := units[key]
			// Unnumbered rows keep their file position after numbered ones.
			slices.SortStableFunc(rows, func(a, b pending) int {
				return cmp.Compare(sortableSetNumber(a.rec), sortableSetNumber(b.rec))
			})
			for _, p := range rows {
				original := p.rec.SetNumber
				if err := sets.AppendNext(ctx, p.rec); err != nil {
					return fmt.Errorf("row %d: %w", p.row, err)
				}
				if p.rec.SetNumber != original {
					result.Renumbered++
				}
				result.Imported++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing log: %w", err)
	}
	fields["imported"] = result.Imported
	fields["skipped"] = len(result.Skipped)
	fields["renumbered"] = result.Renumbered
	return result, nil
}

func sortableSetNumber(r *domain.SetRecord) int {
	if r.SetNumber < 1 {
		return math.MaxInt
	}
	return r.SetNumber
}

func (s *logService) Export(ctx context.Context, w io.Writer) (n int, err error) {
	fields := map[string]any{}
	defer track(ctx, s.observer, "export-log", fields)(&err)

	records, err := s.sets.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if err = tabular.WriteLog(w, records); err != nil {
		return 0, fmt.Errorf("writing export: %w", err)
	}
	fields["records"] = len(records)
	return len(records), nil
}
