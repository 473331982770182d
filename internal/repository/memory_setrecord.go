package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/alexanderramin/repcoach/internal/domain"
)

// MemorySetRepo keeps the log in a slice. CSVSetRepo stages its file
// contents here between reads and rewrites.
type MemorySetRepo struct {
	mu      sync.Mutex
	records []domain.SetRecord
}

func NewMemorySetRepo(records []domain.SetRecord) *MemorySetRepo {
	return &MemorySetRepo{records: slices.Clone(records)}
}

func (r *MemorySetRepo) AppendNext(_ context.Context, rec *domain.SetRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := KeyOf(rec)
	highest := 0
	for i := range r.records {
		if matchesKey(&r.records[i], key) {
			highest = max(highest, r.records[i].SetNumber)
		}
	}
	rec.SetNumber = highest + 1
	rec.Date = key.Date
	r.records = append(r.records, *rec)
	return nil
}

func (r *MemorySetRepo) DeleteLast(_ context.Context, key UnitKey) (*domain.SetRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.records {
		if !matchesKey(&r.records[i], key) {
			continue
		}
		if idx < 0 || r.records[i].SetNumber > r.records[idx].SetNumber {
			idx = i
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("last set of %s/%s on %s: %w", key.Day, key.Exercise, key.Date.Format(domain.DateLayout), ErrNotFound)
	}
	removed := r.records[idx]
	r.records = slices.Delete(r.records, idx, idx+1)
	return &removed, nil
}

func (r *MemorySetRepo) ListUnit(_ context.Context, key UnitKey) ([]domain.SetRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.SetRecord
	for i := range r.records {
		if matchesKey(&r.records[i], key) {
			out = append(out, r.records[i])
		}
	}
	sortLog(out)
	return out, nil
}

func (r *MemorySetRepo) ListAll(_ context.Context) ([]domain.SetRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(r.records)
	sortLog(out)
	return out, nil
}

func (r *MemorySetRepo) ListRecent(_ context.Context, limit int) ([]domain.SetRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(r.records)
	sortRecent(out)
	return limitRecords(out, limit), nil
}

// snapshot returns the records in insertion order.
func (r *MemorySetRepo) snapshot() []domain.SetRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.records)
}

func matchesKey(rec *domain.SetRecord, key UnitKey) bool {
	return rec.Day == key.Day &&
		rec.Exercise == key.Exercise &&
		domain.CalendarDate(rec.Date).Equal(key.Date)
}
