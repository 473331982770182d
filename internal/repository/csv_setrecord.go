package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/tabular"
	"github.com/google/uuid"
)

// CSVSetRepo stores the log as a single CSV file. Every call reads the file;
// writes rewrite it through a temporary file and rename. A file with rows
// that cannot be read is rejected with a *MalformedLogError and never
// rewritten.
type CSVSetRepo struct {
	path string
	mu   sync.Mutex
}

// MalformedLogError lists the rows of a log file that could not be read.
type MalformedLogError struct {
	Path string
	Rows []*tabular.RowError
}

func (e *MalformedLogError) Error() string {
	msgs := make([]string, len(e.Rows))
	for i, row := range e.Rows {
		msgs[i] = row.Error()
	}
	return fmt.Sprintf("%s has %d malformed row(s); fix or remove them before continuing: %s",
		e.Path, len(e.Rows), strings.Join(msgs, "; "))
}

func NewCSVSetRepo(path string) *CSVSetRepo {
	return &CSVSetRepo{path: path}
}

func (r *CSVSetRepo) Path() string { return r.path }

func (r *CSVSetRepo) AppendNext(ctx context.Context, rec *domain.SetRecord) error {
	return r.WithinTx(ctx, func(ctx context.Context, sets SetRepo) error {
		return sets.AppendNext(ctx, rec)
	})
}

func (r *CSVSetRepo) DeleteLast(ctx context.Context, key UnitKey) (*domain.SetRecord, error) {
	var removed *domain.SetRecord
	err := r.WithinTx(ctx, func(ctx context.Context, sets SetRepo) error {
		var err error
		removed, err = sets.DeleteLast(ctx, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *CSVSetRepo) ListUnit(ctx context.Context, key UnitKey) ([]domain.SetRecord, error) {
	mem, err := r.readLocked()
	if err != nil {
		return nil, err
	}
	return mem.ListUnit(ctx, key)
}

func (r *CSVSetRepo) ListAll(ctx context.Context) ([]domain.SetRecord, error) {
	mem, err := r.readLocked()
	if err != nil {
		return nil, err
	}
	return mem.ListAll(ctx)
}

// ListRecent orders by file position since the CSV carries no timestamps.
func (r *CSVSetRepo) ListRecent(_ context.Context, limit int) ([]domain.SetRecord, error) {
	mem, err := r.readLocked()
	if err != nil {
		return nil, err
	}
	records := mem.snapshot()
	out := make([]domain.SetRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	return limitRecords(out, limit), nil
}

// WithinTx loads the file, runs fn against the in-memory copy and writes the
// file back only when fn succeeds.
func (r *CSVSetRepo) WithinTx(ctx context.Context, fn func(ctx context.Context, sets SetRepo) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	mem := NewMemorySetRepo(records)
	if err := fn(ctx, mem); err != nil {
		return err
	}
	return r.store(mem.snapshot())
}

func (r *CSVSetRepo) readLocked() (*MemorySetRepo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records, err := r.load()
	if err != nil {
		return nil, err
	}
	return NewMemorySetRepo(records), nil
}

func (r *CSVSetRepo) load() ([]domain.SetRecord, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	res, err := tabular.ReadLog(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", r.path, err)
	}
	numberUnnumbered(res.Records)

	bad := slices.Clone(res.Skipped)
	for i := range res.Records {
		if err := res.Records[i].Validate(); err != nil {
			bad = append(bad, &tabular.RowError{Row: res.Rows[i], Err: err})
		}
	}
	if len(bad) > 0 {
		slices.SortStableFunc(bad, func(a, b *tabular.RowError) int { return a.Row - b.Row })
		return nil, &MalformedLogError{Path: r.path, Rows: bad}
	}

	// The file carries no ids; give rows stable ones for this read.
	for i := range res.Records {
		rec := &res.Records[i]
		rec.ID = uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "%s|%s|%s|%d",
			rec.DateString(), rec.Day, rec.Exercise, rec.SetNumber)).String()
	}
	return res.Records, nil
}

// numberUnnumbered gives rows without a set number the next numbers of their
// unit, in file order, after the highest number already present.
func numberUnnumbered(records []domain.SetRecord) {
	highest := make(map[UnitKey]int)
	for i := range records {
		key := KeyOf(&records[i])
		highest[key] = max(highest[key], records[i].SetNumber)
	}
	for i := range records {
		if records[i].SetNumber != 0 {
			continue
		}
		key := KeyOf(&records[i])
		highest[key]++
		records[i].SetNumber = highest[key]
	}
}

func (r *CSVSetRepo) store(records []domain.SetRecord) error {
	var buf bytes.Buffer
	if err := tabular.WriteLog(&buf, records); err != nil {
		return fmt.Errorf("encoding log: %w", err)
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".repcoach-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	return nil
}
