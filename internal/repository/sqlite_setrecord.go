package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/repcoach/internal/db"
	"github.com/alexanderramin/repcoach/internal/domain"
)

const setColumns = `id, date, day, exercise, set_number, weight, reps, rpe, note, created_at`

// SQLiteSetRepo implements SetRepo on the set_records table.
type SQLiteSetRepo struct {
	db db.DBTX
}

func NewSQLiteSetRepo(db db.DBTX) *SQLiteSetRepo {
	return &SQLiteSetRepo{db: db}
}

func (r *SQLiteSetRepo) AppendNext(ctx context.Context, rec *domain.SetRecord) error {
	// A single statement keeps number assignment and insert atomic.
	query := `INSERT INTO set_records (` + setColumns + `)
		SELECT ?, ?, ?, ?, COALESCE(MAX(set_number), 0) + 1, ?, ?, ?, ?, ?
		FROM set_records WHERE date = ? AND day = ? AND exercise = ?
		RETURNING set_number`
	date := rec.Date.Format(domain.DateLayout)
	err := r.db.QueryRowContext(ctx, query,
		rec.ID,
		date,
		string(rec.Day),
		rec.Exercise,
		rec.Weight.String(),
		rec.Reps,
		rec.RPE,
		rec.Note,
		rec.CreatedAt.UTC().Format(timestampLayout),
		date, string(rec.Day), rec.Exercise,
	).Scan(&rec.SetNumber)
	if err != nil {
		return fmt.Errorf("inserting set record: %w", err)
	}
	return nil
}

func (r *SQLiteSetRepo) DeleteLast(ctx context.Context, key UnitKey) (*domain.SetRecord, error) {
	query := `DELETE FROM set_records WHERE id = (
			SELECT id FROM set_records
			WHERE date = ? AND day = ? AND exercise = ?
			ORDER BY set_number DESC LIMIT 1
		) RETURNING ` + setColumns
	row := r.db.QueryRowContext(ctx, query, key.Date.Format(domain.DateLayout), string(key.Day), key.Exercise)
	rec, err := scanSetRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("last set of %s/%s on %s: %w", key.Day, key.Exercise, key.Date.Format(domain.DateLayout), ErrNotFound)
		}
		return nil, fmt.Errorf("deleting last set: %w", err)
	}
	return rec, nil
}

func (r *SQLiteSetRepo) ListUnit(ctx context.Context, key UnitKey) ([]domain.SetRecord, error) {
	query := `SELECT ` + setColumns + ` FROM set_records
		WHERE date = ? AND day = ? AND exercise = ?
		ORDER BY set_number`
	rows, err := r.db.QueryContext(ctx, query, key.Date.Format(domain.DateLayout), string(key.Day), key.Exercise)
	if err != nil {
		return nil, fmt.Errorf("listing unit sets: %w", err)
	}
	defer rows.Close()
	return scanSetRecords(rows)
}

func (r *SQLiteSetRepo) ListAll(ctx context.Context) ([]domain.SetRecord, error) {
	query := `SELECT ` + setColumns + ` FROM set_records
		ORDER BY date, day, exercise, set_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing set records: %w", err)
	}
	defer rows.Close()
	return scanSetRecords(rows)
}

func (r *SQLiteSetRepo) ListRecent(ctx context.Context, limit int) ([]domain.SetRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + setColumns + ` FROM set_records
		ORDER BY created_at DESC, date DESC, set_number DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent set records: %w", err)
	}
	defer rows.Close()
	return scanSetRecords(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSetRecord(row rowScanner) (*domain.SetRecord, error) {
	var rec domain.SetRecord
	var dateStr, dayStr, weightStr, createdAtStr string

	if err := row.Scan(
		&rec.ID, &dateStr, &dayStr, &rec.Exercise, &rec.SetNumber,
		&weightStr, &rec.Reps, &rec.RPE, &rec.Note, &createdAtStr,
	); err != nil {
		return nil, err
	}

	var err error
	if rec.Date, err = domain.ParseDate(dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	rec.Day = domain.Day(dayStr)
	if rec.Weight, err = parseWeight(weightStr); err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &rec, nil
}

func scanSetRecords(rows *sql.Rows) ([]domain.SetRecord, error) {
	var records []domain.SetRecord
	for rows.Next() {
		rec, err := scanSetRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning set record row: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating set records: %w", err)
	}
	return records, nil
}

// SQLiteTransactor scopes a SQLiteSetRepo to a transaction.
type SQLiteTransactor struct {
	uow db.UnitOfWork
}

func NewSQLiteTransactor(uow db.UnitOfWork) *SQLiteTransactor {
	return &SQLiteTransactor{uow: uow}
}

func (t *SQLiteTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, sets SetRepo) error) error {
	return t.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLiteSetRepo(tx))
	})
}
