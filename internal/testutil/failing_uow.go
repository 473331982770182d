package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/repcoach/internal/db"
)

// FailOnNthWriteUoW is a test UoW that injects an error on the Nth write
// statement within a transaction. Writes are ExecContext calls and
// QueryRowContext calls whose SQL mutates (INSERT ... RETURNING and
// DELETE ... RETURNING both go through QueryRowContext).
//
// Writes are counted starting at 1.
type FailOnNthWriteUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthWrite{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	if wrapped.failed.Load() {
		_ = tx.Rollback()
		return u.Err
	}
	return tx.Commit()
}

type failOnNthWrite struct {
	db.DBTX
	count  atomic.Int32
	failed atomic.Bool
	failOn int32
	err    error
}

func (f *failOnNthWrite) hit() bool {
	if f.count.Add(1) == f.failOn {
		f.failed.Store(true)
		return true
	}
	return false
}

func (f *failOnNthWrite) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.hit() {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// QueryRowContext cannot carry an injected error, so a failing write is
// redirected to a statement that returns no row and the transaction is
// rolled back afterwards.
func (f *failOnNthWrite) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	if isWrite(query) && f.hit() {
		return f.DBTX.QueryRowContext(ctx, "SELECT 1 WHERE 0")
	}
	return f.DBTX.QueryRowContext(ctx, query, args...)
}

func isWrite(query string) bool {
	for i := 0; i < len(query); i++ {
		switch query[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case 'I', 'i', 'D', 'd', 'U', 'u':
			return true
		default:
			return false
		}
	}
	return false
}
