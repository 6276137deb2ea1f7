// Package sqlite implements the directory, ledger and approval ports on an
// embedded SQLite database (modernc.org/sqlite). Writes run in immediate
// transactions over a single connection, so every check-then-write is
// serialized against other writers.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"agency-ops/internal/core/domain"
)

// Store persists agency state in SQLite.
type Store struct {
	db      *sql.DB
	retries int
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithRetries bounds how often a transaction that hit a busy database or a
// numbering collision is retried.
func WithRetries(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.retries = n
		}
	}
}

// WithClock overrides the time source used for created/updated stamps and
// document numbering.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore wraps an open, migrated database handle.
func NewStore(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:      db,
		retries: 3,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// inTx runs fn in a transaction, retrying lost races. Exhausted retries
// surface as a CONCURRENT_UPDATE conflict.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return mapError(err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return domain.Conflict(domain.CodeConcurrentUpdate, "the record was changed concurrently, retry the operation")
}

func (s *Store) runTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	return fn(tx)
}

func sqliteCode(err error) (int, bool) {
	var se *msqlite.Error
	if errors.As(err, &se) {
		return se.Code(), true
	}
	return 0, false
}

// isRetryable reports a busy database or a collision on a document number.
func isRetryable(err error) bool {
	code, ok := sqliteCode(err)
	if !ok {
		return false
	}
	switch code & 0xff {
	case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
		return true
	}
	return code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE && strings.Contains(err.Error(), "number")
}

// mapError turns foreign key violations into referential domain errors.
// SQLite does not name the violated constraint.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if code, ok := sqliteCode(err); ok && code == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return domain.Referential(domain.CodeReferenceUnknown, "the operation references a record that does not exist or is still referenced")
	}
	return err
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func nullMillis(value *time.Time) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*value), Valid: true}
}

func timePtr(value sql.NullInt64) *time.Time {
	if !value.Valid {
		return nil
	}
	t := fromMillis(value.Int64)
	return &t
}

// query accumulates WHERE clauses with numbered ?N placeholders, so one
// argument may be referenced several times.
type query struct {
	where []string
	args  []any
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("?%d", len(q.args))
}

func (q *query) and(clause string) {
	q.where = append(q.where, clause)
}

func (q *query) in(column string, values []string) {
	if len(values) == 0 {
		q.and("1 = 0")
		return
	}
	marks := make([]string, len(values))
	for i, v := range values {
		marks[i] = q.arg(v)
	}
	q.and(column + " IN (" + strings.Join(marks, ", ") + ")")
}

func (q *query) whereSQL() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

// page appends LIMIT/OFFSET; a zero page size means no limit.
func (q *query) page(p domain.PageRequest) string {
	if p.PageSize <= 0 {
		return ""
	}
	p = p.Normalize()
	limit := q.arg(p.PageSize)
	offset := q.arg(p.Offset())
	return " LIMIT " + limit + " OFFSET " + offset
}

func likePattern(search string) string {
	return "%" + strings.TrimSpace(search) + "%"
}
