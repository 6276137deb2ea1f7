// Package postgres implements the directory, ledger and approval ports on
// PostgreSQL with pgx. Mutations run in SERIALIZABLE transactions that lock
// the rows they check with FOR UPDATE; serialization failures and number
// collisions are retried a bounded number of times.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-ops/internal/core/domain"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
)

// Store persists agency state in PostgreSQL.
type Store struct {
	pool    *pgxpool.Pool
	retries int
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithRetries bounds how often a transaction that lost a race is retried.
func WithRetries(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.retries = n
		}
	}
}

// WithClock overrides the time source used for stamps and numbering.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a store over pool.
func NewStore(pool *pgxpool.Pool, opts ...Option) *Store {
	s := &Store{
		pool:    pool,
		retries: 3,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (s *Store) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
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

func (s *Store) runTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// isRetryable reports serialization failures, deadlocks and collisions on
// a document number.
func isRetryable(err error) bool {
	pgErr, ok := pgError(err)
	if !ok {
		return false
	}
	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	case codeUniqueViolation:
		return strings.Contains(pgErr.ConstraintName, "number")
	}
	return false
}

// fkCauses names the blocked-delete cause of each foreign key. No operation
// in this service deletes campaigns, so the campaign entry is only reached
// by a future campaign delete on this store.
var fkCauses = map[string]domain.Code{
	"payments_invoice_id_fkey":          domain.CodeInvoiceHasPayments,
	"invoices_campaign_id_fkey":         domain.CodeInvoiceHasCampaigns,
	"approval_comments_request_id_fkey": domain.CodeApprovalHasComments,
}

// mapError turns foreign key violations into referential domain errors. A
// violation raised by a delete names its cause; one raised by an insert
// means the referenced row does not exist.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != codeForeignKeyViolation {
		return err
	}
	if strings.HasPrefix(pgErr.Message, "update or delete") {
		if code, ok := fkCauses[pgErr.ConstraintName]; ok {
			return domain.Referential(code, pgErr.Message)
		}
	}
	return domain.Referential(domain.CodeReferenceUnknown, "the operation references a record that does not exist or is still referenced")
}

// query accumulates WHERE clauses with $N placeholders.
type query struct {
	where []string
	args  []any
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *query) and(clause string) {
	q.where = append(q.where, clause)
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
	return " LIMIT " + q.arg(p.PageSize) + " OFFSET " + q.arg(p.Offset())
}

func likePattern(search string) string {
	return "%" + strings.TrimSpace(search) + "%"
}
