package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
)

const invoiceColumns = `i.id, i.invoice_number, i.client_id, i.campaign_id, i.amount, i.tax_amount,
	i.total_amount, i.status, i.issue_date, i.due_date, i.paid_date, i.notes,
	i.created_by_user_id, i.created_at, i.updated_at`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.CampaignID, &inv.Amount, &inv.TaxAmount,
		&inv.TotalAmount, &inv.Status, &inv.IssueDate, &inv.DueDate, &inv.PaidDate, &inv.Notes,
		&inv.CreatedByUserID, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

// getInvoice loads an invoice; lock adds FOR UPDATE inside a transaction.
func getInvoice(ctx context.Context, q querier, id uuid.UUID, lock bool) (*domain.Invoice, error) {
	stmt := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.id = $1`
	if lock {
		stmt += ` FOR UPDATE`
	}
	inv, err := scanInvoice(q.QueryRow(ctx, stmt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

func lockInvoice(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := getInvoice(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.NotFound("invoice", id)
	}
	return inv, nil
}

// balance sums the completed payments of an invoice, leaving out exclude.
func balance(ctx context.Context, q querier, invoiceID, exclude uuid.UUID) (domain.InvoiceBalance, error) {
	var bal domain.InvoiceBalance
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'Completed'), 0), COUNT(*)
		FROM payments WHERE invoice_id = $1 AND id <> $2`, invoiceID, exclude).
		Scan(&bal.Completed, &bal.Payments)
	if err != nil {
		return domain.InvoiceBalance{}, fmt.Errorf("invoice balance: %w", err)
	}
	return bal, nil
}

func (s *Store) insertInvoice(ctx context.Context, tx pgx.Tx, inv *domain.Invoice) error {
	now := s.now()
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	n, err := nextNumber(ctx, tx, domain.InvoicePrefix, now)
	if err != nil {
		return err
	}
	inv.InvoiceNumber = n.String()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (id, invoice_number, number_year, number_seq, client_id, campaign_id,
		    amount, tax_amount, total_amount, status, issue_date, due_date, paid_date, notes,
		    created_by_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		inv.ID, inv.InvoiceNumber, n.Year, n.Seq, inv.ClientID, inv.CampaignID,
		inv.Amount, inv.TaxAmount, inv.TotalAmount, inv.Status, inv.IssueDate,
		inv.DueDate, inv.PaidDate, inv.Notes, inv.CreatedByUserID, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *domain.Invoice) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		return s.insertInvoice(ctx, tx, inv)
	})
}

// EnsureCampaignInvoice locks the campaign row so concurrent callers for
// the same campaign queue up behind the first insert.
func (s *Store) EnsureCampaignInvoice(ctx context.Context, draft *domain.Invoice) (bool, error) {
	if draft.CampaignID == nil {
		return false, domain.Validation("campaignId", "campaign is required")
	}
	var inserted bool
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		inserted = false
		var campaignID uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR UPDATE`, *draft.CampaignID).Scan(&campaignID)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound("campaign", *draft.CampaignID)
		}
		if err != nil {
			return fmt.Errorf("lock campaign: %w", err)
		}
		var exists bool
		if err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE campaign_id = $1)`, campaignID).Scan(&exists); err != nil {
			return fmt.Errorf("check campaign invoice: %w", err)
		}
		if exists {
			return nil
		}
		if err = s.insertInvoice(ctx, tx, draft); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	return inserted, err
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return getInvoice(ctx, s.pool, id, false)
}

func invoiceWhere(f port.InvoiceFilter) *query {
	q := &query{}
	if f.ClientID != nil {
		q.and("i.client_id = " + q.arg(*f.ClientID))
	}
	if f.CampaignID != nil {
		q.and("i.campaign_id = " + q.arg(*f.CampaignID))
	}
	if f.Status != nil {
		switch *f.Status {
		case domain.InvoiceOverdue:
			q.and("i.status <> 'Paid' AND i.due_date < " + q.arg(f.Now))
		case domain.InvoicePaid:
			q.and("i.status = 'Paid'")
		default:
			now := q.arg(f.Now)
			q.and("i.status = " + q.arg(string(*f.Status)) + " AND (i.due_date IS NULL OR i.due_date >= " + now + ")")
		}
	}
	if f.Search != "" {
		p := q.arg(likePattern(f.Search))
		q.and("(i.invoice_number ILIKE " + p + " OR i.notes ILIKE " + p + " OR cl.name ILIKE " + p + ")")
	}
	return q
}

func (s *Store) ListInvoices(ctx context.Context, f port.InvoiceFilter) ([]domain.Invoice, int64, error) {
	const from = ` FROM invoices i JOIN clients cl ON cl.id = i.client_id`
	q := invoiceWhere(f)

	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*)`+from+q.whereSQL(), q.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	stmt := `SELECT ` + invoiceColumns + from + q.whereSQL() + ` ORDER BY i.created_at DESC, i.invoice_number DESC` + q.page(f.PageRequest)
	rows, err := s.pool.Query(ctx, stmt, q.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan invoices: %w", err)
	}
	return items, total, nil
}

func (s *Store) ListInvoicesByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]domain.Invoice, error) {
	if len(campaignIDs) == 0 {
		return []domain.Invoice{}, nil
	}
	ids := make([]string, len(campaignIDs))
	for i, id := range campaignIDs {
		ids[i] = id.String()
	}
	rows, err := s.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices i
		WHERE i.campaign_id = ANY($1::uuid[]) ORDER BY i.created_at, i.invoice_number`, ids)
	if err != nil {
		return nil, fmt.Errorf("list campaign invoices: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		return scanInvoice(row)
	})
}

func (s *Store) saveInvoice(ctx context.Context, tx pgx.Tx, inv *domain.Invoice) error {
	inv.UpdatedAt = s.now()
	_, err := tx.Exec(ctx, `
		UPDATE invoices SET amount = $2, tax_amount = $3, total_amount = $4, status = $5, issue_date = $6,
		    due_date = $7, paid_date = $8, notes = $9, updated_at = $10
		WHERE id = $1`,
		inv.ID, inv.Amount, inv.TaxAmount, inv.TotalAmount, inv.Status, inv.IssueDate,
		inv.DueDate, inv.PaidDate, inv.Notes, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func (s *Store) mutateInvoice(ctx context.Context, id uuid.UUID, fn func(inv *domain.Invoice, bal domain.InvoiceBalance) error) (*domain.Invoice, error) {
	var out *domain.Invoice
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		inv, err := lockInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		bal, err := balance(ctx, tx, id, uuid.Nil)
		if err != nil {
			return err
		}
		if err = fn(inv, bal); err != nil {
			return err
		}
		if err = s.saveInvoice(ctx, tx, inv); err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateInvoice(ctx context.Context, id uuid.UUID, patch domain.InvoicePatch, now time.Time) (*domain.Invoice, error) {
	return s.mutateInvoice(ctx, id, func(inv *domain.Invoice, bal domain.InvoiceBalance) error {
		return inv.Apply(patch, bal, now)
	})
}

func (s *Store) MarkInvoiceSent(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.mutateInvoice(ctx, id, func(inv *domain.Invoice, _ domain.InvoiceBalance) error {
		return inv.MarkSent()
	})
}

func (s *Store) MarkInvoicePaid(ctx context.Context, id uuid.UUID, paidDate time.Time, force bool) (*domain.Invoice, error) {
	return s.mutateInvoice(ctx, id, func(inv *domain.Invoice, bal domain.InvoiceBalance) error {
		return inv.MarkPaid(paidDate, bal, force)
	})
}

// DeleteInvoice counts payments under the invoice lock; the ON DELETE
// RESTRICT foreign key covers anything that slips past.
func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := lockInvoice(ctx, tx, id); err != nil {
			return err
		}
		bal, err := balance(ctx, tx, id, uuid.Nil)
		if err != nil {
			return err
		}
		if bal.Payments > 0 {
			return domain.Referential(domain.CodeInvoiceHasPayments,
				fmt.Sprintf("invoice has %d payment(s) and cannot be deleted", bal.Payments))
		}
		if _, err = tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		return nil
	})
}
