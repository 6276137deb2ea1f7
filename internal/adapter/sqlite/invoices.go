package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
)

const invoiceColumns = `i.id, i.invoice_number, i.client_id, i.campaign_id, i.amount, i.tax_amount,
	i.total_amount, i.status, i.issue_date, i.due_date, i.paid_date, i.notes,
	i.created_by_user_id, i.created_at, i.updated_at`

func scanInvoice(row rowScanner) (domain.Invoice, error) {
	var (
		inv                  domain.Invoice
		issueDate            int64
		dueDate, paidDate    sql.NullInt64
		createdAt, updatedAt int64
	)
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.CampaignID, &inv.Amount, &inv.TaxAmount,
		&inv.TotalAmount, &inv.Status, &issueDate, &dueDate, &paidDate, &inv.Notes,
		&inv.CreatedByUserID, &createdAt, &updatedAt)
	if err != nil {
		return inv, err
	}
	inv.IssueDate = fromMillis(issueDate)
	inv.DueDate = timePtr(dueDate)
	inv.PaidDate = timePtr(paidDate)
	inv.CreatedAt = fromMillis(createdAt)
	inv.UpdatedAt = fromMillis(updatedAt)
	return inv, nil
}

func getInvoice(ctx context.Context, q queryer, id uuid.UUID) (*domain.Invoice, error) {
	row := q.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices i WHERE i.id = ?`, id)
	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// mustInvoice is getInvoice for writers: a missing row is a NotFound error.
func mustInvoice(ctx context.Context, q queryer, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := getInvoice(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.NotFound("invoice", id)
	}
	return inv, nil
}

// balance sums the completed payments of an invoice, leaving out exclude.
func balance(ctx context.Context, q queryer, invoiceID, exclude uuid.UUID) (domain.InvoiceBalance, error) {
	rows, err := q.QueryContext(ctx, `SELECT amount, status FROM payments WHERE invoice_id = ?1 AND id <> ?2`, invoiceID, exclude)
	if err != nil {
		return domain.InvoiceBalance{}, fmt.Errorf("invoice balance: %w", err)
	}
	defer rows.Close()

	bal := domain.InvoiceBalance{Completed: decimal.Zero}
	for rows.Next() {
		var (
			amount decimal.Decimal
			status domain.PaymentStatus
		)
		if err = rows.Scan(&amount, &status); err != nil {
			return domain.InvoiceBalance{}, fmt.Errorf("scan payment amount: %w", err)
		}
		bal.Payments++
		if status == domain.PaymentCompleted {
			bal.Completed = bal.Completed.Add(amount)
		}
	}
	return bal, rows.Err()
}

func (s *Store) insertInvoice(ctx context.Context, tx *sql.Tx, inv *domain.Invoice) error {
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

	_, err = tx.ExecContext(ctx, `
		INSERT INTO invoices (id, invoice_number, number_year, number_seq, client_id, campaign_id,
		    amount, tax_amount, total_amount, status, issue_date, due_date, paid_date, notes,
		    created_by_user_id, created_at, updated_at)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12, ?13, ?14, ?15, ?16, ?17)`,
		inv.ID, inv.InvoiceNumber, n.Year, n.Seq, inv.ClientID, inv.CampaignID,
		inv.Amount, inv.TaxAmount, inv.TotalAmount, inv.Status, toMillis(inv.IssueDate),
		nullMillis(inv.DueDate), nullMillis(inv.PaidDate), inv.Notes,
		inv.CreatedByUserID, toMillis(inv.CreatedAt), toMillis(inv.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *domain.Invoice) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return s.insertInvoice(ctx, tx, inv)
	})
}

func (s *Store) EnsureCampaignInvoice(ctx context.Context, draft *domain.Invoice) (bool, error) {
	if draft.CampaignID == nil {
		return false, domain.Validation("campaignId", "campaign is required")
	}
	var inserted bool
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		inserted = false
		var exists bool
		err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE campaign_id = ?)`, *draft.CampaignID).Scan(&exists)
		if err != nil {
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
	return getInvoice(ctx, s.db, id)
}

// invoiceWhere builds the filter shared by the list and its count. Overdue
// is derived from the due date, so the stored statuses exclude overdue rows.
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
			q.and("i.status <> 'Paid' AND i.due_date < " + q.arg(toMillis(f.Now)))
		case domain.InvoicePaid:
			q.and("i.status = 'Paid'")
		default:
			now := q.arg(toMillis(f.Now))
			q.and("i.status = " + q.arg(*f.Status) + " AND (i.due_date IS NULL OR i.due_date >= " + now + ")")
		}
	}
	if f.Search != "" {
		p := q.arg(likePattern(f.Search))
		q.and("(i.invoice_number LIKE " + p + " OR i.notes LIKE " + p + " OR cl.name LIKE " + p + ")")
	}
	return q
}

func (s *Store) ListInvoices(ctx context.Context, f port.InvoiceFilter) ([]domain.Invoice, int64, error) {
	const from = ` FROM invoices i JOIN clients cl ON cl.id = i.client_id`
	q := invoiceWhere(f)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*)`+from+q.whereSQL(), q.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	stmt := `SELECT ` + invoiceColumns + from + q.whereSQL() + ` ORDER BY i.created_at DESC, i.invoice_number DESC` + q.page(f.PageRequest)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	items, err := collectInvoices(rows)
	return items, total, err
}

func (s *Store) ListInvoicesByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]domain.Invoice, error) {
	ids := make([]string, len(campaignIDs))
	for i, id := range campaignIDs {
		ids[i] = id.String()
	}
	var q query
	q.in("i.campaign_id", ids)
	rows, err := s.db.QueryContext(ctx, `SELECT `+invoiceColumns+` FROM invoices i`+q.whereSQL()+` ORDER BY i.created_at, i.invoice_number`, q.args...)
	if err != nil {
		return nil, fmt.Errorf("list campaign invoices: %w", err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func collectInvoices(rows *sql.Rows) ([]domain.Invoice, error) {
	items := make([]domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

func (s *Store) saveInvoice(ctx context.Context, tx *sql.Tx, inv *domain.Invoice) error {
	inv.UpdatedAt = s.now()
	_, err := tx.ExecContext(ctx, `
		UPDATE invoices SET amount = ?2, tax_amount = ?3, total_amount = ?4, status = ?5, issue_date = ?6,
		    due_date = ?7, paid_date = ?8, notes = ?9, updated_at = ?10
		WHERE id = ?1`,
		inv.ID, inv.Amount, inv.TaxAmount, inv.TotalAmount, inv.Status, toMillis(inv.IssueDate),
		nullMillis(inv.DueDate), nullMillis(inv.PaidDate), inv.Notes, toMillis(inv.UpdatedAt))
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// mutateInvoice loads the invoice with its balance, lets fn change it and
// stores the result in one transaction.
func (s *Store) mutateInvoice(ctx context.Context, id uuid.UUID, fn func(inv *domain.Invoice, bal domain.InvoiceBalance) error) (*domain.Invoice, error) {
	var out *domain.Invoice
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		inv, err := mustInvoice(ctx, tx, id)
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

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := mustInvoice(ctx, tx, id); err != nil {
			return err
		}
		var payments int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM payments WHERE invoice_id = ?`, id).Scan(&payments); err != nil {
			return fmt.Errorf("count invoice payments: %w", err)
		}
		if payments > 0 {
			return domain.Referential(domain.CodeInvoiceHasPayments,
				fmt.Sprintf("invoice has %d payment(s) and cannot be deleted", payments))
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		return nil
	})
}
