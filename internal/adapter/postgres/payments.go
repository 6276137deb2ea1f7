package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
)

const paymentColumns = `p.id, p.payment_number, p.invoice_id, i.client_id, p.amount, p.method, p.status,
	p.transaction_id, p.payment_reference, p.notes, p.payment_date, p.processed_date,
	p.processed_by_user_id, p.created_by_user_id, p.overpayment, p.created_at, p.updated_at`

const paymentFrom = ` FROM payments p JOIN invoices i ON i.id = p.invoice_id`

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.PaymentNumber, &p.InvoiceID, &p.ClientID, &p.Amount, &p.Method, &p.Status,
		&p.TransactionID, &p.PaymentReference, &p.Notes, &p.PaymentDate, &p.ProcessedDate,
		&p.ProcessedByUserID, &p.CreatedByUserID, &p.Overpayment, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func getPayment(ctx context.Context, q querier, id uuid.UUID, lock bool) (*domain.Payment, error) {
	stmt := `SELECT ` + paymentColumns + paymentFrom + ` WHERE p.id = $1`
	if lock {
		stmt += ` FOR UPDATE OF p`
	}
	p, err := scanPayment(q.QueryRow(ctx, stmt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// lockPayment locks the payment and then its invoice, the same order every
// writer uses.
func lockPayment(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, *domain.Invoice, error) {
	p, err := getPayment(ctx, tx, id, true)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, domain.NotFound("payment", id)
	}
	inv, err := lockInvoice(ctx, tx, p.InvoiceID)
	if err != nil {
		return nil, nil, err
	}
	return p, inv, nil
}

func (s *Store) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		inv, err := lockInvoice(ctx, tx, p.InvoiceID)
		if err != nil {
			return err
		}
		bal, err := balance(ctx, tx, inv.ID, uuid.Nil)
		if err != nil {
			return err
		}
		if err = inv.CheckPayment(bal, p.Amount, p.Overpayment); err != nil {
			return err
		}

		now := s.now()
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		n, err := nextNumber(ctx, tx, domain.PaymentPrefix, now)
		if err != nil {
			return err
		}
		p.PaymentNumber = n.String()
		p.ClientID = inv.ClientID
		p.CreatedAt = now
		p.UpdatedAt = now

		_, err = tx.Exec(ctx, `
			INSERT INTO payments (id, payment_number, number_year, number_seq, invoice_id, amount, method,
			    status, transaction_id, payment_reference, notes, payment_date, processed_date,
			    processed_by_user_id, created_by_user_id, overpayment, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
			p.ID, p.PaymentNumber, n.Year, n.Seq, p.InvoiceID, p.Amount, p.Method,
			p.Status, p.TransactionID, p.PaymentReference, p.Notes, p.PaymentDate, p.ProcessedDate,
			p.ProcessedByUserID, p.CreatedByUserID, p.Overpayment, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		return nil
	})
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return getPayment(ctx, s.pool, id, false)
}

func (s *Store) ListPayments(ctx context.Context, f port.PaymentFilter) ([]domain.Payment, int64, error) {
	var q query
	if f.ClientID != nil {
		q.and("i.client_id = " + q.arg(*f.ClientID))
	}
	if f.InvoiceID != nil {
		q.and("p.invoice_id = " + q.arg(*f.InvoiceID))
	}
	if f.Status != nil {
		q.and("p.status = " + q.arg(string(*f.Status)))
	}
	if f.Search != "" {
		pat := q.arg(likePattern(f.Search))
		q.and("(p.payment_number ILIKE " + pat + " OR p.transaction_id ILIKE " + pat + " OR p.payment_reference ILIKE " + pat + ")")
	}

	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*)`+paymentFrom+q.whereSQL(), q.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	stmt := `SELECT ` + paymentColumns + paymentFrom + q.whereSQL() + ` ORDER BY p.payment_date DESC, p.payment_number DESC` + q.page(f.PageRequest)
	rows, err := s.pool.Query(ctx, stmt, q.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan payments: %w", err)
	}
	return items, total, nil
}

func (s *Store) savePayment(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	p.UpdatedAt = s.now()
	_, err := tx.Exec(ctx, `
		UPDATE payments SET amount = $2, method = $3, status = $4, transaction_id = $5, payment_reference = $6,
		    notes = $7, payment_date = $8, processed_date = $9, processed_by_user_id = $10, updated_at = $11
		WHERE id = $1`,
		p.ID, p.Amount, p.Method, p.Status, p.TransactionID, p.PaymentReference,
		p.Notes, p.PaymentDate, p.ProcessedDate, p.ProcessedByUserID, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

func (s *Store) ProcessPayment(ctx context.Context, cmd port.ProcessPaymentCmd) (*domain.Payment, error) {
	var out *domain.Payment
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		p, inv, err := lockPayment(ctx, tx, cmd.PaymentID)
		if err != nil {
			return err
		}
		if err = p.Process(cmd.Outcome, cmd.By, cmd.At); err != nil {
			return err
		}
		if cmd.TransactionID != nil {
			p.TransactionID = cmd.TransactionID
		}
		if p.Status == domain.PaymentCompleted {
			bal, err := balance(ctx, tx, inv.ID, p.ID)
			if err != nil {
				return err
			}
			if err = inv.CheckCompletion(bal, p.Amount, p.Overpayment); err != nil {
				return err
			}
		}
		if err = s.savePayment(ctx, tx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdatePayment(ctx context.Context, id uuid.UUID, patch domain.PaymentPatch) (*domain.Payment, error) {
	var out *domain.Payment
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		p, inv, err := lockPayment(ctx, tx, id)
		if err != nil {
			return err
		}
		previous := p.Amount
		if err = p.Apply(patch); err != nil {
			return err
		}
		if !p.Amount.Equal(previous) && p.Status != domain.PaymentFailed {
			bal, err := balance(ctx, tx, inv.ID, p.ID)
			if err != nil {
				return err
			}
			if err = inv.CheckCompletion(bal, p.Amount, p.Overpayment); err != nil {
				return err
			}
			if err = p.CheckAmountChange(*inv, bal); err != nil {
				return err
			}
		}
		if err = s.savePayment(ctx, tx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		p, inv, err := lockPayment(ctx, tx, id)
		if err != nil {
			return err
		}
		if err = p.CheckDelete(*inv); err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}
		return nil
	})
}
