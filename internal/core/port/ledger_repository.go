package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agency-ops/internal/core/domain"
)

// InvoiceRepository persists invoices. Every mutating method runs in a
// single transaction that locks the rows it checks, so the domain rule it
// applies and the write are atomic. Number allocation happens inside the
// same transaction and never yields duplicates.
type InvoiceRepository interface {
	// CreateInvoice assigns ID (when nil), InvoiceNumber and timestamps and
	// inserts the invoice.
	CreateInvoice(ctx context.Context, inv *domain.Invoice) error
	// EnsureCampaignInvoice inserts draft unless the campaign it references
	// already has an invoice. It reports whether draft was inserted.
	EnsureCampaignInvoice(ctx context.Context, draft *domain.Invoice) (bool, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, f InvoiceFilter) ([]domain.Invoice, int64, error)
	ListInvoicesByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]domain.Invoice, error)
	// UpdateInvoice applies patch against the invoice's current balance.
	UpdateInvoice(ctx context.Context, id uuid.UUID, patch domain.InvoicePatch, now time.Time) (*domain.Invoice, error)
	MarkInvoiceSent(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id uuid.UUID, paidDate time.Time, force bool) (*domain.Invoice, error)
	// DeleteInvoice removes an invoice without payments. Blocked deletes
	// return a referential-integrity domain error naming the cause.
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository persists payments under the same transactional rules
// as InvoiceRepository; the owning invoice is locked for every check.
type PaymentRepository interface {
	// CreatePayment checks the invoice cap, assigns PaymentNumber and
	// timestamps and inserts the payment.
	CreatePayment(ctx context.Context, p *domain.Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	ListPayments(ctx context.Context, f PaymentFilter) ([]domain.Payment, int64, error)
	ProcessPayment(ctx context.Context, cmd ProcessPaymentCmd) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, patch domain.PaymentPatch) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id uuid.UUID) error
}

// InvoiceFilter scopes invoice lists. Status may be the derived Overdue,
// evaluated against Now.
type InvoiceFilter struct {
	domain.PageRequest
	ClientID   *uuid.UUID
	CampaignID *uuid.UUID
	Status     *domain.InvoiceStatus
	Now        time.Time
}

// PaymentFilter scopes payment lists.
type PaymentFilter struct {
	domain.PageRequest
	ClientID  *uuid.UUID
	InvoiceID *uuid.UUID
	Status    *domain.PaymentStatus
}

// ProcessPaymentCmd moves a pending payment to its outcome.
type ProcessPaymentCmd struct {
	PaymentID     uuid.UUID
	Outcome       domain.PaymentStatus
	TransactionID *string
	By            uuid.UUID
	At            time.Time
}
