package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-ops/internal/core/domain"
)

// InvoiceUseCase is the invoice half of the campaign ledger. Every method
// takes the resolved caller and authorizes it through the policy gate.
type InvoiceUseCase interface {
	// EnsureCampaignInvoices creates one Draft invoice for every campaign
	// visible to the caller that has none and returns the invoices of all
	// visible campaigns. Repeated calls create nothing new.
	EnsureCampaignInvoices(ctx context.Context, who domain.Identity) ([]domain.Invoice, error)
	CreateInvoice(ctx context.Context, who domain.Identity, in CreateInvoiceInput) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, who domain.Identity, id uuid.UUID, patch domain.InvoicePatch) (*domain.Invoice, error)
	MarkInvoiceSent(ctx context.Context, who domain.Identity, id uuid.UUID) (*domain.Invoice, error)
	// MarkInvoicePaid requires completed payments to cover the total unless
	// in.Force is set.
	MarkInvoicePaid(ctx context.Context, who domain.Identity, id uuid.UUID, in MarkPaidInput) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, who domain.Identity, id uuid.UUID) error
	GetInvoice(ctx context.Context, who domain.Identity, id uuid.UUID) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, who domain.Identity, f InvoiceFilter) (domain.Page[domain.Invoice], error)
}

// PaymentUseCase is the payment half of the campaign ledger.
type PaymentUseCase interface {
	CreatePayment(ctx context.Context, who domain.Identity, in CreatePaymentInput) (*domain.Payment, error)
	// ProcessPayment moves a Pending payment to Completed or Failed once.
	ProcessPayment(ctx context.Context, who domain.Identity, in ProcessPaymentInput) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, who domain.Identity, id uuid.UUID, patch domain.PaymentPatch) (*domain.Payment, error)
	DeletePayment(ctx context.Context, who domain.Identity, id uuid.UUID) error
	GetPayment(ctx context.Context, who domain.Identity, id uuid.UUID) (*domain.Payment, error)
	ListPayments(ctx context.Context, who domain.Identity, f PaymentFilter) (domain.Page[domain.Payment], error)
}

// CreateInvoiceInput is an explicit admin invoice. IssueDate defaults to now.
type CreateInvoiceInput struct {
	ClientID   uuid.UUID
	CampaignID *uuid.UUID
	Amount     decimal.Decimal
	TaxAmount  decimal.Decimal
	IssueDate  *time.Time
	DueDate    *time.Time
	Notes      *string
}

// MarkPaidInput: PaidDate defaults to now; Force skips the coverage check.
type MarkPaidInput struct {
	PaidDate *time.Time
	Force    bool
}

// CreatePaymentInput records a payment. Status may only be set by admins
// (Pending or Completed); Overpayment is honoured for admins only.
type CreatePaymentInput struct {
	InvoiceID        uuid.UUID
	Amount           decimal.Decimal
	Method           string
	Status           string
	TransactionID    *string
	PaymentReference *string
	Notes            *string
	PaymentDate      *time.Time
	Overpayment      bool
}

// ProcessPaymentInput carries the outcome of a pending payment.
type ProcessPaymentInput struct {
	PaymentID     uuid.UUID
	Status        string
	TransactionID *string
}
